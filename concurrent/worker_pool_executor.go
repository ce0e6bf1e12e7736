/**
 * Copyright (c) 2020, The Reason-Graphql-Go Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package concurrent

import (
	"errors"
	"sync"
	"time"
)

// WorkerPoolExecutor is a fixed-size pool of goroutines draining a shared,
// unbounded task queue. Submit never blocks: a task submitted while every
// worker is busy waits in the queue until one frees up, and can still be
// cancelled while it waits.
//
// Since this package's Futures (see package future) are ordinary blocking
// values rather than polled state machines, the pool needs nothing fancier
// than a mutex-guarded slice and a condition variable; every queueing and
// shutdown guarantee below is built on those rather than on a lock-free
// queue with custom atomics.
type WorkerPoolExecutor struct {
	mu       sync.Mutex
	cond     *sync.Cond
	queue    []*taskHandle
	shutdown bool

	done chan bool
	wg   sync.WaitGroup
}

var _ Executor = (*WorkerPoolExecutor)(nil)

// NewWorkerPoolExecutor starts numWorkers goroutines draining a shared,
// unbounded task queue. numWorkers must be positive.
func NewWorkerPoolExecutor(numWorkers int) *WorkerPoolExecutor {
	if numWorkers <= 0 {
		panic("concurrent: NewWorkerPoolExecutor requires a positive worker count")
	}
	e := &WorkerPoolExecutor{
		done: make(chan bool, 1),
	}
	e.cond = sync.NewCond(&e.mu)
	e.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go e.worker()
	}
	return e
}

func (e *WorkerPoolExecutor) worker() {
	defer e.wg.Done()
	for {
		e.mu.Lock()
		for len(e.queue) == 0 && !e.shutdown {
			e.cond.Wait()
		}
		if len(e.queue) == 0 {
			// shutdown with a drained queue: this worker is finished.
			e.mu.Unlock()
			return
		}
		h := e.queue[0]
		e.queue = e.queue[1:]
		e.mu.Unlock()

		h.run()
	}
}

// Submit implements Executor.
func (e *WorkerPoolExecutor) Submit(task Task) (TaskHandle, error) {
	h := &taskHandle{
		task:   task,
		result: make(chan taskResult, 1),
	}
	e.mu.Lock()
	if e.shutdown {
		e.mu.Unlock()
		return nil, errors.New("concurrent: executor has been shut down")
	}
	e.queue = append(e.queue, h)
	e.mu.Unlock()
	e.cond.Signal()
	return h, nil
}

// Shutdown implements Executor.
func (e *WorkerPoolExecutor) Shutdown() (<-chan bool, error) {
	e.mu.Lock()
	already := e.shutdown
	e.shutdown = true
	e.mu.Unlock()

	if !already {
		e.cond.Broadcast()
		go func() {
			e.wg.Wait()
			e.done <- true
		}()
	}
	return e.done, nil
}

type taskResult struct {
	value interface{}
	err   error
}

type taskHandle struct {
	task   Task
	result chan taskResult

	mu        sync.Mutex
	cancelled bool
	started   bool
}

var _ TaskHandle = (*taskHandle)(nil)

func (h *taskHandle) run() {
	h.mu.Lock()
	if h.cancelled {
		h.mu.Unlock()
		return
	}
	h.started = true
	h.mu.Unlock()

	v, err := h.task.Run()
	h.result <- taskResult{value: v, err: err}
}

// Cancel implements TaskHandle.
func (h *taskHandle) Cancel() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.started {
		return nil
	}
	if !h.cancelled {
		h.cancelled = true
		h.result <- taskResult{err: ErrTaskCancelled}
	}
	return nil
}

// AwaitResult implements TaskHandle.
func (h *taskHandle) AwaitResult(timeout time.Duration) (interface{}, error) {
	if timeout <= 0 {
		r := <-h.result
		return r.value, r.err
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case r := <-h.result:
		return r.value, r.err
	case <-timer.C:
		return nil, ErrTaskAwaitResultTimeout
	}
}
