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
	"time"
)

// Task represents an instance that can be executed by an Executor.
type Task interface {
	// Run performs actions to complete a Task. The return value is sent to
	// the corresponding TaskHandle, retrievable via AwaitResult.
	Run() (interface{}, error)
}

// TaskFunc adapts an ordinary function to the Task interface.
type TaskFunc func() (interface{}, error)

var _ Task = (TaskFunc)(nil)

// Run implements Task.
func (f TaskFunc) Run() (interface{}, error) {
	return f()
}

// Error values returned from TaskHandle.AwaitResult.
var (
	// ErrTaskCancelled indicates the task was cancelled before completion.
	ErrTaskCancelled = errors.New("task was cancelled")
	// ErrTaskAwaitResultTimeout indicates AwaitResult ran out of time.
	ErrTaskAwaitResultTimeout = errors.New("timeout while waiting for task result")
)

// TaskHandle tracks the progress of a submitted Task.
type TaskHandle interface {
	// Cancel tries to cancel execution of the associated task. It is a
	// no-op once the task has already started running.
	Cancel() error

	// AwaitResult blocks the caller until the underlying task completes or
	// timeout elapses. A non-positive timeout waits indefinitely. Possible
	// returns:
	//
	//  1. (nil, ErrTaskCancelled): the task was cancelled.
	//  2. (nil, ErrTaskAwaitResultTimeout): timeout elapsed first.
	//  3. (any, any): the value/error returned from the task's Run method.
	AwaitResult(timeout time.Duration) (interface{}, error)
}

// Executor manages and executes submitted tasks.
type Executor interface {
	// Shutdown stops accepting new tasks. Tasks already submitted still
	// run to completion. The returned channel receives a value once every
	// submitted task has finished. Calling Shutdown more than once is a
	// no-op.
	Shutdown() (terminated <-chan bool, err error)

	// Submit schedules task for execution. The task may run on a different
	// goroutine than the caller, and not necessarily immediately.
	Submit(task Task) (TaskHandle, error)
}
