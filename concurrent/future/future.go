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

// Package future provides the asynchronous-result abstraction the executor
// is written against.
//
// A Future here is deliberately not a Rust-style Poll/Waker state machine.
// That design earns its keep when futures must be driven by a
// single-threaded reactor loop with no dedicated goroutine per pending
// operation; this engine has no such constraint — Go gives every resolver
// its own goroutine for free — so Future is the much smaller
// "eventually-a-value" shape built on a channel: exactly what a goroutine
// running a resolver needs to hand its result back to whatever is
// collecting the response tree.
package future

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jrmdayn/reason-graphql/concurrent"
)

// Future represents a value that may not be available yet. Get blocks
// (respecting ctx) until the value is ready.
type Future interface {
	// Get waits for the future to complete and returns its result. It may
	// be called at most once; Future implementations here are single-shot,
	// not broadcast.
	Get(ctx context.Context) (interface{}, error)
}

// doneFuture is a Future that is already resolved.
type doneFuture struct {
	value interface{}
	err   error
}

func (f doneFuture) Get(ctx context.Context) (interface{}, error) {
	return f.value, f.err
}

// Done wraps an already-available value (and possibly an error) as a
// Future. Synchronous resolvers are lifted into the async pipeline this
// way, so the executor never needs to special-case them.
func Done(value interface{}, err error) Future {
	return doneFuture{value: value, err: err}
}

// chanFuture is a Future backed by a single-element result channel, filled
// in by a goroutine running concurrently with its caller.
type chanFuture struct {
	result chan result
}

type result struct {
	value interface{}
	err   error
}

// Go runs fn on a new goroutine and returns a Future for its result. The
// returned Future's Get respects ctx cancellation even if fn itself
// ignores it, so a caller is never stuck waiting past its own deadline —
// though fn continues running to completion in the background regardless.
func Go(fn func() (interface{}, error)) Future {
	f := &chanFuture{result: make(chan result, 1)}
	go func() {
		v, err := fn()
		f.result <- result{value: v, err: err}
	}()
	return f
}

func (f *chanFuture) Get(ctx context.Context) (interface{}, error) {
	select {
	case r := <-f.result:
		return r.value, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Map transforms a Future's successful value with fn, short-circuiting an
// error produced by f without calling fn.
func Map(f Future, fn func(interface{}) (interface{}, error)) Future {
	return Go(func() (interface{}, error) {
		// context.Background: Get's cancellation is handled again by the
		// caller of the Future Map returns, via its own ctx.
		v, err := f.Get(context.Background())
		if err != nil {
			return nil, err
		}
		return fn(v)
	})
}

// Bind sequences two asynchronous steps: fn runs once f completes
// successfully, and the returned Future resolves to fn's Future's result.
// Also known elsewhere as AndThen or FlatMap.
func Bind(f Future, fn func(interface{}) Future) Future {
	return Go(func() (interface{}, error) {
		v, err := f.Get(context.Background())
		if err != nil {
			return nil, err
		}
		return fn(v).Get(context.Background())
	})
}

// Pool runs resolver work on a bounded concurrent.Executor instead of the
// one-goroutine-per-call behavior of Go. An operation with a wide selection
// set — many sibling fields, or a long list field — otherwise spawns one
// goroutine per resolver invocation with no ceiling; Pool caps that against
// the worker count the caller configured, trading a little latency under
// load for a bounded number of concurrently-running resolvers.
type Pool struct {
	executor concurrent.Executor
}

// NewPool wraps executor for use as a Future source. A nil *Pool is not
// valid; callers that have no pool configured should call the package-level
// Go instead.
func NewPool(executor concurrent.Executor) *Pool {
	return &Pool{executor: executor}
}

// poolFuture adapts a concurrent.TaskHandle to the Future interface,
// respecting ctx cancellation the same way chanFuture does.
type poolFuture struct {
	handle concurrent.TaskHandle
}

func (f poolFuture) Get(ctx context.Context) (interface{}, error) {
	type awaitResult struct {
		value interface{}
		err   error
	}
	done := make(chan awaitResult, 1)
	go func() {
		v, err := f.handle.AwaitResult(0)
		done <- awaitResult{value: v, err: err}
	}()
	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		_ = f.handle.Cancel()
		return nil, ctx.Err()
	}
}

// Go runs fn on p's underlying executor and returns a Future for its
// result. If submission itself fails (the executor has been shut down),
// the returned Future reports that error from Get.
func (p *Pool) Go(fn func() (interface{}, error)) Future {
	handle, err := p.executor.Submit(concurrent.TaskFunc(fn))
	if err != nil {
		return Done(nil, err)
	}
	return poolFuture{handle: handle}
}

// All waits for every Future in fs to complete and returns their results
// in the same order. If more than one fails, the first to report an error
// wins, and the context handed to the remaining Gets is cancelled. All
// returns once every Get has returned; a Get cut short by that
// cancellation does not wait for the work behind its Future, which may
// keep running after All returns.
func All(ctx context.Context, fs []Future) Future {
	return Go(func() (interface{}, error) {
		values := make([]interface{}, len(fs))
		g, gctx := errgroup.WithContext(ctx)
		for i, f := range fs {
			i, f := i, f
			g.Go(func() error {
				v, err := f.Get(gctx)
				if err != nil {
					return err
				}
				values[i] = v
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return values, nil
	})
}
