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

// Package executor walks a parsed ast.Document against a *graphql.Schema
// and produces a response graphql.Value, coordinating the argument
// evaluator (package internal/coerce), selection collection, recursive
// value resolution, and error accumulation.
package executor

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/jrmdayn/reason-graphql/concurrent/future"
	"github.com/jrmdayn/reason-graphql/graphql"
	"github.com/jrmdayn/reason-graphql/graphql/ast"
)

// ResponseError is a single entry of a response's top-level "errors" list.
type ResponseError struct {
	Message string
	Path    []string
}

// ArgumentError reports that coercing a field's arguments (or collecting
// a nested object's selection set) failed. Unlike a resolve-time error it
// is never absorbed by a Nullable wrapper: it aborts the entire operation
// with a null response.
type ArgumentError struct{ msg string }

func (e *ArgumentError) Error() string { return e.msg }

// ValidationError reports that a requested field is not defined on the
// object type it was selected against. Like ArgumentError it always
// aborts the whole operation.
type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

// resolveAborted is the sentinel returned internally when a field's lift
// or recursive value resolution fails in a way that null bubbling may
// absorb. Its message carries no information; the actual message was
// already recorded on the ExecutionContext at the point of failure, with
// its path. It never escapes package executor.
type resolveAborted struct{}

func (resolveAborted) Error() string { return "graphql: resolve error" }

var errResolveAborted error = resolveAborted{}

func isResolveAborted(err error) bool {
	_, ok := err.(resolveAborted)
	return ok
}

// ExecutionContext is built once per operation and threaded through every
// resolver invocation and recursive value resolution for that operation.
// It is discarded once the response has been produced.
type ExecutionContext struct {
	Schema    *graphql.Schema
	Fragments map[string]*ast.FragmentDefinition
	Variables map[string]graphql.Value

	// Pool, when set, runs every concurrently-resolved field or list
	// element through a bounded concurrent.Executor instead of spawning an
	// unbounded goroutine per call. A nil Pool keeps the unbounded
	// behavior (future.Go).
	Pool *future.Pool

	mu     sync.Mutex
	errors []ResponseError
}

// poolWorkerKey marks a context as already running on ec.Pool. Submitting a
// field's own sub-resolution back onto the same bounded pool from inside a
// pool worker can deadlock: every worker ends up blocked trying to hand off
// a sub-task to a pool that has no free worker left to receive it, since
// the workers that would receive it are themselves blocked the same way.
// goAsync avoids this by bounding only the outermost level of fan-out
// reached while ec.Pool is unclaimed, and falling back to an ordinary
// goroutine for anything nested inside an already-pooled call.
type poolWorkerKey struct{}

// goAsync starts fn the way this operation has been configured to: on
// ec.Pool if one was supplied and ctx isn't already running on it, or as a
// fresh goroutine otherwise. fn receives the context it should pass to any
// further resolution it performs, so nesting is tracked correctly.
func (ec *ExecutionContext) goAsync(ctx context.Context, fn func(context.Context) (interface{}, error)) future.Future {
	if ec.Pool == nil || ctx.Value(poolWorkerKey{}) != nil {
		return future.Go(func() (interface{}, error) { return fn(ctx) })
	}
	pooledCtx := context.WithValue(ctx, poolWorkerKey{}, true)
	return ec.Pool.Go(func() (interface{}, error) { return fn(pooledCtx) })
}

// recordError appends a resolve-time error, tagged with the response path
// at which it occurred. Safe for concurrent use: sibling fields under
// Query resolve on separate goroutines and may fail independently.
func (ec *ExecutionContext) recordError(err error, path []string) {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.errors = append(ec.errors, ResponseError{
		Message: err.Error(),
		Path:    append([]string(nil), path...),
	})
}

// Errors returns every resolve-time error recorded so far, in the order
// they were recorded (which, for concurrently-resolved Query siblings, is
// completion order rather than request order).
func (ec *ExecutionContext) Errors() []ResponseError {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return append([]ResponseError(nil), ec.errors...)
}

func extendPath(path []string, key string) []string {
	next := make([]string, len(path)+1)
	copy(next, path)
	next[len(path)] = key
	return next
}

// isNilValue reports whether raw represents the "no value" case a
// Nullable field's resolver returns. A plain interface{} holding a typed
// nil pointer, slice, or map is not == nil, so callers that return
// (*Foo)(nil) for "no such Foo" still mean null; reflection catches that
// where a naive comparison would not.
func isNilValue(raw interface{}) bool {
	if raw == nil {
		return true
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

func unhandledTypeError(t graphql.Type) error {
	return fmt.Errorf("executor: unhandled output type %T", t)
}
