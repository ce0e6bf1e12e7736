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

package graphql

import (
	"context"

	"github.com/jrmdayn/reason-graphql/concurrent/future"
)

// Resolver produces a field's raw Go value from the source value it is
// attached to and its coerced arguments. Per-request state — deadlines,
// cancellation, request-scoped values — travels through the
// context.Context rather than through a type parameter on the schema.
type Resolver func(ctx context.Context, source interface{}, args Args) (interface{}, error)

// AsyncResolver is the asynchronous counterpart of Resolver: it returns a
// future.Future that eventually yields the field's raw Go value. Field.lift
// unifies the two by wrapping a Resolver's immediate result in an
// already-complete future.
type AsyncResolver func(ctx context.Context, source interface{}, args Args) future.Future

// Field describes one field of an Object or Interface.
type Field struct {
	Name        string
	Description string

	// Type is the declared output type of the field's value.
	Type Type

	// Args lists the field's accepted arguments, evaluated by the argument
	// evaluator (package internal/coerce) before Resolve/AsyncResolve runs.
	Args ArgList

	resolve      Resolver
	asyncResolve AsyncResolver

	// Deprecated, when non-empty, is surfaced by introspection as
	// isDeprecated=true with this string as deprecationReason.
	Deprecated string
}

// lift invokes whichever of Resolve/AsyncResolve was supplied and returns a
// future.Future uniformly, regardless of whether the field is synchronous.
func (f *Field) lift(ctx context.Context, source interface{}, args Args) future.Future {
	if f.asyncResolve != nil {
		return f.asyncResolve(ctx, source, args)
	}
	return future.Done(f.resolve(ctx, source, args))
}

// FieldConfig configures a synchronous Field via NewField.
type FieldConfig struct {
	Name        string
	Description string
	Type        Type
	Args        ArgList
	Resolve     Resolver
	Deprecated  string
}

// NewField defines a field whose resolver completes synchronously.
func NewField(config FieldConfig) Field {
	if config.Name == "" {
		panic("graphql: NewField requires a Name")
	}
	if config.Type == nil {
		panic("graphql: NewField requires a Type")
	}
	if config.Resolve == nil {
		panic("graphql: NewField requires Resolve")
	}
	return Field{
		Name:        config.Name,
		Description: config.Description,
		Type:        config.Type,
		Args:        config.Args,
		resolve:     config.Resolve,
		Deprecated:  config.Deprecated,
	}
}

// AsyncFieldConfig configures an asynchronous Field via NewAsyncField.
type AsyncFieldConfig struct {
	Name        string
	Description string
	Type        Type
	Args        ArgList
	Resolve     AsyncResolver
	Deprecated  string
}

// NewAsyncField defines a field whose resolver returns a future.Future,
// suspending resolution of this field's own selection set until it
// completes.
func NewAsyncField(config AsyncFieldConfig) Field {
	if config.Name == "" {
		panic("graphql: NewAsyncField requires a Name")
	}
	if config.Type == nil {
		panic("graphql: NewAsyncField requires a Type")
	}
	if config.Resolve == nil {
		panic("graphql: NewAsyncField requires Resolve")
	}
	return Field{
		Name:         config.Name,
		Description:  config.Description,
		Type:         config.Type,
		Args:         config.Args,
		asyncResolve: config.Resolve,
		Deprecated:   config.Deprecated,
	}
}

// IsDeprecated reports whether the field was tagged with a deprecation
// reason.
func (f *Field) IsDeprecated() bool { return f.Deprecated != "" }

// Invoke exposes f.lift to the executor package. It is not meant to be
// called by schema authors.
func (f *Field) Invoke(ctx context.Context, source interface{}, args Args) future.Future {
	return f.lift(ctx, source, args)
}
