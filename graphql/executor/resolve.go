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

package executor

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jrmdayn/reason-graphql/concurrent/future"
	"github.com/jrmdayn/reason-graphql/graphql"
	"github.com/jrmdayn/reason-graphql/graphql/ast"
	"github.com/jrmdayn/reason-graphql/graphql/internal/coerce"
)

// resolveField coerces f's arguments, invokes its resolver, and resolves
// the result against the field's declared type, returning a Future of the
// final graphql.Value for this one selection.
//
// The Future's error is either *ArgumentError/*ValidationError — which
// always aborts the whole operation regardless of where in the tree it
// occurred — or the unexported resolveAborted sentinel, which null
// bubbling may absorb once it reaches a Nullable wrapper. A nil error
// means success, including the case where a resolve-time failure was
// already absorbed into an explicit Null by a Nullable layer below this
// field's own type.
func resolveField(ctx context.Context, ec *ExecutionContext, selField *ast.Field, fieldDef *graphql.Field, src interface{}, path []string) future.Future {
	args, err := coerce.Arguments(selField.Name, fieldDef.Args, selField.Arguments, ec.Variables)
	if err != nil {
		return future.Done(graphql.Null, &ArgumentError{msg: err.Error()})
	}

	lifted := fieldDef.Invoke(ctx, src, args)

	return ec.goAsync(ctx, func(ctx context.Context) (interface{}, error) {
		raw, liftErr := lifted.Get(ctx)
		if liftErr != nil {
			ec.recordError(liftErr, path)
			if graphql.IsNullable(fieldDef.Type) {
				return graphql.Null, nil
			}
			return graphql.Null, errResolveAborted
		}
		return resolveValue(ctx, ec, path, raw, fieldDef.Type, selField.SelectionSet)
	})
}

// resolveValue recurses through t's structure — Nullable, List, Scalar,
// Enum, Object, Abstract — to turn raw (the Go value a resolver or a
// parent resolveValue call produced) into a response graphql.Value.
func resolveValue(ctx context.Context, ec *ExecutionContext, path []string, raw interface{}, t graphql.Type, selectionSet []ast.Selection) (graphql.Value, error) {
	switch typ := t.(type) {
	case *graphql.Nullable:
		if isNilValue(raw) {
			return graphql.Null, nil
		}
		v, err := resolveValue(ctx, ec, path, raw, typ.OfType(), selectionSet)
		if err != nil {
			if isResolveAborted(err) {
				return graphql.Null, nil
			}
			return graphql.Null, err
		}
		return v, nil

	case *graphql.List:
		return resolveList(ctx, ec, path, raw, typ, selectionSet)

	case *graphql.Scalar:
		v, err := typ.Serialize(raw)
		if err != nil {
			ec.recordError(err, path)
			return graphql.Null, errResolveAborted
		}
		return v, nil

	case *graphql.Enum:
		ev, ok := typ.Lookup(raw)
		if !ok {
			ec.recordError(graphql.Errorf("value %v is not a member of enum `%s`", raw, typ.Name()), path)
			return graphql.Null, errResolveAborted
		}
		return graphql.EnumVal(ev.Name), nil

	case *graphql.Object:
		fields, err := CollectFields(ec.Fragments, typ, selectionSet)
		if err != nil {
			return graphql.Null, &ArgumentError{msg: err.Error()}
		}
		return resolveObjectFields(ctx, ec, typ, raw, fields, path, false)

	case *graphql.Abstract:
		return resolveAbstractValue(ctx, ec, path, raw, typ, selectionSet)

	default:
		return graphql.Null, unhandledTypeError(t)
	}
}

// resolveList resolves every element of a slice-typed raw value against
// the list's element type, preserving index order in the successful
// result. When more than one element fails, the error reported first in
// time (not the lowest index) is returned.
func resolveList(ctx context.Context, ec *ExecutionContext, path []string, raw interface{}, listType *graphql.List, selectionSet []ast.Selection) (graphql.Value, error) {
	if isNilValue(raw) {
		ec.recordError(graphql.Errorf("list field received a nil value"), path)
		return graphql.Null, errResolveAborted
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		ec.recordError(graphql.Errorf("expected a slice for a List field, got %T", raw), path)
		return graphql.Null, errResolveAborted
	}

	n := rv.Len()
	futures := make([]future.Future, n)
	for i := 0; i < n; i++ {
		elem := rv.Index(i).Interface()
		elemPath := path // element errors report the list field's own path; no per-index path segment is added since the AST carries no index selection.
		futures[i] = ec.goAsync(ctx, func(ctx context.Context) (interface{}, error) {
			return resolveValue(ctx, ec, elemPath, elem, listType.OfType(), selectionSet)
		})
	}

	raw, err := future.All(ctx, futures).Get(ctx)
	if err != nil {
		return graphql.Null, err
	}
	results := raw.([]interface{})
	values := make([]graphql.Value, n)
	for i, v := range results {
		values[i] = v.(graphql.Value)
	}
	return graphql.ListVal(values...), nil
}

// resolveAbstractValue destructures the graphql.AbstractValue a resolver
// returned for an interface/union-typed field and recurses into the
// concrete object type it names.
func resolveAbstractValue(ctx context.Context, ec *ExecutionContext, path []string, raw interface{}, abstractType *graphql.Abstract, selectionSet []ast.Selection) (graphql.Value, error) {
	if isNilValue(raw) {
		ec.recordError(graphql.Errorf("abstract-typed field received a nil value"), path)
		return graphql.Null, errResolveAborted
	}
	av, ok := raw.(graphql.AbstractValue)
	if !ok {
		ec.recordError(graphql.Errorf("resolver for abstract type `%s` must return a graphql.AbstractValue", abstractType.Name()), path)
		return graphql.Null, errResolveAborted
	}
	if !av.Type.Implements(abstractType) {
		ec.recordError(graphql.Errorf("type `%s` does not implement `%s`", av.Type.Name(), abstractType.Name()), path)
		return graphql.Null, errResolveAborted
	}
	return resolveValue(ctx, ec, path, av.Value, av.Type, selectionSet)
}

// resolveObjectFields resolves every selected field of objType against
// src, either concurrently (Query, and every nested object regardless of
// the root operation) or strictly sequentially left-to-right
// (sequential=true, used only for the top-level fields of a Mutation).
func resolveObjectFields(ctx context.Context, ec *ExecutionContext, objType *graphql.Object, src interface{}, fields []*ast.Field, path []string, sequential bool) (graphql.Value, error) {
	entries := make([]graphql.MapEntry, len(fields))
	futures := make([]future.Future, len(fields))

	for i, selField := range fields {
		responseKey := selField.ResponseKey()
		fieldDef, ok := objType.FieldByName(selField.Name)
		if !ok {
			return graphql.Null, &ValidationError{msg: fmt.Sprintf("Field `%s` is not defined on type `%s`", selField.Name, objType.Name())}
		}

		fieldPath := extendPath(path, responseKey)
		fut := resolveField(ctx, ec, selField, fieldDef, src, fieldPath)

		if sequential {
			v, err := fut.Get(ctx)
			if err != nil {
				return graphql.Null, err
			}
			entries[i] = graphql.MapEntry{Key: responseKey, Value: v.(graphql.Value)}
			continue
		}

		futures[i] = fut
	}

	if sequential {
		return graphql.Map(entries...), nil
	}

	raw, err := future.All(ctx, futures).Get(ctx)
	if err != nil {
		return graphql.Null, err
	}
	for i, v := range raw.([]interface{}) {
		entries[i] = graphql.MapEntry{Key: fields[i].ResponseKey(), Value: v.(graphql.Value)}
	}
	return graphql.Map(entries...), nil
}
