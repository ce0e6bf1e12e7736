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

	"github.com/jrmdayn/reason-graphql/concurrent"
	"github.com/jrmdayn/reason-graphql/concurrent/future"
	"github.com/jrmdayn/reason-graphql/graphql"
	"github.com/jrmdayn/reason-graphql/graphql/ast"
	"github.com/jrmdayn/reason-graphql/graphql/introspection"
)

// Params bundles everything Execute needs to run one operation out of a
// parsed document: the schema to run it against, the document itself, the
// external variable values a transport layer decoded off the request, and
// the operation to pick when the document declares more than one.
type Params struct {
	Schema         *graphql.Schema
	Document       *ast.Document
	VariableValues map[string]graphql.Value
	OperationName  string

	// Context carries the caller's deadline/cancellation and request-scoped
	// values down to every resolver. A nil Context is treated as
	// context.Background().
	Context context.Context

	// Executor, when set, bounds how many resolvers and list elements run
	// concurrently for this operation; see concurrent.WorkerPoolExecutor.
	// A nil Executor keeps the default of one goroutine per concurrent
	// resolver call.
	Executor concurrent.Executor
}

// operationSelectionError is the error kind for every failure that occurs
// before a single field resolves: an absent, ambiguous or unconfigured
// operation. Like ArgumentError/ValidationError it always yields
// {"data": null}, never partial data.
type operationSelectionError struct{ msg string }

func (e *operationSelectionError) Error() string { return e.msg }

var (
	errNoOperationFound = &operationSelectionError{
		msg: "No operation found in this document.",
	}
	errOperationNameRequired = &operationSelectionError{
		msg: "Must provide an operation name if the document contains multiple operations.",
	}
	errMutationsNotConfigured = &operationSelectionError{
		msg: "Schema is not configured for mutations.",
	}
	errSubscriptionsNotConfigured = &operationSelectionError{
		msg: "Schema is not configured for subscriptions.",
	}
)

func errOperationNotFound(name string) error {
	return &operationSelectionError{msg: "Unknown operation named `" + name + "`."}
}

// partition splits a document's definitions into its operations (in
// document order) and its fragments, keyed by name.
func partition(doc *ast.Document) ([]*ast.OperationDefinition, map[string]*ast.FragmentDefinition) {
	fragments := make(map[string]*ast.FragmentDefinition)
	var operations []*ast.OperationDefinition
	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case *ast.OperationDefinition:
			operations = append(operations, d)
		case *ast.FragmentDefinition:
			fragments[d.Name] = d
		}
	}
	return operations, fragments
}

// selectOperation picks the operation Execute will run. A document with a
// single operation runs it regardless of name; a document with more than
// one requires operationName to disambiguate — guessing (say, by always
// taking the first) would silently run the wrong operation.
func selectOperation(operations []*ast.OperationDefinition, operationName string) (*ast.OperationDefinition, error) {
	if len(operations) == 0 {
		return nil, errNoOperationFound
	}
	if operationName == "" {
		if len(operations) > 1 {
			return nil, errOperationNameRequired
		}
		return operations[0], nil
	}
	for _, op := range operations {
		if op.Name == operationName {
			return op, nil
		}
	}
	return nil, errOperationNotFound(operationName)
}

// Execute runs one operation from params.Document against params.Schema
// and returns the response as a graphql.Value shaped `{data: ..., errors:
// ...}`. It never returns a Go error itself: every failure mode (operation
// selection, argument coercion, field validation, resolve-time errors) is
// represented inside the returned Value.
func Execute(params Params) graphql.Value {
	ctx := params.Context
	if ctx == nil {
		ctx = context.Background()
	}

	operations, fragments := partition(params.Document)
	op, err := selectOperation(operations, params.OperationName)
	if err != nil {
		return rootError(err)
	}

	schema := introspection.Install(params.Schema)

	var rootType *graphql.Object
	sequential := false
	switch op.Type {
	case ast.OperationTypeQuery:
		rootType = schema.QueryType()
	case ast.OperationTypeMutation:
		rootType = schema.MutationType()
		if rootType == nil {
			return rootError(errMutationsNotConfigured)
		}
		sequential = true
	case ast.OperationTypeSubscription:
		return rootError(errSubscriptionsNotConfigured)
	default:
		return rootError(graphql.Errorf("executor: unrecognized operation type %q", op.Type))
	}

	ec := &ExecutionContext{
		Schema:    schema,
		Fragments: fragments,
		Variables: buildVariableMap(op, params.VariableValues),
	}
	if params.Executor != nil {
		ec.Pool = future.NewPool(params.Executor)
	}

	fields, err := CollectFields(fragments, rootType, op.SelectionSet)
	if err != nil {
		return rootError(&ArgumentError{msg: err.Error()})
	}

	value, err := resolveObjectFields(ctx, ec, rootType, nil, fields, nil, sequential)
	return finalize(ec, value, err)
}

// rootError builds a response for a failure that happens before any field
// resolves, so there is no ExecutionContext (and hence no accumulated
// resolve errors) to consult yet.
func rootError(err error) graphql.Value {
	return graphql.Map(
		graphql.MapEntry{Key: "data", Value: graphql.Null},
		graphql.MapEntry{Key: "errors", Value: graphql.ListVal(responseErrorValue(ResponseError{Message: err.Error()}))},
	)
}

// finalize assembles the final response Value from the root selection's
// outcome. err, when non-nil, is either an *ArgumentError/*ValidationError
// — never recorded on ec, since those always abort the whole operation
// rather than bubbling through null-absorption — or the resolveAborted
// sentinel, whose real message was already recorded on ec at the point a
// non-nullable field's resolve failed.
func finalize(ec *ExecutionContext, data graphql.Value, err error) graphql.Value {
	errs := ec.Errors()
	if err != nil {
		data = graphql.Null
		if !isResolveAborted(err) {
			errs = append(errs, ResponseError{Message: err.Error()})
		}
	}

	entries := []graphql.MapEntry{{Key: "data", Value: data}}
	if len(errs) > 0 {
		vals := make([]graphql.Value, len(errs))
		for i, e := range errs {
			vals[i] = responseErrorValue(e)
		}
		entries = append(entries, graphql.MapEntry{Key: "errors", Value: graphql.ListVal(vals...)})
	}
	return graphql.Map(entries...)
}

// responseErrorValue renders one ResponseError as its {"message": ...,
// "path": [...]} response entry.
func responseErrorValue(e ResponseError) graphql.Value {
	path := make([]graphql.Value, len(e.Path))
	for i, p := range e.Path {
		path[i] = graphql.String(p)
	}
	return graphql.Map(
		graphql.MapEntry{Key: "message", Value: graphql.String(e.Message)},
		graphql.MapEntry{Key: "path", Value: graphql.ListVal(path...)},
	)
}
