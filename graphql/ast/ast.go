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

// Package ast describes the shape of a parsed GraphQL document.
//
// This package intentionally contains no lexer or parser: it only fixes the
// contract between whatever produces a document (a hand-rolled literal in a
// test, or a real GraphQL parser wired in by the host application) and the
// execution engine in package executor that consumes it. Only the subset of
// the language the executor actually walks is modeled here.
package ast

// Document is the root of a parsed GraphQL request. It contains an ordered
// list of operation and fragment definitions.
type Document struct {
	Definitions []Definition
}

// Definition is implemented by OperationDefinition and FragmentDefinition.
type Definition interface {
	isDefinition()
}

// OperationType distinguishes query, mutation and subscription operations.
type OperationType string

// Enumeration of OperationType.
const (
	OperationTypeQuery        OperationType = "query"
	OperationTypeMutation     OperationType = "mutation"
	OperationTypeSubscription OperationType = "subscription"
)

// OperationDefinition represents a query, mutation or subscription.
type OperationDefinition struct {
	Type OperationType

	// Name is empty for an anonymous operation (including query shorthand).
	Name string

	VariableDefinitions []VariableDefinition
	SelectionSet        []Selection
}

func (*OperationDefinition) isDefinition() {}

// VariableDefinition declares a variable accepted by an operation along with
// an optional default value used when the caller omits it.
type VariableDefinition struct {
	Name         string
	DefaultValue Value
	HasDefault   bool
}

// FragmentDefinition is a named, reusable selection set restricted to a type
// condition.
type FragmentDefinition struct {
	Name          string
	TypeCondition string
	SelectionSet  []Selection
}

func (*FragmentDefinition) isDefinition() {}

// Selection is implemented by Field, FragmentSpread and InlineFragment.
type Selection interface {
	isSelection()
}

// Argument is a single name/value pair supplied to a field.
type Argument struct {
	Name  string
	Value Value
}

// Field is a single requested field, possibly aliased and possibly carrying
// its own nested selection set.
type Field struct {
	Alias        string
	Name         string
	Arguments    []Argument
	SelectionSet []Selection
}

func (*Field) isSelection() {}

// ResponseKey is the key this field occupies in the response map: the alias
// if one was given, otherwise the field name.
func (f *Field) ResponseKey() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// FragmentSpread references a fragment defined elsewhere in the document by
// name.
type FragmentSpread struct {
	Name string
}

func (*FragmentSpread) isSelection() {}

// InlineFragment is an unnamed fragment embedded directly in a selection
// set, optionally restricted to a type condition.
type InlineFragment struct {
	TypeCondition string // empty when absent
	SelectionSet  []Selection
}

func (*InlineFragment) isSelection() {}
