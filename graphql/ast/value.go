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

package ast

// Value is the literal value language used inside a query: it extends the
// constant value model with a Variable case so arguments can reference
// operation variables.
type Value interface {
	isValue()
}

// NullValue is the literal `null`.
type NullValue struct{}

func (NullValue) isValue() {}

// IntValue is an integer literal.
type IntValue struct {
	Value int64
}

func (IntValue) isValue() {}

// FloatValue is a floating point literal.
type FloatValue struct {
	Value float64
}

func (FloatValue) isValue() {}

// StringValue is a string literal.
type StringValue struct {
	Value string
}

func (StringValue) isValue() {}

// BooleanValue is a boolean literal.
type BooleanValue struct {
	Value bool
}

func (BooleanValue) isValue() {}

// EnumValue is a bare name literal such as `NEW_HOPE`.
type EnumValue struct {
	Value string
}

func (EnumValue) isValue() {}

// ListValue is a `[...]` literal.
type ListValue struct {
	Values []Value
}

func (ListValue) isValue() {}

// ObjectField is a single `name: value` pair inside an ObjectValue literal.
type ObjectField struct {
	Name  string
	Value Value
}

// ObjectValue is a `{ ... }` literal, with fields preserved in source order.
type ObjectValue struct {
	Fields []ObjectField
}

func (ObjectValue) isValue() {}

// Variable is a `$name` reference, resolved against the operation's
// variable map at argument-evaluation time.
type Variable struct {
	Name string
}

func (Variable) isValue() {}
