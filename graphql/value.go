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
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the case a Value currently holds.
type Kind int

// Enumeration of Kind.
const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
	KindBoolean
	KindEnum
	KindList
	KindMap
)

// String implements fmt.Stringer for debugging output.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBoolean:
		return "Boolean"
	case KindEnum:
		return "Enum"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	default:
		return "Unknown"
	}
}

// MapEntry is a single key/value pair of a Map value. Map preserves
// insertion order so that a response's shape mirrors the order fields were
// requested in.
type MapEntry struct {
	Key   string
	Value Value
}

// Value is the canonical representation of a GraphQL response value: a
// tagged union of Null, Int, Float, String, Boolean, Enum, List and Map.
//
// Value is immutable once constructed; all constructors return values, not
// pointers, so a Value can be freely copied and compared field-by-field.
type Value struct {
	kind    Kind
	intVal  int64
	fltVal  float64
	strVal  string
	boolVal bool
	list    []Value
	entries []MapEntry
}

// Null is the Value representing JSON/GraphQL `null`.
var Null = Value{kind: KindNull}

// Int wraps an int64 as a Value.
func Int(v int64) Value { return Value{kind: KindInt, intVal: v} }

// Float wraps a float64 as a Value.
func Float(v float64) Value { return Value{kind: KindFloat, fltVal: v} }

// String wraps a string as a Value.
func String(v string) Value { return Value{kind: KindString, strVal: v} }

// Boolean wraps a bool as a Value.
func Boolean(v bool) Value { return Value{kind: KindBoolean, boolVal: v} }

// EnumVal wraps an already-serialized enum value name as a Value.
func EnumVal(name string) Value { return Value{kind: KindEnum, strVal: name} }

// ListVal builds a List Value from its elements, preserving order.
func ListVal(elems ...Value) Value { return Value{kind: KindList, list: elems} }

// Map builds a Map Value from ordered entries. Entries are not deduplicated
// or reordered: callers are responsible for insertion order matching the
// requested selection order.
func Map(entries ...MapEntry) Value { return Value{kind: KindMap, entries: entries} }

// Kind reports which case the Value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int returns the wrapped int64. It panics if v is not an Int.
func (v Value) Int() int64 {
	if v.kind != KindInt {
		panic(fmt.Sprintf("graphql: Value.Int called on a %s value", v.kind))
	}
	return v.intVal
}

// Float returns the wrapped float64. It panics if v is not a Float.
func (v Value) Float() float64 {
	if v.kind != KindFloat {
		panic(fmt.Sprintf("graphql: Value.Float called on a %s value", v.kind))
	}
	return v.fltVal
}

// Str returns the wrapped string for String or Enum values. It panics
// otherwise.
func (v Value) Str() string {
	if v.kind != KindString && v.kind != KindEnum {
		panic(fmt.Sprintf("graphql: Value.Str called on a %s value", v.kind))
	}
	return v.strVal
}

// Bool returns the wrapped bool. It panics if v is not a Boolean.
func (v Value) Bool() bool {
	if v.kind != KindBoolean {
		panic(fmt.Sprintf("graphql: Value.Bool called on a %s value", v.kind))
	}
	return v.boolVal
}

// Elems returns the elements of a List value, or nil otherwise.
func (v Value) Elems() []Value {
	if v.kind != KindList {
		return nil
	}
	return v.list
}

// Entries returns the ordered entries of a Map value, or nil otherwise.
func (v Value) Entries() []MapEntry {
	if v.kind != KindMap {
		return nil
	}
	return v.entries
}

// Field looks up an entry by key in a Map value. The second return value is
// false when v is not a Map or the key is absent.
func (v Value) Field(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	for _, e := range v.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Equal reports deep, order-sensitive equality between two Values.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindInt:
		return a.intVal == b.intVal
	case KindFloat:
		return a.fltVal == b.fltVal
	case KindString, KindEnum:
		return a.strVal == b.strVal
	case KindBoolean:
		return a.boolVal == b.boolVal
	case KindList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.entries) != len(b.entries) {
			return false
		}
		for i := range a.entries {
			if a.entries[i].Key != b.entries[i].Key || !Equal(a.entries[i].Value, b.entries[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// Inspect renders v as a compact, JSON-like string. It exists for error
// messages and test failure output, not as a substitute for a real
// serializer: response serialization is a host-application concern.
func Inspect(v Value) string {
	var b strings.Builder
	inspect(&b, v)
	return b.String()
}

func inspect(b *strings.Builder, v Value) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindInt:
		b.WriteString(strconv.FormatInt(v.intVal, 10))
	case KindFloat:
		b.WriteString(strconv.FormatFloat(v.fltVal, 'g', -1, 64))
	case KindString:
		b.WriteString(strconv.Quote(v.strVal))
	case KindEnum:
		b.WriteString(v.strVal)
	case KindBoolean:
		if v.boolVal {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindList:
		b.WriteByte('[')
		for i, e := range v.list {
			if i > 0 {
				b.WriteString(", ")
			}
			inspect(b, e)
		}
		b.WriteByte(']')
	case KindMap:
		b.WriteByte('{')
		for i, e := range v.entries {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.Key)
			b.WriteString(": ")
			inspect(b, e.Value)
		}
		b.WriteByte('}')
	}
}
