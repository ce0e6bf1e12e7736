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

import "fmt"

// TypeKind discriminates the concrete shape of a Type.
//
// Unlike the GraphQL-over-HTTP convention where every type is nullable
// unless wrapped in NonNull, every Type described here is non-null by
// default; Nullable(T) is the wrapper that relaxes that constraint, making
// nullability an explicit opt-in rather than an explicit opt-out.
type TypeKind int

// Enumeration of TypeKind.
const (
	ScalarKind TypeKind = iota
	EnumKind
	ObjectKind
	InterfaceKind
	UnionKind
	ListKind
	NullableKind
	InputObjectKind
)

// Type is implemented by every output type: Scalar, Enum, *Object,
// *Abstract (interface/union), *List and *Nullable.
type Type interface {
	// Kind reports the concrete shape of the type.
	Kind() TypeKind

	// String renders the type using GraphQL type-reference notation, e.g.
	// "String!", "[Int]!", where the "!" suffix marks non-null (the
	// default) and its absence marks a Nullable wrapper.
	String() string
}

// NamedType is implemented by every Type that carries its own name: Scalar,
// Enum, *Object and *Abstract. List and Nullable wrappers are unnamed and
// derive their notation from the wrapped type.
type NamedType interface {
	Type
	Name() string
	Description() string
}

// namedTypeRef renders name with a trailing "!" since every named type is
// non-null unless reached through a Nullable wrapper.
func namedTypeRef(name string) string {
	return fmt.Sprintf("%s!", name)
}

// ofType is implemented by the two wrapper kinds so introspection and the
// executor can unwrap generically without a type switch at every call site.
type ofType interface {
	Type
	OfType() Type
}

var (
	_ ofType = (*List)(nil)
	_ ofType = (*Nullable)(nil)
)

// IsNullable reports whether t is a *Nullable wrapper (i.e. a resolve error
// or an explicit null is tolerated at this position).
func IsNullable(t Type) bool {
	_, ok := t.(*Nullable)
	return ok
}

// NamedOf walks through List/Nullable wrappers and returns the innermost
// NamedType, or nil if none is reachable (which cannot happen for a well
// formed schema).
func NamedOf(t Type) NamedType {
	for {
		if named, ok := t.(NamedType); ok {
			return named
		}
		wrapper, ok := t.(ofType)
		if !ok {
			return nil
		}
		t = wrapper.OfType()
	}
}
