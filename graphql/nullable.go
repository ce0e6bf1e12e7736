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

// Nullable wraps an inner Type, permitting a resolver to produce an
// explicit absence (a Go nil, including a typed nil pointer, slice or map)
// and absorbing a resolve error from
// below into a Null rather than propagating it further up the response
// tree. This is the only mechanism for tolerating a null in this engine:
// every other Type is non-null by construction.
type Nullable struct {
	of Type
}

var _ Type = (*Nullable)(nil)

// NewNullable wraps innerType in a Nullable.
func NewNullable(innerType Type) *Nullable {
	if innerType == nil {
		panic("graphql: NewNullable requires a non-nil inner type")
	}
	if _, already := innerType.(*Nullable); already {
		panic("graphql: Nullable types cannot be nested")
	}
	return &Nullable{of: innerType}
}

// Kind implements Type.
func (*Nullable) Kind() TypeKind { return NullableKind }

// OfType implements ofType.
func (n *Nullable) OfType() Type { return n.of }

// String implements Type.
func (n *Nullable) String() string {
	return n.of.String()[:len(n.of.String())-1]
}
