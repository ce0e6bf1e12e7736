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

// List wraps an element Type. A resolver for a List-typed field returns a
// Go slice; each element is resolved independently against the element
// type, preserving index order in both directions.
type List struct {
	of Type
}

var _ Type = (*List)(nil)

// NewList wraps elementType in a List.
func NewList(elementType Type) *List {
	if elementType == nil {
		panic("graphql: NewList requires a non-nil element type")
	}
	return &List{of: elementType}
}

// Kind implements Type.
func (*List) Kind() TypeKind { return ListKind }

// OfType implements ofType.
func (l *List) OfType() Type { return l.of }

// String implements Type.
func (l *List) String() string {
	return fmt.Sprintf("[%s]!", l.of.String())
}
