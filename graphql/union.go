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

// UnionConfig configures a new union Abstract type. A union declares no
// fields of its own; every selection on a union-typed field must come from
// an inline fragment or fragment spread with a type condition.
type UnionConfig struct {
	Name        string
	Description string
}

// NewUnion defines a new union type. Member objects are attached with
// AddType.
func NewUnion(config UnionConfig) *Abstract {
	if config.Name == "" {
		panic("graphql: NewUnion requires a Name")
	}
	return &Abstract{
		name:        config.Name,
		description: config.Description,
		kind:        UnionAbstract,
	}
}
