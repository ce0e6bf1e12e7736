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
	"fmt"

	"github.com/jrmdayn/reason-graphql/graphql"
	"github.com/jrmdayn/reason-graphql/graphql/ast"
)

// CollectFields flattens selectionSet against objType, inlining fragment
// spreads and inline fragments whose type condition matches, and
// preserving encounter order.
//
// An inline fragment's type condition is enforced with the same rule as
// a named fragment spread's: leaving it unchecked would let a query
// select fields through an inline fragment naming an unrelated type.
func CollectFields(fragments map[string]*ast.FragmentDefinition, objType *graphql.Object, selectionSet []ast.Selection) ([]*ast.Field, error) {
	var fields []*ast.Field

	for _, sel := range selectionSet {
		switch s := sel.(type) {
		case *ast.Field:
			fields = append(fields, s)

		case *ast.FragmentSpread:
			frag, ok := fragments[s.Name]
			if !ok {
				return nil, fmt.Errorf("Fragment `%s` is not defined", s.Name)
			}
			if !typeConditionMatches(frag.TypeCondition, objType) {
				continue
			}
			nested, err := CollectFields(fragments, objType, frag.SelectionSet)
			if err != nil {
				return nil, err
			}
			fields = append(fields, nested...)

		case *ast.InlineFragment:
			if s.TypeCondition != "" && !typeConditionMatches(s.TypeCondition, objType) {
				continue
			}
			nested, err := CollectFields(fragments, objType, s.SelectionSet)
			if err != nil {
				return nil, err
			}
			fields = append(fields, nested...)
		}
	}

	return fields, nil
}

// typeConditionMatches reports whether a fragment restricted to
// typeCondition applies to objType: either it names objType directly, or
// it names an interface/union objType was registered into.
func typeConditionMatches(typeCondition string, objType *graphql.Object) bool {
	if typeCondition == objType.Name() {
		return true
	}
	for _, abstract := range objType.Abstracts() {
		if abstract.Name() == typeCondition {
			return true
		}
	}
	return false
}
