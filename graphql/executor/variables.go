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
	"github.com/jrmdayn/reason-graphql/graphql"
	"github.com/jrmdayn/reason-graphql/graphql/ast"
)

// buildVariableMap merges the caller-supplied variable values with the
// operation's own declared defaults: a declared variable missing from
// external falls back to its VariableDefinition.DefaultValue, if any.
// External values always win over a default, and a value supplied for a
// variable the operation never declared is passed through unchanged (it
// simply goes unused by argument coercion, which only ever looks up
// variables by the names an ast.Variable references).
func buildVariableMap(op *ast.OperationDefinition, external map[string]graphql.Value) map[string]graphql.Value {
	result := make(map[string]graphql.Value, len(op.VariableDefinitions)+len(external))
	for k, v := range external {
		result[k] = v
	}
	for _, def := range op.VariableDefinitions {
		if _, ok := result[def.Name]; ok {
			continue
		}
		if def.HasDefault {
			result[def.Name] = literalToValue(def.DefaultValue)
		}
	}
	return result
}

// literalToValue converts a constant ast.Value (as found in a variable
// definition's default, which the GraphQL language forbids from itself
// referencing a variable) into a graphql.Value. An ast.Variable reaching
// here would be a malformed document; it is treated as null rather than
// panicking, since this package never validates documents separately from
// executing them.
func literalToValue(v ast.Value) graphql.Value {
	switch val := v.(type) {
	case nil, ast.NullValue:
		return graphql.Null
	case ast.IntValue:
		return graphql.Int(val.Value)
	case ast.FloatValue:
		return graphql.Float(val.Value)
	case ast.StringValue:
		return graphql.String(val.Value)
	case ast.BooleanValue:
		return graphql.Boolean(val.Value)
	case ast.EnumValue:
		return graphql.EnumVal(val.Value)
	case ast.ListValue:
		elems := make([]graphql.Value, len(val.Values))
		for i, e := range val.Values {
			elems[i] = literalToValue(e)
		}
		return graphql.ListVal(elems...)
	case ast.ObjectValue:
		entries := make([]graphql.MapEntry, len(val.Fields))
		for i, f := range val.Fields {
			entries[i] = graphql.MapEntry{Key: f.Name, Value: literalToValue(f.Value)}
		}
		return graphql.Map(entries...)
	default:
		return graphql.Null
	}
}
