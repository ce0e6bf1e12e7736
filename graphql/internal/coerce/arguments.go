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

// Package coerce implements argument evaluation: turning the raw
// name/literal pairs a query supplies for a field's arguments into the
// graphql.Args a resolver receives, substituting variables and applying
// defaults along the way.
//
// It is internal because the coercion rules (how a Nullable absorbs a
// missing argument, how a bare scalar literal promotes to a singleton
// list, the exact wording of the resulting error) are part of the
// engine's contract with itself, not something a schema author tunes.
package coerce

import (
	"fmt"
	"strings"

	"github.com/jrmdayn/reason-graphql/graphql"
	"github.com/jrmdayn/reason-graphql/graphql/ast"
)

// Arguments evaluates argList against the raw arguments a query supplied
// for fieldName, substituting variables and applying defaults, and
// returns the coerced result as graphql.Args ready to hand to a resolver.
func Arguments(fieldName string, argList graphql.ArgList, rawArgs []ast.Argument, variables map[string]graphql.Value) (graphql.Args, error) {
	values := make(map[string]interface{}, len(argList))

	for _, def := range argList {
		raw, found := lookupArgument(rawArgs, def.Name)

		// An omitted argument takes its declared default outright, before any
		// coercion runs: the default is already a Go value, and skipping
		// coercion is what lets a DefaultArg carry a non-Nullable type. An
		// explicit null is different — it coerces (to absent, for a Nullable)
		// and deliberately does NOT fall back to the default.
		if !found && def.HasDefault {
			values[def.Name] = def.Default
			continue
		}

		coerced, present, err := coerceArgValue(fieldName, def.Name, def.Type, raw, found, variables)
		if err != nil {
			return graphql.Args{}, err
		}
		if present {
			values[def.Name] = coerced
		}
	}

	return graphql.NewArgs(values), nil
}

func lookupArgument(rawArgs []ast.Argument, name string) (ast.Value, bool) {
	for _, a := range rawArgs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return nil, false
}

// coerceArgValue is the recursive heart of the evaluator. It is reused
// for top-level arguments, list elements and input-object fields alike:
// in every case we have a target ArgType, a possibly-absent ast.Value,
// and a variable map to resolve any ast.Variable encountered along the
// way.
//
// present is false exactly when the argument is legitimately absent (the
// type is Nullable and the value was missing or explicit null); in that
// case value is nil and the caller leaves the key unset.
func coerceArgValue(fieldName, argName string, t *graphql.ArgType, v ast.Value, found bool, variables map[string]graphql.Value) (value interface{}, present bool, err error) {
	if found {
		if variable, ok := v.(ast.Variable); ok {
			resolved, ok := variables[variable.Name]
			if !ok {
				return nil, false, graphql.Errorf("Missing variable `%s`", variable.Name)
			}
			return coerceArgValue(fieldName, argName, t, valueToAstValue(resolved), true, variables)
		}
	}

	isNull := !found || isNullLiteral(v)

	if t.Kind() == graphql.ArgNullableKind {
		if isNull {
			return nil, false, nil
		}
		return coerceArgValue(fieldName, argName, t.OfType(), v, found, variables)
	}

	if isNull {
		return nil, false, argumentError(fieldName, argName, t, found, v)
	}

	switch t.Kind() {
	case graphql.ArgScalarKind:
		parsed, err := t.Parse(v)
		if err != nil {
			return nil, false, argumentError(fieldName, argName, t, found, v)
		}
		return parsed, true, nil

	case graphql.ArgEnumKind:
		name, ok := enumLiteralName(v)
		if !ok {
			return nil, false, argumentError(fieldName, argName, t, found, v)
		}
		for _, ev := range t.Values() {
			if ev.Name == name {
				return ev.Value, true, nil
			}
		}
		return nil, false, argumentError(fieldName, argName, t, found, v)

	case graphql.ArgInputObjectKind:
		obj, ok := v.(ast.ObjectValue)
		if !ok {
			return nil, false, argumentError(fieldName, argName, t, found, v)
		}
		fields := make(map[string]interface{}, len(t.Fields()))
		for _, fieldDef := range t.Fields() {
			fieldRaw, fieldFound := lookupObjectField(obj, fieldDef.Name)
			if !fieldFound && fieldDef.HasDefault {
				fields[fieldDef.Name] = fieldDef.Default
				continue
			}
			coerced, present, err := coerceArgValue(fieldName, fieldDef.Name, fieldDef.Type, fieldRaw, fieldFound, variables)
			if err != nil {
				return nil, false, err
			}
			if present {
				fields[fieldDef.Name] = coerced
			}
		}
		constructed, err := t.Construct(fields)
		if err != nil {
			return nil, false, graphql.NewError(err.Error())
		}
		return constructed, true, nil

	case graphql.ArgListKind:
		list, ok := v.(ast.ListValue)
		if !ok {
			// A bare value coerces to a singleton list.
			coerced, present, err := coerceArgValue(fieldName, argName, t.OfType(), v, found, variables)
			if err != nil {
				return nil, false, err
			}
			if !present {
				return []interface{}{nil}, true, nil
			}
			return []interface{}{coerced}, true, nil
		}
		elems := make([]interface{}, len(list.Values))
		for i, elemValue := range list.Values {
			coerced, present, err := coerceArgValue(fieldName, argName, t.OfType(), elemValue, true, variables)
			if err != nil {
				return nil, false, err
			}
			if !present {
				elems[i] = nil
				continue
			}
			elems[i] = coerced
		}
		return elems, true, nil
	}

	return nil, false, fmt.Errorf("coerce: unhandled argument type kind %d", t.Kind())
}

func lookupObjectField(obj ast.ObjectValue, name string) (ast.Value, bool) {
	for _, f := range obj.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

func isNullLiteral(v ast.Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(ast.NullValue)
	return ok
}

func enumLiteralName(v ast.Value) (string, bool) {
	switch val := v.(type) {
	case ast.EnumValue:
		return val.Value, true
	case ast.StringValue:
		return val.Value, true
	default:
		return "", false
	}
}

// argumentError builds the argument-coercion error message: the
// field/argument names, the expected type in GraphQL type-reference
// notation, and a terse description of what was found instead.
func argumentError(fieldName, argName string, t *graphql.ArgType, found bool, v ast.Value) error {
	return graphql.Errorf(
		"Argument `%s` of type `%s` expected on field `%s`, %s.",
		argName, t.String(), fieldName, describeFound(found, v),
	)
}

func describeFound(found bool, v ast.Value) string {
	if !found {
		return "but not provided"
	}
	if isNullLiteral(v) {
		return "found null"
	}
	return fmt.Sprintf("found %s", inspectASTValue(v))
}

// inspectASTValue renders an ast.Value for error messages only; it is not
// a serializer and makes no claim to round-trip.
func inspectASTValue(v ast.Value) string {
	switch val := v.(type) {
	case ast.NullValue:
		return "null"
	case ast.IntValue:
		return fmt.Sprintf("%d", val.Value)
	case ast.FloatValue:
		return fmt.Sprintf("%g", val.Value)
	case ast.StringValue:
		return fmt.Sprintf("%q", val.Value)
	case ast.BooleanValue:
		return fmt.Sprintf("%t", val.Value)
	case ast.EnumValue:
		return val.Value
	case ast.Variable:
		return fmt.Sprintf("$%s", val.Name)
	case ast.ListValue:
		parts := make([]string, len(val.Values))
		for i, e := range val.Values {
			parts[i] = inspectASTValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ast.ObjectValue:
		parts := make([]string, len(val.Fields))
		for i, f := range val.Fields {
			parts[i] = f.Name + ": " + inspectASTValue(f.Value)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "value"
	}
}

// valueToAstValue converts an already-resolved graphql.Value (typically
// sourced from the operation's variable map) into the equivalent literal
// ast.Value, so a single recursive coercion routine can treat a
// substituted variable exactly like a query literal. The conversion never
// produces an ast.Variable: a resolved Value is a constant by
// construction.
func valueToAstValue(v graphql.Value) ast.Value {
	switch v.Kind() {
	case graphql.KindNull:
		return ast.NullValue{}
	case graphql.KindInt:
		return ast.IntValue{Value: v.Int()}
	case graphql.KindFloat:
		return ast.FloatValue{Value: v.Float()}
	case graphql.KindString:
		return ast.StringValue{Value: v.Str()}
	case graphql.KindBoolean:
		return ast.BooleanValue{Value: v.Bool()}
	case graphql.KindEnum:
		return ast.EnumValue{Value: v.Str()}
	case graphql.KindList:
		elems := v.Elems()
		values := make([]ast.Value, len(elems))
		for i, e := range elems {
			values[i] = valueToAstValue(e)
		}
		return ast.ListValue{Values: values}
	case graphql.KindMap:
		entries := v.Entries()
		fields := make([]ast.ObjectField, len(entries))
		for i, e := range entries {
			fields[i] = ast.ObjectField{Name: e.Key, Value: valueToAstValue(e.Value)}
		}
		return ast.ObjectValue{Fields: fields}
	default:
		return ast.NullValue{}
	}
}
