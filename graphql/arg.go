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

	"github.com/jrmdayn/reason-graphql/graphql/ast"
)

// ArgTypeKind discriminates the shape of an ArgType.
type ArgTypeKind int

// Enumeration of ArgTypeKind.
const (
	ArgScalarKind ArgTypeKind = iota
	ArgEnumKind
	ArgInputObjectKind
	ArgListKind
	ArgNullableKind
)

// ArgType describes the type of a single argument or input-object field.
//
// A fully statically-typed model would pin each argument's Go type with a
// phantom-typed heterogeneous cons list, altering the resolver's signature
// as arguments are appended. Go has no GADTs, so this package takes the
// dynamic route instead: ArgType erases its Go representation to
// interface{} and resolvers read coerced arguments back out by name
// through Args.
type ArgType struct {
	name string
	kind ArgTypeKind

	// parse implements Scalar coercion: it accepts a literal/variable value
	// already substituted for variables and returns the coerced Go value.
	parse func(v ast.Value) (interface{}, error)

	// values implements Enum coercion.
	values []EnumValue

	// fields and construct implement InputObject coercion.
	fields    ArgList
	construct func(fields map[string]interface{}) (interface{}, error)

	// of implements List/Nullable.
	of *ArgType
}

// Name returns the declared name of a Scalar/Enum/InputObject ArgType. It
// is empty for List/Nullable wrappers.
func (t *ArgType) Name() string { return t.name }

// Kind reports the concrete shape of t.
func (t *ArgType) Kind() ArgTypeKind { return t.kind }

// OfType returns the wrapped type for List/Nullable, or nil otherwise.
func (t *ArgType) OfType() *ArgType { return t.of }

// String renders t using GraphQL type-reference notation, the notation
// argument-coercion error messages use: a trailing "!" for non-null (the
// default), "[...]" for lists, and no "!" once wrapped in Nullable.
func (t *ArgType) String() string {
	switch t.kind {
	case ArgNullableKind:
		s := t.of.String()
		return s[:len(s)-1]
	case ArgListKind:
		return fmt.Sprintf("[%s]!", t.of.String())
	default:
		return fmt.Sprintf("%s!", t.name)
	}
}

// ArgScalarConfig configures a custom scalar argument type via
// NewArgScalar.
type ArgScalarConfig struct {
	Name  string
	Parse func(v ast.Value) (interface{}, error)
}

// NewArgScalar defines a scalar input type.
func NewArgScalar(config ArgScalarConfig) *ArgType {
	if config.Name == "" {
		panic("graphql: NewArgScalar requires a Name")
	}
	if config.Parse == nil {
		panic("graphql: NewArgScalar requires Parse")
	}
	return &ArgType{name: config.Name, kind: ArgScalarKind, parse: config.Parse}
}

// ArgEnumConfig configures a custom enum argument type via NewArgEnum.
type ArgEnumConfig struct {
	Name   string
	Values []EnumValue
}

// NewArgEnum defines an enum input type. Incoming values are matched by
// response name (either an ast.EnumValue or, for historical leniency, an
// ast.StringValue) against the declared names.
func NewArgEnum(config ArgEnumConfig) *ArgType {
	if config.Name == "" {
		panic("graphql: NewArgEnum requires a Name")
	}
	if len(config.Values) == 0 {
		panic("graphql: NewArgEnum requires at least one value")
	}
	return &ArgType{name: config.Name, kind: ArgEnumKind, values: config.Values}
}

// Parse exposes the Scalar's literal parser to the argument evaluator
// (package internal/coerce). Calling it on a non-Scalar ArgType panics; the
// evaluator only ever calls it after switching on Kind.
func (t *ArgType) Parse(v ast.Value) (interface{}, error) {
	return t.parse(v)
}

// Values returns the enum input type's declared members.
func (t *ArgType) Values() []EnumValue { return t.values }

// ArgInputObjectConfig configures a custom input-object argument type via
// NewArgInputObject.
type ArgInputObjectConfig struct {
	Name string

	// Fields is the input object's own field list, coerced the same way a
	// top-level argument list is.
	Fields ArgList

	// Construct receives the coerced field values, keyed by field name, and
	// builds the Go value passed to resolvers. If nil, the coerced
	// map[string]interface{} is passed through unchanged.
	Construct func(fields map[string]interface{}) (interface{}, error)
}

// NewArgInputObject defines an input-object input type.
func NewArgInputObject(config ArgInputObjectConfig) *ArgType {
	if config.Name == "" {
		panic("graphql: NewArgInputObject requires a Name")
	}
	return &ArgType{
		name:      config.Name,
		kind:      ArgInputObjectKind,
		fields:    config.Fields,
		construct: config.Construct,
	}
}

// Fields returns the declared fields of an input-object argument type.
func (t *ArgType) Fields() ArgList { return t.fields }

// Construct applies the input object's constructor (or the identity
// function if none was given) to a coerced field map.
func (t *ArgType) Construct(fields map[string]interface{}) (interface{}, error) {
	if t.construct == nil {
		return fields, nil
	}
	return t.construct(fields)
}

// NewArgList wraps elementType in a List input type: a list literal
// coerces element-wise, and a single non-list value is promoted to a
// singleton list.
func NewArgList(elementType *ArgType) *ArgType {
	if elementType == nil {
		panic("graphql: NewArgList requires a non-nil element type")
	}
	return &ArgType{kind: ArgListKind, of: elementType}
}

// NewArgNullable wraps innerType in a Nullable input type: an absent or
// explicit-null value coerces to a Go nil rather than an error.
func NewArgNullable(innerType *ArgType) *ArgType {
	if innerType == nil {
		panic("graphql: NewArgNullable requires a non-nil inner type")
	}
	if innerType.kind == ArgNullableKind {
		panic("graphql: Nullable argument types cannot be nested")
	}
	return &ArgType{kind: ArgNullableKind, of: innerType}
}

// Built-in scalar argument types, parsed straight off the corresponding
// ast.Value literal case.

var argString = NewArgScalar(ArgScalarConfig{
	Name: "String",
	Parse: func(v ast.Value) (interface{}, error) {
		s, ok := v.(ast.StringValue)
		if !ok {
			return nil, NewError("Invalid String")
		}
		return s.Value, nil
	},
})

var argInt = NewArgScalar(ArgScalarConfig{
	Name: "Int",
	Parse: func(v ast.Value) (interface{}, error) {
		i, ok := v.(ast.IntValue)
		if !ok {
			return nil, NewError("Invalid Int")
		}
		return i.Value, nil
	},
})

var argFloat = NewArgScalar(ArgScalarConfig{
	Name: "Float",
	Parse: func(v ast.Value) (interface{}, error) {
		f, ok := v.(ast.FloatValue)
		if !ok {
			return nil, NewError("Invalid Float")
		}
		return f.Value, nil
	},
})

var argBoolean = NewArgScalar(ArgScalarConfig{
	Name: "Boolean",
	Parse: func(v ast.Value) (interface{}, error) {
		b, ok := v.(ast.BooleanValue)
		if !ok {
			return nil, NewError("Invalid Boolean")
		}
		return b.Value, nil
	},
})

var argID = NewArgScalar(ArgScalarConfig{
	Name: "ID",
	Parse: func(v ast.Value) (interface{}, error) {
		switch val := v.(type) {
		case ast.StringValue:
			return val.Value, nil
		case ast.IntValue:
			return strconv.FormatInt(val.Value, 10), nil
		default:
			return nil, NewError("Invalid ID")
		}
	},
})

// ArgID is the built-in ID argument type. It accepts either a string or an
// integer literal/variable and always coerces to a Go string.
func ArgID() *ArgType { return argID }

// ArgString is the built-in String argument type.
func ArgString() *ArgType { return argString }

// ArgInt is the built-in Int argument type.
func ArgInt() *ArgType { return argInt }

// ArgFloat is the built-in Float argument type.
func ArgFloat() *ArgType { return argFloat }

// ArgBoolean is the built-in Boolean argument type.
func ArgBoolean() *ArgType { return argBoolean }

// ArgDef is a single entry in an ArgList: either an Arg without a default
// or a DefaultArg carrying a fallback value.
type ArgDef struct {
	Name       string
	Type       *ArgType
	HasDefault bool
	Default    interface{}
}

// ArgList is an ordered list of argument (or input-object field)
// descriptors. Order matters only for introspection and for the
// left-to-right coercion walk; it has no effect on how resolvers read
// arguments back (by name, via Args).
type ArgList []ArgDef

// Arg declares an argument without a default. Unless typ is Nullable,
// absence (or an explicit null) is a coercion error.
func Arg(name string, typ *ArgType) ArgDef {
	return ArgDef{Name: name, Type: typ}
}

// DefaultArg declares an argument with a default value, supplied when the
// query omits it. typ is ordinarily (though not necessarily) a Nullable
// type: an explicit null coerces to absent without falling back to the
// default, which only an omission triggers.
func DefaultArg(name string, typ *ArgType, defaultValue interface{}) ArgDef {
	return ArgDef{Name: name, Type: typ, HasDefault: true, Default: defaultValue}
}

// Args is the coerced argument bag handed to a resolver. It wraps a plain
// map keyed by argument name, which keeps resolver inputs interoperable
// with JSON-shaped values.
type Args struct {
	values map[string]interface{}
}

// NewArgs wraps an already-coerced value map as Args. Used by the
// evaluator in package internal/coerce; schema authors never construct one
// directly.
func NewArgs(values map[string]interface{}) Args {
	return Args{values: values}
}

// Get returns the coerced value for name, or nil if it is absent (which,
// for a correctly-evaluated Args, only happens for a Nullable argument
// that was omitted or given an explicit null).
func (a Args) Get(name string) interface{} {
	if a.values == nil {
		return nil
	}
	return a.values[name]
}

// Has reports whether name is present in the coerced argument bag.
func (a Args) Has(name string) bool {
	if a.values == nil {
		return false
	}
	_, ok := a.values[name]
	return ok
}

// ArgValue is a type-asserting convenience for reading a single argument
// out of Args inside a resolver, e.g. graphql.ArgValue[string](args, "id").
// It returns T's zero value if the argument is absent or holds some other
// type, which matches Args.Get's looseness rather than panicking: a schema
// whose resolver and ArgType disagree on the Go representation is a
// programming error to be caught in review or tests, not at every call.
func ArgValue[T any](a Args, name string) T {
	v, _ := a.Get(name).(T)
	return v
}
