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

// SchemaConfig configures a Schema via NewSchema.
type SchemaConfig struct {
	Query    *Object
	Mutation *Object

	// Types lists additional named types to include for introspection even
	// though no field in Query/Mutation references them directly — an
	// interface or union with only dynamically-attached implementations,
	// for instance, or an input object only ever reached through a
	// variable's declared type.
	Types []NamedType
}

// Schema is the fully-assembled, self-consistent description of a GraphQL
// API: a root Query type, an optional root Mutation type, and every named
// type transitively reachable from them (for introspection, and for
// resolving abstract-type selections by name).
//
// Subscriptions are outside this engine's scope; a schema has no root
// Subscription type.
type Schema struct {
	query    *Object
	mutation *Object

	types map[string]NamedType
}

// NewSchema assembles a Schema from config, walking every field, argument,
// interface/union member and input-object field reachable from Query,
// Mutation and Types to build the schema's complete named-type registry.
// It panics if two distinct output types are declared under the same name,
// which would make introspection and abstract-type resolution ambiguous.
// An argument type whose name is already registered is skipped without
// that check.
func NewSchema(config SchemaConfig) *Schema {
	if config.Query == nil {
		panic("graphql: NewSchema requires a Query type")
	}
	s := &Schema{
		query:    config.Query,
		mutation: config.Mutation,
		types:    make(map[string]NamedType),
	}

	// Built-ins go in first so that a schema reaching String/Int/... only
	// through an argument type still resolves the name to the canonical
	// scalar instead of registering an input-side shadow under it.
	s.addNamedType(StringType())
	s.addNamedType(IntType())
	s.addNamedType(FloatType())
	s.addNamedType(BooleanType())
	s.addNamedType(IDType())

	s.addNamedType(config.Query)
	if config.Mutation != nil {
		s.addNamedType(config.Mutation)
	}
	for _, t := range config.Types {
		s.addNamedType(t)
	}

	return s
}

// QueryType returns the schema's root Query type.
func (s *Schema) QueryType() *Object { return s.query }

// MutationType returns the schema's root Mutation type, or nil if the
// schema declares none.
func (s *Schema) MutationType() *Object { return s.mutation }

// TypeByName looks up a named type registered anywhere in the schema,
// including built-in scalars and introspection types once installed.
func (s *Schema) TypeByName(name string) (NamedType, bool) {
	t, ok := s.types[name]
	return t, ok
}

// Types returns every named type the schema knows about. The order is
// unspecified.
func (s *Schema) Types() []NamedType {
	result := make([]NamedType, 0, len(s.types))
	for _, t := range s.types {
		result = append(result, t)
	}
	return result
}

// register installs t under its own name, unless it is already registered
// (the common case once traversal starts revisiting shared types), and
// reports whether this call performed the registration.
func (s *Schema) register(t NamedType) bool {
	name := t.Name()
	if existing, ok := s.types[name]; ok {
		if existing != t {
			panic(fmt.Sprintf("graphql: two distinct types are both named %q", name))
		}
		return false
	}
	s.types[name] = t
	return true
}

// addNamedType registers t and recurses into whatever it references:
// an Object/Interface's fields (and each field's argument types and output
// type), a Union's member types, and an InputObject argument type's own
// fields.
func (s *Schema) addNamedType(t NamedType) {
	if !s.register(t) {
		return
	}
	switch v := t.(type) {
	case *Object:
		fields := v.Fields()
		for i := range fields {
			s.addField(&fields[i])
		}
	case *Abstract:
		fields := v.Fields()
		for i := range fields {
			s.addField(&fields[i])
		}
		for _, member := range v.Types() {
			s.addNamedType(member)
		}
	}
}

func (s *Schema) addField(f *Field) {
	s.addType(f.Type)
	for _, arg := range f.Args {
		s.addArgType(arg.Type)
	}
}

// addType recurses through List/Nullable wrappers down to the innermost
// NamedType and registers it.
func (s *Schema) addType(t Type) {
	if named := NamedOf(t); named != nil {
		s.addNamedType(named)
	}
}

// addArgType mirrors addType for the separate ArgType hierarchy (input
// types), additionally walking InputObject field lists.
func (s *Schema) addArgType(t *ArgType) {
	switch t.Kind() {
	case ArgListKind, ArgNullableKind:
		s.addArgType(t.OfType())
	case ArgInputObjectKind:
		if _, ok := s.types[t.Name()]; ok {
			return
		}
		s.types[t.Name()] = inputObjectNamedType{t}
		for _, field := range t.Fields() {
			s.addArgType(field.Type)
		}
	case ArgScalarKind, ArgEnumKind:
		if _, ok := s.types[t.Name()]; !ok {
			s.types[t.Name()] = argNamedType{t}
		}
	}
}

// argNamedType and inputObjectNamedType adapt the separate ArgType
// hierarchy to NamedType so input types share the schema's single type
// registry with output types, which introspection needs (a scalar like ID
// is both an output type and a valid argument type, and must appear once).
type argNamedType struct{ t *ArgType }

func (a argNamedType) Kind() TypeKind {
	if a.t.Kind() == ArgEnumKind {
		return EnumKind
	}
	return ScalarKind
}
func (a argNamedType) String() string      { return a.t.String() }
func (a argNamedType) Name() string        { return a.t.Name() }
func (a argNamedType) Description() string { return "" }

// ArgType exposes the wrapped input type, for introspection (package
// introspection cannot type-assert to an unexported type).
func (a argNamedType) ArgType() *ArgType { return a.t }

type inputObjectNamedType struct{ t *ArgType }

func (i inputObjectNamedType) Kind() TypeKind      { return InputObjectKind }
func (i inputObjectNamedType) String() string      { return i.t.String() }
func (i inputObjectNamedType) Name() string        { return i.t.Name() }
func (i inputObjectNamedType) Description() string { return "" }

// ArgType exposes the wrapped input type, for introspection.
func (i inputObjectNamedType) ArgType() *ArgType { return i.t }
