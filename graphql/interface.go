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

import "sync"

// AbstractKind distinguishes an Interface from a Union: both are modeled by
// the same Abstract type since they share every concern except whether
// they carry their own field list.
type AbstractKind int

// Enumeration of AbstractKind.
const (
	InterfaceAbstract AbstractKind = iota
	UnionAbstract
)

// AbstractValue pairs a concrete Object type with the runtime value it
// describes. A resolver for an abstract-typed field returns an
// AbstractValue (produced by the coercion function AddType returns) so the
// executor knows which concrete branch to resolve into.
type AbstractValue struct {
	Type  *Object
	Value interface{}
}

// Abstract is the shared representation of both interfaces and unions. An
// interface additionally declares its own fields (lazily, like Object);
// a union declares none.
type Abstract struct {
	name        string
	description string
	kind        AbstractKind

	fieldsOnce  sync.Once
	fieldsThunk FieldsThunk // nil for UnionAbstract
	fields      []Field

	// types is mutated only by AddType during schema construction.
	types []*Object
}

var (
	_ NamedType = (*Abstract)(nil)
	_ Type      = (*Abstract)(nil)
)

// InterfaceConfig configures a new interface Abstract type.
type InterfaceConfig struct {
	Name        string
	Description string
	Fields      FieldsThunk
}

// NewInterface defines a new interface type. Objects are attached to it
// with AddType.
func NewInterface(config InterfaceConfig) *Abstract {
	if config.Name == "" {
		panic("graphql: NewInterface requires a Name")
	}
	if config.Fields == nil {
		panic("graphql: NewInterface requires Fields")
	}
	return &Abstract{
		name:        config.Name,
		description: config.Description,
		kind:        InterfaceAbstract,
		fieldsThunk: config.Fields,
	}
}

// Kind implements Type. Note this returns the output TypeKind
// (InterfaceKind/UnionKind), not AbstractKind.
func (a *Abstract) Kind() TypeKind {
	if a.kind == UnionAbstract {
		return UnionKind
	}
	return InterfaceKind
}

// AbstractKind reports whether a is an interface or a union.
func (a *Abstract) AbstractKind() AbstractKind { return a.kind }

// String implements Type.
func (a *Abstract) String() string { return namedTypeRef(a.name) }

// Name implements NamedType.
func (a *Abstract) Name() string { return a.name }

// Description implements NamedType.
func (a *Abstract) Description() string { return a.description }

// Fields forces and returns the interface's declared fields. It returns
// nil for a union, which declares none of its own.
func (a *Abstract) Fields() []Field {
	if a.fieldsThunk == nil {
		return nil
	}
	a.fieldsOnce.Do(func() {
		a.fields = a.fieldsThunk()
	})
	return a.fields
}

// Types returns the concrete object types registered into a via AddType,
// in registration order.
func (a *Abstract) Types() []*Object {
	return a.types
}

// AddType registers object as a member of abstract (an interface it
// implements, or a union it belongs to). It appends object to abstract's
// member list and prepends abstract to object's list of implemented
// abstracts, and
// returns a coercion function a resolver calls to tag a concrete value as
// belonging to object when returning through a field typed as abstract.
//
// AddType must be called during schema construction, before any query
// executes; abstracts/types lists are read without synchronization during
// execution.
func AddType(abstract *Abstract, object *Object) func(interface{}) AbstractValue {
	abstract.types = append(abstract.types, object)
	object.abstracts = append([]*Abstract{abstract}, object.abstracts...)
	return func(value interface{}) AbstractValue {
		return AbstractValue{Type: object, Value: value}
	}
}
