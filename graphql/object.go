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

// FieldsThunk produces an Object's (or Interface's) field list. It is
// called at most once, on first use, which is what lets two Objects refer
// to each other inside their own field lists: by the time the thunk runs,
// both Objects already exist as addressable values.
type FieldsThunk func() []Field

// Object is a concrete output type with a named, ordered set of fields.
// Objects are identified by name: introspection and abstract-type
// membership both key off Name(), not pointer identity, though in practice
// a schema should only ever construct one *Object per name.
type Object struct {
	name        string
	description string

	fieldsOnce   sync.Once
	fieldsThunk  FieldsThunk
	fields       []Field
	fieldsByName map[string]*Field

	// abstracts lists the interfaces/unions this object has been
	// registered into via AddType. It is mutated only during schema
	// construction and is read-only once execution begins.
	abstracts []*Abstract
}

var _ NamedType = (*Object)(nil)

// ObjectConfig configures a new Object type.
type ObjectConfig struct {
	Name        string
	Description string

	// Fields is invoked lazily (see FieldsThunk) so that recursive schemas
	// (e.g. a field that returns the enclosing Object, directly or through
	// an interface) can be expressed without forward-declaration tricks.
	Fields FieldsThunk
}

// NewObject defines a new Object output type.
func NewObject(config ObjectConfig) *Object {
	if config.Name == "" {
		panic("graphql: NewObject requires a Name")
	}
	if config.Fields == nil {
		panic("graphql: NewObject requires Fields")
	}
	return &Object{
		name:        config.Name,
		description: config.Description,
		fieldsThunk: config.Fields,
	}
}

// Kind implements Type.
func (*Object) Kind() TypeKind { return ObjectKind }

// String implements Type.
func (o *Object) String() string { return namedTypeRef(o.name) }

// Name implements NamedType.
func (o *Object) Name() string { return o.name }

// Description implements NamedType.
func (o *Object) Description() string { return o.description }

// force evaluates the fields thunk exactly once. Forcing is idempotent: a
// second call while the first is still running (which would indicate a
// field referencing its own object's Fields() before construction
// finished) blocks rather than re-entering, matching sync.Once semantics.
func (o *Object) force() {
	o.fieldsOnce.Do(func() {
		o.fields = o.fieldsThunk()
		o.fieldsByName = make(map[string]*Field, len(o.fields))
		for i := range o.fields {
			o.fieldsByName[o.fields[i].Name] = &o.fields[i]
		}
	})
}

// Fields forces and returns the object's field list, in declaration order.
func (o *Object) Fields() []Field {
	o.force()
	return o.fields
}

// FieldByName forces the field list and looks up a single field by name.
func (o *Object) FieldByName(name string) (*Field, bool) {
	o.force()
	f, ok := o.fieldsByName[name]
	return f, ok
}

// Abstracts returns the interfaces and unions this object has been
// registered into, via AddType, most recently registered first.
func (o *Object) Abstracts() []*Abstract {
	return o.abstracts
}

// Implements reports whether o was registered (directly) into abstract,
// i.e. whether an Interface or Union field selecting on abstract may
// resolve to o.
func (o *Object) Implements(abstract *Abstract) bool {
	for _, a := range o.abstracts {
		if a == abstract {
			return true
		}
	}
	return false
}
