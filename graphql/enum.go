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

// EnumValue is a single named member of an Enum, pairing the response name
// with the Go value a resolver returns to select it.
type EnumValue struct {
	Name        string
	Value       interface{}
	Description string
	Deprecated  string
}

// Enum describes an output enumeration: a resolver returns one of Value's
// underlying Go values, looked up by == against each declared EnumValue.
type Enum struct {
	name        string
	description string
	values      []EnumValue
}

var _ NamedType = (*Enum)(nil)

// EnumConfig configures a new Enum type.
type EnumConfig struct {
	Name        string
	Description string
	Values      []EnumValue
}

// NewEnum defines a new Enum output type.
func NewEnum(config EnumConfig) *Enum {
	if config.Name == "" {
		panic("graphql: NewEnum requires a Name")
	}
	if len(config.Values) == 0 {
		panic("graphql: NewEnum requires at least one value")
	}
	return &Enum{
		name:        config.Name,
		description: config.Description,
		values:      config.Values,
	}
}

// Kind implements Type.
func (*Enum) Kind() TypeKind { return EnumKind }

// String implements Type.
func (e *Enum) String() string { return namedTypeRef(e.name) }

// Name implements NamedType.
func (e *Enum) Name() string { return e.name }

// Description implements NamedType.
func (e *Enum) Description() string { return e.description }

// Values returns the enum's declared values in declaration order.
func (e *Enum) Values() []EnumValue { return e.values }

// Lookup finds the declared value whose Value equals src (by ==). The
// second return value is false when no member matches, which the executor
// treats as a resolve-side error unless the field's type is Nullable.
func (e *Enum) Lookup(src interface{}) (EnumValue, bool) {
	for _, v := range e.values {
		if v.Value == src {
			return v, true
		}
	}
	return EnumValue{}, false
}

// LookupName finds the declared value by response name, used when coercing
// an incoming query argument of enum type.
func (e *Enum) LookupName(name string) (EnumValue, bool) {
	for _, v := range e.values {
		if v.Name == name {
			return v, true
		}
	}
	return EnumValue{}, false
}
