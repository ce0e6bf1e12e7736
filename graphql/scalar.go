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

import "strconv"

// Scalar describes a leaf output type: a Go value is turned into a Value by
// Serialize.
type Scalar struct {
	name        string
	description string
	serialize   func(src interface{}) (Value, error)
}

var _ NamedType = (*Scalar)(nil)

// ScalarConfig configures a user-defined Scalar.
type ScalarConfig struct {
	Name        string
	Description string

	// Serialize converts a resolver's returned Go value into a response
	// Value. It should return an error when src cannot be represented by
	// this scalar.
	Serialize func(src interface{}) (Value, error)
}

// NewScalar defines a new Scalar output type.
func NewScalar(config ScalarConfig) *Scalar {
	if config.Name == "" {
		panic("graphql: NewScalar requires a Name")
	}
	if config.Serialize == nil {
		panic("graphql: NewScalar requires Serialize")
	}
	return &Scalar{
		name:        config.Name,
		description: config.Description,
		serialize:   config.Serialize,
	}
}

// Kind implements Type.
func (*Scalar) Kind() TypeKind { return ScalarKind }

// String implements Type.
func (s *Scalar) String() string { return namedTypeRef(s.name) }

// Name implements NamedType.
func (s *Scalar) Name() string { return s.name }

// Description implements NamedType.
func (s *Scalar) Description() string { return s.description }

// Serialize converts src into a response Value.
func (s *Scalar) Serialize(src interface{}) (Value, error) {
	return s.serialize(src)
}

// Built-in scalars. Each accepts the Go types its name suggests (Float also
// accepts a Go int, and ID also an int or int64, which it formats as a
// string); a resolver returning any other Go type is a programming error in
// the schema, not a user-facing one, so it is surfaced plainly as a
// serialization error.

var stringScalar = NewScalar(ScalarConfig{
	Name: "String",
	Serialize: func(src interface{}) (Value, error) {
		s, ok := src.(string)
		if !ok {
			return Null, Errorf("String cannot represent a non string value: %v", src)
		}
		return String(s), nil
	},
})

var intScalar = NewScalar(ScalarConfig{
	Name: "Int",
	Serialize: func(src interface{}) (Value, error) {
		switch v := src.(type) {
		case int:
			return Int(int64(v)), nil
		case int32:
			return Int(int64(v)), nil
		case int64:
			return Int(v), nil
		default:
			return Null, Errorf("Int cannot represent a non integer value: %v", src)
		}
	},
})

var floatScalar = NewScalar(ScalarConfig{
	Name: "Float",
	Serialize: func(src interface{}) (Value, error) {
		switch v := src.(type) {
		case float32:
			return Float(float64(v)), nil
		case float64:
			return Float(v), nil
		case int:
			return Float(float64(v)), nil
		default:
			return Null, Errorf("Float cannot represent a non numeric value: %v", src)
		}
	},
})

var booleanScalar = NewScalar(ScalarConfig{
	Name: "Boolean",
	Serialize: func(src interface{}) (Value, error) {
		b, ok := src.(bool)
		if !ok {
			return Null, Errorf("Boolean cannot represent a non boolean value: %v", src)
		}
		return Boolean(b), nil
	},
})

var idScalar = NewScalar(ScalarConfig{
	Name: "ID",
	Serialize: func(src interface{}) (Value, error) {
		switch v := src.(type) {
		case string:
			return String(v), nil
		case int:
			return String(strconv.FormatInt(int64(v), 10)), nil
		case int64:
			return String(strconv.FormatInt(v, 10)), nil
		default:
			return Null, Errorf("ID cannot represent value: %v", src)
		}
	},
})

// StringType is the built-in String scalar.
func StringType() *Scalar { return stringScalar }

// IntType is the built-in Int scalar.
func IntType() *Scalar { return intScalar }

// FloatType is the built-in Float scalar.
func FloatType() *Scalar { return floatScalar }

// BooleanType is the built-in Boolean scalar.
func BooleanType() *Scalar { return booleanScalar }

// IDType is the built-in ID scalar. IDs serialize as strings regardless of
// whether the resolver returned a string or an integer, per the ID
// scalar's usual "opaque identifier" semantics.
func IDType() *Scalar { return idScalar }
