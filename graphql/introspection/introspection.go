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

// Package introspection reflects a *graphql.Schema into the standard
// __schema/__type self-description fields. Directives are outside this
// engine's scope, so __Schema carries no directives field.
//
// Installing introspection never mutates the schema it is given: Install
// builds a brand new *graphql.Schema whose Query type has __schema and
// __type prepended to its field list, sharing every other type by
// reference with the original.
package introspection

import (
	"context"
	"fmt"

	"github.com/jrmdayn/reason-graphql/graphql"
)

// argTypeCarrier is implemented by the graphql package's internal
// adapters that register input types (Scalar/Enum/InputObject arguments)
// into a Schema's type registry, so this package can recover the
// underlying *graphql.ArgType without reaching into graphql's unexported
// adapter types.
type argTypeCarrier interface {
	ArgType() *graphql.ArgType
}

// typeRef is this package's own node in the introspection type-reference
// tree: it mirrors the recursive NON_NULL/LIST/bare-kind shape __Type
// exposes, built once per referenced position (a field's type, an
// argument's type, a raw named type from the schema's registry).
type typeRef struct {
	kind string

	named    graphql.NamedType // set for SCALAR/OBJECT/INTERFACE/UNION/ENUM derived from an output Type
	argNamed *graphql.ArgType  // set for SCALAR/ENUM/INPUT_OBJECT derived from an ArgType

	of *typeRef // set for LIST/NON_NULL
}

func (r *typeRef) typeName() string {
	switch {
	case r.named != nil:
		return r.named.Name()
	case r.argNamed != nil:
		return r.argNamed.Name()
	default:
		return ""
	}
}

func (r *typeRef) typeDescription() string {
	if r.named != nil {
		return r.named.Description()
	}
	return ""
}

// refFromOutputType builds the usage-site type reference for a field or
// argument's declared graphql.Type, wrapping non-Nullable types in an
// explicit NON_NULL layer — the inverse of this engine's own
// default-non-null convention, but the representation the standard
// introspection schema expects.
func refFromOutputType(t graphql.Type) *typeRef {
	if nullable, ok := t.(*graphql.Nullable); ok {
		return bareFromOutputType(nullable.OfType())
	}
	return &typeRef{kind: "NON_NULL", of: bareFromOutputType(t)}
}

func bareFromOutputType(t graphql.Type) *typeRef {
	switch v := t.(type) {
	case *graphql.List:
		return &typeRef{kind: "LIST", of: refFromOutputType(v.OfType())}
	case *graphql.Nullable:
		return bareFromOutputType(v.OfType())
	case *graphql.Object:
		return &typeRef{kind: "OBJECT", named: v}
	case *graphql.Abstract:
		if v.AbstractKind() == graphql.UnionAbstract {
			return &typeRef{kind: "UNION", named: v}
		}
		return &typeRef{kind: "INTERFACE", named: v}
	case *graphql.Enum:
		return &typeRef{kind: "ENUM", named: v}
	case *graphql.Scalar:
		return &typeRef{kind: "SCALAR", named: v}
	default:
		return &typeRef{kind: "SCALAR", named: graphql.StringType()}
	}
}

// refFromArgType is refFromOutputType's counterpart for input types.
func refFromArgType(t *graphql.ArgType) *typeRef {
	if t.Kind() == graphql.ArgNullableKind {
		return bareFromArgType(t.OfType())
	}
	return &typeRef{kind: "NON_NULL", of: bareFromArgType(t)}
}

func bareFromArgType(t *graphql.ArgType) *typeRef {
	switch t.Kind() {
	case graphql.ArgListKind:
		return &typeRef{kind: "LIST", of: refFromArgType(t.OfType())}
	case graphql.ArgNullableKind:
		return bareFromArgType(t.OfType())
	case graphql.ArgEnumKind:
		return &typeRef{kind: "ENUM", argNamed: t}
	case graphql.ArgInputObjectKind:
		return &typeRef{kind: "INPUT_OBJECT", argNamed: t}
	default:
		return &typeRef{kind: "SCALAR", argNamed: t}
	}
}

// refFromNamedType renders a type the schema's registry knows about
// directly, bare (no NON_NULL wrapper) — how __schema.types and
// __Type.{interfaces,possibleTypes} present types: as definitions, not
// usage-site references.
func refFromNamedType(t graphql.NamedType) *typeRef {
	if carrier, ok := t.(argTypeCarrier); ok {
		return bareFromArgType(carrier.ArgType())
	}
	return bareFromOutputType(t.(graphql.Type))
}

// Sources passed to this package's own field resolvers.

type schemaSource struct{ schema *graphql.Schema }
type fieldSource struct{ field *graphql.Field }
type inputValueSource struct {
	name        string
	description string
	typ         *typeRef
	defaultText string
	hasDefault  bool
}
type enumValueSource struct{ value graphql.EnumValue }

var (
	typeKindEnum   *graphql.Enum
	inputValueType *graphql.Object
	enumValueType  *graphql.Object
	fieldType      *graphql.Object
	typeType       *graphql.Object
	schemaType     *graphql.Object
)

func init() {
	typeKindEnum = graphql.NewEnum(graphql.EnumConfig{
		Name: "__TypeKind",
		Values: []graphql.EnumValue{
			{Name: "SCALAR", Value: "SCALAR"},
			{Name: "OBJECT", Value: "OBJECT"},
			{Name: "INTERFACE", Value: "INTERFACE"},
			{Name: "UNION", Value: "UNION"},
			{Name: "ENUM", Value: "ENUM"},
			{Name: "INPUT_OBJECT", Value: "INPUT_OBJECT"},
			{Name: "LIST", Value: "LIST"},
			{Name: "NON_NULL", Value: "NON_NULL"},
		},
	})

	inputValueType = graphql.NewObject(graphql.ObjectConfig{
		Name: "__InputValue",
		Fields: func() []graphql.Field {
			return []graphql.Field{
				graphql.NewField(graphql.FieldConfig{
					Name: "name",
					Type: graphql.StringType(),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return source.(inputValueSource).name, nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "description",
					Type: graphql.NewNullable(graphql.StringType()),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return nullableString(source.(inputValueSource).description), nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "type",
					Type: typeType,
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return source.(inputValueSource).typ, nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "defaultValue",
					Type: graphql.NewNullable(graphql.StringType()),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						iv := source.(inputValueSource)
						if !iv.hasDefault {
							return nil, nil
						}
						return iv.defaultText, nil
					},
				}),
			}
		},
	})

	enumValueType = graphql.NewObject(graphql.ObjectConfig{
		Name: "__EnumValue",
		Fields: func() []graphql.Field {
			return []graphql.Field{
				graphql.NewField(graphql.FieldConfig{
					Name: "name",
					Type: graphql.StringType(),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return source.(enumValueSource).value.Name, nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "description",
					Type: graphql.NewNullable(graphql.StringType()),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return nullableString(source.(enumValueSource).value.Description), nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "isDeprecated",
					Type: graphql.BooleanType(),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return source.(enumValueSource).value.Deprecated != "", nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "deprecationReason",
					Type: graphql.NewNullable(graphql.StringType()),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return nullableString(source.(enumValueSource).value.Deprecated), nil
					},
				}),
			}
		},
	})

	fieldType = graphql.NewObject(graphql.ObjectConfig{
		Name: "__Field",
		Fields: func() []graphql.Field {
			return []graphql.Field{
				graphql.NewField(graphql.FieldConfig{
					Name: "name",
					Type: graphql.StringType(),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return source.(fieldSource).field.Name, nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "description",
					Type: graphql.NewNullable(graphql.StringType()),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return nullableString(source.(fieldSource).field.Description), nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "args",
					Type: graphql.NewList(inputValueType),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return argListSources(source.(fieldSource).field.Args), nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "type",
					Type: typeType,
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return refFromOutputType(source.(fieldSource).field.Type), nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "isDeprecated",
					Type: graphql.BooleanType(),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return source.(fieldSource).field.IsDeprecated(), nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "deprecationReason",
					Type: graphql.NewNullable(graphql.StringType()),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return nullableString(source.(fieldSource).field.Deprecated), nil
					},
				}),
			}
		},
	})

	typeType = graphql.NewObject(graphql.ObjectConfig{
		Name: "__Type",
		Fields: func() []graphql.Field {
			return []graphql.Field{
				graphql.NewField(graphql.FieldConfig{
					Name: "kind",
					Type: typeKindEnum,
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return source.(*typeRef).kind, nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "name",
					Type: graphql.NewNullable(graphql.StringType()),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return nullableString(source.(*typeRef).typeName()), nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "description",
					Type: graphql.NewNullable(graphql.StringType()),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return nullableString(source.(*typeRef).typeDescription()), nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "fields",
					Type: graphql.NewNullable(graphql.NewList(fieldType)),
					Args: graphql.ArgList{
						graphql.DefaultArg("includeDeprecated", graphql.ArgBoolean(), false),
					},
					Resolve: func(_ context.Context, source interface{}, args graphql.Args) (interface{}, error) {
						includeDeprecated := graphql.ArgValue[bool](args, "includeDeprecated")
						return source.(*typeRef).fieldSources(includeDeprecated), nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "interfaces",
					Type: graphql.NewNullable(graphql.NewList(typeType)),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return source.(*typeRef).interfaceRefs(), nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "possibleTypes",
					Type: graphql.NewNullable(graphql.NewList(typeType)),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return source.(*typeRef).possibleTypeRefs(), nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "enumValues",
					Type: graphql.NewNullable(graphql.NewList(enumValueType)),
					Args: graphql.ArgList{
						graphql.DefaultArg("includeDeprecated", graphql.ArgBoolean(), false),
					},
					Resolve: func(_ context.Context, source interface{}, args graphql.Args) (interface{}, error) {
						includeDeprecated := graphql.ArgValue[bool](args, "includeDeprecated")
						return source.(*typeRef).enumValueSources(includeDeprecated), nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "inputFields",
					Type: graphql.NewNullable(graphql.NewList(inputValueType)),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return source.(*typeRef).inputFieldSources(), nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "ofType",
					Type: graphql.NewNullable(typeType),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						r := source.(*typeRef)
						if r.kind != "LIST" && r.kind != "NON_NULL" {
							return nil, nil
						}
						return r.of, nil
					},
				}),
			}
		},
	})

	schemaType = graphql.NewObject(graphql.ObjectConfig{
		Name: "__Schema",
		Fields: func() []graphql.Field {
			return []graphql.Field{
				graphql.NewField(graphql.FieldConfig{
					Name: "types",
					Type: graphql.NewList(typeType),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						named := source.(schemaSource).schema.Types()
						refs := make([]*typeRef, len(named))
						for i, t := range named {
							refs[i] = refFromNamedType(t)
						}
						return refs, nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "queryType",
					Type: typeType,
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						return refFromNamedType(source.(schemaSource).schema.QueryType()), nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "mutationType",
					Type: graphql.NewNullable(typeType),
					Resolve: func(_ context.Context, source interface{}, _ graphql.Args) (interface{}, error) {
						m := source.(schemaSource).schema.MutationType()
						if m == nil {
							return nil, nil
						}
						return refFromNamedType(m), nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "subscriptionType",
					Type: graphql.NewNullable(typeType),
					Resolve: func(_ context.Context, _ interface{}, _ graphql.Args) (interface{}, error) {
						return nil, nil
					},
				}),
			}
		},
	})
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// fieldSources implements __Type.fields: only OBJECT and INTERFACE kinds
// declare a field list, so every other kind answers null.
func (r *typeRef) fieldSources(includeDeprecated bool) interface{} {
	var fields []graphql.Field
	switch r.kind {
	case "OBJECT":
		fields = r.named.(*graphql.Object).Fields()
	case "INTERFACE":
		fields = r.named.(*graphql.Abstract).Fields()
	default:
		return nil
	}
	result := make([]fieldSource, 0, len(fields))
	for i := range fields {
		if !includeDeprecated && fields[i].IsDeprecated() {
			continue
		}
		result = append(result, fieldSource{field: &fields[i]})
	}
	return result
}

// interfaceRefs implements __Type.interfaces: only OBJECT declares the
// interfaces it implements.
func (r *typeRef) interfaceRefs() interface{} {
	if r.kind != "OBJECT" {
		return nil
	}
	abstracts := r.named.(*graphql.Object).Abstracts()
	refs := make([]*typeRef, 0, len(abstracts))
	for _, a := range abstracts {
		if a.AbstractKind() == graphql.InterfaceAbstract {
			refs = append(refs, refFromNamedType(a))
		}
	}
	return refs
}

// possibleTypeRefs implements __Type.possibleTypes: INTERFACE and UNION
// both carry their member Objects via the shared Abstract representation.
func (r *typeRef) possibleTypeRefs() interface{} {
	if r.kind != "INTERFACE" && r.kind != "UNION" {
		return nil
	}
	members := r.named.(*graphql.Abstract).Types()
	refs := make([]*typeRef, len(members))
	for i, m := range members {
		refs[i] = refFromNamedType(m)
	}
	return refs
}

// enumValueSources implements __Type.enumValues, reading from whichever
// side of the output/input split this ENUM reference came from.
func (r *typeRef) enumValueSources(includeDeprecated bool) interface{} {
	if r.kind != "ENUM" {
		return nil
	}
	var values []graphql.EnumValue
	if r.named != nil {
		values = r.named.(*graphql.Enum).Values()
	} else {
		values = r.argNamed.Values()
	}
	result := make([]enumValueSource, 0, len(values))
	for _, v := range values {
		if !includeDeprecated && v.Deprecated != "" {
			continue
		}
		result = append(result, enumValueSource{value: v})
	}
	return result
}

// inputFieldSources implements __Type.inputFields: only INPUT_OBJECT,
// which is always reached via the ArgType side.
func (r *typeRef) inputFieldSources() interface{} {
	if r.kind != "INPUT_OBJECT" {
		return nil
	}
	return argListSources(r.argNamed.Fields())
}

func argListSources(argList graphql.ArgList) []inputValueSource {
	result := make([]inputValueSource, len(argList))
	for i, def := range argList {
		result[i] = inputValueSource{
			name: def.Name,
			typ:  refFromArgType(def.Type),
		}
		if def.HasDefault {
			result[i].hasDefault = true
			result[i].defaultText = fmt.Sprintf("%v", def.Default)
		}
	}
	return result
}

// Install returns a new Schema equivalent to schema but with __schema and
// __type installed on its Query type, leaving schema itself untouched.
func Install(schema *graphql.Schema) *graphql.Schema {
	original := schema.QueryType()

	schemaField := graphql.NewField(graphql.FieldConfig{
		Name:        "__schema",
		Description: "Access the current type schema of this server.",
		Type:        schemaType,
		Resolve: func(_ context.Context, _ interface{}, _ graphql.Args) (interface{}, error) {
			return schemaSource{schema: schema}, nil
		},
	})

	typeField := graphql.NewField(graphql.FieldConfig{
		Name:        "__type",
		Description: "Request the type information of a single type.",
		Type:        graphql.NewNullable(typeType),
		Args: graphql.ArgList{
			graphql.Arg("name", graphql.ArgString()),
		},
		Resolve: func(_ context.Context, _ interface{}, args graphql.Args) (interface{}, error) {
			name := graphql.ArgValue[string](args, "name")
			t, ok := schema.TypeByName(name)
			if !ok {
				return nil, nil
			}
			return refFromNamedType(t), nil
		},
	})

	derivedQuery := graphql.NewObject(graphql.ObjectConfig{
		Name:        original.Name(),
		Description: original.Description(),
		Fields: func() []graphql.Field {
			originalFields := original.Fields()
			fields := make([]graphql.Field, 0, len(originalFields)+2)
			fields = append(fields, schemaField, typeField)
			fields = append(fields, originalFields...)
			return fields
		},
	})

	// schema.Types() still carries the original, un-derived Query object
	// under the same name derivedQuery now owns; passing it through
	// unfiltered would make NewSchema see two distinct types both named
	// "Query" and panic. Every other type is reused by reference, so
	// filtering out just that one entry is enough.
	extraTypes := make([]graphql.NamedType, 0, len(schema.Types())+6)
	extraTypes = append(extraTypes, typeKindEnum, inputValueType, enumValueType, fieldType, typeType, schemaType)
	for _, t := range schema.Types() {
		if t.Name() == original.Name() {
			continue
		}
		extraTypes = append(extraTypes, t)
	}

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    derivedQuery,
		Mutation: schema.MutationType(),
		Types:    extraTypes,
	})
}
