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

package executor_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/jrmdayn/reason-graphql/graphql"
	"github.com/jrmdayn/reason-graphql/graphql/ast"
	"github.com/jrmdayn/reason-graphql/graphql/executor"
)

func intArg(name string, v int64) ast.Argument {
	return ast.Argument{Name: name, Value: ast.IntValue{Value: v}}
}

func nullArg(name string) ast.Argument {
	return ast.Argument{Name: name, Value: ast.NullValue{}}
}

func listArg(name string, vs ...ast.Value) ast.Argument {
	return ast.Argument{Name: name, Value: ast.ListValue{Values: vs}}
}

func objArg(name string, fields ...ast.ObjectField) ast.Argument {
	return ast.Argument{Name: name, Value: ast.ObjectValue{Fields: fields}}
}

// newGreeterSchema exercises every argument-coercion rule a resolver can
// observe: defaults, explicit null on a Nullable, singleton-list promotion,
// and input objects with their own nested defaults.
func newGreeterSchema() *graphql.Schema {
	filter := graphql.NewArgInputObject(graphql.ArgInputObjectConfig{
		Name: "SearchFilter",
		Fields: graphql.ArgList{
			graphql.Arg("term", graphql.ArgString()),
			graphql.DefaultArg("limit", graphql.NewArgNullable(graphql.ArgInt()), int64(10)),
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: func() []graphql.Field {
			return []graphql.Field{
				graphql.NewField(graphql.FieldConfig{
					Name: "greet",
					Type: graphql.StringType(),
					Args: graphql.ArgList{
						graphql.Arg("name", graphql.ArgString()),
						graphql.DefaultArg("greeting", graphql.NewArgNullable(graphql.ArgString()), "Hello"),
					},
					Resolve: func(_ context.Context, _ interface{}, args graphql.Args) (interface{}, error) {
						name := graphql.ArgValue[string](args, "name")
						if !args.Has("greeting") {
							return name, nil
						}
						return graphql.ArgValue[string](args, "greeting") + ", " + name, nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "sum",
					Type: graphql.IntType(),
					Args: graphql.ArgList{graphql.Arg("xs", graphql.NewArgList(graphql.ArgInt()))},
					Resolve: func(_ context.Context, _ interface{}, args graphql.Args) (interface{}, error) {
						var total int64
						for _, v := range args.Get("xs").([]interface{}) {
							total += v.(int64)
						}
						return total, nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "search",
					Type: graphql.StringType(),
					Args: graphql.ArgList{graphql.Arg("filter", filter)},
					Resolve: func(_ context.Context, _ interface{}, args graphql.Args) (interface{}, error) {
						f := args.Get("filter").(map[string]interface{})
						return fmt.Sprintf("%s/%d", f["term"], f["limit"]), nil
					},
				}),
			}
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}

var _ = Describe("argument coercion", func() {
	var schema *graphql.Schema

	BeforeEach(func() {
		schema = newGreeterSchema()
	})

	run := func(doc *ast.Document, vars map[string]graphql.Value) map[string]interface{} {
		return toGo(executor.Execute(executor.Params{
			Schema:         schema,
			Document:       doc,
			VariableValues: vars,
		})).(map[string]interface{})
	}

	It("supplies the declared default when an argument is omitted", func() {
		resp := run(queryDoc(argField("greet", []ast.Argument{strArg("name", "Ada")})), nil)

		Expect(resp["errors"]).To(BeNil())
		Expect(resp["data"]).To(Equal(map[string]interface{}{"greet": "Hello, Ada"}))
	})

	It("binds an explicit null on a Nullable to absent, not to the default", func() {
		resp := run(queryDoc(argField("greet", []ast.Argument{
			strArg("name", "Ada"),
			nullArg("greeting"),
		})), nil)

		Expect(resp["errors"]).To(BeNil())
		Expect(resp["data"]).To(Equal(map[string]interface{}{"greet": "Ada"}))
	})

	It("binds a null supplied through a variable the same way as a null literal", func() {
		resp := run(queryDoc(argField("greet", []ast.Argument{
			strArg("name", "Ada"),
			varArg("greeting", "g"),
		})), map[string]graphql.Value{"g": graphql.Null})

		Expect(resp["errors"]).To(BeNil())
		Expect(resp["data"]).To(Equal(map[string]interface{}{"greet": "Ada"}))
	})

	It("promotes a bare value to a singleton list", func() {
		resp := run(queryDoc(argField("sum", []ast.Argument{intArg("xs", 5)})), nil)

		Expect(resp["errors"]).To(BeNil())
		Expect(resp["data"]).To(Equal(map[string]interface{}{"sum": int64(5)}))
	})

	It("coerces a list literal element-wise", func() {
		resp := run(queryDoc(argField("sum", []ast.Argument{
			listArg("xs", ast.IntValue{Value: 1}, ast.IntValue{Value: 2}, ast.IntValue{Value: 3}),
		})), nil)

		Expect(resp["errors"]).To(BeNil())
		Expect(resp["data"]).To(Equal(map[string]interface{}{"sum": int64(6)}))
	})

	It("applies an input object's own field default when the literal omits it", func() {
		resp := run(queryDoc(argField("search", []ast.Argument{
			objArg("filter", ast.ObjectField{Name: "term", Value: ast.StringValue{Value: "droid"}}),
		})), nil)

		Expect(resp["errors"]).To(BeNil())
		Expect(resp["data"]).To(Equal(map[string]interface{}{"search": "droid/10"}))
	})

	It("coerces an input object supplied through a variable", func() {
		vars := map[string]graphql.Value{
			"f": graphql.Map(
				graphql.MapEntry{Key: "term", Value: graphql.String("human")},
				graphql.MapEntry{Key: "limit", Value: graphql.Int(3)},
			),
		}
		resp := run(queryDoc(argField("search", []ast.Argument{varArg("filter", "f")})), vars)

		Expect(resp["errors"]).To(BeNil())
		Expect(resp["data"]).To(Equal(map[string]interface{}{"search": "human/3"}))
	})

	It("reports a missing required argument with the exact expected wording", func() {
		resp := run(queryDoc(argField("greet", nil)), nil)

		Expect(resp["data"]).To(BeNil())
		errs := resp["errors"].([]interface{})
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].(map[string]interface{})["message"]).To(
			Equal("Argument `name` of type `String!` expected on field `greet`, but not provided."))
	})

	It("reports a type mismatch naming the offending literal", func() {
		resp := run(queryDoc(argField("greet", []ast.Argument{intArg("name", 42)})), nil)

		Expect(resp["data"]).To(BeNil())
		errs := resp["errors"].([]interface{})
		Expect(errs[0].(map[string]interface{})["message"]).To(
			Equal("Argument `name` of type `String!` expected on field `greet`, found 42."))
	})
})
