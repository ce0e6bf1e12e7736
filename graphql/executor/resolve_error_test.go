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
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/jrmdayn/reason-graphql/concurrent/future"
	"github.com/jrmdayn/reason-graphql/graphql"
	"github.com/jrmdayn/reason-graphql/graphql/executor"
)

// newOutageSchema builds a schema whose resolvers fail on demand, for
// exercising null bubbling: where a resolve-time error stops, and what the
// response looks like when it does.
func newOutageSchema() *graphql.Schema {
	report := graphql.NewObject(graphql.ObjectConfig{
		Name: "Report",
		Fields: func() []graphql.Field {
			return []graphql.Field{
				graphql.NewField(graphql.FieldConfig{
					Name: "total",
					Type: graphql.IntType(),
					Resolve: func(context.Context, interface{}, graphql.Args) (interface{}, error) {
						return nil, errors.New("tally backend unavailable")
					},
				}),
			}
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: func() []graphql.Field {
			return []graphql.Field{
				graphql.NewField(graphql.FieldConfig{
					Name: "stable",
					Type: graphql.StringType(),
					Resolve: func(context.Context, interface{}, graphql.Args) (interface{}, error) {
						return "ok", nil
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "flaky",
					Type: graphql.NewNullable(graphql.StringType()),
					Resolve: func(context.Context, interface{}, graphql.Args) (interface{}, error) {
						return nil, errors.New("flaky backend unavailable")
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "strict",
					Type: graphql.StringType(),
					Resolve: func(context.Context, interface{}, graphql.Args) (interface{}, error) {
						return nil, errors.New("strict backend unavailable")
					},
				}),
				graphql.NewField(graphql.FieldConfig{
					Name: "report",
					Type: graphql.NewNullable(report),
					Resolve: func(context.Context, interface{}, graphql.Args) (interface{}, error) {
						return struct{}{}, nil
					},
				}),
				graphql.NewAsyncField(graphql.AsyncFieldConfig{
					Name: "eventually",
					Type: graphql.StringType(),
					Resolve: func(context.Context, interface{}, graphql.Args) future.Future {
						return future.Go(func() (interface{}, error) {
							return "eventually ok", nil
						})
					},
				}),
			}
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}

var _ = Describe("null bubbling", func() {
	var schema *graphql.Schema

	BeforeEach(func() {
		schema = newOutageSchema()
	})

	It("absorbs a failing Nullable field into null and keeps its siblings", func() {
		resp := toGo(executor.Execute(executor.Params{
			Schema:   schema,
			Document: queryDoc(selField("flaky"), selField("stable")),
		})).(map[string]interface{})

		Expect(resp["data"]).To(Equal(map[string]interface{}{
			"flaky":  nil,
			"stable": "ok",
		}))
		errs := resp["errors"].([]interface{})
		Expect(errs).To(HaveLen(1))
		entry := errs[0].(map[string]interface{})
		Expect(entry["message"]).To(Equal("flaky backend unavailable"))
		Expect(entry["path"]).To(Equal([]interface{}{"flaky"}))
	})

	It("propagates a failing non-Nullable root field into a null data", func() {
		resp := toGo(executor.Execute(executor.Params{
			Schema:   schema,
			Document: queryDoc(selField("strict")),
		})).(map[string]interface{})

		Expect(resp["data"]).To(BeNil())
		errs := resp["errors"].([]interface{})
		Expect(errs).To(HaveLen(1))
		entry := errs[0].(map[string]interface{})
		Expect(entry["message"]).To(Equal("strict backend unavailable"))
		Expect(entry["path"]).To(Equal([]interface{}{"strict"}))
	})

	It("bubbles a nested non-Nullable failure up to the nearest Nullable ancestor", func() {
		resp := toGo(executor.Execute(executor.Params{
			Schema:   schema,
			Document: queryDoc(selField("report", selField("total"))),
		})).(map[string]interface{})

		Expect(resp["data"]).To(Equal(map[string]interface{}{"report": nil}))
		errs := resp["errors"].([]interface{})
		Expect(errs).To(HaveLen(1))
		entry := errs[0].(map[string]interface{})
		Expect(entry["message"]).To(Equal("tally backend unavailable"))
		Expect(entry["path"]).To(Equal([]interface{}{"report", "total"}))
	})

	It("resolves an asynchronous field through the same pipeline as a synchronous one", func() {
		resp := toGo(executor.Execute(executor.Params{
			Schema:   schema,
			Document: queryDoc(selField("eventually"), selField("stable")),
		})).(map[string]interface{})

		Expect(resp["errors"]).To(BeNil())
		Expect(resp["data"]).To(Equal(map[string]interface{}{
			"eventually": "eventually ok",
			"stable":     "ok",
		}))
	})
})
