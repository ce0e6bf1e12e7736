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
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/jrmdayn/reason-graphql/concurrent"
	"github.com/jrmdayn/reason-graphql/graphql"
	"github.com/jrmdayn/reason-graphql/graphql/ast"
	"github.com/jrmdayn/reason-graphql/graphql/executor"
)

var _ = Describe("Execute", func() {
	var fixture *starWarsFixture

	BeforeEach(func() {
		fixture = newStarWarsFixture()
	})

	run := func(doc *ast.Document, vars map[string]graphql.Value) map[string]interface{} {
		resp := executor.Execute(executor.Params{
			Schema:         fixture.schema,
			Document:       doc,
			VariableValues: vars,
		})
		return toGo(resp).(map[string]interface{})
	}

	Describe("querying", func() {
		It("resolves the default hero as the droid R2-D2", func() {
			resp := run(queryDoc(selField("hero",
				selField("id"),
				selField("name"),
			)), nil)

			Expect(resp["errors"]).To(BeNil())
			Expect(resp["data"]).To(Equal(map[string]interface{}{
				"hero": map[string]interface{}{
					"id":   "2001",
					"name": "R2-D2",
				},
			}))
		})

		It("dispatches hero to the human branch by enum argument", func() {
			resp := run(queryDoc(argField("hero", []ast.Argument{enumArg("episode", "EMPIRE")},
				selField("name"),
			)), nil)

			Expect(resp["errors"]).To(BeNil())
			Expect(resp["data"]).To(Equal(map[string]interface{}{
				"hero": map[string]interface{}{
					"name": "Luke Skywalker",
				},
			}))
		})

		It("honors a field alias", func() {
			resp := run(queryDoc(aliasField("r2", "hero", nil,
				selField("name"),
			)), nil)

			Expect(resp["data"]).To(Equal(map[string]interface{}{
				"r2": map[string]interface{}{
					"name": "R2-D2",
				},
			}))
		})

		It("resolves nested friends through the Character interface, with a type-conditioned fragment", func() {
			resp := run(queryDoc(selField("hero",
				selField("name"),
				selField("friends",
					selField("name"),
					inlineFragment("Human", selField("homePlanet")),
				),
			)), nil)

			Expect(resp["errors"]).To(BeNil())
			data := resp["data"].(map[string]interface{})
			hero := data["hero"].(map[string]interface{})
			Expect(hero["name"]).To(Equal("R2-D2"))

			friends := hero["friends"].([]interface{})
			names := make([]interface{}, len(friends))
			for i, f := range friends {
				names[i] = f.(map[string]interface{})["name"]
			}
			Expect(names).To(ConsistOf("Luke Skywalker", "Han Solo", "Leia Organa"))

			for _, f := range friends {
				entry := f.(map[string]interface{})
				if entry["name"] == "Luke Skywalker" {
					Expect(entry["homePlanet"]).To(Equal("Tatooine"))
				}
				if entry["name"] == "Han Solo" {
					// Han Solo has no declared home planet in this fixture.
					Expect(entry["homePlanet"]).To(BeNil())
				}
			}
		})

		It("looks up a human by id", func() {
			resp := run(queryDoc(argField("human", []ast.Argument{strArg("id", "1000")},
				selField("name"),
			)), nil)

			Expect(resp["data"]).To(Equal(map[string]interface{}{
				"human": map[string]interface{}{"name": "Luke Skywalker"},
			}))
		})

		It("returns a null human for an unknown id rather than aborting", func() {
			resp := run(queryDoc(argField("human", []ast.Argument{strArg("id", "not-a-real-id")},
				selField("name"),
			)), nil)

			Expect(resp["errors"]).To(BeNil())
			Expect(resp["data"]).To(Equal(map[string]interface{}{"human": nil}))
		})

		It("reuses a named fragment across two aliased selections", func() {
			doc := &ast.Document{Definitions: []ast.Definition{
				&ast.OperationDefinition{Type: ast.OperationTypeQuery, SelectionSet: []ast.Selection{
					aliasField("luke", "human", []ast.Argument{strArg("id", "1000")}, &ast.FragmentSpread{Name: "H"}),
					aliasField("leia", "human", []ast.Argument{strArg("id", "1003")}, &ast.FragmentSpread{Name: "H"}),
				}},
				&ast.FragmentDefinition{Name: "H", TypeCondition: "Human", SelectionSet: []ast.Selection{
					selField("name"),
					selField("homePlanet"),
				}},
			}}

			resp := run(doc, nil)
			Expect(resp["errors"]).To(BeNil())
			Expect(resp["data"]).To(Equal(map[string]interface{}{
				"luke": map[string]interface{}{"name": "Luke Skywalker", "homePlanet": "Tatooine"},
				"leia": map[string]interface{}{"name": "Leia Organa", "homePlanet": "Alderaan"},
			}))
		})

		It("emits top-level keys in selection order even though siblings resolve concurrently", func() {
			resp := executor.Execute(executor.Params{
				Schema: fixture.schema,
				Document: queryDoc(
					aliasField("leia", "human", []ast.Argument{strArg("id", "1003")}, selField("name")),
					aliasField("luke", "human", []ast.Argument{strArg("id", "1000")}, selField("name")),
					selField("hero", selField("name")),
				),
			})

			data, ok := resp.Field("data")
			Expect(ok).To(BeTrue())
			entries := data.Entries()
			keys := make([]string, len(entries))
			for i, e := range entries {
				keys[i] = e.Key
			}
			Expect(keys).To(Equal([]string{"leia", "luke", "hero"}))
		})
	})

	Describe("operation selection", func() {
		twoOps := func() *ast.Document {
			return &ast.Document{Definitions: []ast.Definition{
				&ast.OperationDefinition{Type: ast.OperationTypeQuery, Name: "First", SelectionSet: []ast.Selection{
					selField("hero", selField("name")),
				}},
				&ast.OperationDefinition{Type: ast.OperationTypeQuery, Name: "Second", SelectionSet: []ast.Selection{
					argField("human", []ast.Argument{strArg("id", "1000")}, selField("name")),
				}},
			}}
		}

		It("rejects a multi-operation document with no operation name", func() {
			resp := run(twoOps(), nil)
			Expect(resp["data"]).To(BeNil())
			errs := resp["errors"].([]interface{})
			Expect(errs[0].(map[string]interface{})["message"]).To(
				Equal("Must provide an operation name if the document contains multiple operations."))
		})

		It("runs the operation the caller named", func() {
			resp := toGo(executor.Execute(executor.Params{
				Schema:        fixture.schema,
				Document:      twoOps(),
				OperationName: "Second",
			})).(map[string]interface{})

			Expect(resp["errors"]).To(BeNil())
			Expect(resp["data"]).To(Equal(map[string]interface{}{
				"human": map[string]interface{}{"name": "Luke Skywalker"},
			}))
		})

		It("rejects an operation name the document does not define", func() {
			resp := toGo(executor.Execute(executor.Params{
				Schema:        fixture.schema,
				Document:      twoOps(),
				OperationName: "Third",
			})).(map[string]interface{})

			Expect(resp["data"]).To(BeNil())
			errs := resp["errors"].([]interface{})
			Expect(errs[0].(map[string]interface{})["message"]).To(Equal("Unknown operation named `Third`."))
		})

		It("rejects a subscription operation", func() {
			doc := &ast.Document{Definitions: []ast.Definition{
				&ast.OperationDefinition{Type: ast.OperationTypeSubscription, SelectionSet: []ast.Selection{
					selField("hero", selField("name")),
				}},
			}}
			resp := run(doc, nil)
			Expect(resp["data"]).To(BeNil())
			errs := resp["errors"].([]interface{})
			Expect(errs[0].(map[string]interface{})["message"]).To(Equal("Schema is not configured for subscriptions."))
		})
	})

	Describe("mutating", func() {
		It("resolves a mutation's top-level field sequentially and returns the updated value", func() {
			vars := map[string]graphql.Value{
				"id":   graphql.String("1000"),
				"name": graphql.String("Red Five"),
			}
			resp := run(mutationDoc(argField("updateHumanName", []ast.Argument{
				varArg("id", "id"),
				varArg("name", "name"),
			},
				selField("human", selField("name")),
				selField("error"),
			)), vars)

			Expect(resp["errors"]).To(BeNil())
			Expect(resp["data"]).To(Equal(map[string]interface{}{
				"updateHumanName": map[string]interface{}{
					"human": map[string]interface{}{"name": "Red Five"},
					"error": nil,
				},
			}))
			Expect(fixture.humans[1000].name).To(Equal("Red Five"))
		})

		It("reports a domain failure through the payload's error field, not the response errors list", func() {
			vars := map[string]graphql.Value{
				"id":   graphql.String("9999"),
				"name": graphql.String("Nobody"),
			}
			resp := run(mutationDoc(argField("updateHumanName", []ast.Argument{
				varArg("id", "id"),
				varArg("name", "name"),
			},
				selField("human", selField("name")),
				selField("error"),
			)), vars)

			Expect(resp["errors"]).To(BeNil())
			data := resp["data"].(map[string]interface{})
			payload := data["updateHumanName"].(map[string]interface{})
			Expect(payload["human"]).To(BeNil())
			Expect(payload["error"]).To(Equal("No human with id 9999"))
		})
	})

	Describe("bounded concurrency", func() {
		It("produces the same result when root fields outnumber the worker pool", func() {
			pool := concurrent.NewWorkerPoolExecutor(2)
			defer pool.Shutdown()

			resp := toGo(executor.Execute(executor.Params{
				Schema: fixture.schema,
				Document: queryDoc(
					aliasField("r2", "hero", nil, selField("name"), selField("friends", selField("name"))),
					aliasField("luke", "human", []ast.Argument{strArg("id", "1000")}, selField("name")),
					aliasField("leia", "human", []ast.Argument{strArg("id", "1003")}, selField("name")),
				),
				Executor: pool,
			})).(map[string]interface{})

			Expect(resp["errors"]).To(BeNil())
			data := resp["data"].(map[string]interface{})
			Expect(data["r2"].(map[string]interface{})["name"]).To(Equal("R2-D2"))
			Expect(data["r2"].(map[string]interface{})["friends"].([]interface{})).To(HaveLen(3))
		})
	})

	Describe("errors", func() {
		It("aborts the whole operation with the exact message when a referenced variable is missing", func() {
			resp := run(queryDoc(argField("human", []ast.Argument{varArg("id", "id")},
				selField("name"),
			)), nil)

			Expect(resp["data"]).To(BeNil())
			errs := resp["errors"].([]interface{})
			Expect(errs).To(HaveLen(1))
			Expect(errs[0].(map[string]interface{})["message"]).To(Equal("Missing variable `id`"))
		})

		It("aborts with an argument error when an enum argument names an undeclared value", func() {
			resp := run(queryDoc(argField("hero", []ast.Argument{strArg("episode", "DEATH_STAR")},
				selField("name"),
			)), nil)

			Expect(resp["data"]).To(BeNil())
			errs := resp["errors"].([]interface{})
			Expect(errs).To(HaveLen(1))
			Expect(errs[0].(map[string]interface{})["message"]).To(ContainSubstring("Argument `episode`"))
		})

		It("aborts with a validation error when a selection names a field the type does not declare", func() {
			resp := run(queryDoc(selField("hero",
				selField("favoriteColor"),
			)), nil)

			Expect(resp["data"]).To(BeNil())
			errs := resp["errors"].([]interface{})
			Expect(errs).To(HaveLen(1))
			Expect(errs[0].(map[string]interface{})["message"]).To(ContainSubstring("favoriteColor"))
		})

	})

	Describe("introspection", func() {
		It("answers __schema without panicking, listing every named type including the root operations", func() {
			resp := run(queryDoc(selField("__schema",
				selField("queryType", selField("name")),
				selField("types", selField("name")),
			)), nil)

			Expect(resp["errors"]).To(BeNil())
			data := resp["data"].(map[string]interface{})
			schemaVal := data["__schema"].(map[string]interface{})
			Expect(schemaVal["queryType"].(map[string]interface{})["name"]).To(Equal("Query"))

			types := schemaVal["types"].([]interface{})
			var names []interface{}
			for _, t := range types {
				names = append(names, t.(map[string]interface{})["name"])
			}
			Expect(names).To(ContainElements("Query", "Mutation", "Human", "Droid", "Character", "Episode"))
		})

		It("describes a named type by its introspection kind", func() {
			resp := run(queryDoc(argField("__type", []ast.Argument{strArg("name", "Human")},
				selField("name"),
				selField("kind"),
			)), nil)

			Expect(resp["errors"]).To(BeNil())
			data := resp["data"].(map[string]interface{})
			typ := data["__type"].(map[string]interface{})
			Expect(typ["name"]).To(Equal("Human"))
			Expect(typ["kind"]).To(Equal("OBJECT"))
		})
	})
})
