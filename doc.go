// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

/*
Package graphqldoc renders static, cross-linked HTML documentation from a
GraphQL schema.

A schema is obtained by running the introspection query against an endpoint,
by reading a saved introspection result or by parsing SDL. Every named type
gets its own page with a "Used by" section listing the fields, input fields
and unions or interfaces referencing it. An index page, a stylesheet and a
client side search over search-index.json complete the output.

Generate documentation from a saved introspection result:

	rt := graphqldoc.NewLocalRuntime(nil)
	report, err := graphqldoc.Generate(ctx, rt, graphqldoc.Options{
		SchemaName: "Example API",
		SchemaPath: "schema.json",
		Output:     "docs",
	})
	if err != nil {
		return err
	}

	fmt.Println(report.Documents, "documents written")

Query a live endpoint:

	report, err := graphqldoc.Generate(ctx, rt, graphqldoc.Options{
		Endpoint: "https://api.example.com/graphql",
		Headers:  map[string]string{"Authorization": "Bearer token"},
		Output:   "docs",
	})

Render single documents in memory:

	schema, err := graphqldoc.ParseIntrospection(data)
	if err != nil {
		return err
	}

	renderer, err := graphqldoc.NewRenderer(schema, graphqldoc.RendererOptions{
		Today: time.Now(),
	})
	if err != nil {
		return err
	}

	page, err := renderer.RenderType(schema.FindTypeByName("User"))

All I/O goes through the Runtime interface, so the generator can be hosted
by another process or driven by an in-memory fake.
*/
package graphqldoc
