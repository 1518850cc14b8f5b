// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixtureRenderer(t *testing.T, overrides map[string]string) (*Schema, *Renderer) {
	t.Helper()

	schema := loadFixtureSchema(t)
	renderer, err := NewRenderer(schema, RendererOptions{
		SchemaName: "Example API",
		Today:      fixtureToday(t),
		Overrides:  overrides,
	})
	require.NoError(t, err)
	return schema, renderer
}

func TestRenderTypeRef(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ref  *TypeRef
		want string
	}{
		{"named", named(KindObject, "User"), `<a class="object" href="object.User.html">User</a>`},
		{"list of non null", list(nonNull(named(KindObject, "User"))), `[<a class="object" href="object.User.html">User</a>!]`},
		{"non null list", nonNull(list(named(KindInputObject, "In"))), `[<a class="input_object" href="input_object.In.html">In</a>]!`},
		{"nil", nil, "?"},
		{"non null without inner type", nonNull(nil), "?!"},
		{"list without inner type", list(nil), "[?]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, renderTypeRef(tc.ref))
		})
	}
}

func TestRenderDocblock(t *testing.T) {
	t.Parallel()

	assert.Empty(t, renderDocblock("  \n"))
	assert.Contains(t, renderDocblock("Can ~~break~~ manage."), "<del>break</del>")
	assert.Contains(t, renderDocblock("| a | b |\n| --- | --- |\n| 1 | 2 |"), "<table>")
	assert.Contains(t, renderDocblock("**bold**\r\nnext"), "<strong>bold</strong>")
}

func TestRenderTypeObject(t *testing.T) {
	t.Parallel()

	schema, renderer := newFixtureRenderer(t, nil)
	page, err := renderer.RenderType(schema.FindTypeByName("User"))
	require.NoError(t, err)

	assertContainsAll(t, page,
		"<!DOCTYPE html>",
		"<title>User | Example API</title>",
		`<a class="home" href="index.html">Example API</a>`,
		`<dt id="field.posts">`,
		`[<a class="object" href="object.Post.html">Post</a>!]!`,
		`<a class="interface" href="interface.Node.html">Node</a>`,
		"<h2>Used by</h2>",
		`href="object.Post.html#field.author"`,
		`href="object.Query.html#field.user"`,
		`href="union.SearchResult.html"`,
		`<time datetime="2024-03-05">5 Mar 2024</time>`,
	)
	assert.True(t, strings.HasSuffix(page, "</html>\n"))
}

func TestRenderTypeUsesFollowSortedOrder(t *testing.T) {
	t.Parallel()

	schema, renderer := newFixtureRenderer(t, nil)
	page, err := renderer.RenderType(schema.FindTypeByName("User"))
	require.NoError(t, err)

	order := []string{"#field.author", "#field.user", "interface.Node.html\"", "union.SearchResult.html"}
	last := strings.Index(page, "<h2>Used by</h2>")
	require.GreaterOrEqual(t, last, 0)
	for _, needle := range order {
		pos := strings.Index(page[last:], needle)
		require.GreaterOrEqual(t, pos, 0, needle)
		last += pos
	}
}

func TestRenderTypeDescriptionsAreMarkdown(t *testing.T) {
	t.Parallel()

	schema, renderer := newFixtureRenderer(t, nil)

	query, err := renderer.RenderType(schema.FindTypeByName("Query"))
	require.NoError(t, err)
	assertContainsAll(t, query,
		"<strong>Example API</strong>",
		`<span class="kind">root type</span>`,
		`<a class="union" href="union.SearchResult.html">SearchResult</a>`,
		"limit: ",
		"= 10",
	)

	post, err := renderer.RenderType(schema.FindTypeByName("Post"))
	require.NoError(t, err)
	assertContainsAll(t, post, "<table>", `class="deprecated"`, "Deprecated: Use")
}

func TestRenderTypeEnumAndInput(t *testing.T) {
	t.Parallel()

	schema, renderer := newFixtureRenderer(t, nil)

	role, err := renderer.RenderType(schema.FindTypeByName("Role"))
	require.NoError(t, err)
	assertContainsAll(t, role,
		`<dt id="enum_value.SUPER_ADMIN" class="deprecated">`,
		"Deprecated: Use ADMIN.",
		"<del>break</del>",
		`href="object.User.html#field.role"`,
	)

	input, err := renderer.RenderType(schema.FindTypeByName("CreatePostInput"))
	require.NoError(t, err)
	assertContainsAll(t, input,
		`<dt id="input_field.tags">`,
		"= []",
		`href="object.Mutation.html#field.createPost"`,
	)

	id, err := renderer.RenderType(schema.FindTypeByName("ID"))
	require.NoError(t, err)
	assertContainsAll(t, id, `href="input_object.CreatePostInput.html#input_field.authorId"`)
}

func TestRenderTypeRejectsWrapperKinds(t *testing.T) {
	t.Parallel()

	_, renderer := newFixtureRenderer(t, nil)
	for _, kind := range []Kind{KindList, KindNonNull, KindInvalid} {
		_, err := renderer.RenderType(&FullType{Kind: kind, Name: "X"})
		require.ErrorIs(t, err, ErrWrapperKind)
	}
}

func TestRenderIndex(t *testing.T) {
	t.Parallel()

	_, renderer := newFixtureRenderer(t, nil)
	page, err := renderer.RenderIndex()
	require.NoError(t, err)

	assertContainsAll(t, page,
		"<title>Example API</title>",
		"<h1>Example API</h1>",
		"<dt>Query</dt>",
		"<dt>Mutation</dt>",
		`<a class="enum" href="enum.Role.html">Role</a>`,
		`<a class="input_object" href="input_object.CreatePostInput.html">CreatePostInput</a>`,
		`<a class="scalar" href="scalar.DateTime.html">DateTime</a>`,
	)
	assert.NotContains(t, page, "<dt>Subscription</dt>")

	// Groups are sorted by name.
	assert.Less(t, strings.Index(page, "object.Mutation.html\">Mutation</a></li>"), strings.Index(page, "object.Post.html\">Post</a></li>"))
}

func TestRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	schema, first := newFixtureRenderer(t, nil)
	_, second := newFixtureRenderer(t, nil)

	for i := range schema.Types {
		a, err := first.RenderType(&schema.Types[i])
		require.NoError(t, err)
		b, err := second.RenderType(second.schema.FindTypeByName(schema.Types[i].Name))
		require.NoError(t, err)
		assert.Equal(t, a, b, schema.Types[i].Name)

		again, err := first.RenderType(&schema.Types[i])
		require.NoError(t, err)
		assert.Equal(t, a, again)
	}
}

func TestRenderDefaultSchemaName(t *testing.T) {
	t.Parallel()

	renderer, err := NewRenderer(loadFixtureSchema(t), RendererOptions{Today: fixtureToday(t)})
	require.NoError(t, err)

	page, err := renderer.RenderIndex()
	require.NoError(t, err)
	assert.Contains(t, page, "<title>GraphQL Schema</title>")
}

func TestRenderTemplateOverride(t *testing.T) {
	t.Parallel()

	schema, renderer := newFixtureRenderer(t, map[string]string{
		templateScalarName: `<p>custom {{ .Type.Name }} used {{ len .Uses }} times</p>`,
	})

	page, err := renderer.RenderType(schema.FindTypeByName("DateTime"))
	require.NoError(t, err)
	assert.Contains(t, page, "<p>custom DateTime used 1 times</p>")
	assert.Contains(t, page, "<!DOCTYPE html>")
}

func TestRenderTemplateErrors(t *testing.T) {
	t.Parallel()

	_, err := NewRenderer(loadFixtureSchema(t), RendererOptions{
		Overrides: map[string]string{templateIndexName: "{{ .Broken"},
	})
	require.ErrorIs(t, err, ErrParseTemplate)

	schema, renderer := newFixtureRenderer(t, map[string]string{
		templateEnumName: "{{ .Missing.Field }}",
	})
	_, err = renderer.RenderType(schema.FindTypeByName("Role"))
	require.ErrorIs(t, err, ErrExecuteTemplate)
}

func TestBuiltinTemplates(t *testing.T) {
	t.Parallel()

	names := BuiltinTemplateNames()
	assert.Len(t, names, len(builtInTemplateFiles))
	assert.IsIncreasing(t, names)

	for _, name := range names {
		text, err := BuiltinTemplate(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, text, name)
	}

	_, err := BuiltinTemplate("missing")
	require.ErrorIs(t, err, ErrUnknownBuiltinTemplate)

	fileName, ok := BuiltinTemplateFileName(" Layout ")
	assert.True(t, ok)
	assert.Equal(t, "layout.html.gotmpl", fileName)
}
