// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixtureSDL(t *testing.T) *Schema {
	t.Helper()

	schema, err := ParseSDL("schema.graphql", readFixture(t, "schema.graphql"))
	require.NoError(t, err)
	return schema
}

func TestParseSDLBuildsIntrospectionModel(t *testing.T) {
	t.Parallel()

	schema := loadFixtureSDL(t)
	assert.Equal(t, "Query", schema.QueryTypeName())
	assert.Equal(t, "Mutation", schema.MutationTypeName())
	assert.Empty(t, schema.SubscriptionTypeName())

	query := schema.FindTypeByName("Query")
	require.NotNil(t, query)
	assert.Equal(t, "The query root of the **Example API**.", query.Description)
	for _, field := range query.Fields {
		assert.NotEqual(t, "__schema", field.Name)
		assert.NotEqual(t, "__type", field.Name)
	}

	search := query.Fields[1]
	assert.Equal(t, "search", search.Name)
	assert.Equal(t, "[SearchResult!]!", plainTypeRef(search.Type))
	require.Len(t, search.Args, 2)
	require.NotNil(t, search.Args[1].DefaultValue)
	assert.Equal(t, "10", *search.Args[1].DefaultValue)

	user := schema.FindTypeByName("User")
	require.NotNil(t, user)
	require.Len(t, user.Interfaces, 1)
	assert.Equal(t, TypeRef{Kind: KindInterface, Name: "Node"}, user.Interfaces[0])

	node := schema.FindTypeByName("Node")
	require.NotNil(t, node)
	assert.Equal(t, KindInterface, node.Kind)
	assert.Equal(t, []string{"Post", "User"}, refNames(node.PossibleTypes))

	union := schema.FindTypeByName("SearchResult")
	require.NotNil(t, union)
	assert.Equal(t, []string{"User", "Post"}, refNames(union.PossibleTypes))

	role := schema.FindTypeByName("Role")
	require.NotNil(t, role)
	require.Len(t, role.EnumValues, 3)
	assert.True(t, role.EnumValues[2].IsDeprecated)
	assert.Equal(t, "Use ADMIN.", role.EnumValues[2].DeprecationReason)

	input := schema.FindTypeByName("CreatePostInput")
	require.NotNil(t, input)
	assert.Equal(t, KindInputObject, input.Kind)
	require.NotNil(t, input.InputFields[2].DefaultValue)
	assert.Equal(t, "[]", *input.InputFields[2].DefaultValue)

	dateTime := schema.FindTypeByName("DateTime")
	require.NotNil(t, dateTime)
	assert.Equal(t, KindScalar, dateTime.Kind)
}

func TestParseSDLUsesMatchIntrospection(t *testing.T) {
	t.Parallel()

	fromSDL := loadFixtureSDL(t)
	fromJSON := loadFixtureSchema(t)

	for _, name := range []string{"User", "Post", "Role", "CreatePostInput", "SearchResult", "Node", "DateTime"} {
		assert.Equal(t,
			useSummary(fromJSON.FindUses(fromJSON.FindTypeByName(name))),
			useSummary(fromSDL.FindUses(fromSDL.FindTypeByName(name))),
			name,
		)
	}
}

func TestParseSDLDefaultDeprecationReason(t *testing.T) {
	t.Parallel()

	schema, err := ParseSDL("inline", `type Query { old: String @deprecated }`)
	require.NoError(t, err)

	old := schema.FindTypeByName("Query").Fields[0]
	assert.True(t, old.IsDeprecated)
	assert.Equal(t, "No longer supported", old.DeprecationReason)
}

func TestParseSDLInvalid(t *testing.T) {
	t.Parallel()

	_, err := ParseSDL("broken.graphql", `type Query { user: Missing }`)
	require.ErrorIs(t, err, ErrDecodeSchema)
}

func TestIsSDLPath(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]bool{
		"schema.graphql":      true,
		"dir/schema.GRAPHQLS": true,
		"schema.gql":          true,
		"schema.json":         false,
		"graphql":             false,
	} {
		assert.Equal(t, want, IsSDLPath(path), path)
	}
}

func refNames(refs []TypeRef) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
	}

	return names
}

// plainTypeRef renders ref in GraphQL notation without links.
func plainTypeRef(ref *TypeRef) string {
	switch {
	case ref == nil:
		return "?"
	case ref.Kind == KindList:
		return "[" + plainTypeRef(ref.OfType) + "]"
	case ref.Kind == KindNonNull:
		return plainTypeRef(ref.OfType) + "!"
	default:
		return ref.Name
	}
}
