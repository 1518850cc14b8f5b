// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentKindsHavePrefixAndTemplate(t *testing.T) {
	t.Parallel()

	prefixes := make(map[string]Kind)
	for _, kind := range DocumentKinds {
		prefix := kind.Prefix()
		require.NotEmpty(t, prefix, kind.String())
		_, dup := prefixes[prefix]
		assert.False(t, dup, "duplicate prefix %q", prefix)
		prefixes[prefix] = kind

		name, ok := kindTemplates[kind]
		require.True(t, ok, "no template for %s", kind)
		_, ok = BuiltinTemplateFileName(name)
		assert.True(t, ok, "template %q is not built in", name)
		assert.False(t, kind.IsWrapper())
	}

	assert.Len(t, prefixes, 6)
	assert.ElementsMatch(t,
		[]string{"object", "input_object", "union", "enum", "scalar", "interface"},
		[]string{KindObject.Prefix(), KindInputObject.Prefix(), KindUnion.Prefix(), KindEnum.Prefix(), KindScalar.Prefix(), KindInterface.Prefix()},
	)
}

func TestWrapperKindsHaveNoTemplate(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{KindList, KindNonNull} {
		assert.True(t, kind.IsWrapper())
		assert.NotContains(t, DocumentKinds, kind)
		_, ok := kindTemplates[kind]
		assert.False(t, ok)
	}
}

func TestKindUnmarshalText(t *testing.T) {
	t.Parallel()

	var kind Kind
	require.NoError(t, kind.UnmarshalText([]byte("INPUT_OBJECT")))
	assert.Equal(t, KindInputObject, kind)
	assert.Equal(t, "INPUT_OBJECT", kind.String())

	require.Error(t, kind.UnmarshalText([]byte("input_object")))
	assert.Equal(t, "Kind(0)", KindInvalid.String())
}

func TestDocumentName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "input_object.CreatePostInput.html", DocumentName(KindInputObject, "CreatePostInput"))
	assert.Equal(t, "object.User.html", DocumentName(KindObject, "User"))
}
