// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import "fmt"

// Kind is the category of a GraphQL type or type reference wrapper.
type Kind int

const (
	// KindInvalid is the zero value and marks a missing kind tag.
	KindInvalid Kind = iota
	// KindNonNull wraps a reference that can not be null.
	KindNonNull
	// KindList wraps a reference to a list of values.
	KindList
	// KindObject is an output object type.
	KindObject
	// KindInputObject is an input object type.
	KindInputObject
	// KindUnion is a union of object types.
	KindUnion
	// KindEnum is an enumeration type.
	KindEnum
	// KindScalar is a leaf scalar type.
	KindScalar
	// KindInterface is an interface type.
	KindInterface
)

// kindTags maps kinds to introspection tags and file name prefixes.
var kindTags = map[Kind]struct {
	tag    string
	prefix string
}{
	KindNonNull:     {"NON_NULL", "non_null"},
	KindList:        {"LIST", "list"},
	KindObject:      {"OBJECT", "object"},
	KindInputObject: {"INPUT_OBJECT", "input_object"},
	KindUnion:       {"UNION", "union"},
	KindEnum:        {"ENUM", "enum"},
	KindScalar:      {"SCALAR", "scalar"},
	KindInterface:   {"INTERFACE", "interface"},
}

// DocumentKinds lists every kind that is rendered into its own document.
var DocumentKinds = []Kind{
	KindObject,
	KindInputObject,
	KindUnion,
	KindEnum,
	KindScalar,
	KindInterface,
}

// String returns the introspection tag of the kind.
func (k Kind) String() string {
	if tags, ok := kindTags[k]; ok {
		return tags.tag
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Prefix returns the URL-safe file name prefix used for documents of this kind.
func (k Kind) Prefix() string {
	return kindTags[k].prefix
}

// IsWrapper reports whether the kind is List or NonNull.
func (k Kind) IsWrapper() bool {
	return k == KindList || k == KindNonNull
}

// MarshalText encodes the kind as its introspection tag.
func (k Kind) MarshalText() ([]byte, error) {
	tags, ok := kindTags[k]
	if !ok {
		return nil, fmt.Errorf("%w: invalid kind %d", ErrDecodeSchema, int(k))
	}

	return []byte(tags.tag), nil
}

// UnmarshalText decodes an introspection kind tag.
func (k *Kind) UnmarshalText(text []byte) error {
	value := string(text)
	for kind, tags := range kindTags {
		if tags.tag == value {
			*k = kind
			return nil
		}
	}

	return fmt.Errorf("unknown kind %q", value)
}

// DocumentName returns the output file name of the document for a named type.
func DocumentName(kind Kind, name string) string {
	return kind.Prefix() + "." + name + ".html"
}
