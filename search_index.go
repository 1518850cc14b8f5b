// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"encoding/json"
	"strings"
)

const (
	searchKindField      = "field"
	searchKindEnumValue  = "enum_value"
	searchKindInputField = "input_field"
)

// SearchIndex is the flat list consumed by the client side search script.
type SearchIndex []SearchIndexItem

// SearchIndexItem is one searchable schema element.
// ParentName and ParentKind are empty for top-level types.
type SearchIndexItem struct {
	Keys       []string
	Name       string
	Kind       string
	ParentName string
	ParentKind string
}

// BuildSearchIndex flattens the schema in declaration order.
// Wrapper kinds are skipped.
func BuildSearchIndex(schema *Schema) SearchIndex {
	index := make(SearchIndex, 0, len(schema.Types))
	for i := range schema.Types {
		typ := &schema.Types[i]
		if typ.Kind.IsWrapper() || typ.Kind == KindInvalid {
			continue
		}

		kind := typ.Kind.Prefix()
		index = append(index, SearchIndexItem{
			Keys: []string{strings.ToLower(typ.Name)},
			Name: typ.Name,
			Kind: kind,
		})

		for _, field := range typ.Fields {
			index = append(index, childItem(field.Name, searchKindField, typ.Name, kind))
		}

		for _, value := range typ.EnumValues {
			item := childItem(value.Name, searchKindEnumValue, typ.Name, kind)
			item.Keys = append(item.Keys, strings.ReplaceAll(item.Keys[0], "_", ""))
			index = append(index, item)
		}

		for _, inputField := range typ.InputFields {
			index = append(index, childItem(inputField.Name, searchKindInputField, typ.Name, kind))
		}
	}

	return index
}

func childItem(name, kind, parentName, parentKind string) SearchIndexItem {
	return SearchIndexItem{
		Keys:       []string{strings.ToLower(name)},
		Name:       name,
		Kind:       kind,
		ParentName: parentName,
		ParentKind: parentKind,
	}
}

// HasParent reports whether the item belongs to a parent type.
func (item SearchIndexItem) HasParent() bool {
	return item.ParentName != "" && item.ParentKind != ""
}

// MarshalJSON encodes the item as a compact array:
// [keys, name, kind] or [keys, name, kind, parentName, parentKind].
func (item SearchIndexItem) MarshalJSON() ([]byte, error) {
	keys := item.Keys
	if keys == nil {
		keys = []string{}
	}

	values := []any{keys, item.Name, item.Kind}
	if item.HasParent() {
		values = append(values, item.ParentName, item.ParentKind)
	}

	return json.Marshal(values)
}

// MarshalJSON encodes an empty index as [] instead of null.
func (index SearchIndex) MarshalJSON() ([]byte, error) {
	if index == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]SearchIndexItem(index))
}
