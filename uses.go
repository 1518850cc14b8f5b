// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"cmp"
	"slices"
)

// UseKind tells where a type reference occurs.
type UseKind int

const (
	// UseField is a reference from a field result type or one of its arguments.
	UseField UseKind = iota
	// UseInputField is a reference from an input object field.
	UseInputField
	// UsePossibleType is a reference from a union or interface possible type list.
	UsePossibleType
)

// String returns the tag used by templates to tell use kinds apart.
func (k UseKind) String() string {
	switch k {
	case UseField:
		return "field"
	case UseInputField:
		return "input_field"
	case UsePossibleType:
		return "possible_type"
	default:
		return "unknown"
	}
}

// TypeUse records one place in the schema that references a type.
// Field is set for UseField, InputField for UseInputField.
type TypeUse struct {
	Kind       UseKind
	Type       *FullType
	Field      *Field
	InputField *InputValue
}

// MemberName returns the referencing field or input field name, if any.
func (u TypeUse) MemberName() string {
	switch {
	case u.Field != nil:
		return u.Field.Name
	case u.InputField != nil:
		return u.InputField.Name
	default:
		return ""
	}
}

// FindUses scans the whole schema for references to target.
// The result is sorted by use kind, referencing type name and member name.
func (s *Schema) FindUses(target *FullType) []TypeUse {
	if target == nil {
		return nil
	}

	var uses []TypeUse
	for i := range s.Types {
		typ := &s.Types[i]

		for j := range typ.Fields {
			field := &typ.Fields[j]
			if fieldReferences(field, target.Name) {
				uses = append(uses, TypeUse{Kind: UseField, Type: typ, Field: field})
			}
		}

		for j := range typ.InputFields {
			inputField := &typ.InputFields[j]
			if inputField.Type.References(target.Name) {
				uses = append(uses, TypeUse{Kind: UseInputField, Type: typ, InputField: inputField})
			}
		}

		for j := range typ.PossibleTypes {
			if typ.PossibleTypes[j].References(target.Name) {
				uses = append(uses, TypeUse{Kind: UsePossibleType, Type: typ})
			}
		}
	}

	sortTypeUses(uses)
	return uses
}

// fieldReferences records at most one use per field: the result type is
// checked first, then arguments until the first match.
func fieldReferences(field *Field, name string) bool {
	if field.Type.References(name) {
		return true
	}

	for i := range field.Args {
		if field.Args[i].Type.References(name) {
			return true
		}
	}

	return false
}

// UsesIndex maps a type name to its sorted uses.
type UsesIndex map[string][]TypeUse

// BuildUsesIndex computes the uses of every type in one pass over the schema.
// For every name the result equals FindUses on the type with that name.
func (s *Schema) BuildUsesIndex() UsesIndex {
	index := make(UsesIndex)
	for i := range s.Types {
		typ := &s.Types[i]

		for j := range typ.Fields {
			field := &typ.Fields[j]
			names := referencedNames(nil, field.Type)
			for k := range field.Args {
				names = referencedNames(names, field.Args[k].Type)
			}

			for _, name := range uniqueNames(names) {
				index[name] = append(index[name], TypeUse{Kind: UseField, Type: typ, Field: field})
			}
		}

		for j := range typ.InputFields {
			inputField := &typ.InputFields[j]
			for _, name := range uniqueNames(referencedNames(nil, inputField.Type)) {
				index[name] = append(index[name], TypeUse{Kind: UseInputField, Type: typ, InputField: inputField})
			}
		}

		for j := range typ.PossibleTypes {
			for _, name := range uniqueNames(referencedNames(nil, &typ.PossibleTypes[j])) {
				index[name] = append(index[name], TypeUse{Kind: UsePossibleType, Type: typ})
			}
		}
	}

	for name := range index {
		sortTypeUses(index[name])
	}

	return index
}

// Lookup returns the uses of the named type.
func (index UsesIndex) Lookup(name string) []TypeUse {
	return index[name]
}

// referencedNames appends every name References would match along the wrapper chain.
func referencedNames(names []string, ref *TypeRef) []string {
	for ref != nil {
		if ref.Name != "" {
			names = append(names, ref.Name)
		}

		if !ref.Kind.IsWrapper() {
			break
		}

		ref = ref.OfType
	}

	return names
}

func uniqueNames(names []string) []string {
	if len(names) < 2 {
		return names
	}

	out := names[:0:0]
	for _, name := range names {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}

	return out
}

// sortTypeUses orders uses by (kind, type name, member name); ties keep scan order.
func sortTypeUses(uses []TypeUse) {
	slices.SortStableFunc(uses, func(a, b TypeUse) int {
		return cmp.Or(
			cmp.Compare(a.Kind, b.Kind),
			cmp.Compare(a.Type.Name, b.Type.Name),
			cmp.Compare(a.MemberName(), b.MemberName()),
		)
	})
}
