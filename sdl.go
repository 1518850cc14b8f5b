// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// defaultDeprecationReason matches the default of the @deprecated directive.
const defaultDeprecationReason = "No longer supported"

// sdlExtensions lists file extensions loaded as GraphQL SDL instead of JSON.
var sdlExtensions = []string{".graphql", ".graphqls", ".gql"}

// IsSDLPath reports whether path names a GraphQL SDL file.
func IsSDLPath(path string) bool {
	return slices.Contains(sdlExtensions, strings.ToLower(filepath.Ext(path)))
}

// ParseSDL parses GraphQL schema definition language into the same model an
// introspection query would return. Types are ordered by name.
func ParseSDL(name, input string) (*Schema, error) {
	parsed, gqlErr := gqlparser.LoadSchema(&ast.Source{Name: name, Input: input})
	if gqlErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, gqlErr)
	}

	converter := sdlConverter{schema: parsed}
	return converter.convert(), nil
}

// sdlConverter turns a validated gqlparser schema into introspection shapes.
type sdlConverter struct {
	schema *ast.Schema
}

func (converter sdlConverter) convert() *Schema {
	names := make([]string, 0, len(converter.schema.Types))
	for name := range converter.schema.Types {
		names = append(names, name)
	}

	sort.Strings(names)

	out := &Schema{
		QueryType:        sdlRoot(converter.schema.Query),
		MutationType:     sdlRoot(converter.schema.Mutation),
		SubscriptionType: sdlRoot(converter.schema.Subscription),
		Types:            make([]FullType, 0, len(names)),
	}

	for _, name := range names {
		out.Types = append(out.Types, converter.fullType(converter.schema.Types[name]))
	}

	return out
}

func sdlRoot(def *ast.Definition) *RootTypeRef {
	if def == nil {
		return nil
	}

	return &RootTypeRef{Name: def.Name}
}

func (converter sdlConverter) fullType(def *ast.Definition) FullType {
	typ := FullType{
		Kind:        sdlKind(def.Kind),
		Name:        def.Name,
		Description: def.Description,
	}

	switch def.Kind {
	case ast.Object, ast.Interface:
		typ.Fields = make([]Field, 0, len(def.Fields))
		for _, field := range def.Fields {
			if strings.HasPrefix(field.Name, "__") {
				continue
			}

			typ.Fields = append(typ.Fields, converter.field(field))
		}

		typ.Interfaces = make([]TypeRef, 0, len(def.Interfaces))
		for _, name := range def.Interfaces {
			typ.Interfaces = append(typ.Interfaces, converter.namedRef(name))
		}

		if def.Kind == ast.Interface {
			possible := converter.schema.GetPossibleTypes(def)
			typ.PossibleTypes = make([]TypeRef, 0, len(possible))
			for _, member := range possible {
				typ.PossibleTypes = append(typ.PossibleTypes, converter.namedRef(member.Name))
			}

			slices.SortFunc(typ.PossibleTypes, func(a, b TypeRef) int {
				return strings.Compare(a.Name, b.Name)
			})
		}
	case ast.Union:
		typ.PossibleTypes = make([]TypeRef, 0, len(def.Types))
		for _, name := range def.Types {
			typ.PossibleTypes = append(typ.PossibleTypes, converter.namedRef(name))
		}
	case ast.Enum:
		typ.EnumValues = make([]EnumValue, 0, len(def.EnumValues))
		for _, value := range def.EnumValues {
			reason, deprecated := sdlDeprecation(value.Directives)
			typ.EnumValues = append(typ.EnumValues, EnumValue{
				Name:              value.Name,
				Description:       value.Description,
				IsDeprecated:      deprecated,
				DeprecationReason: reason,
			})
		}
	case ast.InputObject:
		typ.InputFields = make([]InputValue, 0, len(def.Fields))
		for _, field := range def.Fields {
			typ.InputFields = append(typ.InputFields, InputValue{
				Name:         field.Name,
				Description:  field.Description,
				Type:         converter.typeRef(field.Type),
				DefaultValue: sdlDefault(field.DefaultValue),
			})
		}
	}

	return typ
}

func (converter sdlConverter) field(field *ast.FieldDefinition) Field {
	reason, deprecated := sdlDeprecation(field.Directives)
	out := Field{
		Name:              field.Name,
		Description:       field.Description,
		Args:              make([]InputValue, 0, len(field.Arguments)),
		Type:              converter.typeRef(field.Type),
		IsDeprecated:      deprecated,
		DeprecationReason: reason,
	}

	for _, arg := range field.Arguments {
		out.Args = append(out.Args, InputValue{
			Name:         arg.Name,
			Description:  arg.Description,
			Type:         converter.typeRef(arg.Type),
			DefaultValue: sdlDefault(arg.DefaultValue),
		})
	}

	return out
}

// typeRef converts a gqlparser type into nested List/NonNull references.
func (converter sdlConverter) typeRef(typ *ast.Type) *TypeRef {
	if typ == nil {
		return nil
	}

	var ref *TypeRef
	if typ.Elem != nil {
		ref = &TypeRef{Kind: KindList, OfType: converter.typeRef(typ.Elem)}
	} else {
		named := converter.namedRef(typ.NamedType)
		ref = &named
	}

	if typ.NonNull {
		return &TypeRef{Kind: KindNonNull, OfType: ref}
	}

	return ref
}

func (converter sdlConverter) namedRef(name string) TypeRef {
	kind := KindScalar
	if def, ok := converter.schema.Types[name]; ok {
		kind = sdlKind(def.Kind)
	}

	return TypeRef{Kind: kind, Name: name}
}

func sdlKind(kind ast.DefinitionKind) Kind {
	var out Kind
	if err := out.UnmarshalText([]byte(kind)); err != nil {
		return KindScalar
	}

	return out
}

func sdlDefault(value *ast.Value) *string {
	if value == nil {
		return nil
	}

	text := value.String()
	return &text
}

// sdlDeprecation returns the @deprecated reason and whether the directive is present.
func sdlDeprecation(directives ast.DirectiveList) (string, bool) {
	directive := directives.ForName("deprecated")
	if directive == nil {
		return "", false
	}

	if arg := directive.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		return arg.Value.Raw, true
	}

	return defaultDeprecationReason, true
}
