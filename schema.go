// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Schema is the root aggregate decoded from an introspection result.
// It is built once per run and only read afterwards.
type Schema struct {
	QueryType        *RootTypeRef `json:"queryType"`
	MutationType     *RootTypeRef `json:"mutationType"`
	SubscriptionType *RootTypeRef `json:"subscriptionType"`
	Types            []FullType   `json:"types"`
}

// RootTypeRef names one of the schema operation root types.
type RootTypeRef struct {
	Name string `json:"name"`
}

// TypeRef is a possibly wrapped reference to a named type.
type TypeRef struct {
	Kind   Kind     `json:"kind"`
	Name   string   `json:"name,omitempty"`
	OfType *TypeRef `json:"ofType,omitempty"`
}

// FullType is the complete definition of one named type.
type FullType struct {
	Kind          Kind         `json:"kind"`
	Name          string       `json:"name"`
	Description   string       `json:"description,omitempty"`
	Fields        []Field      `json:"fields,omitempty"`
	InputFields   []InputValue `json:"inputFields,omitempty"`
	Interfaces    []TypeRef    `json:"interfaces,omitempty"`
	EnumValues    []EnumValue  `json:"enumValues,omitempty"`
	PossibleTypes []TypeRef    `json:"possibleTypes,omitempty"`
}

// Field is one output field of an object or interface type.
type Field struct {
	Name              string       `json:"name"`
	Description       string       `json:"description,omitempty"`
	Args              []InputValue `json:"args"`
	Type              *TypeRef     `json:"type"`
	IsDeprecated      bool         `json:"isDeprecated"`
	DeprecationReason string       `json:"deprecationReason,omitempty"`
}

// InputValue is a field argument or an input object field.
type InputValue struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Type         *TypeRef `json:"type"`
	DefaultValue *string  `json:"defaultValue,omitempty"`
}

// EnumValue is one value of an enum type.
type EnumValue struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	IsDeprecated      bool   `json:"isDeprecated"`
	DeprecationReason string `json:"deprecationReason,omitempty"`
}

// introspectionResponse is the GraphQL response envelope around the schema.
type introspectionResponse struct {
	Data   *introspectionData `json:"data"`
	Schema *Schema            `json:"__schema"`
	Errors []responseError    `json:"errors"`
}

type introspectionData struct {
	Schema *Schema `json:"__schema"`
}

type responseError struct {
	Message string `json:"message"`
}

// ParseIntrospection decodes an introspection response body into a Schema.
// Both the full {"data":{"__schema":...}} response and a bare {"__schema":...}
// document are accepted.
func ParseIntrospection(data []byte) (*Schema, error) {
	var response introspectionResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	schema := response.Schema
	if response.Data != nil && response.Data.Schema != nil {
		schema = response.Data.Schema
	}

	if schema == nil {
		if len(response.Errors) > 0 {
			messages := make([]string, 0, len(response.Errors))
			for _, responseErr := range response.Errors {
				messages = append(messages, responseErr.Message)
			}

			return nil, fmt.Errorf("%w: %s", ErrQuery, strings.Join(messages, "; "))
		}

		return nil, fmt.Errorf("%w: missing data.__schema", ErrDecodeSchema)
	}

	if err := schema.checkShape(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	return schema, nil
}

// QueryTypeName returns the query root type name.
func (s *Schema) QueryTypeName() string {
	return rootName(s.QueryType)
}

// MutationTypeName returns the mutation root type name or empty string.
func (s *Schema) MutationTypeName() string {
	return rootName(s.MutationType)
}

// SubscriptionTypeName returns the subscription root type name or empty string.
func (s *Schema) SubscriptionTypeName() string {
	return rootName(s.SubscriptionType)
}

func rootName(ref *RootTypeRef) string {
	if ref == nil {
		return ""
	}

	return ref.Name
}

// FindType returns the first type named by ref in declaration order.
// Wrapper references without a name never match.
func (s *Schema) FindType(ref *TypeRef) *FullType {
	if ref == nil || ref.Name == "" {
		return nil
	}

	return s.FindTypeByName(ref.Name)
}

// FindTypeByName returns the first type with the given name in declaration order.
func (s *Schema) FindTypeByName(name string) *FullType {
	for i := range s.Types {
		if s.Types[i].Name == name {
			return &s.Types[i]
		}
	}

	return nil
}

// Unwrap follows List and NonNull wrappers and returns the named reference.
// It returns nil for a wrapper without an inner reference.
func (ref *TypeRef) Unwrap() *TypeRef {
	for ref != nil && ref.Kind.IsWrapper() {
		ref = ref.OfType
	}

	return ref
}

// References reports whether ref names the given type directly or through
// any number of List and NonNull wrappers.
func (ref *TypeRef) References(name string) bool {
	if ref == nil || name == "" {
		return false
	}

	if ref.Name == name {
		return true
	}

	if !ref.Kind.IsWrapper() {
		return false
	}

	return ref.OfType.References(name)
}

// checkShape reports required members missing from the decoded document.
func (s *Schema) checkShape() error {
	var errs []error
	if s.QueryType == nil || s.QueryType.Name == "" {
		errs = append(errs, errors.New("queryType.name: missing"))
	}

	if s.Types == nil {
		errs = append(errs, errors.New("types: missing"))
	}

	for i := range s.Types {
		typ := &s.Types[i]
		path := fmt.Sprintf("types[%d]", i)
		if typ.Kind == KindInvalid {
			errs = append(errs, fmt.Errorf("%s.kind: missing", path))
		}

		if typ.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name: missing", path))
		}

		for j := range typ.Fields {
			field := &typ.Fields[j]
			fieldPath := fmt.Sprintf("%s.fields[%d]", path, j)
			if field.Name == "" {
				errs = append(errs, fmt.Errorf("%s.name: missing", fieldPath))
			}

			if field.Args == nil {
				errs = append(errs, fmt.Errorf("%s.args: missing", fieldPath))
			}

			errs = append(errs, checkTypeRef(fieldPath+".type", field.Type)...)
			for k := range field.Args {
				errs = append(errs, checkInputValue(fmt.Sprintf("%s.args[%d]", fieldPath, k), &field.Args[k])...)
			}
		}

		for j := range typ.InputFields {
			errs = append(errs, checkInputValue(fmt.Sprintf("%s.inputFields[%d]", path, j), &typ.InputFields[j])...)
		}

		for j := range typ.EnumValues {
			if typ.EnumValues[j].Name == "" {
				errs = append(errs, fmt.Errorf("%s.enumValues[%d].name: missing", path, j))
			}
		}

		for j := range typ.Interfaces {
			errs = append(errs, checkTypeRef(fmt.Sprintf("%s.interfaces[%d]", path, j), &typ.Interfaces[j])...)
		}

		for j := range typ.PossibleTypes {
			errs = append(errs, checkTypeRef(fmt.Sprintf("%s.possibleTypes[%d]", path, j), &typ.PossibleTypes[j])...)
		}
	}

	return errors.Join(errs...)
}

func checkInputValue(path string, value *InputValue) []error {
	var errs []error
	if value.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name: missing", path))
	}

	return append(errs, checkTypeRef(path+".type", value.Type)...)
}

// checkTypeRef requires a kind on every level of a reference.
// Wrappers without ofType are tolerated and rendered as a placeholder.
func checkTypeRef(path string, ref *TypeRef) []error {
	if ref == nil {
		return []error{fmt.Errorf("%s: missing", path)}
	}

	var errs []error
	for depth := 0; ref != nil; depth++ {
		if ref.Kind == KindInvalid {
			errs = append(errs, fmt.Errorf("%s%s.kind: missing", path, strings.Repeat(".ofType", depth)))
		}

		ref = ref.OfType
	}

	return errs
}
