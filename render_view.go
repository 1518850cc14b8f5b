// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"html/template"
	"slices"
	"strings"
)

// layoutView is the view model of the page shell wrapped around every document.
type layoutView struct {
	SchemaName string
	Title      string
	Content    template.HTML
	DateISO    string
	DateHuman  string
}

// indexView is the view model of index.html.
type indexView struct {
	SchemaName       string
	Description      string
	QueryType        *FullType
	MutationType     *FullType
	SubscriptionType *FullType
	Groups           []kindGroup
}

// kindGroup lists the documented types of one kind.
type kindGroup struct {
	Kind  Kind
	Title string
	Types []*FullType
}

// typeView is the view model of one type document.
type typeView struct {
	SchemaName string
	Type       *FullType
	IsRoot     bool
	Uses       []TypeUse
}

// kindGroupTitles is the index section order and heading of every documented kind.
var kindGroupTitles = []struct {
	kind  Kind
	title string
}{
	{KindObject, "Objects"},
	{KindInterface, "Interfaces"},
	{KindUnion, "Unions"},
	{KindInputObject, "Input objects"},
	{KindEnum, "Enums"},
	{KindScalar, "Scalars"},
}

// buildIndexView groups documented types by kind and orders each group by name.
func buildIndexView(schema *Schema, schemaName string) indexView {
	view := indexView{
		SchemaName:       schemaName,
		QueryType:        schema.FindTypeByName(schema.QueryTypeName()),
		MutationType:     findRootType(schema, schema.MutationTypeName()),
		SubscriptionType: findRootType(schema, schema.SubscriptionTypeName()),
	}

	if view.QueryType != nil {
		view.Description = view.QueryType.Description
	}

	for _, entry := range kindGroupTitles {
		group := kindGroup{Kind: entry.kind, Title: entry.title}
		for i := range schema.Types {
			if schema.Types[i].Kind == entry.kind {
				group.Types = append(group.Types, &schema.Types[i])
			}
		}

		if len(group.Types) == 0 {
			continue
		}

		slices.SortStableFunc(group.Types, func(a, b *FullType) int {
			return strings.Compare(a.Name, b.Name)
		})
		view.Groups = append(view.Groups, group)
	}

	return view
}

func findRootType(schema *Schema, name string) *FullType {
	if name == "" {
		return nil
	}

	return schema.FindTypeByName(name)
}

// isRootType reports whether typ is one of the operation root types.
func isRootType(schema *Schema, typ *FullType) bool {
	if typ.Kind != KindObject {
		return false
	}

	switch typ.Name {
	case schema.QueryTypeName(), schema.MutationTypeName(), schema.SubscriptionTypeName():
		return true
	default:
		return false
	}
}
