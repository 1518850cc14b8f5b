// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"embed"
	"fmt"
	"html"
	"html/template"
	"path"
	"sort"
	"strings"
)

// templateFS stores built-in templates and static assets embedded into the package.
//
//go:embed templates/*.html.gotmpl templates/style.css templates/script.js
var templateFS embed.FS

const (
	templateLayoutName        = "layout"
	templateIndexName         = "index"
	templateObjectName        = "object"
	templateInputObjectName   = "input_object"
	templateScalarName        = "scalar"
	templateEnumName          = "enum"
	templateInterfaceName     = "interface"
	templateUnionName         = "union"
	templateFieldsName        = "fields"
	templatePossibleTypesName = "possible_types"
	templateUsesName          = "uses"
)

// builtInTemplateFiles maps template names to embedded file paths.
var builtInTemplateFiles = map[string]string{
	templateLayoutName:        "templates/layout.html.gotmpl",
	templateIndexName:         "templates/index.html.gotmpl",
	templateObjectName:        "templates/object.html.gotmpl",
	templateInputObjectName:   "templates/input_object.html.gotmpl",
	templateScalarName:        "templates/scalar.html.gotmpl",
	templateEnumName:          "templates/enum.html.gotmpl",
	templateInterfaceName:     "templates/interface.html.gotmpl",
	templateUnionName:         "templates/union.html.gotmpl",
	templateFieldsName:        "templates/fields.html.gotmpl",
	templatePossibleTypesName: "templates/possible_types.html.gotmpl",
	templateUsesName:          "templates/uses.html.gotmpl",
}

// kindTemplates is the document dispatch table for non-wrapper kinds.
var kindTemplates = map[Kind]string{
	KindObject:      templateObjectName,
	KindInputObject: templateInputObjectName,
	KindScalar:      templateScalarName,
	KindEnum:        templateEnumName,
	KindInterface:   templateInterfaceName,
	KindUnion:       templateUnionName,
}

const (
	styleFileName       = "style.css"
	scriptFileName      = "script.js"
	indexFileName       = "index.html"
	searchIndexFileName = "search-index.json"
)

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	filePath, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrParseTemplate, name, err)
	}

	return string(data), nil
}

// BuiltinTemplateFileName returns the base file name of a built-in template,
// the name looked up in custom template directories.
func BuiltinTemplateFileName(name string) (string, bool) {
	filePath, ok := builtInTemplateFiles[normalizeTemplateName(name)]
	if !ok {
		return "", false
	}

	return path.Base(filePath), true
}

// staticAsset returns an embedded asset written verbatim to the output.
func staticAsset(name string) (string, error) {
	data, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("read asset %q: %w", name, err)
	}

	return string(data), nil
}

// parseTemplates parses every built-in template, replacing texts found in overrides.
func parseTemplates(overrides map[string]string) (*template.Template, error) {
	root := template.New("graphqldoc").Funcs(templateFuncs())
	for _, name := range BuiltinTemplateNames() {
		text, ok := overrides[name]
		if !ok {
			var err error
			text, err = BuiltinTemplate(name)
			if err != nil {
				return nil, err
			}
		}

		if _, err := root.New(name).Parse(text); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrParseTemplate, name, err)
		}
	}

	return root, nil
}

// normalizeTemplateName normalizes built-in template identifiers.
func normalizeTemplateName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// templateFuncs provides utility functions available inside document templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"typeRef": func(ref any) (template.HTML, error) {
			switch value := ref.(type) {
			case *TypeRef:
				//nolint:gosec // names are escaped by renderTypeRef.
				return template.HTML(renderTypeRef(value)), nil
			case TypeRef:
				//nolint:gosec // names are escaped by renderTypeRef.
				return template.HTML(renderTypeRef(&value)), nil
			case nil:
				return template.HTML(renderTypeRef(nil)), nil
			default:
				return "", fmt.Errorf("typeRef: unsupported value %T", ref)
			}
		},
		"docblock": func(text string) template.HTML {
			//nolint:gosec // descriptions are trusted schema documentation rendered as Markdown.
			return template.HTML(renderDocblock(text))
		},
		"kindPrefix": func(kind Kind) string {
			return kind.Prefix()
		},
		"documentName": DocumentName,
		"anchor":       memberAnchor,
		"deref": func(value *string) string {
			if value == nil {
				return ""
			}

			return *value
		},
	}
}

// memberAnchor returns the in-page anchor of a field, input field or enum value.
func memberAnchor(kind, name string) string {
	return kind + "." + name
}

// renderTypeRef renders a type reference: List as [inner], NonNull as inner!
// and named types as links to their documents. A wrapper without an inner
// type renders as "?".
func renderTypeRef(ref *TypeRef) string {
	var out strings.Builder
	writeTypeRef(&out, ref)
	return out.String()
}

func writeTypeRef(out *strings.Builder, ref *TypeRef) {
	if ref == nil {
		out.WriteByte('?')
		return
	}

	switch ref.Kind {
	case KindList:
		out.WriteByte('[')
		writeTypeRef(out, ref.OfType)
		out.WriteByte(']')
	case KindNonNull:
		writeTypeRef(out, ref.OfType)
		out.WriteByte('!')
	default:
		name := html.EscapeString(ref.Name)
		fmt.Fprintf(out, `<a class="%s" href="%s">%s</a>`,
			ref.Kind.Prefix(), html.EscapeString(DocumentName(ref.Kind, ref.Name)), name)
	}
}
