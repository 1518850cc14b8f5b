// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

const (
	// DefaultSchemaName is the page title used when no schema name is given.
	DefaultSchemaName = "GraphQL Schema"
	// humanDateLayout renders dates as "5 Mar 2024".
	humanDateLayout = "2 Jan 2006"
)

// RendererOptions controls document rendering.
type RendererOptions struct {
	// SchemaName is shown in page titles and headings.
	SchemaName string
	// Today is the generation date printed in the page footer.
	Today time.Time
	// Overrides replaces built-in templates by name.
	Overrides map[string]string
}

// Renderer turns a schema into HTML documents. It is safe for concurrent use
// once constructed.
type Renderer struct {
	schema     *Schema
	uses       UsesIndex
	templates  *template.Template
	schemaName string
	dateISO    string
	dateHuman  string
}

// NewRenderer parses templates and precomputes cross references of schema.
func NewRenderer(schema *Schema, opt RendererOptions) (*Renderer, error) {
	templates, err := parseTemplates(opt.Overrides)
	if err != nil {
		return nil, err
	}

	schemaName := strings.TrimSpace(opt.SchemaName)
	if schemaName == "" {
		schemaName = DefaultSchemaName
	}

	return &Renderer{
		schema:     schema,
		uses:       schema.BuildUsesIndex(),
		templates:  templates,
		schemaName: schemaName,
		dateISO:    opt.Today.Format(time.DateOnly),
		dateHuman:  opt.Today.Format(humanDateLayout),
	}, nil
}

// RenderIndex renders index.html.
func (r *Renderer) RenderIndex() (string, error) {
	return r.render(templateIndexName, r.schemaName, buildIndexView(r.schema, r.schemaName))
}

// RenderType renders the document of one named type.
func (r *Renderer) RenderType(typ *FullType) (string, error) {
	name, ok := kindTemplates[typ.Kind]
	if !ok {
		return "", fmt.Errorf("%w: %s %s", ErrWrapperKind, typ.Kind, typ.Name)
	}

	view := typeView{
		SchemaName: r.schemaName,
		Type:       typ,
		IsRoot:     isRootType(r.schema, typ),
		Uses:       r.uses.Lookup(typ.Name),
	}

	return r.render(name, typ.Name, view)
}

// render executes the content template and wraps its output into the layout.
func (r *Renderer) render(name, title string, view any) (string, error) {
	var content strings.Builder
	if err := r.templates.ExecuteTemplate(&content, name, view); err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrExecuteTemplate, name, err)
	}

	layout := layoutView{
		SchemaName: r.schemaName,
		Title:      title,
		//nolint:gosec // content is produced by html/template above.
		Content:   template.HTML(content.String()),
		DateISO:   r.dateISO,
		DateHuman: r.dateHuman,
	}

	var out strings.Builder
	if err := r.templates.ExecuteTemplate(&out, templateLayoutName, layout); err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrExecuteTemplate, templateLayoutName, err)
	}

	return ensureTrailingNewline(out.String()), nil
}
