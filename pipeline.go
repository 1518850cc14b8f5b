// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentWrites bounds type documents rendered and written at once.
const maxConcurrentWrites = 10

// userAgentHeader is sent with every introspection request unless overridden.
const userAgentHeader = "user-agent"

// Options configures one Generate run.
// Exactly one of Endpoint and SchemaPath must be set.
type Options struct {
	// SchemaName is shown in page titles, DefaultSchemaName when empty.
	SchemaName string
	// Output is the destination directory.
	Output string
	// Endpoint is a GraphQL endpoint queried with IntrospectionQuery.
	Endpoint string
	// SchemaPath is a saved introspection result or an SDL file.
	SchemaPath string
	// Headers are added to the introspection request.
	Headers map[string]string
	// Overrides replaces built-in templates by name.
	Overrides map[string]string
	// Logger receives progress entries, discarded when nil.
	Logger Logger
	// Metrics collects run metrics when not nil.
	Metrics *Metrics
}

// Report summarizes a successful run.
type Report struct {
	Documents int
	Bytes     int64
}

// generator holds the state shared by the writes of one run.
type generator struct {
	rt        Runtime
	output    string
	logger    Logger
	metrics   *Metrics
	documents atomic.Int64
	bytes     atomic.Int64
}

// Generate loads a schema and writes its documentation into opt.Output:
// index.html, style.css, search-index.json and script.js first, then one
// document per named type with at most 10 writes in flight. The first failure
// stops scheduling of further documents and is returned; documents already
// written stay on disk.
func Generate(ctx context.Context, rt Runtime, opt Options) (Report, error) {
	logger := opt.Logger
	if logger == nil {
		logger = discardLogger()
	}

	schema, err := loadSchema(ctx, rt, opt, logger)
	if err != nil {
		return Report{}, err
	}

	opt.Metrics.setSchemaTypes(len(schema.Types))
	logger.WithFields(Fields{
		"types": len(schema.Types),
		"query": schema.QueryTypeName(),
	}).Info("schema loaded")

	today, err := runDate(ctx, rt)
	if err != nil {
		return Report{}, err
	}

	if err := rt.PrepareOutputDirectory(ctx, opt.Output); err != nil {
		return Report{}, fmt.Errorf("%w %q: %w", ErrPrepareOutputDirectory, opt.Output, err)
	}

	renderer, err := NewRenderer(schema, RendererOptions{
		SchemaName: opt.SchemaName,
		Today:      today,
		Overrides:  opt.Overrides,
	})
	if err != nil {
		return Report{}, err
	}

	gen := &generator{
		rt:      rt,
		output:  opt.Output,
		logger:  logger,
		metrics: opt.Metrics,
	}

	if err := gen.writeStatic(ctx, renderer, schema); err != nil {
		return gen.report(), err
	}

	if err := gen.writeTypes(ctx, renderer, schema); err != nil {
		return gen.report(), err
	}

	report := gen.report()
	logger.WithFields(Fields{
		"output":    opt.Output,
		"documents": report.Documents,
		"size":      humanize.Bytes(uint64(max(report.Bytes, 0))),
	}).Info("documentation generated")

	return report, nil
}

// loadSchema selects the schema source and decodes it.
func loadSchema(ctx context.Context, rt Runtime, opt Options, logger Logger) (*Schema, error) {
	switch {
	case opt.Endpoint != "" && opt.SchemaPath != "":
		return nil, fmt.Errorf("%w: endpoint and schema file are mutually exclusive", ErrInvalidArgs)
	case opt.Endpoint != "":
		logger.WithField("endpoint", opt.Endpoint).Debug("running introspection query")
		data, err := rt.Query(ctx, opt.Endpoint, IntrospectionRequest, RequestHeaders(opt.Headers))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrQuery, err)
		}

		return ParseIntrospection(data)
	case opt.SchemaPath != "":
		logger.WithField("schema", opt.SchemaPath).Debug("reading schema file")
		text, err := rt.ReadFile(ctx, opt.SchemaPath)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrReadSchemaFile, opt.SchemaPath, err)
		}

		if IsSDLPath(opt.SchemaPath) {
			return ParseSDL(opt.SchemaPath, text)
		}

		return ParseIntrospection([]byte(text))
	default:
		return nil, fmt.Errorf("%w: either endpoint or schema file is required", ErrInvalidArgs)
	}
}

// runDate returns the run's date as reported by the runtime.
func runDate(ctx context.Context, rt Runtime) (time.Time, error) {
	value, err := rt.Date(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrDate, err)
	}

	today, err := time.Parse(time.DateOnly, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrDate, err)
	}

	return today, nil
}

// RequestHeaders returns headers with the default user agent added.
// A user supplied user agent wins regardless of its case.
func RequestHeaders(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers)+1)
	out[userAgentHeader] = "graphqldoc/" + Version
	for name, value := range headers {
		if strings.EqualFold(name, userAgentHeader) {
			delete(out, userAgentHeader)
		}

		out[name] = value
	}

	return out
}

// writeStatic writes the index and the shared assets, in order.
func (gen *generator) writeStatic(ctx context.Context, renderer *Renderer, schema *Schema) error {
	started := time.Now()
	index, err := renderer.RenderIndex()
	if err != nil {
		return err
	}

	gen.metrics.observeRender(started)
	if err := gen.write(ctx, indexFileName, "index", index); err != nil {
		return err
	}

	style, err := staticAsset(styleFileName)
	if err != nil {
		return err
	}

	if err := gen.write(ctx, styleFileName, "asset", style); err != nil {
		return err
	}

	searchIndex, err := json.Marshal(BuildSearchIndex(schema))
	if err != nil {
		return fmt.Errorf("encode search index: %w", err)
	}

	if err := gen.write(ctx, searchIndexFileName, "asset", string(searchIndex)); err != nil {
		return err
	}

	script, err := staticAsset(scriptFileName)
	if err != nil {
		return err
	}

	return gen.write(ctx, scriptFileName, "asset", script)
}

// writeTypes renders and writes every named type concurrently.
func (gen *generator) writeTypes(ctx context.Context, renderer *Renderer, schema *Schema) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentWrites)

	seen := make(map[string]struct{}, len(schema.Types))
	for i := range schema.Types {
		typ := &schema.Types[i]
		if _, ok := kindTemplates[typ.Kind]; !ok {
			gen.logger.WithFields(Fields{"type": typ.Name, "kind": typ.Kind.String()}).Debug("skipping type without document")
			continue
		}

		// First definition of a name wins, as in FindTypeByName.
		name := DocumentName(typ.Kind, typ.Name)
		if _, ok := seen[name]; ok {
			gen.logger.WithFields(Fields{"type": typ.Name, "file": name}).Debug("skipping duplicate type")
			continue
		}

		seen[name] = struct{}{}

		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			started := time.Now()
			contents, err := renderer.RenderType(typ)
			if err != nil {
				return err
			}

			gen.metrics.observeRender(started)
			return gen.write(groupCtx, name, typ.Kind.Prefix(), contents)
		})
	}

	// Wait returns the first failure; later tasks only observe the canceled context.
	if err := group.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

// write hands one document to the runtime and records it.
func (gen *generator) write(ctx context.Context, name, kind, contents string) error {
	if err := checkFileName(name); err != nil {
		gen.metrics.observeWriteFailure()
		return err
	}

	if err := gen.rt.WriteFile(ctx, gen.output, name, contents); err != nil {
		gen.metrics.observeWriteFailure()
		return fmt.Errorf("%w %q: %w", ErrWriteFile, name, err)
	}

	gen.documents.Add(1)
	gen.bytes.Add(int64(len(contents)))
	gen.metrics.observeDocument(kind, len(contents))
	gen.logger.WithFields(Fields{"file": name, "bytes": len(contents)}).Debug("document written")
	return nil
}

func (gen *generator) report() Report {
	return Report{
		Documents: int(gen.documents.Load()),
		Bytes:     gen.bytes.Load(),
	}
}
