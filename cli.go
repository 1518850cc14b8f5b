// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
)

// programName is the command name shown in help and version output.
const programName = "graphqldoc"

// cliOptions describes command line flags.
type cliOptions struct {
	Endpoint    string   `short:"e" long:"endpoint" value-name:"URL" description:"GraphQL endpoint to run the introspection query against"`
	Schema      string   `short:"s" long:"schema" value-name:"FILE" description:"Saved introspection JSON or SDL (.graphql, .graphqls, .gql) file"`
	SchemaFile  string   `long:"schema-file" value-name:"FILE" hidden:"yes" description:"Alias of --schema"`
	Headers     []string `short:"x" long:"header" value-name:"NAME: VALUE" description:"Extra header for the introspection query, repeatable"`
	Name        string   `short:"n" long:"name" description:"Schema name shown in page titles (default: GraphQL Schema)"`
	Output      string   `short:"o" long:"output" value-name:"DIR" description:"Output directory"`
	Config      string   `short:"c" long:"config" value-name:"FILE" description:"YAML config file; flags take precedence"`
	TemplateDir string   `long:"template-dir" value-name:"DIR" description:"Directory with <name>.html.gotmpl files replacing built-in templates"`
	MetricsFile string   `long:"metrics-file" value-name:"FILE" description:"Write run metrics in Prometheus text format to FILE"`
	LogLevel    string   `long:"log-level" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"Log level (default: info)"`
	LogFormat   string   `long:"log-format" choice:"text" choice:"json" description:"Log format (default: text)"`

	PrintTemplate string `long:"print-template" value-name:"NAME" description:"Print a built-in template and exit"`
	PrintConfig   bool   `long:"print-config" description:"Print a commented sample config and exit"`
	Version       bool   `short:"V" long:"version" description:"Print version information and exit"`
}

// settings is the effective configuration after merging flags into the config file.
type settings struct {
	Endpoint    string
	Schema      string
	Headers     map[string]string
	Name        string
	Output      string
	TemplateDir string
	MetricsFile string
	LogLevel    string
	LogFormat   string
}

// Main runs the command line interface on rt. Help output goes to stdout and
// is not an error; logs go to stderr. Use ExitCode to map the returned error
// to a process exit status.
func Main(ctx context.Context, rt Runtime, stdout, stderr io.Writer) error {
	args, err := rt.Args(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArgs, err)
	}

	opts, err := parseCLIArgs(args)
	if err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			_, _ = fmt.Fprintln(stdout, flagErr.Message)
			return nil
		}

		return err
	}

	switch {
	case opts.Version:
		return printVersionInfo(stdout, programName)
	case opts.PrintTemplate != "":
		return printBuiltinTemplate(stdout, opts.PrintTemplate)
	case opts.PrintConfig:
		sample, err := SampleConfig()
		if err != nil {
			return err
		}

		_, err = io.WriteString(stdout, sample)
		return err
	}

	cfg, err := loadConfig(ctx, rt, opts.Config)
	if err != nil {
		return err
	}

	run, err := mergeSettings(opts, cfg)
	if err != nil {
		return err
	}

	if err := run.validate(); err != nil {
		return err
	}

	logger, err := NewLogger(stderr, run.LogLevel, run.LogFormat)
	if err != nil {
		return err
	}

	overrides, err := loadTemplateOverrides(ctx, rt, run.TemplateDir, logger)
	if err != nil {
		return err
	}

	var metrics *Metrics
	if run.MetricsFile != "" {
		metrics = NewMetrics()
	}

	_, genErr := Generate(ctx, rt, Options{
		SchemaName: run.Name,
		Output:     run.Output,
		Endpoint:   run.Endpoint,
		SchemaPath: run.Schema,
		Headers:    run.Headers,
		Overrides:  overrides,
		Logger:     logger,
		Metrics:    metrics,
	})

	if metrics != nil {
		if err := writeMetrics(ctx, rt, metrics, run.MetricsFile); err != nil {
			logger.WithError(err).Error("write metrics")
			if genErr == nil {
				return err
			}
		}
	}

	return genErr
}

// parseCLIArgs parses flags; positional arguments are rejected.
func parseCLIArgs(args []string) (*cliOptions, error) {
	opts := &cliOptions{}
	parser := flags.NewParser(opts, flags.HelpFlag)
	parser.Name = programName
	parser.ShortDescription = "GraphQL schema documentation generator"
	parser.LongDescription = strings.TrimSpace(fmt.Sprintf(`
Generate static HTML documentation from a GraphQL schema.

The schema is read either from a live endpoint with the introspection query
or from a saved introspection result or SDL file.

Examples:
  %[1]s -e https://api.example.com/graphql -x "Authorization: Bearer token" -o docs
  %[1]s -s schema.json -n "Example API" -o docs
  %[1]s -c graphqldoc.yaml`, programName))

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments: %s", ErrInvalidArgs, strings.Join(rest, " "))
	}

	return opts, nil
}

func printBuiltinTemplate(w io.Writer, name string) error {
	text, err := BuiltinTemplate(name)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(BuiltinTemplateNames(), ", "))
	}

	_, err = io.WriteString(w, text)
	return err
}

// loadConfig reads the optional YAML config file.
func loadConfig(ctx context.Context, rt Runtime, path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Config{}, nil
	}

	text, err := rt.ReadFile(ctx, path)
	if err != nil {
		return Config{}, fmt.Errorf("%w %q: %w", ErrReadConfig, path, err)
	}

	cfg, err := ParseConfig(text)
	if err != nil {
		return Config{}, fmt.Errorf("%q: %w", path, err)
	}

	return cfg, nil
}

// mergeSettings applies flags over config values. A schema source given on
// the command line replaces both sources of the config file, and header flags
// are merged over config headers.
func mergeSettings(opts *cliOptions, cfg Config) (settings, error) {
	run := settings{
		Endpoint:    cfg.Endpoint,
		Schema:      cfg.Schema,
		Headers:     maps.Clone(cfg.Headers),
		Name:        cfg.Name,
		Output:      cfg.Output,
		TemplateDir: cfg.TemplateDir,
		MetricsFile: cfg.MetricsFile,
		LogLevel:    cfg.LogLevel,
		LogFormat:   cfg.LogFormat,
	}

	schema := firstNonEmpty(opts.Schema, opts.SchemaFile)
	if opts.Endpoint != "" || schema != "" {
		run.Endpoint = opts.Endpoint
		run.Schema = schema
		if schema != "" {
			run.Headers = nil
		}
	}

	if len(opts.Headers) > 0 && run.Headers == nil {
		run.Headers = make(map[string]string, len(opts.Headers))
	}

	for _, header := range opts.Headers {
		name, value, err := parseHeader(header)
		if err != nil {
			return settings{}, err
		}

		for existing := range run.Headers {
			if strings.EqualFold(existing, name) {
				delete(run.Headers, existing)
			}
		}

		run.Headers[name] = value
	}

	run.Name = firstNonEmpty(opts.Name, run.Name, DefaultSchemaName)
	run.Output = firstNonEmpty(opts.Output, run.Output)
	run.TemplateDir = firstNonEmpty(opts.TemplateDir, run.TemplateDir)
	run.MetricsFile = firstNonEmpty(opts.MetricsFile, run.MetricsFile)
	run.LogLevel = firstNonEmpty(opts.LogLevel, run.LogLevel)
	run.LogFormat = firstNonEmpty(opts.LogFormat, run.LogFormat)
	return run, nil
}

// parseHeader splits "Name: value" at the first colon.
func parseHeader(header string) (string, string, error) {
	name, value, ok := strings.Cut(header, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", fmt.Errorf("%w: header %q must have the form \"Name: value\"", ErrInvalidArgs, header)
	}

	return name, strings.TrimSpace(value), nil
}

func (run settings) validate() error {
	switch {
	case run.Endpoint == "" && run.Schema == "":
		return fmt.Errorf("%w: one of --endpoint or --schema is required", ErrInvalidArgs)
	case run.Endpoint != "" && run.Schema != "":
		return fmt.Errorf("%w: --endpoint and --schema are mutually exclusive", ErrInvalidArgs)
	case run.Schema != "" && len(run.Headers) > 0:
		return fmt.Errorf("%w: headers are only used with --endpoint", ErrInvalidArgs)
	case strings.TrimSpace(run.Output) == "":
		return fmt.Errorf("%w: --output is required", ErrInvalidArgs)
	}

	if run.Endpoint != "" {
		endpoint, err := url.Parse(run.Endpoint)
		if err != nil {
			return fmt.Errorf("%w: endpoint: %w", ErrInvalidArgs, err)
		}

		if (endpoint.Scheme != "http" && endpoint.Scheme != "https") || endpoint.Host == "" {
			return fmt.Errorf("%w: endpoint %q must be an http or https URL", ErrInvalidArgs, run.Endpoint)
		}
	}

	return nil
}

// loadTemplateOverrides reads <name>.html.gotmpl files from dir. Templates
// missing from dir keep their built-in text; any other read error fails.
func loadTemplateOverrides(ctx context.Context, rt Runtime, dir string, logger Logger) (map[string]string, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, nil
	}

	overrides := make(map[string]string)
	for _, name := range BuiltinTemplateNames() {
		fileName, _ := BuiltinTemplateFileName(name)
		path := filepath.Join(dir, fileName)
		text, err := rt.ReadFile(ctx, path)
		if errors.Is(err, fs.ErrNotExist) {
			logger.WithFields(Fields{"template": name, "path": path}).Debug("using built-in template")
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("%w: template %q: %w", ErrReadConfig, path, err)
		}

		logger.WithFields(Fields{"template": name, "path": path}).Info("using custom template")
		overrides[name] = text
	}

	if len(overrides) == 0 {
		logger.WithField("dir", dir).Warn("no custom templates found")
	}

	return overrides, nil
}

// writeMetrics writes the metrics exposition next to the documentation.
func writeMetrics(ctx context.Context, rt Runtime, metrics *Metrics, path string) error {
	text, err := metrics.Encode()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := rt.PrepareOutputDirectory(ctx, dir); err != nil {
		return fmt.Errorf("%w %q: %w", ErrPrepareOutputDirectory, dir, err)
	}

	if err := rt.WriteFile(ctx, dir, filepath.Base(path), text); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteFile, path, err)
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}

	return ""
}
