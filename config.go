// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration file. Command line flags take precedence
// over every value set here.
type Config struct {
	Endpoint    string            `yaml:"endpoint,omitempty"`
	Schema      string            `yaml:"schema,omitempty"`
	Headers     map[string]string `yaml:"headers,omitempty"`
	Name        string            `yaml:"name,omitempty"`
	Output      string            `yaml:"output,omitempty"`
	TemplateDir string            `yaml:"template_dir,omitempty"`
	MetricsFile string            `yaml:"metrics_file,omitempty"`
	LogLevel    string            `yaml:"log_level,omitempty"`
	LogFormat   string            `yaml:"log_format,omitempty"`
}

// ParseConfig decodes a YAML config document. Unknown keys are rejected and
// an empty document yields a zero Config.
func ParseConfig(text string) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(text))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}

		return Config{}, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	return cfg, nil
}

// sampleConfigEntries documents every config key in output order.
var sampleConfigEntries = []struct {
	key     string
	value   *yaml.Node
	comment string
}{
	{"endpoint", yamlScalarNode("!!str", "https://api.example.com/graphql"), "GraphQL endpoint to introspect; mutually exclusive with schema."},
	{"schema", yamlScalarNode("!!null", ""), "Saved introspection JSON or SDL (.graphql, .graphqls, .gql) file."},
	{"headers", yamlMappingNode("Authorization", "Bearer <token>"), "Extra HTTP headers sent with the introspection query."},
	{"name", yamlScalarNode("!!str", DefaultSchemaName), "Schema name shown in page titles."},
	{"output", yamlScalarNode("!!str", "docs"), "Output directory."},
	{"template_dir", yamlScalarNode("!!null", ""), "Directory with <name>.html.gotmpl files replacing built-in templates."},
	{"metrics_file", yamlScalarNode("!!null", ""), "File receiving run metrics in Prometheus text format."},
	{"log_level", yamlScalarNode("!!str", "info"), "One of trace, debug, info, warn, error."},
	{"log_format", yamlScalarNode("!!str", LogFormatText), "One of text, json."},
}

// SampleConfig returns a commented YAML config with every supported key.
func SampleConfig() (string, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, entry := range sampleConfigEntries {
		key := yamlScalarNode("!!str", entry.key)
		key.HeadComment = "# " + entry.comment
		root.Content = append(root.Content, key, entry.value)
	}

	data, err := marshalYAMLNode(root)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// marshalYAMLNode serializes node as a single YAML document.
func marshalYAMLNode(node *yaml.Node) ([]byte, error) {
	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{node},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	if tag == "!!null" && value == "" {
		value = "null"
	}

	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}

// yamlMappingNode creates a mapping from alternating keys and string values.
func yamlMappingNode(pairs ...string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i+1 < len(pairs); i += 2 {
		node.Content = append(node.Content, yamlScalarNode("!!str", pairs[i]), yamlScalarNode("!!str", pairs[i+1]))
	}

	return node
}
