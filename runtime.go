// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"context"
	"encoding/json"
)

// Runtime provides every interaction with the outside world.
// The generator depends only on this interface, so it can be hosted by a
// local process, a test harness or an embedding application alike.
type Runtime interface {
	// Date returns the current date as an ISO 8601 calendar date (YYYY-MM-DD).
	Date(ctx context.Context) (string, error)
	// Args returns invocation arguments without the program name.
	Args(ctx context.Context) ([]string, error)
	// Query executes a GraphQL request against url and returns the JSON response body.
	Query(ctx context.Context, url string, request GraphQLRequest, headers map[string]string) (json.RawMessage, error)
	// ReadFile returns the full text of the file at path.
	ReadFile(ctx context.Context, path string) (string, error)
	// PrepareOutputDirectory creates the output directory if needed.
	PrepareOutputDirectory(ctx context.Context, output string) error
	// WriteFile writes contents to the named file under the output directory.
	WriteFile(ctx context.Context, output, name, contents string) error
}
