// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

// graphqldoc generates static HTML docs from a GraphQL schema.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/graphqldoc"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithRuntime(context.Background(), graphqldoc.NewLocalRuntime(args), stdout, stderr)
}

// runWithRuntime executes CLI logic on a custom runtime, for tests.
func runWithRuntime(ctx context.Context, rt graphqldoc.Runtime, stdout, stderr io.Writer) int {
	err := graphqldoc.Main(ctx, rt, stdout, stderr)
	writeCLIError(stderr, err)
	return graphqldoc.ExitCode(err)
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, "error:", err.Error())
}
