// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"errors"

	"github.com/jessevdk/go-flags"
)

var (
	// ErrDate is returned when the runtime can not provide a valid current date.
	ErrDate = errors.New("retrieve current date")
	// ErrArgs is returned when the runtime can not provide invocation arguments.
	ErrArgs = errors.New("retrieve args")
	// ErrQuery is returned when the introspection query fails.
	ErrQuery = errors.New("execute introspection query")
	// ErrReadSchemaFile is returned when a local schema file can not be read.
	ErrReadSchemaFile = errors.New("read schema file")
	// ErrPrepareOutputDirectory is returned when the output directory can not be prepared.
	ErrPrepareOutputDirectory = errors.New("prepare output directory")
	// ErrWriteFile is returned when an output document can not be written.
	ErrWriteFile = errors.New("write file")
	// ErrDecodeSchema is returned when the schema document does not match the expected shape.
	ErrDecodeSchema = errors.New("decode schema")
	// ErrParseTemplate is returned when a document template fails to parse.
	ErrParseTemplate = errors.New("parse template")
	// ErrExecuteTemplate is returned when a document template fails to render.
	ErrExecuteTemplate = errors.New("execute template")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrWrapperKind is returned when a List or NonNull type is passed to the renderer.
	ErrWrapperKind = errors.New("wrapper kind has no document")
	// ErrInvalidArgs is returned when command line or config values are invalid.
	ErrInvalidArgs = errors.New("invalid arguments")
	// ErrReadConfig is returned when the config file can not be read or decoded.
	ErrReadConfig = errors.New("read config")
	// ErrEncodeMetrics is returned when collected metrics can not be encoded.
	ErrEncodeMetrics = errors.New("encode metrics")
)

// exitCodes maps error categories to process exit codes.
var exitCodes = []struct {
	err  error
	code int
}{
	{ErrInvalidArgs, 2},
	{ErrDate, 10},
	{ErrArgs, 11},
	{ErrQuery, 12},
	{ErrPrepareOutputDirectory, 13},
	{ErrWriteFile, 14},
	{ErrReadSchemaFile, 15},
	{ErrReadConfig, 16},
	{ErrDecodeSchema, 20},
	{ErrParseTemplate, 21},
	{ErrExecuteTemplate, 21},
	{ErrUnknownBuiltinTemplate, 21},
}

// ExitCode returns the process exit code for an error returned by Main.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			return 0
		}

		return 2
	}

	for _, entry := range exitCodes {
		if errors.Is(err, entry.err) {
			return entry.code
		}
	}

	return 1
}
