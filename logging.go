// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is the structured logger used by the generator.
type Logger = *logrus.Logger

// Fields are structured log fields.
type Fields = logrus.Fields

// Log output formats accepted by NewLogger.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// NewLogger creates a logger writing to w with the given level and format.
// Empty level means "info", empty format means "text".
func NewLogger(w io.Writer, level, format string) (Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)

	parsedLevel := logrus.InfoLevel
	if level = strings.TrimSpace(level); level != "" {
		var err error
		parsedLevel, err = logrus.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("%w: log level: %w", ErrInvalidArgs, err)
		}
	}

	logger.SetLevel(parsedLevel)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", LogFormatText:
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case LogFormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("%w: unknown log format %q", ErrInvalidArgs, format)
	}

	return logger, nil
}

// discardLogger returns a logger that drops every entry.
func discardLogger() Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
