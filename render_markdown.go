// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"strings"

	"github.com/russross/blackfriday/v2"
)

// docblockExtensions enables tables and strikethrough on top of CommonMark-like
// fenced code and emphasis rules.
const docblockExtensions = blackfriday.NoIntraEmphasis |
	blackfriday.Tables |
	blackfriday.FencedCode |
	blackfriday.Strikethrough |
	blackfriday.Autolink

// renderDocblock converts a Markdown description into HTML.
// Descriptions are always treated as Markdown, never as plain text.
func renderDocblock(text string) string {
	text = strings.TrimSpace(normalizeLineEndings(text))
	if text == "" {
		return ""
	}

	return string(blackfriday.Run([]byte(text), blackfriday.WithExtensions(docblockExtensions)))
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}
