// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"fmt"
	"io"
	"time"
)

// Build information, set with -ldflags "-X".
var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/graphqldoc"
	_buildTime string
)

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func printVersionInfo(w io.Writer, programName string) error {
	_, err := fmt.Fprintf(w, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, programName, Version, Commit, BuildTime)
	return err
}
