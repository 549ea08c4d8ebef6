// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pankaj Shinde

package models

import "fmt"

// BuildInfo carries immutable build-time metadata embedded into the binary.
//
// Values are injected by linker flags during CI/CD and shown by the version
// subcommand for diagnostics and release traceability. Missing values are
// normalized to "N/A" so the output stays aligned for dev builds.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo constructs [BuildInfo], substituting "N/A" for empty fields.
func NewBuildInfo(version, date, commit string) BuildInfo {
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}

	return BuildInfo{Version: version, Date: date, Commit: commit}
}

// String renders the three-line version report printed by the version
// subcommand.
func (b BuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		b.Version, b.Date, b.Commit)
}
