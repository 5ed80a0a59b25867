// ============================================================================
// Kin - Programming in Kinyarwanda
// ============================================================================
//
// Package:     version
// Description: Central version management for the language and its tools
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Language is the version of the Kin language accepted by the parser
	Language = "1.0.0"

	// Grammar is bumped whenever the syntax tree shape changes
	Grammar = "1.0.0"

	// Tool is the version of the kin command
	Tool = "0.1.0"
)

// Build metadata, set with -ldflags "-X ...version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "language", "kin":
		return Language
	case "grammar", "ast", "parser":
		return Grammar
	default:
		return Tool
	}
}

// Info describes the running binary
type Info struct {
	Tool      string `json:"tool" yaml:"tool"`
	Language  string `json:"language" yaml:"language"`
	Grammar   string `json:"grammar" yaml:"grammar"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Tool:      Tool,
		Language:  Language,
		Grammar:   Grammar,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Short returns "v<tool> (language <language>)"
func Short() string {
	return fmt.Sprintf("v%s (language %s)", Tool, Language)
}
