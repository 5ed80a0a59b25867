// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates kin configuration files in conventional directories
//              and loads the first match.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial discovery implementation
// - 2026-10-18 v0.2.0: Kin search paths and file names

package config

import (
	"os"
	"path/filepath"

	kinerror "github.com/kin-lang/kin/foundation/core/error"
)

// DiscoveryOptions controls where Discover looks for configuration files
type DiscoveryOptions struct {
	Paths      []string               // Directories searched in order
	Filenames  []string               // Base names without extension
	Extensions []string               // Extensions tried in order
	EnvPrefix  string                 // Environment override prefix
	Defaults   map[string]interface{} // Defaults merged into the result
	Required   bool                   // Fail when no file is found
}

// DefaultDiscoveryOptions returns the search order used by the kin command:
// ./kin.*, ./config/kin.*, then $HOME/.config/kin/kin.*
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./config"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "kin"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"kin"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "KIN",
	}
}

// FindConfigFile returns the first existing file matching the options
func FindConfigFile(options DiscoveryOptions) (string, bool) {
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				candidate := filepath.Join(dir, name+ext)
				if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
					return candidate, true
				}
			}
		}
	}
	return "", false
}

// Discover loads the first configuration file found. Without a file it
// returns a configuration holding only the defaults, unless Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, found := FindConfigFile(options)
	if !found {
		if options.Required {
			return nil, kinerror.New("no configuration file found").
				WithCode(kinerror.CodeMissingConfig).
				WithOperation("config.Discover").
				WithDetail("paths", options.Paths).
				WithDetail("filenames", options.Filenames)
		}
		return New(options.Defaults, options.EnvPrefix), nil
	}

	return LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
}
