// File: filex.go
// Title: Core File Utilities
// Description: File existence checks, source reading and recursive file
//              discovery used by the kin command.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-18 v0.2.0: Reduced to reading and discovery; FindFiles walks
//                      with WalkDir and returns sorted paths, added Expand

package filex

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ReadString reads the entire file. The returned error wraps the
// os error, so errors.Is(err, fs.ErrNotExist) holds for missing files.
func ReadString(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(content), nil
}

// FindFiles returns the regular files under root whose base name matches
// pattern, in lexical order. Hidden directories are skipped.
func FindFiles(root, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	var matches []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if matched, _ := filepath.Match(pattern, d.Name()); matched && d.Type().IsRegular() {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during file search: %w", err)
	}

	slices.Sort(matches)
	return matches, nil
}

// Expand replaces every directory in paths by the files under it that
// match pattern. Other paths, including missing ones, are kept as given
// so the caller can report them.
func Expand(paths []string, pattern string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		if !IsDir(path) {
			out = append(out, path)
			continue
		}
		files, err := FindFiles(path, pattern)
		if err != nil {
			return nil, err
		}
		out = append(out, files...)
	}
	return out, nil
}
