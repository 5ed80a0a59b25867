// File: stringx.go
// Title: Core String Utility Functions
// Description: String helpers shared by the foundation packages: blank
//              checks, identifier checks, and rune-aware truncation and
//              padding for terminal output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-18 v0.2.0: Added IsIdentifier; dropped interning, case
//                      conversion and random generators

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty reports whether s has zero length
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank reports whether s is empty or only whitespace
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank is the negation of IsBlank
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsIdentifier reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
// Only ASCII letters are accepted.
func IsIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', ch == '_':
		case '0' <= ch && ch <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// FirstNonBlank returns the first argument that is not blank
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// Truncate shortens s to at most maxLen runes, ending with ellipsis when cut
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// PadRight pads s with pad up to width runes
func PadRight(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s) + (width-n)*utf8.RuneLen(pad))
	builder.WriteString(s)
	for i := n; i < width; i++ {
		builder.WriteRune(pad)
	}
	return builder.String()
}

// SplitLines splits s on \n, \r\n or \r
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// Line returns the 1-based line n of s, or "" when out of range
func Line(s string, n int) string {
	lines := SplitLines(s)
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}
