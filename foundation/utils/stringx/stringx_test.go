// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Table-driven tests for the stringx helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-18 v0.2.0: IsIdentifier and Line tests

package stringx

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "reka", false},
		{"string with spaces around", " reka ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsBlank(tt.input); result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
			if IsNotBlank(tt.input) == tt.expected {
				t.Errorf("IsNotBlank(%q) should be the negation of IsBlank", tt.input)
			}
		})
	}

	if !IsEmpty("") || IsEmpty(" ") {
		t.Error("IsEmpty only accepts the zero-length string")
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"x", true},
		{"_", true},
		{"umubare_wibice", true},
		{"a1", true},
		{"_9", true},
		{"", false},
		{"1a", false},
		{"a-b", false},
		{"a b", false},
		{"é", false},
		{"tangaza_amakuru", true},
	}

	for _, tt := range tests {
		if result := IsIdentifier(tt.input); result != tt.expected {
			t.Errorf("IsIdentifier(%q) = %v; want %v", tt.input, result, tt.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"fits", "reka", 10, "...", "reka"},
		{"cut with ellipsis", "ntahinduka", 7, "...", "ntah..."},
		{"ellipsis too long", "ntahinduka", 2, "...", "nt"},
		{"unicode", "ijambo→ryiza", 8, "…", "ijambo→…"},
		{"zero", "reka", 0, "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Truncate(tt.input, tt.maxLen, tt.ellipsis); result != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q; want %q", tt.input, tt.maxLen, result, tt.expected)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if result := PadRight("EOF", 6, '.'); result != "EOF..." {
		t.Errorf("Expected 'EOF...', got %q", result)
	}
	if result := PadRight("→", 3, ' '); result != "→  " {
		t.Errorf("Expected rune-aware padding, got %q", result)
	}
	if result := PadRight("IDENTIFIER", 4, ' '); result != "IDENTIFIER" {
		t.Errorf("Expected unchanged string, got %q", result)
	}
}

func TestLines(t *testing.T) {
	src := "reka x = 1;\r\nreka y = 2;\rtanga x;"

	lines := SplitLines(src)
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if line := Line(src, 2); line != "reka y = 2;" {
		t.Errorf("Expected second line, got %q", line)
	}
	if line := Line(src, 4); line != "" {
		t.Errorf("Expected empty string out of range, got %q", line)
	}
	if got := FirstNonBlank("", "  ", "kin"); got != "kin" {
		t.Errorf("Expected 'kin', got %q", got)
	}
}
