// File: rules.go
// Title: Validation Rules
// Description: Concrete validators for configuration values: presence,
//              integer type and range, and membership in a fixed set.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package validation

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Required fails for nil and blank strings
func Required() ValidatorFunc {
	return func(value interface{}) ValidationResult {
		if IsNilOrBlank(value) {
			return NewValidationErrorWithValue(CodeRequired, "value is required", value, nil)
		}
		return NewValidationResult()
	}
}

// Integer fails unless value converts to an int. Decoders hand numbers
// over as int, int64 or float64 and environment overrides as strings.
func Integer() ValidatorFunc {
	return func(value interface{}) ValidationResult {
		if value == nil {
			return NewValidationResult()
		}
		if _, ok := ToInt(value); !ok {
			return NewValidationErrorWithValue(CodeType, "must be an integer", value, "integer")
		}
		return NewValidationResult()
	}
}

// IntRange fails for integers outside [lo, hi]. Values that are not
// integers are left to Integer.
func IntRange(lo, hi int) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		n, ok := ToInt(value)
		if !ok {
			return NewValidationResult()
		}
		if n < lo || n > hi {
			return NewValidationErrorWithValue(CodeRange,
				fmt.Sprintf("must be between %d and %d", lo, hi),
				n, fmt.Sprintf("%d..%d", lo, hi))
		}
		return NewValidationResult()
	}
}

// OneOf fails for strings outside allowed. Comparison ignores case and
// surrounding blanks.
func OneOf(allowed ...string) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		if value == nil {
			return NewValidationResult()
		}
		s := strings.ToLower(strings.TrimSpace(fmt.Sprint(value)))
		if slices.ContainsFunc(allowed, func(a string) bool { return strings.EqualFold(a, s) }) {
			return NewValidationResult()
		}
		return NewValidationErrorWithValue(CodeOneOf,
			fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")),
			value, allowed)
	}
}

// ToInt converts the numeric representations produced by the TOML and
// YAML decoders, and decimal strings, to int
func ToInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		if v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	default:
		return 0, false
	}
}

// IsNilOrBlank reports whether value is nil or a blank string
func IsNilOrBlank(value interface{}) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) == ""
}
