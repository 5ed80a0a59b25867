// File: interfaces.go
// Title: Core Validation Interfaces and Types
// Description: Defines the Validator interface, validation results and
//              their conversion to structured errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation interfaces implementation
// - 2026-10-18 v0.2.0: Reduced to the codes used for settings validation;
//                      ToError takes the error code of the caller

package validation

import (
	"context"
	"fmt"
	"strings"

	kinerror "github.com/kin-lang/kin/foundation/core/error"
)

// Validation error codes
const (
	CodeRequired = "VALIDATION_REQUIRED" // value is missing
	CodeType     = "VALIDATION_TYPE"     // value has the wrong type
	CodeRange    = "VALIDATION_RANGE"    // number outside the allowed range
	CodeOneOf    = "VALIDATION_ONE_OF"   // value not in the allowed set
	CodeCustom   = "VALIDATION_CUSTOM"
)

// Validator validates a single value
type Validator interface {
	Validate(value interface{}) ValidationResult
	ValidateWithContext(ctx context.Context, value interface{}) ValidationResult
}

// ValidatorFunc adapts a function to the Validator interface
type ValidatorFunc func(value interface{}) ValidationResult

// Validate implements Validator
func (f ValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(value)
}

// ValidateWithContext implements Validator. A cancelled context fails
// the validation.
func (f ValidatorFunc) ValidateWithContext(ctx context.Context, value interface{}) ValidationResult {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return NewValidationError(CodeCustom, err.Error())
		}
	}
	return f(value)
}

// ValidationResult is the outcome of one or more validators
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError describes one failed rule
type ValidationError struct {
	Code     string      `json:"code"`
	Field    string      `json:"field,omitempty"`
	Message  string      `json:"message"`
	Value    interface{} `json:"value,omitempty"`
	Expected interface{} `json:"expected,omitempty"`
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NewValidationError creates a failed result with a single error
func NewValidationError(code, message string) ValidationResult {
	return ValidationResult{
		Errors: []ValidationError{{Code: code, Message: message}},
	}
}

// NewValidationErrorWithValue creates a failed result that records the
// offending value and what was expected instead
func NewValidationErrorWithValue(code, message string, value, expected interface{}) ValidationResult {
	return ValidationResult{
		Errors: []ValidationError{{
			Code:     code,
			Message:  message,
			Value:    value,
			Expected: expected,
		}},
	}
}

// AddError adds an error to the result
func (r *ValidationResult) AddError(code, message string) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Code: code, Message: message})
	return r
}

// AddFieldError adds an error for a named field
func (r *ValidationResult) AddFieldError(code, field, message string, value interface{}) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
		Value:   value,
	})
	return r
}

// FirstError returns the first validation error, or nil if validation passed
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ErrorMessages returns all error messages
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Message
	}
	return messages
}

// HasError checks if the result contains a specific error code
func (r ValidationResult) HasError(code string) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts a failed result to a structured error with the given
// code. The first error becomes the message; field, value and expected
// become details. Returns nil if validation passed.
func (r ValidationResult) ToError(code kinerror.Code) error {
	if r.Valid {
		return nil
	}
	if len(r.Errors) == 0 {
		return kinerror.New("validation failed").WithCode(code)
	}

	first := r.Errors[0]
	message := first.Message
	if first.Field != "" {
		message = first.Field + ": " + message
	}

	err := kinerror.New(message).
		WithCode(code).
		WithDetail("rule", first.Code)
	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}
	if first.Value != nil {
		err = err.WithDetail("value", first.Value)
	}
	if first.Expected != nil {
		err = err.WithDetail("expected", first.Expected)
	}
	if len(r.Errors) > 1 {
		err = err.WithDetail("totalErrors", len(r.Errors))
		err = err.WithDetail("allMessages", r.ErrorMessages())
	}
	return err
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}

	parts := []string{"ValidationResult{valid: false"}
	if len(r.Errors) > 0 {
		parts = append(parts, fmt.Sprintf("errors: %d", len(r.Errors)))
		parts = append(parts, fmt.Sprintf("first: %s", r.Errors[0].Message))
		if r.Errors[0].Field != "" {
			parts = append(parts, fmt.Sprintf("field: %s", r.Errors[0].Field))
		}
	}
	return strings.Join(parts, ", ") + "}"
}

// Combine merges multiple validation results into one
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()
	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
	}
	return combined
}
