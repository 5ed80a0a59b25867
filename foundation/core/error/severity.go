// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification for errors and the default
//              severity of each error code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial severity level definitions
// - 2026-10-18 v0.2.0: Severity mapping for Kin codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers problems in user input such as syntax errors
	SeverityLow Severity = iota

	// SeverityMedium covers recoverable environment problems
	SeverityMedium

	// SeverityHigh covers failures that stop the current operation
	SeverityHigh

	// SeverityCritical covers failures that leave the process unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeKinLex, CodeKinSyntax, CodeInvalidInput, CodeTranslationMissing:
		return SeverityLow
	case CodeFileNotFound, CodeFileRead, CodeConfigError, CodeMissingConfig,
		CodeInvalidConfig, CodeLocaleNotFound:
		return SeverityMedium
	case CodeKinResource:
		return SeverityHigh
	case CodeInternal:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
