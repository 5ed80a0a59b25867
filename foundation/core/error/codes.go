// File: codes.go
// Title: Error Codes
// Description: Standardized error codes for the Kin toolchain with
//              category and process exit code mapping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial error code definitions
// - 2026-10-18 v0.2.0: Kin lexer, parser, resource and I/O codes;
//                      exit code mapping replaces HTTP status mapping

package error

// Code represents a standardized error code
type Code string

const (
	// Generic
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Kin front end
	CodeKinLex      Code = "KIN_LEX"
	CodeKinSyntax   Code = "KIN_SYNTAX"
	CodeKinResource Code = "KIN_RESOURCE"

	// I/O
	CodeFileNotFound Code = "FILE_NOT_FOUND"
	CodeFileRead     Code = "FILE_READ"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Localization
	CodeLocaleNotFound     Code = "LOCALE_NOT_FOUND"
	CodeTranslationMissing Code = "TRANSLATION_MISSING"
)

// Process exit codes used by the kin command
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitSyntaxError  = 2
	ExitRuntimeError = 3
	ExitInvalidArgs  = 4
	ExitFileNotFound = 5
	ExitUnableToRead = 6
	ExitOutOfMemory  = 7
	ExitGenericError = 8
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeKinLex, CodeKinSyntax, CodeKinResource,
		CodeFileNotFound, CodeFileRead,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeLocaleNotFound, CodeTranslationMissing:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeKinLex, CodeKinSyntax, CodeKinResource:
		return "kin"
	case CodeFileNotFound, CodeFileRead:
		return "io"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeLocaleNotFound, CodeTranslationMissing:
		return "i18n"
	case CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit code for this error code
func (c Code) ExitCode() int {
	switch c {
	case CodeKinLex, CodeKinSyntax:
		return ExitSyntaxError
	case CodeKinResource:
		return ExitOutOfMemory
	case CodeInvalidInput, CodeInvalidConfig, CodeMissingConfig:
		return ExitInvalidArgs
	case CodeFileNotFound:
		return ExitFileNotFound
	case CodeFileRead:
		return ExitUnableToRead
	case CodeUnknown:
		return ExitGenericError
	default:
		return ExitFailure
	}
}
