// File: doc.go
// Title: Core Error Package Documentation
// Description: Package documentation for structured errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial documentation
// - 2026-10-18 v0.2.0: Kin codes and exit code mapping

/*
Package error provides the structured error type used by the Kin toolchain.

Errors are built fluently:

	err := kinerror.Wrap(parseErr, "parse failed").
		WithCode(kinerror.CodeKinSyntax).
		WithOperation("kin.parse").
		WithLine(3).
		WithMessage("error.syntax.unexpected_token", args)

The wrapped cause stays reachable with errors.Is and errors.As. Each Code
belongs to a category and maps to a process exit code through ExitCode,
which the kin command uses directly.
*/
package error
