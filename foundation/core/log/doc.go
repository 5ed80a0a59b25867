// File: doc.go
// Title: Core Logging Package Documentation
// Description: Package documentation for structured logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial documentation
// - 2026-10-18 v0.2.0: Updated for the Kin toolchain

/*
Package log provides structured logging for the Kin toolchain.

Loggers are immutable values; WithField, WithFields, WithName and
WithRequestID return tagged copies that share the underlying output:

	logger := kinlog.NewWithConfig(kinlog.Config{
		Level:  kinlog.LevelDebug,
		Format: kinlog.FormatJSON,
	}).WithField("component", "kin-parser")

	logger.Debug("Starting Kin parsing", kinlog.Fields{"tokens": 42})

	timer := logger.StartTimer("kin.parse")
	defer timer.Stop()

Formats are json, text, console and logfmt. Output defaults to stderr so
that command output on stdout stays machine readable. LogError picks the
level from the severity of a structured error and flattens its details
into fields.
*/
package log
