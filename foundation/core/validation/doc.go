// File: doc.go
// Title: Core Validation Package Documentation
// Description: Package documentation for the validation framework.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework implementation
// - 2026-10-18 v0.2.0: Settings validation rules

/*
Package validation provides composable validators with structured results.

A ValidatorChain runs validators in order and collects every failure. The
chain name labels failures that do not name a field themselves, so one
chain per configuration key yields errors such as
"parser.max_depth: must be an integer".

	chain := validation.NewValidatorChain("log.level").
		Add(validation.Required()).
		Add(validation.OneOf("trace", "debug", "info", "warn", "error", "off"))

	if err := chain.Validate(value).ToError(kinerror.CodeInvalidConfig); err != nil {
		return err
	}

Rules treat a nil value as valid except for Required, so optional keys
only need Required left out.
*/
package validation
