// File: errors.go
// Title: Kin Parser Errors
// Description: Typed parse errors carrying the expected token kind, the
//              token actually found and its source line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial error types

package parser

import (
	"errors"
	"fmt"

	"github.com/kin-lang/kin/foundation/kin/token"
)

// Sentinel errors for errors.Is matching
var (
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
)

// ParseErrorKind distinguishes the parse failures
type ParseErrorKind int

const (
	UnexpectedToken ParseErrorKind = iota
	UnexpectedEndOfInput
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", int(k))
	}
}

// ParseError represents the first parsing failure. Expected is
// token.ILLEGAL when no single kind was required; Context then names the
// construct that was being parsed.
type ParseError struct {
	Kind     ParseErrorKind
	Expected token.Kind
	Context  string
	Found    token.Token
	Line     int
}

func (pe *ParseError) Error() string {
	want := pe.Context
	if pe.Expected != token.ILLEGAL {
		want = pe.Expected.String()
	}

	switch pe.Kind {
	case UnexpectedEndOfInput:
		return fmt.Sprintf("parse error on line %d: unexpected end of input, expected %s", pe.Line, want)
	default:
		return fmt.Sprintf("parse error on line %d: expected %s, found %s '%s'",
			pe.Line, want, pe.Found.Kind, pe.Found.Lexeme)
	}
}

// Is matches the kind-specific sentinel
func (pe *ParseError) Is(target error) bool {
	switch pe.Kind {
	case UnexpectedToken:
		return target == ErrUnexpectedToken
	case UnexpectedEndOfInput:
		return target == ErrUnexpectedEndOfInput
	}
	return false
}
