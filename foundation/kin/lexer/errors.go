// File: errors.go
// Title: Kin Lexer Errors
// Description: Typed errors raised while scanning Kin source and the
//              resource error shared by the tokenizer and the parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial error types

package lexer

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrResourceExhausted   = errors.New("resource exhausted")
)

// LexErrorKind distinguishes the two scanning failures
type LexErrorKind int

const (
	UnexpectedCharacter LexErrorKind = iota
	UnterminatedString
)

func (k LexErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case UnterminatedString:
		return "UnterminatedString"
	default:
		return fmt.Sprintf("LexErrorKind(%d)", int(k))
	}
}

// LexError reports the first scanning failure. Char is only set for
// UnexpectedCharacter; Line is the line where the offending lexeme began.
type LexError struct {
	Kind LexErrorKind
	Char rune
	Line int
}

func (e *LexError) Error() string {
	switch e.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("unexpected character %q on line %d", e.Char, e.Line)
	case UnterminatedString:
		return fmt.Sprintf("unterminated string starting on line %d", e.Line)
	default:
		return fmt.Sprintf("lex error on line %d", e.Line)
	}
}

// Is matches the kind-specific sentinel
func (e *LexError) Is(target error) bool {
	switch e.Kind {
	case UnexpectedCharacter:
		return target == ErrUnexpectedCharacter
	case UnterminatedString:
		return target == ErrUnterminatedString
	}
	return false
}

// Resource names reported by ResourceError
const (
	ResourceInput  = "input"
	ResourceTokens = "tokens"
	ResourceDepth  = "depth"
)

// ResourceError is returned when a configured limit would be exceeded.
// It stands in for allocation failure, which Go programs cannot observe.
type ResourceError struct {
	Resource string
	Limit    int
	Line     int
}

func (e *ResourceError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("out of memory: %s limit of %d exceeded on line %d", e.Resource, e.Limit, e.Line)
	}
	return fmt.Sprintf("out of memory: %s limit of %d exceeded", e.Resource, e.Limit)
}

func (e *ResourceError) Is(target error) bool {
	return target == ErrResourceExhausted
}
