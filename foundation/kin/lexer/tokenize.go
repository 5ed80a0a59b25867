// File: tokenize.go
// Title: Kin Tokenizer Driver
// Description: Drains a Scanner into a token slice terminated by exactly
//              one EOF token, enforcing optional input and token limits.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial tokenizer driver

package lexer

import (
	"github.com/kin-lang/kin/foundation/kin/token"
)

// Limits bounds the work done by TokenizeWithLimits. Zero means unlimited.
type Limits struct {
	MaxInputLength int
	MaxTokens      int
}

// Tokenize scans src completely. The result ends in exactly one EOF token.
// The first scanning error is returned unchanged and no tokens are kept.
func Tokenize(src string) ([]token.Token, error) {
	return TokenizeWithLimits(src, Limits{})
}

// TokenizeWithLimits is Tokenize with resource limits applied
func TokenizeWithLimits(src string, limits Limits) ([]token.Token, error) {
	if limits.MaxInputLength > 0 && len(src) > limits.MaxInputLength {
		return nil, &ResourceError{Resource: ResourceInput, Limit: limits.MaxInputLength}
	}

	tokens := make([]token.Token, 0, estimateTokens(src, limits.MaxTokens))
	scanner := NewScanner(src)
	for tok, err := range scanner.All() {
		if err != nil {
			return nil, err
		}
		if limits.MaxTokens > 0 && len(tokens) >= limits.MaxTokens {
			return nil, &ResourceError{Resource: ResourceTokens, Limit: limits.MaxTokens, Line: tok.Line}
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func estimateTokens(src string, max int) int {
	n := len(src)/4 + 1
	if max > 0 && n > max {
		n = max
	}
	return n
}
