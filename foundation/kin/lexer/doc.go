// File: doc.go
// Title: Kin Lexer Package Documentation
// Description: Package documentation for the Kin scanner and tokenizer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial documentation

/*
Package lexer turns Kin source text into tokens.

A Scanner yields one token per call to Next and can also be ranged over
with All. Tokenize drains a scanner into a slice that always ends in a
single EOF token:

	tokens, err := lexer.Tokenize(`umubare x = 12.5; # comment`)
	// UMUBARE IDENTIFIER ASSIGNMENT FLOAT SEMICOLON EOF

Scanning stops at the first failure. Errors are *LexError values that
match ErrUnexpectedCharacter or ErrUnterminatedString with errors.Is.
TokenizeWithLimits additionally returns a *ResourceError once the input
length or token count exceeds the configured Limits.
*/
package lexer
