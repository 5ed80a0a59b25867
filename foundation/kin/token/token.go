// File: token.go
// Title: Kin Token Definitions
// Description: Defines the closed set of Kin token kinds, the Token value
//              produced by the scanner and the Kinyarwanda keyword table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial token model

package token

import (
	"fmt"
)

// Kind identifies the lexical category of a token
type Kind int

const (
	// Special tokens
	ILLEGAL Kind = iota
	ERROR
	EOF

	// Literals
	IDENTIFIER
	STRING
	INTEGER
	FLOAT

	// Single-character punctuation and operators
	MINUS
	PLUS
	STAR
	SLASH
	CARET
	PERCENT
	AMPERSAND
	PIPE
	BANG
	SEMICOLON
	LBRACKET
	RBRACKET
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	COLON
	BACKTICK
	GREATER
	LESS
	PERIOD
	COMMA
	DOLLAR
	ASSIGNMENT

	// Two-character operators
	EQUALITY
	NOT_EQUAL
	AND
	OR
	INCREMENT
	DECREMENT
	GREATER_EQUAL
	LESS_EQUAL

	keywordBegin
	REKA
	NTAHINDUKA
	UMUBARE
	UMUBARE_WIBICE
	IJAMBO
	UBWOKO
	IMITERERE
	NIBA
	NANONE_NIBA
	NIBA_BYANZE
	SUBIRAMO
	POROGARAMU_NTOYA
	TANGA
	HAGARARA
	KOMEZA
	GERERANYA
	USANZE
	IBINDI
	NIBYO
	SIBYO
	UBUSA
	keywordEnd
)

var kindNames = [...]string{
	ILLEGAL:    "ILLEGAL",
	ERROR:      "ERROR",
	EOF:        "EOF",
	IDENTIFIER: "IDENTIFIER",
	STRING:     "STRING",
	INTEGER:    "INTEGER",
	FLOAT:      "FLOAT",

	MINUS:      "MINUS",
	PLUS:       "PLUS",
	STAR:       "STAR",
	SLASH:      "SLASH",
	CARET:      "CARET",
	PERCENT:    "PERCENT",
	AMPERSAND:  "AMPERSAND",
	PIPE:       "PIPE",
	BANG:       "BANG",
	SEMICOLON:  "SEMICOLON",
	LBRACKET:   "LBRACKET",
	RBRACKET:   "RBRACKET",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	COLON:      "COLON",
	BACKTICK:   "BACKTICK",
	GREATER:    "GREATER",
	LESS:       "LESS",
	PERIOD:     "PERIOD",
	COMMA:      "COMMA",
	DOLLAR:     "DOLLAR",
	ASSIGNMENT: "ASSIGNMENT",

	EQUALITY:      "EQUALITY",
	NOT_EQUAL:     "NOT_EQUAL",
	AND:           "AND",
	OR:            "OR",
	INCREMENT:     "INCREMENT",
	DECREMENT:     "DECREMENT",
	GREATER_EQUAL: "GREATER_EQUAL",
	LESS_EQUAL:    "LESS_EQUAL",

	REKA:             "REKA",
	NTAHINDUKA:       "NTAHINDUKA",
	UMUBARE:          "UMUBARE",
	UMUBARE_WIBICE:   "UMUBARE_WIBICE",
	IJAMBO:           "IJAMBO",
	UBWOKO:           "UBWOKO",
	IMITERERE:        "IMITERERE",
	NIBA:             "NIBA",
	NANONE_NIBA:      "NANONE_NIBA",
	NIBA_BYANZE:      "NIBA_BYANZE",
	SUBIRAMO:         "SUBIRAMO",
	POROGARAMU_NTOYA: "POROGARAMU_NTOYA",
	TANGA:            "TANGA",
	HAGARARA:         "HAGARARA",
	KOMEZA:           "KOMEZA",
	GERERANYA:        "GERERANYA",
	USANZE:           "USANZE",
	IBINDI:           "IBINDI",
	NIBYO:            "NIBYO",
	SIBYO:            "SIBYO",
	UBUSA:            "UBUSA",
}

// String returns the canonical upper-case name of the kind
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsKeyword reports whether k is one of the reserved words
func (k Kind) IsKeyword() bool {
	return k > keywordBegin && k < keywordEnd
}

// IsDeclaration reports whether k starts a variable declaration
func (k Kind) IsDeclaration() bool {
	switch k {
	case REKA, UMUBARE, UMUBARE_WIBICE, IJAMBO, UBWOKO:
		return true
	}
	return false
}

var keywords = map[string]Kind{
	"reka":             REKA,
	"ntahinduka":       NTAHINDUKA,
	"umubare":          UMUBARE,
	"umubare_wibice":   UMUBARE_WIBICE,
	"ijambo":           IJAMBO,
	"ubwoko":           UBWOKO,
	"imiterere":        IMITERERE,
	"niba":             NIBA,
	"nanone_niba":      NANONE_NIBA,
	"niba_byanze":      NIBA_BYANZE,
	"subiramo":         SUBIRAMO,
	"porogaramu_ntoya": POROGARAMU_NTOYA,
	"tanga":            TANGA,
	"hagarara":         HAGARARA,
	"komeza":           KOMEZA,
	"gereranya":        GERERANYA,
	"usanze":           USANZE,
	"ibindi":           IBINDI,
	"nibyo":            NIBYO,
	"sibyo":            SIBYO,
	"ubusa":            UBUSA,
}

// Lookup maps a maximal-munch identifier to its keyword kind, or
// IDENTIFIER when the lexeme is not reserved. Matching is exact:
// "niban" is an identifier even though it starts with "niba".
func Lookup(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENTIFIER
}

// Keywords returns a copy of the keyword table
func Keywords() map[string]Kind {
	out := make(map[string]Kind, len(keywords))
	for k, v := range keywords {
		out[k] = v
	}
	return out
}

// EOFLexeme is the lexeme carried by the end-of-input token
const EOFLexeme = "EOF"

// Token is a single lexical unit. Lexeme is owned by the token and
// never aliases the scanned source.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}

// New creates a token
func New(kind Kind, lexeme string, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line}
}

// String returns a debugging representation of the token
func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return fmt.Sprintf("EOF@%d", t.Line)
	case STRING:
		return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Lexeme, t.Line)
	default:
		return fmt.Sprintf("%s(%s)@%d", t.Kind, t.Lexeme, t.Line)
	}
}

// Is reports whether the token has the given kind
func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}
