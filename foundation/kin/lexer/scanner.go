// File: scanner.go
// Title: Kin Scanner
// Description: Converts Kin source text into tokens one at a time.
//              Handles whitespace, '#' comments, identifiers and keywords,
//              integer and float literals, quoted strings and one- and
//              two-character operators with single-character lookahead.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial scanner implementation

package lexer

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/kin-lang/kin/foundation/kin/token"
)

// Scanner produces tokens lazily from a source string. All state lives
// in the value, so independent scanners may run concurrently.
type Scanner struct {
	src   string
	start int // start offset of the lexeme being scanned
	pos   int // next unread byte
	line  int
}

// NewScanner creates a scanner positioned at the start of src
func NewScanner(src string) *Scanner {
	return &Scanner{src: src, line: 1}
}

// Line returns the current line number
func (s *Scanner) Line() int {
	return s.line
}

// Next scans and returns the next token. Once the input is exhausted every
// call returns an EOF token. On failure the returned token has kind ERROR
// and the error is a *LexError.
func (s *Scanner) Next() (token.Token, error) {
	s.skipTrivia()
	s.start = s.pos

	if s.atEnd() {
		return token.New(token.EOF, token.EOFLexeme, s.line), nil
	}

	ch := s.advance()

	switch {
	case isLetter(ch):
		return s.scanIdentifier(), nil
	case isDigit(ch):
		return s.scanNumber(), nil
	}

	switch ch {
	case '"', '\'':
		return s.scanString(ch)
	case '-':
		return s.either('-', token.DECREMENT, token.MINUS), nil
	case '+':
		return s.either('+', token.INCREMENT, token.PLUS), nil
	case '=':
		return s.either('=', token.EQUALITY, token.ASSIGNMENT), nil
	case '!':
		return s.either('=', token.NOT_EQUAL, token.BANG), nil
	case '&':
		return s.either('&', token.AND, token.AMPERSAND), nil
	case '|':
		return s.either('|', token.OR, token.PIPE), nil
	case '>':
		return s.either('=', token.GREATER_EQUAL, token.GREATER), nil
	case '<':
		return s.either('=', token.LESS_EQUAL, token.LESS), nil
	case '*':
		return s.emit(token.STAR), nil
	case '/':
		return s.emit(token.SLASH), nil
	case '^':
		return s.emit(token.CARET), nil
	case '%':
		return s.emit(token.PERCENT), nil
	case ';':
		return s.emit(token.SEMICOLON), nil
	case '[':
		return s.emit(token.LBRACKET), nil
	case ']':
		return s.emit(token.RBRACKET), nil
	case '(':
		return s.emit(token.LPAREN), nil
	case ')':
		return s.emit(token.RPAREN), nil
	case '{':
		return s.emit(token.LBRACE), nil
	case '}':
		return s.emit(token.RBRACE), nil
	case ':':
		return s.emit(token.COLON), nil
	case '`':
		return s.emit(token.BACKTICK), nil
	case '.':
		return s.emit(token.PERIOD), nil
	case ',':
		return s.emit(token.COMMA), nil
	case '$':
		return s.emit(token.DOLLAR), nil
	}

	r, _ := utf8.DecodeRuneInString(s.src[s.start:])
	return token.New(token.ERROR, string(r), s.line), &LexError{
		Kind: UnexpectedCharacter,
		Char: r,
		Line: s.line,
	}
}

// All returns the remaining tokens as a lazy sequence. The sequence ends
// after yielding EOF or the first error.
func (s *Scanner) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := s.Next()
			if !yield(tok, err) || err != nil || tok.Kind == token.EOF {
				return
			}
		}
	}
}

func (s *Scanner) skipTrivia() {
	for !s.atEnd() {
		switch s.src[s.pos] {
		case ' ', '\t', '\r':
			s.pos++
		case '\n':
			s.line++
			s.pos++
		case '#':
			for !s.atEnd() && s.src[s.pos] != '\n' {
				s.pos++
			}
		default:
			return
		}
	}
}

func (s *Scanner) scanIdentifier() token.Token {
	for !s.atEnd() && (isLetter(s.src[s.pos]) || isDigit(s.src[s.pos])) {
		s.pos++
	}
	lexeme := strings.Clone(s.src[s.start:s.pos])
	return token.New(token.Lookup(lexeme), lexeme, s.line)
}

// scanNumber reads digits and, when a '.' is directly followed by a digit,
// the fractional part. "12." therefore scans as INTEGER then PERIOD.
func (s *Scanner) scanNumber() token.Token {
	kind := token.INTEGER
	s.digits()
	if s.peek() == '.' && isDigit(s.peekNext()) {
		kind = token.FLOAT
		s.pos++
		s.digits()
	}
	return token.New(kind, strings.Clone(s.src[s.start:s.pos]), s.line)
}

func (s *Scanner) digits() {
	for !s.atEnd() && isDigit(s.src[s.pos]) {
		s.pos++
	}
}

// scanString reads up to the matching delimiter. Strings do not span
// lines and carry no escape sequences.
func (s *Scanner) scanString(quote byte) (token.Token, error) {
	for !s.atEnd() && s.src[s.pos] != quote && s.src[s.pos] != '\n' {
		s.pos++
	}
	if s.atEnd() || s.src[s.pos] == '\n' {
		return token.New(token.ERROR, strings.Clone(s.src[s.start:s.pos]), s.line), &LexError{
			Kind: UnterminatedString,
			Line: s.line,
		}
	}
	value := strings.Clone(s.src[s.start+1 : s.pos])
	s.pos++ // closing quote
	return token.New(token.STRING, value, s.line), nil
}

func (s *Scanner) either(next byte, pair, single token.Kind) token.Token {
	if s.peek() == next {
		s.pos++
		return s.emit(pair)
	}
	return s.emit(single)
}

func (s *Scanner) emit(kind token.Kind) token.Token {
	return token.New(kind, strings.Clone(s.src[s.start:s.pos]), s.line)
}

func (s *Scanner) advance() byte {
	ch := s.src[s.pos]
	s.pos++
	return ch
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.pos]
}

func (s *Scanner) peekNext() byte {
	if s.pos+1 >= len(s.src) {
		return 0
	}
	return s.src[s.pos+1]
}

func (s *Scanner) atEnd() bool {
	return s.pos >= len(s.src)
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
