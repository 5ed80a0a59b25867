// File: parser.go
// Title: Kin Recursive Descent Parser
// Description: Builds a Kin AST from a token sequence using recursive
//              descent for statements and precedence climbing for binary
//              operators. One token of lookahead, no backtracking, and the
//              first error aborts the parse.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial parser implementation

package parser

import (
	kinlog "github.com/kin-lang/kin/foundation/core/log"
	"github.com/kin-lang/kin/foundation/kin/ast"
	"github.com/kin-lang/kin/foundation/kin/lexer"
	"github.com/kin-lang/kin/foundation/kin/token"
)

// DefaultMaxDepth bounds statement and expression nesting
const DefaultMaxDepth = 256

// Options configures parser behavior
type Options struct {
	Logger *kinlog.Logger
	// MaxDepth of zero selects DefaultMaxDepth; a negative value disables the check.
	MaxDepth int
}

// Parser turns token sequences into programs. It holds configuration only;
// each call works on its own state, so one Parser may serve many parses.
type Parser struct {
	logger  *kinlog.Logger
	options Options
}

// New creates a new Kin parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = kinlog.Discard()
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "kin-parser"),
		options: opts,
	}
}

// Parse parses a complete program. tokens should end with EOF, as produced
// by lexer.Tokenize.
func (p *Parser) Parse(tokens []token.Token) (*ast.Program, error) {
	p.logger.Debug("Starting Kin parsing", kinlog.Fields{
		"tokens": len(tokens),
	})

	s := p.newState(tokens)
	program, err := s.parseProgram()
	if err != nil {
		p.logger.Debug("Kin parsing failed", kinlog.Fields{
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("Kin parsing completed successfully", kinlog.Fields{
		"statements": len(program.Body),
	})
	return program, nil
}

// ParseExpression parses tokens that must form exactly one expression
func (p *Parser) ParseExpression(tokens []token.Token) (ast.Expr, error) {
	s := p.newState(tokens)
	expr, err := s.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(token.EOF); err != nil {
		return nil, err
	}
	return expr, nil
}

// ParseSource tokenizes and parses src with default options
func ParseSource(src string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return New(Options{}).Parse(tokens)
}

func (p *Parser) newState(tokens []token.Token) *state {
	return &state{tokens: tokens, maxDepth: p.options.MaxDepth}
}

// state is the cursor over a single token sequence
type state struct {
	tokens   []token.Token
	pos      int
	depth    int
	maxDepth int
}

// cur returns the current token. Past the end of a sequence without EOF
// it returns a synthetic EOF on the last known line.
func (s *state) cur() token.Token {
	if s.pos < len(s.tokens) {
		return s.tokens[s.pos]
	}
	line := 1
	if n := len(s.tokens); n > 0 {
		line = s.tokens[n-1].Line
	}
	return token.New(token.EOF, token.EOFLexeme, line)
}

func (s *state) peek(offset int) token.Token {
	if i := s.pos + offset; i < len(s.tokens) {
		return s.tokens[i]
	}
	return s.cur()
}

func (s *state) exhausted() bool {
	return s.pos >= len(s.tokens)
}

func (s *state) check(kind token.Kind) bool {
	return s.cur().Kind == kind
}

func (s *state) advance() token.Token {
	tok := s.cur()
	if !s.exhausted() && tok.Kind != token.EOF {
		s.pos++
	}
	return tok
}

func (s *state) match(kind token.Kind) bool {
	if s.check(kind) {
		s.advance()
		return true
	}
	return false
}

// expect consumes a token of the given kind or fails with UnexpectedToken.
// A sequence that ran out without an EOF token yields UnexpectedEndOfInput.
func (s *state) expect(kind token.Kind) (token.Token, error) {
	if s.exhausted() {
		return token.Token{}, s.endOfInput(kind, "")
	}
	if s.check(kind) {
		return s.advance(), nil
	}
	found := s.cur()
	return token.Token{}, &ParseError{
		Kind:     UnexpectedToken,
		Expected: kind,
		Found:    found,
		Line:     found.Line,
	}
}

func (s *state) unexpected(context string) error {
	found := s.cur()
	if found.Kind == token.EOF {
		return s.endOfInput(token.ILLEGAL, context)
	}
	return &ParseError{
		Kind:     UnexpectedToken,
		Expected: token.ILLEGAL,
		Context:  context,
		Found:    found,
		Line:     found.Line,
	}
}

func (s *state) endOfInput(expected token.Kind, context string) error {
	found := s.cur()
	return &ParseError{
		Kind:     UnexpectedEndOfInput,
		Expected: expected,
		Context:  context,
		Found:    found,
		Line:     found.Line,
	}
}

func (s *state) enter() error {
	s.depth++
	if s.maxDepth > 0 && s.depth > s.maxDepth {
		return &lexer.ResourceError{Resource: lexer.ResourceDepth, Limit: s.maxDepth, Line: s.cur().Line}
	}
	return nil
}

func (s *state) leave() {
	s.depth--
}

func at(tok token.Token) ast.Position {
	return ast.Position{Line: tok.Line}
}

// parseProgram parses statements until EOF
func (s *state) parseProgram() (*ast.Program, error) {
	program := &ast.Program{Pos: at(s.cur())}
	for !s.check(token.EOF) {
		stmt, err := s.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Body = append(program.Body, stmt)
	}
	if s.exhausted() {
		return nil, s.endOfInput(token.EOF, "")
	}
	return program, nil
}
