// File: kin.go
// Title: Kin Front End Engine
// Description: Ties the scanner and parser together behind one entry point
//              with resource limits, request-scoped logging and structured
//              errors carrying localization keys.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Discard logger default, failures logged at debug,
//   long lexemes shortened in diagnostics

package kin

import (
	"errors"

	"github.com/google/uuid"

	kinerror "github.com/kin-lang/kin/foundation/core/error"
	kinlog "github.com/kin-lang/kin/foundation/core/log"
	"github.com/kin-lang/kin/foundation/kin/ast"
	"github.com/kin-lang/kin/foundation/kin/lexer"
	"github.com/kin-lang/kin/foundation/kin/parser"
	"github.com/kin-lang/kin/foundation/kin/token"
	kinstringx "github.com/kin-lang/kin/foundation/utils/stringx"
)

// Default limits
const (
	DefaultMaxInputLength = 1 << 20
	DefaultMaxTokens      = 1_000_000
	DefaultMaxDepth       = parser.DefaultMaxDepth
)

// Options configures an Engine. Zero limits select the defaults; a
// negative limit disables it.
type Options struct {
	MaxInputLength int
	MaxTokens      int
	MaxDepth       int
	Logger         *kinlog.Logger
}

// DefaultOptions returns the limits used when nothing is configured
func DefaultOptions() Options {
	return Options{
		MaxInputLength: DefaultMaxInputLength,
		MaxTokens:      DefaultMaxTokens,
		MaxDepth:       DefaultMaxDepth,
	}
}

// Engine turns Kin source into validated programs. It is safe for
// concurrent use.
type Engine struct {
	options Options
	logger  *kinlog.Logger
}

// NewEngine creates an engine with the given options
func NewEngine(opts Options) *Engine {
	defaults := DefaultOptions()
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = defaults.MaxInputLength
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = defaults.MaxTokens
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = defaults.MaxDepth
	}
	if opts.Logger == nil {
		opts.Logger = kinlog.Discard()
	}

	return &Engine{
		options: opts,
		logger:  opts.Logger.WithName("kin"),
	}
}

// Options returns the effective options
func (e *Engine) Options() Options {
	return e.options
}

func (e *Engine) limits() lexer.Limits {
	return lexer.Limits{
		MaxInputLength: max(e.options.MaxInputLength, 0),
		MaxTokens:      max(e.options.MaxTokens, 0),
	}
}

// Tokenize scans src into tokens ending with a single EOF
func (e *Engine) Tokenize(src string) ([]token.Token, error) {
	requestID := uuid.NewString()
	tokens, err := lexer.TokenizeWithLimits(src, e.limits())
	if err != nil {
		return nil, liftError(err, "kin.Tokenize", requestID)
	}
	return tokens, nil
}

// Parse tokenizes and parses src. Each call is logged under its own
// request ID, which is also attached to returned errors.
func (e *Engine) Parse(src string) (*ast.Program, error) {
	requestID := uuid.NewString()
	logger := e.logger.WithRequestID(requestID)
	timer := logger.StartTimer("kin.parse").WithErrorLevel(kinlog.LevelDebug).WithField("bytes", len(src))

	program, err := e.parse(src, logger)
	if err != nil {
		err = liftError(err, "kin.Parse", requestID)
		timer.StopWithError(err)
		return nil, err
	}

	timer.WithField("statements", len(program.Body)).Stop()
	return program, nil
}

func (e *Engine) parse(src string, logger *kinlog.Logger) (*ast.Program, error) {
	tokens, err := lexer.TokenizeWithLimits(src, e.limits())
	if err != nil {
		return nil, err
	}

	p := parser.New(parser.Options{Logger: logger, MaxDepth: e.options.MaxDepth})
	program, err := p.Parse(tokens)
	if err != nil {
		return nil, err
	}
	if err := program.Validate(); err != nil {
		return nil, kinerror.Wrap(err, "parser produced an invalid tree").
			WithCode(kinerror.CodeInternal)
	}
	return program, nil
}

// ParseExpression parses src as a single expression
func (e *Engine) ParseExpression(src string) (ast.Expr, error) {
	requestID := uuid.NewString()
	tokens, err := lexer.TokenizeWithLimits(src, e.limits())
	if err != nil {
		return nil, liftError(err, "kin.ParseExpression", requestID)
	}

	p := parser.New(parser.Options{
		Logger:   e.logger.WithRequestID(requestID),
		MaxDepth: e.options.MaxDepth,
	})
	expr, err := p.ParseExpression(tokens)
	if err != nil {
		return nil, liftError(err, "kin.ParseExpression", requestID)
	}
	return expr, nil
}

// maxLexemeRunes bounds the lexeme quoted in syntax diagnostics
const maxLexemeRunes = 40

// liftError converts scanner and parser errors into *kinerror.Error with a
// code, the source line and a localization key. The original error stays
// reachable through errors.As.
func liftError(err error, operation, requestID string) error {
	var (
		lexErr   *lexer.LexError
		parseErr *parser.ParseError
		resErr   *lexer.ResourceError
		kinErr   *kinerror.Error
	)

	switch {
	case errors.As(err, &lexErr):
		args := map[string]interface{}{"line": lexErr.Line}
		key := "diagnostics.unterminated_string"
		if lexErr.Kind == lexer.UnexpectedCharacter {
			key = "diagnostics.unexpected_character"
			args["char"] = string(lexErr.Char)
		}
		return kinerror.Wrap(err, "lexical error").
			WithCode(kinerror.CodeKinLex).
			WithOperation(operation).
			WithRequestID(requestID).
			WithLine(lexErr.Line).
			WithDetail("kind", lexErr.Kind.String()).
			WithMessage(key, args)

	case errors.As(err, &parseErr):
		expected := parseErr.Context
		if parseErr.Expected != token.ILLEGAL {
			expected = parseErr.Expected.String()
		}
		args := map[string]interface{}{
			"line":     parseErr.Line,
			"expected": expected,
			"found":    parseErr.Found.Kind.String(),
			"lexeme":   kinstringx.Truncate(parseErr.Found.Lexeme, maxLexemeRunes, "..."),
		}
		key := "diagnostics.unexpected_token"
		if parseErr.Kind == parser.UnexpectedEndOfInput {
			key = "diagnostics.unexpected_end_of_input"
		}
		return kinerror.Wrap(err, "syntax error").
			WithCode(kinerror.CodeKinSyntax).
			WithOperation(operation).
			WithRequestID(requestID).
			WithLine(parseErr.Line).
			WithDetail("kind", parseErr.Kind.String()).
			WithDetail("expected", expected).
			WithDetail("found", parseErr.Found.Kind.String()).
			WithMessage(key, args)

	case errors.As(err, &resErr):
		return kinerror.Wrap(err, "resource limit exceeded").
			WithCode(kinerror.CodeKinResource).
			WithOperation(operation).
			WithRequestID(requestID).
			WithLine(resErr.Line).
			WithDetail("resource", resErr.Resource).
			WithDetail("limit", resErr.Limit).
			WithMessage("diagnostics.resource_exhausted", map[string]interface{}{
				"resource": resErr.Resource,
				"limit":    resErr.Limit,
				"line":     resErr.Line,
			})

	case errors.As(err, &kinErr):
		return kinErr.WithOperation(operation).WithRequestID(requestID)

	default:
		return kinerror.Wrap(err, "kin front end failed").
			WithCode(kinerror.CodeInternal).
			WithOperation(operation).
			WithRequestID(requestID)
	}
}
