package repl

import (
	"bytes"
	"errors"
	"strings"

	"github.com/kin-lang/kin/foundation/core/i18n"
	"github.com/kin-lang/kin/foundation/kin"
	"github.com/kin-lang/kin/foundation/kin/parser"
	"github.com/kin-lang/kin/foundation/kin/token"
)

// Prompts shown before a fresh statement and inside an open block
const (
	Prompt             = "kin >> "
	ContinuationPrompt = "...    "
)

// Result is the outcome of one line of input
type Result struct {
	Output   string // rendered tree or token table
	Err      error  // parse failure; Diagnose renders it
	Message  string // informational text, e.g. after a mode switch
	Continue bool   // the input is incomplete, more lines are needed
	Quit     bool
}

// Session holds REPL state that outlives a single line: the token mode
// switch and any unfinished multi-line input. It does no terminal I/O.
type Session struct {
	engine     *kin.Engine
	loc        *i18n.Manager
	format     kin.Format
	tokensMode bool
	pending    []string
}

// NewSession creates a session. loc may be nil for English messages.
func NewSession(engine *kin.Engine, loc *i18n.Manager) *Session {
	if loc == nil {
		loc, _ = kin.NewLocalizer(kin.DefaultLocale)
	}
	return &Session{engine: engine, loc: loc, format: kin.FormatTree}
}

// SetFormat selects how parsed programs are printed
func (s *Session) SetFormat(format kin.Format) {
	s.format = format
}

// TokensMode reports whether lines are tokenized instead of parsed
func (s *Session) TokensMode() bool {
	return s.tokensMode
}

// Prompt returns the prompt for the next line
func (s *Session) Prompt() string {
	if len(s.pending) > 0 {
		return ContinuationPrompt
	}
	return Prompt
}

// Diagnose renders err in the session's locale
func (s *Session) Diagnose(err error) string {
	return kin.Diagnose(err, s.loc)
}

// T translates a message key in the session's locale
func (s *Session) T(key string, data ...map[string]interface{}) string {
	if s.loc == nil {
		return key
	}
	return s.loc.T(key, data...)
}

// Eval handles one line of input
func (s *Session) Eval(line string) Result {
	trimmed := strings.TrimSpace(line)

	if len(s.pending) == 0 {
		switch trimmed {
		case "":
			return Result{}
		case ".exit", ".quit", ".q":
			return Result{Quit: true, Message: s.T("repl.goodbye")}
		case ":tokens":
			s.tokensMode = !s.tokensMode
			if s.tokensMode {
				return Result{Message: s.T("repl.tokens_on")}
			}
			return Result{Message: s.T("repl.tokens_off")}
		}
	}

	s.pending = append(s.pending, line)
	src := strings.Join(s.pending, "\n")

	if s.tokensMode {
		s.pending = nil
		return s.tokenize(src)
	}

	program, err := s.engine.Parse(src)
	if err != nil {
		if incomplete(err) {
			return Result{Continue: true}
		}
		s.pending = nil
		return Result{Err: err}
	}
	s.pending = nil

	var out bytes.Buffer
	if err := kin.Encode(&out, program, s.format); err != nil {
		return Result{Err: err}
	}
	return Result{Output: strings.TrimRight(out.String(), "\n")}
}

// Reset drops unfinished input
func (s *Session) Reset() {
	s.pending = nil
}

func (s *Session) tokenize(src string) Result {
	tokens, err := s.engine.Tokenize(src)
	if err != nil {
		return Result{Err: err}
	}
	var out bytes.Buffer
	if err := kin.EncodeTokens(&out, tokens, kin.FormatTree); err != nil {
		return Result{Err: err}
	}
	return Result{Output: strings.TrimRight(out.String(), "\n")}
}

// incomplete reports whether err only says the input stopped too early
// inside an open block or bracket, so another line may complete it.
func incomplete(err error) bool {
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		return false
	}
	if pe.Kind == parser.UnexpectedEndOfInput {
		return true
	}
	if pe.Found.Kind != token.EOF {
		return false
	}
	switch pe.Expected {
	case token.RBRACE, token.RPAREN, token.RBRACKET:
		return true
	}
	return false
}
