// File: scanner_test.go
// Title: Kin Scanner Unit Tests
// Description: Tests for tokenization of every Kin lexical form, line
//              tracking, comments, lookahead and error reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test suite

package lexer

import (
	"errors"
	"testing"

	"github.com/kin-lang/kin/foundation/kin/token"
)

type kl struct {
	kind   token.Kind
	lexeme string
}

func scanAll(t *testing.T, input string) []token.Token {
	t.Helper()
	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Unexpected error for %q: %v", input, err)
	}
	return tokens
}

func assertTokens(t *testing.T, got []token.Token, expected []kl) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expected), len(got), got)
	}
	for i, exp := range expected {
		if got[i].Kind != exp.kind {
			t.Errorf("Token %d: expected kind %s, got %s", i, exp.kind, got[i].Kind)
		}
		if got[i].Lexeme != exp.lexeme {
			t.Errorf("Token %d: expected lexeme %q, got %q", i, exp.lexeme, got[i].Lexeme)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []kl
	}{
		{
			name:  "Integer declaration",
			input: "umubare x = 5;",
			expected: []kl{
				{token.UMUBARE, "umubare"},
				{token.IDENTIFIER, "x"},
				{token.ASSIGNMENT, "="},
				{token.INTEGER, "5"},
				{token.SEMICOLON, ";"},
				{token.EOF, "EOF"},
			},
		},
		{
			name:  "Float literal",
			input: "12.5",
			expected: []kl{
				{token.FLOAT, "12.5"},
				{token.EOF, "EOF"},
			},
		},
		{
			name:  "Trailing dot is not a float",
			input: "12.",
			expected: []kl{
				{token.INTEGER, "12"},
				{token.PERIOD, "."},
				{token.EOF, "EOF"},
			},
		},
		{
			name:  "Member access on number-like input",
			input: "12.foo",
			expected: []kl{
				{token.INTEGER, "12"},
				{token.PERIOD, "."},
				{token.IDENTIFIER, "foo"},
				{token.EOF, "EOF"},
			},
		},
		{
			name:  "Keyword prefix is an identifier",
			input: "niban niba",
			expected: []kl{
				{token.IDENTIFIER, "niban"},
				{token.NIBA, "niba"},
				{token.EOF, "EOF"},
			},
		},
		{
			name:  "Underscore keywords",
			input: "nanone_niba niba_byanze porogaramu_ntoya",
			expected: []kl{
				{token.NANONE_NIBA, "nanone_niba"},
				{token.NIBA_BYANZE, "niba_byanze"},
				{token.POROGARAMU_NTOYA, "porogaramu_ntoya"},
				{token.EOF, "EOF"},
			},
		},
		{
			name:  "Double quoted string",
			input: `"muraho isi"`,
			expected: []kl{
				{token.STRING, "muraho isi"},
				{token.EOF, "EOF"},
			},
		},
		{
			name:  "Single quoted string keeps other quote",
			input: `'a"b'`,
			expected: []kl{
				{token.STRING, `a"b`},
				{token.EOF, "EOF"},
			},
		},
		{
			name:  "Empty string",
			input: `""`,
			expected: []kl{
				{token.STRING, ""},
				{token.EOF, "EOF"},
			},
		},
		{
			name:  "Comment only",
			input: "# nothing here",
			expected: []kl{
				{token.EOF, "EOF"},
			},
		},
		{
			name:  "Empty input",
			input: "",
			expected: []kl{
				{token.EOF, "EOF"},
			},
		},
		{
			name:  "Two character operators",
			input: "++ -- == != && || >= <=",
			expected: []kl{
				{token.INCREMENT, "++"},
				{token.DECREMENT, "--"},
				{token.EQUALITY, "=="},
				{token.NOT_EQUAL, "!="},
				{token.AND, "&&"},
				{token.OR, "||"},
				{token.GREATER_EQUAL, ">="},
				{token.LESS_EQUAL, "<="},
				{token.EOF, "EOF"},
			},
		},
		{
			name:  "One character fallbacks",
			input: "+ - = ! & | > <",
			expected: []kl{
				{token.PLUS, "+"},
				{token.MINUS, "-"},
				{token.ASSIGNMENT, "="},
				{token.BANG, "!"},
				{token.AMPERSAND, "&"},
				{token.PIPE, "|"},
				{token.GREATER, ">"},
				{token.LESS, "<"},
				{token.EOF, "EOF"},
			},
		},
		{
			name:  "Maximal munch on operators",
			input: "+++",
			expected: []kl{
				{token.INCREMENT, "++"},
				{token.PLUS, "+"},
				{token.EOF, "EOF"},
			},
		},
		{
			name:  "Punctuation",
			input: "*/^%;[](){}:`.,$",
			expected: []kl{
				{token.STAR, "*"},
				{token.SLASH, "/"},
				{token.CARET, "^"},
				{token.PERCENT, "%"},
				{token.SEMICOLON, ";"},
				{token.LBRACKET, "["},
				{token.RBRACKET, "]"},
				{token.LPAREN, "("},
				{token.RPAREN, ")"},
				{token.LBRACE, "{"},
				{token.RBRACE, "}"},
				{token.COLON, ":"},
				{token.BACKTICK, "`"},
				{token.PERIOD, "."},
				{token.COMMA, ","},
				{token.DOLLAR, "$"},
				{token.EOF, "EOF"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, scanAll(t, tt.input), tt.expected)
		})
	}
}

func TestTokenize_Lines(t *testing.T) {
	input := "reka a = 1;\n# comment line\n\nniba (a == 1) {\n  tanga a;\n}\n"
	tokens := scanAll(t, input)

	expectedLines := map[string]int{
		"reka":  1,
		"niba":  4,
		"tanga": 5,
		"}":     6,
	}
	for _, tok := range tokens {
		if line, ok := expectedLines[tok.Lexeme]; ok && tok.Line != line {
			t.Errorf("Expected %q on line %d, got %d", tok.Lexeme, line, tok.Line)
		}
	}

	eof := tokens[len(tokens)-1]
	if eof.Kind != token.EOF || eof.Line != 7 {
		t.Errorf("Expected EOF on line 7, got %v", eof)
	}
}

func TestTokenize_SingleEOF(t *testing.T) {
	inputs := []string{"", "x", "umubare x = 5;\n", "# c\n# d"}
	for _, input := range inputs {
		tokens := scanAll(t, input)
		count := 0
		for _, tok := range tokens {
			if tok.Kind == token.EOF {
				count++
			}
		}
		if count != 1 || tokens[len(tokens)-1].Kind != token.EOF {
			t.Errorf("Expected exactly one trailing EOF for %q, got %v", input, tokens)
		}
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel error
		kind     LexErrorKind
		char     rune
		line     int
	}{
		{"Unexpected character", "umubare x = 5 ~ 2;", ErrUnexpectedCharacter, UnexpectedCharacter, '~', 1},
		{"Unexpected character later line", "x\ny\n@", ErrUnexpectedCharacter, UnexpectedCharacter, '@', 3},
		{"Non ASCII character", "reka é = 1;", ErrUnexpectedCharacter, UnexpectedCharacter, 'é', 1},
		{"Unterminated at EOF", `"hello`, ErrUnterminatedString, UnterminatedString, 0, 1},
		{"Unterminated at newline", "x\n'abc\n'", ErrUnterminatedString, UnterminatedString, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err == nil {
				t.Fatalf("Expected error, got tokens %v", tokens)
			}
			if tokens != nil {
				t.Errorf("Expected no tokens on failure, got %v", tokens)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("Expected errors.Is(%v), got %v", tt.sentinel, err)
			}
			var lexErr *LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("Expected *LexError, got %T", err)
			}
			if lexErr.Kind != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, lexErr.Kind)
			}
			if lexErr.Char != tt.char {
				t.Errorf("Expected char %q, got %q", tt.char, lexErr.Char)
			}
			if lexErr.Line != tt.line {
				t.Errorf("Expected line %d, got %d", tt.line, lexErr.Line)
			}
		})
	}
}

func TestScanner_EOFIsIdempotent(t *testing.T) {
	s := NewScanner("x")
	if tok, _ := s.Next(); tok.Kind != token.IDENTIFIER {
		t.Fatalf("Expected IDENTIFIER, got %v", tok)
	}
	for i := 0; i < 3; i++ {
		tok, err := s.Next()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if tok.Kind != token.EOF {
			t.Errorf("Call %d: expected EOF, got %v", i, tok)
		}
	}
}

func TestScanner_All(t *testing.T) {
	var kinds []token.Kind
	for tok, err := range NewScanner("tanga 1;").All() {
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		kinds = append(kinds, tok.Kind)
	}

	expected := []token.Kind{token.TANGA, token.INTEGER, token.SEMICOLON, token.EOF}
	if len(kinds) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, kinds)
	}
	for i := range expected {
		if kinds[i] != expected[i] {
			t.Errorf("Token %d: expected %s, got %s", i, expected[i], kinds[i])
		}
	}
}

func TestScanner_AllStopsOnError(t *testing.T) {
	calls := 0
	var lastErr error
	for tok, err := range NewScanner("a ~ b").All() {
		calls++
		lastErr = err
		if err != nil && tok.Kind != token.ERROR {
			t.Errorf("Expected ERROR token alongside error, got %v", tok)
		}
	}
	if calls != 2 || lastErr == nil {
		t.Errorf("Expected sequence to stop at the error after 2 items, got %d (err=%v)", calls, lastErr)
	}
}

func TestTokenize_LexemesAreOwned(t *testing.T) {
	src := []byte("reka izina = 'Kin';")
	tokens := scanAll(t, string(src))
	for i := range src {
		src[i] = 'x'
	}
	if tokens[1].Lexeme != "izina" || tokens[3].Lexeme != "Kin" {
		t.Errorf("Expected lexemes to survive source mutation, got %v", tokens)
	}
}

func TestTokenizeWithLimits(t *testing.T) {
	t.Run("input length", func(t *testing.T) {
		_, err := TokenizeWithLimits("reka x = 1;", Limits{MaxInputLength: 4})
		var resErr *ResourceError
		if !errors.As(err, &resErr) || resErr.Resource != ResourceInput {
			t.Fatalf("Expected input ResourceError, got %v", err)
		}
		if !errors.Is(err, ErrResourceExhausted) {
			t.Error("Expected errors.Is(ErrResourceExhausted)")
		}
	})

	t.Run("token count", func(t *testing.T) {
		_, err := TokenizeWithLimits("a b c d", Limits{MaxTokens: 3})
		var resErr *ResourceError
		if !errors.As(err, &resErr) || resErr.Resource != ResourceTokens || resErr.Limit != 3 {
			t.Fatalf("Expected tokens ResourceError, got %v", err)
		}
	})

	t.Run("within limits", func(t *testing.T) {
		tokens, err := TokenizeWithLimits("a b", Limits{MaxInputLength: 10, MaxTokens: 3})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(tokens) != 3 {
			t.Errorf("Expected 3 tokens, got %d", len(tokens))
		}
	})
}

func BenchmarkTokenize(b *testing.B) {
	src := `porogaramu_ntoya fib(n) {
  niba (n <= 1) { tanga n; }
  tanga fib(n - 1) + fib(n - 2);
}
umubare x = fib(20); # compute
tangaza_amakuru("igisubizo", x);
`
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Tokenize(src); err != nil {
			b.Fatal(err)
		}
	}
}
