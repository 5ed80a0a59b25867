// File: parser_test.go
// Title: Kin Parser Unit Tests
// Description: Tests for statement and expression parsing, operator
//              precedence and associativity, error reporting and
//              resource limits.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test suite
// - 2026-10-18 v0.1.1: Negative depth limit and silent default logger

package parser

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	kinlog "github.com/kin-lang/kin/foundation/core/log"
	"github.com/kin-lang/kin/foundation/kin/ast"
	"github.com/kin-lang/kin/foundation/kin/lexer"
	"github.com/kin-lang/kin/foundation/kin/token"
)

func newTestParser(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = kinlog.NewWithConfig(kinlog.Config{Level: kinlog.LevelError, Output: io.Discard})
	}
	return New(opts)
}

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", input, err)
	}
	program, err := newTestParser(Options{}).Parse(tokens)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	return program
}

func parseErr(t *testing.T, input string) error {
	t.Helper()
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", input, err)
	}
	program, err := newTestParser(Options{}).Parse(tokens)
	if err == nil {
		t.Fatalf("Expected parse error for %q, got %s", input, program)
	}
	if program != nil {
		t.Errorf("Expected no partial tree on failure")
	}
	return err
}

func TestParser_Expressions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Multiplicative binds tighter", "1 + 2 * 3", "(1 + (2 * 3))"},
		{"Grouping", "(1 + 2) * 3", "((1 + 2) * 3)"},
		{"Additive is left associative", "a - b - c", "((a - b) - c)"},
		{"Modulo level", "a % b * c", "((a % b) * c)"},
		{"Power is right associative", "2 ^ 3 ^ 2", "(2 ^ (3 ^ 2))"},
		{"Power above multiplicative", "2 * 3 ^ 2", "(2 * (3 ^ 2))"},
		{"Unary above power", "-2 ^ 2", "((-2) ^ 2)"},
		{"And above or", "a || b && c", "(a || (b && c))"},
		{"Relational above equality", "a == b < c", "(a == (b < c))"},
		{"Not equal", "a != b", "(a != b)"},
		{"Relational chain", "a <= b >= c", "((a <= b) >= c)"},
		{"Assignment is right associative", "x = y = 3", "(x = (y = 3))"},
		{"Assignment is lowest", "x = 1 + 2", "(x = (1 + 2))"},
		{"Assignment to member", "a.b = 5", "(a.b = 5)"},
		{"Assignment to index", "a[0] = 5", "(a[0] = 5)"},
		{"Logical not", "!a && b", "((!a) && b)"},
		{"Prefix increment", "++i", "(++i)"},
		{"Postfix increment", "i++", "(i++)"},
		{"Postfix decrement", "i--", "(i--)"},
		{"Prefix applies to postfix", "-i++", "(-(i++))"},
		{"Call with arguments", "f(1, 2)", "f(1, 2)"},
		{"Chained calls", "f(1)(2)", "f(1)(2)"},
		{"Member access", "obj.name", "obj.name"},
		{"Member chain", "obj.items[0].id", "obj.items[0].id"},
		{"Method call", "a.b(c)", "a.b(c)"},
		{"Builtin call", "tangaza_amakuru('muraho')", `tangaza_amakuru("muraho")`},
		{"List literal", "[1, 2.5, 'x']", `[1, 2.5, "x"]`},
		{"Empty list", "[]", "[]"},
		{"List trailing comma", "[1, 2,]", "[1, 2]"},
		{"Structure literal", "{izina: 'Kin', imyaka}", `{izina: "Kin", imyaka}`},
		{"Empty structure", "{}", "{}"},
		{"Structure keyword", "imiterere {a: 1,}", "{a: 1}"},
		{"Booleans and null", "nibyo && sibyo || ubusa", "((nibyo && sibyo) || ubusa)"},
		{"Call in arithmetic", "fib(n - 1) + fib(n - 2)", "(fib((n - 1)) + fib((n - 2)))"},
	}

	p := newTestParser(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := lexer.Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize failed: %v", err)
			}
			expr, err := p.ParseExpression(tokens)
			if err != nil {
				t.Fatalf("ParseExpression failed: %v", err)
			}
			if got := expr.String(); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
			if err := expr.Validate(); err != nil {
				t.Errorf("Expected valid tree, got %v", err)
			}
		})
	}
}

func TestParser_Statements(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, program *ast.Program)
	}{
		{
			name:  "Integer declaration",
			input: "umubare x = 5;",
			check: func(t *testing.T, program *ast.Program) {
				decl, ok := program.Body[0].(*ast.VariableDeclaration)
				if !ok {
					t.Fatalf("Expected VariableDeclaration, got %T", program.Body[0])
				}
				if decl.Identifier != "x" || decl.DeclKind != token.UMUBARE || decl.Constant || decl.Uninitialized {
					t.Errorf("Unexpected declaration: %+v", decl)
				}
				lit, ok := decl.Value.(*ast.IntegerLiteral)
				if !ok || lit.Value != 5 {
					t.Errorf("Expected IntegerLiteral 5, got %v", decl.Value)
				}
			},
		},
		{
			name:  "Uninitialized declaration",
			input: "reka y;",
			check: func(t *testing.T, program *ast.Program) {
				decl := program.Body[0].(*ast.VariableDeclaration)
				if !decl.Uninitialized || decl.Value != nil {
					t.Errorf("Expected explicit uninitialized marker, got %+v", decl)
				}
			},
		},
		{
			name:  "Typed constant",
			input: "ntahinduka umubare_wibice pi = 3.14;",
			check: func(t *testing.T, program *ast.Program) {
				decl := program.Body[0].(*ast.VariableDeclaration)
				if !decl.Constant || decl.DeclKind != token.UMUBARE_WIBICE {
					t.Errorf("Expected typed constant, got %+v", decl)
				}
				if f, ok := decl.Value.(*ast.FloatLiteral); !ok || f.Value != 3.14 {
					t.Errorf("Expected FloatLiteral 3.14, got %v", decl.Value)
				}
			},
		},
		{
			name:  "Bare constant",
			input: "ntahinduka izina = 'Kin';",
			check: func(t *testing.T, program *ast.Program) {
				decl := program.Body[0].(*ast.VariableDeclaration)
				if !decl.Constant || decl.DeclKind != token.NTAHINDUKA {
					t.Errorf("Expected bare constant, got %+v", decl)
				}
			},
		},
		{
			name:  "Function declaration",
			input: "porogaramu_ntoya teranya(a, b) { tanga a + b; }",
			check: func(t *testing.T, program *ast.Program) {
				fn, ok := program.Body[0].(*ast.FunctionDeclaration)
				if !ok {
					t.Fatalf("Expected FunctionDeclaration, got %T", program.Body[0])
				}
				if fn.Name != "teranya" || strings.Join(fn.Parameters, ",") != "a,b" {
					t.Errorf("Unexpected signature: %s(%v)", fn.Name, fn.Parameters)
				}
				ret, ok := fn.Body[0].(*ast.ReturnStatement)
				if !ok || ret.Value.String() != "(a + b)" {
					t.Errorf("Expected return (a + b), got %v", fn.Body[0])
				}
			},
		},
		{
			name:  "Function without parameters",
			input: "porogaramu_ntoya f() {}",
			check: func(t *testing.T, program *ast.Program) {
				fn := program.Body[0].(*ast.FunctionDeclaration)
				if len(fn.Parameters) != 0 || len(fn.Body) != 0 {
					t.Errorf("Expected empty function, got %s", fn)
				}
			},
		},
		{
			name:  "If with else",
			input: "niba (x > 1) { y = 1; } niba_byanze { y = 2; }",
			check: func(t *testing.T, program *ast.Program) {
				stmt := program.Body[0].(*ast.IfStatement)
				if stmt.Test.String() != "(x > 1)" {
					t.Errorf("Unexpected test %s", stmt.Test)
				}
				if len(stmt.Consequent) != 1 || len(stmt.Alternate) != 1 {
					t.Errorf("Expected one statement per branch, got %s", stmt)
				}
			},
		},
		{
			name:  "Else-if chain",
			input: "niba (a) { x = 1; } nanone_niba (b) { x = 2; } nanone_niba { x = 3; }",
			check: func(t *testing.T, program *ast.Program) {
				stmt := program.Body[0].(*ast.IfStatement)
				elif, ok := stmt.Alternate[0].(*ast.IfStatement)
				if !ok {
					t.Fatalf("Expected nested IfStatement, got %T", stmt.Alternate[0])
				}
				if elif.Test.String() != "b" || len(elif.Alternate) != 1 {
					t.Errorf("Unexpected else-if branch: %s", elif)
				}
			},
		},
		{
			name:  "Loop",
			input: "subiramo (i < 10) { i++; komeza; hagarara; }",
			check: func(t *testing.T, program *ast.Program) {
				loop := program.Body[0].(*ast.LoopStatement)
				if len(loop.Body) != 3 {
					t.Fatalf("Expected 3 body statements, got %d", len(loop.Body))
				}
				if _, ok := loop.Body[1].(*ast.ContinueStatement); !ok {
					t.Errorf("Expected ContinueStatement, got %T", loop.Body[1])
				}
				if _, ok := loop.Body[2].(*ast.BreakStatement); !ok {
					t.Errorf("Expected BreakStatement, got %T", loop.Body[2])
				}
			},
		},
		{
			name:  "Switch",
			input: "gereranya (x) { usanze 1: y = 'rimwe'; hagarara; usanze 2: ibindi: y = 'ibindi'; }",
			check: func(t *testing.T, program *ast.Program) {
				sw := program.Body[0].(*ast.SwitchStatement)
				if len(sw.Cases) != 3 {
					t.Fatalf("Expected 3 cases, got %d", len(sw.Cases))
				}
				if len(sw.Cases[0].Body) != 2 || len(sw.Cases[1].Body) != 0 {
					t.Errorf("Unexpected case bodies: %s", sw)
				}
				if sw.Cases[2].Test != nil {
					t.Errorf("Expected last case to be default")
				}
			},
		},
		{
			name:  "Bare return",
			input: "porogaramu_ntoya f() { tanga; }",
			check: func(t *testing.T, program *ast.Program) {
				fn := program.Body[0].(*ast.FunctionDeclaration)
				if ret := fn.Body[0].(*ast.ReturnStatement); ret.Value != nil {
					t.Errorf("Expected bare return, got %s", ret)
				}
			},
		},
		{
			name:  "Comments and empty program",
			input: "# nta kintu\n",
			check: func(t *testing.T, program *ast.Program) {
				if len(program.Body) != 0 {
					t.Errorf("Expected empty program, got %d statements", len(program.Body))
				}
			},
		},
		{
			name:  "Statement lines",
			input: "reka a = 1;\n\nniba (a) {\n  tanga a;\n}\n",
			check: func(t *testing.T, program *ast.Program) {
				if line := program.Body[0].Position().Line; line != 1 {
					t.Errorf("Expected declaration on line 1, got %d", line)
				}
				stmt := program.Body[1].(*ast.IfStatement)
				if stmt.Position().Line != 3 {
					t.Errorf("Expected if on line 3, got %d", stmt.Position().Line)
				}
				if line := stmt.Consequent[0].Position().Line; line != 4 {
					t.Errorf("Expected return on line 4, got %d", line)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := parseProgram(t, tt.input)
			if err := program.Validate(); err != nil {
				t.Fatalf("Expected valid program, got %v", err)
			}
			tt.check(t, program)
		})
	}
}

func TestParser_BinaryKeepsOperatorToken(t *testing.T) {
	program := parseProgram(t, "x = a\n+ b;")
	assign := program.Body[0].(*ast.ExpressionStatement).Expression.(*ast.AssignmentExpression)
	bin := assign.Value.(*ast.BinaryExpression)
	if bin.Operator.Kind != token.PLUS || bin.Operator.Lexeme != "+" || bin.Operator.Line != 2 {
		t.Errorf("Expected PLUS token on line 2, got %v", bin.Operator)
	}
	if bin.Position().Line != 1 {
		t.Errorf("Expected expression to start on line 1, got %d", bin.Position().Line)
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     ParseErrorKind
		expected token.Kind
		found    token.Kind
		line     int
	}{
		{"Missing terminator at end", "umubare x = 5", UnexpectedToken, token.SEMICOLON, token.EOF, 1},
		{"Missing terminator before next statement", "umubare x = 5\numubare y = 6;", UnexpectedToken, token.SEMICOLON, token.UMUBARE, 2},
		{"Constant without value", "ntahinduka x;", UnexpectedToken, token.ASSIGNMENT, token.SEMICOLON, 1},
		{"Declaration without name", "umubare = 5;", UnexpectedToken, token.IDENTIFIER, token.ASSIGNMENT, 1},
		{"Declaration without equals", "umubare x 5;", UnexpectedToken, token.SEMICOLON, token.INTEGER, 1},
		{"Invalid assignment target", "1 = 2;", UnexpectedToken, token.ILLEGAL, token.ASSIGNMENT, 1},
		{"Missing expression", "umubare x = ;", UnexpectedToken, token.ILLEGAL, token.SEMICOLON, 1},
		{"Dangling operator", "x +\n;", UnexpectedToken, token.ILLEGAL, token.SEMICOLON, 2},
		{"Unclosed block", "niba (x) {\n  y;\n", UnexpectedToken, token.RBRACE, token.EOF, 3},
		{"Condition needs parentheses", "niba x) {}", UnexpectedToken, token.LPAREN, token.IDENTIFIER, 1},
		{"Parameter must be identifier", "porogaramu_ntoya f(1) {}", UnexpectedToken, token.IDENTIFIER, token.INTEGER, 1},
		{"Member needs identifier", "a.5;", UnexpectedToken, token.IDENTIFIER, token.INTEGER, 1},
		{"Unclosed call", "f(1, 2;", UnexpectedToken, token.RPAREN, token.SEMICOLON, 1},
		{"Integer out of range", "99999999999999999999;", UnexpectedToken, token.ILLEGAL, token.INTEGER, 1},
		{"Case after default", "gereranya (x) { ibindi: usanze 1: }", UnexpectedToken, token.RBRACE, token.USANZE, 1},
		{"Stray closing brace", "}", UnexpectedToken, token.ILLEGAL, token.RBRACE, 1},
		{"Keyword prefix lookalike is identifier", "niban (x) {}", UnexpectedToken, token.SEMICOLON, token.LBRACE, 1},
		{"End of input in expression", "umubare x =", UnexpectedEndOfInput, token.ILLEGAL, token.EOF, 1},
		{"End of input after operator", "x = 1 +", UnexpectedEndOfInput, token.ILLEGAL, token.EOF, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseErr(t, tt.input)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Expected *ParseError, got %T: %v", err, err)
			}
			if pe.Kind != tt.kind {
				t.Errorf("Expected kind %s, got %s (%v)", tt.kind, pe.Kind, pe)
			}
			if pe.Expected != tt.expected {
				t.Errorf("Expected expected-kind %s, got %s", tt.expected, pe.Expected)
			}
			if pe.Found.Kind != tt.found {
				t.Errorf("Expected found %s, got %s", tt.found, pe.Found.Kind)
			}
			if pe.Line != tt.line {
				t.Errorf("Expected line %d, got %d", tt.line, pe.Line)
			}
		})
	}
}

func TestParser_ErrorSentinels(t *testing.T) {
	if err := parseErr(t, "umubare x = 5"); !errors.Is(err, ErrUnexpectedToken) {
		t.Errorf("Expected ErrUnexpectedToken, got %v", err)
	}
	if err := parseErr(t, "x ="); !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Errorf("Expected ErrUnexpectedEndOfInput, got %v", err)
	}
}

func TestParser_TruncatedTokenStream(t *testing.T) {
	tests := []struct {
		name   string
		tokens []token.Token
	}{
		{"Empty sequence", nil},
		{"Complete statement without EOF", []token.Token{
			token.New(token.IDENTIFIER, "x", 1),
			token.New(token.SEMICOLON, ";", 1),
		}},
		{"Statement cut short", []token.Token{
			token.New(token.IDENTIFIER, "x", 1),
		}},
	}

	p := newTestParser(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.tokens)
			if !errors.Is(err, ErrUnexpectedEndOfInput) {
				t.Errorf("Expected ErrUnexpectedEndOfInput, got %v", err)
			}
		})
	}
}

func TestParser_ParseExpressionRejectsTrailingTokens(t *testing.T) {
	tokens, _ := lexer.Tokenize("1 + 2 3")
	_, err := newTestParser(Options{}).ParseExpression(tokens)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Expected != token.EOF || pe.Found.Kind != token.INTEGER {
		t.Errorf("Expected UnexpectedToken wanting EOF, got %v", err)
	}
}

func TestParser_MaxDepth(t *testing.T) {
	deep := strings.Repeat("(", 12) + "1" + strings.Repeat(")", 12) + ";"
	tokens, err := lexer.Tokenize(deep)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	_, err = newTestParser(Options{MaxDepth: 10}).Parse(tokens)
	var re *lexer.ResourceError
	if !errors.As(err, &re) || re.Resource != lexer.ResourceDepth || re.Limit != 10 {
		t.Fatalf("Expected depth ResourceError, got %v", err)
	}
	if !errors.Is(err, lexer.ErrResourceExhausted) {
		t.Error("Expected errors.Is(ErrResourceExhausted)")
	}

	if _, err := newTestParser(Options{}).Parse(tokens); err != nil {
		t.Errorf("Expected default depth to accept input, got %v", err)
	}
}

func TestParser_NegativeMaxDepthDisablesLimit(t *testing.T) {
	deep := strings.Repeat("(", 300) + "1" + strings.Repeat(")", 300) + ";"
	tokens, err := lexer.Tokenize(deep)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	if _, err := newTestParser(Options{}).Parse(tokens); !errors.Is(err, lexer.ErrResourceExhausted) {
		t.Fatalf("Expected default depth to reject 300 levels, got %v", err)
	}
	program, err := newTestParser(Options{MaxDepth: -1}).Parse(tokens)
	if err != nil {
		t.Fatalf("Expected MaxDepth -1 to disable the limit, got %v", err)
	}
	if len(program.Body) != 1 {
		t.Errorf("Expected 1 statement, got %d", len(program.Body))
	}
}

func TestParser_Concurrent(t *testing.T) {
	src := "porogaramu_ntoya fib(n) { niba (n <= 1) { tanga n; } tanga fib(n - 1) + fib(n - 2); }\nfib(10);"
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	p := newTestParser(Options{})
	want, err := p.Parse(tokens)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			program, err := p.Parse(tokens)
			if err != nil {
				t.Errorf("Parse failed: %v", err)
				return
			}
			results[i] = program.String()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != want.String() {
			t.Errorf("Goroutine %d produced %q, want %q", i, got, want.String())
		}
	}
}

func TestParseSource(t *testing.T) {
	program, err := ParseSource("tangaza_amakuru('muraho isi');")
	if err != nil {
		t.Fatalf("ParseSource failed: %v", err)
	}
	call := program.Body[0].(*ast.ExpressionStatement).Expression.(*ast.CallExpression)
	if call.Callee.String() != "tangaza_amakuru" || len(call.Arguments) != 1 {
		t.Errorf("Unexpected call %s", call)
	}

	_, err = ParseSource("x = 'unterminated")
	if !errors.Is(err, lexer.ErrUnterminatedString) {
		t.Errorf("Expected lexer error to pass through, got %v", err)
	}
}

func TestParseSource_SilentOnFailure(t *testing.T) {
	var buf bytes.Buffer
	previous := kinlog.GetDefault()
	kinlog.SetDefault(kinlog.NewWithConfig(kinlog.Config{Level: kinlog.LevelTrace, Output: &buf}))
	defer kinlog.SetDefault(previous)

	if _, err := ParseSource("umubare x = 5"); err == nil {
		t.Fatal("Expected parse error")
	}
	tokens, err := lexer.Tokenize("niba (x) {")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if _, err := New(Options{}).Parse(tokens); err == nil {
		t.Fatal("Expected parse error")
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no log output without a logger, got %q", buf.String())
	}
}

func TestParser_FailureLoggedAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := kinlog.NewWithConfig(kinlog.Config{Level: kinlog.LevelInfo, Output: &buf})
	tokens, err := lexer.Tokenize("umubare x = 5")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if _, err := New(Options{Logger: logger}).Parse(tokens); err == nil {
		t.Fatal("Expected parse error")
	}
	if buf.Len() != 0 {
		t.Errorf("Expected parse failure below info level, got %q", buf.String())
	}
}

func BenchmarkParse(b *testing.B) {
	src := strings.Repeat("umubare x = (1 + 2) * f(a, b.c[3]) ^ 2;\nniba (x >= 10 && y != 0) { x = x - 1; } niba_byanze { tanga x; }\n", 50)
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		b.Fatal(err)
	}
	p := newTestParser(Options{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(tokens); err != nil {
			b.Fatal(err)
		}
	}
}
