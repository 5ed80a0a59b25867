// File: nodes_test.go
// Title: Kin AST Unit Tests
// Description: Tests for node rendering, invariant validation, traversal,
//              tree printing and export.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test suite

package ast

import (
	"errors"
	"strings"
	"testing"

	"github.com/kin-lang/kin/foundation/kin/token"
)

func ident(name string, line int) *Identifier {
	return &Identifier{Name: name, Pos: Position{Line: line}}
}

func integer(v int64, raw string) *IntegerLiteral {
	return &IntegerLiteral{Value: v, Raw: raw, Pos: Position{Line: 1}}
}

func binary(op token.Kind, lexeme string, left, right Expr) *BinaryExpression {
	return &BinaryExpression{Operator: token.New(op, lexeme, 1), Left: left, Right: right, Pos: Position{Line: 1}}
}

// sample builds:
//
//	umubare x = 1 + 2;
//	porogaramu_ntoya f(a) { niba (a) { tanga a; } niba_byanze { tanga; } }
func sample() *Program {
	return &Program{
		Pos: Position{Line: 1},
		Body: []Stmt{
			&VariableDeclaration{
				DeclKind:   token.UMUBARE,
				Identifier: "x",
				Value:      binary(token.PLUS, "+", integer(1, "1"), integer(2, "2")),
				Pos:        Position{Line: 1},
			},
			&FunctionDeclaration{
				Name:       "f",
				Parameters: []string{"a"},
				Pos:        Position{Line: 2},
				Body: []Stmt{
					&IfStatement{
						Test:       ident("a", 2),
						Consequent: []Stmt{&ReturnStatement{Value: ident("a", 2), Pos: Position{Line: 2}}},
						Alternate:  []Stmt{&ReturnStatement{Pos: Position{Line: 2}}},
						Pos:        Position{Line: 2},
					},
				},
			},
		},
	}
}

func TestNode_String(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{"Program", sample(), "umubare x = (1 + 2);\nporogaramu_ntoya f(a) { niba (a) { tanga a; } niba_byanze { tanga; } }"},
		{"Uninitialized", &VariableDeclaration{DeclKind: token.REKA, Identifier: "y", Uninitialized: true}, "reka y;"},
		{"Constant", &VariableDeclaration{Constant: true, DeclKind: token.NTAHINDUKA, Identifier: "k", Value: integer(1, "1")}, "ntahinduka k = 1;"},
		{"Postfix", &UnaryExpression{Operator: token.New(token.INCREMENT, "++", 1), Argument: ident("i", 1)}, "(i++)"},
		{"Computed member", &MemberExpression{Object: ident("a", 1), Property: integer(0, "0"), Computed: true}, "a[0]"},
		{"Loop", &LoopStatement{Test: ident("c", 1), Body: []Stmt{&BreakStatement{}}}, "subiramo (c) { hagarara; }"},
		{"Structure", &StructureLiteral{Properties: []*Property{{Key: "a", Value: integer(1, "1")}, {Key: "b"}}}, "{a: 1, b}"},
		{"Switch", &SwitchStatement{
			Discriminant: ident("x", 1),
			Cases: []*SwitchCase{
				{Test: integer(1, "1"), Body: []Stmt{&ContinueStatement{}}},
				{Body: []Stmt{}},
			},
		}, "gereranya (x) { usanze 1: komeza; ibindi: }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestNode_Validate(t *testing.T) {
	if err := sample().Validate(); err != nil {
		t.Fatalf("Expected sample to be valid, got %v", err)
	}

	tests := []struct {
		name string
		node Node
	}{
		{"Declaration without value or marker", &VariableDeclaration{DeclKind: token.UMUBARE, Identifier: "x"}},
		{"Declaration with value and marker", &VariableDeclaration{DeclKind: token.UMUBARE, Identifier: "x", Value: integer(1, "1"), Uninitialized: true}},
		{"Uninitialized constant", &VariableDeclaration{Constant: true, DeclKind: token.UMUBARE, Identifier: "x", Uninitialized: true}},
		{"Bad declaration kind", &VariableDeclaration{DeclKind: token.NIBA, Identifier: "x", Value: integer(1, "1")}},
		{"Bad identifier", &VariableDeclaration{DeclKind: token.REKA, Identifier: "1x", Value: integer(1, "1")}},
		{"Assignment to literal", &AssignmentExpression{Assignee: integer(1, "1"), Value: integer(2, "2")}},
		{"Unresolved operator", binary(token.ASSIGNMENT, "=", ident("a", 1), ident("b", 1))},
		{"Missing operand", binary(token.PLUS, "+", ident("a", 1), nil)},
		{"Postfix negation", &UnaryExpression{Operator: token.New(token.MINUS, "-", 1), Argument: ident("a", 1)}},
		{"Non identifier property", &MemberExpression{Object: ident("a", 1), Property: integer(1, "1")}},
		{"Default not last", &SwitchStatement{Discriminant: ident("x", 1), Cases: []*SwitchCase{{}, {Test: integer(1, "1")}}}},
		{"Nested failure", &Program{Body: []Stmt{&ExpressionStatement{Expression: &ListLiteral{Elements: []Expr{nil}}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !errors.Is(err, ErrInvalidNode) {
				t.Errorf("Expected ErrInvalidNode, got %v", err)
			}
		})
	}
}

func TestPrint(t *testing.T) {
	expected := strings.Join([]string{
		"Program",
		"  VariableDeclaration Variable x (umubare)",
		"    BinaryExpression +",
		"      IntegerLiteral 1",
		"      IntegerLiteral 2",
		"  FunctionDeclaration f(a)",
		"    IfStatement",
		"      Test:",
		"        Identifier a",
		"      Consequent:",
		"        ReturnStatement",
		"          Identifier a",
		"      Alternate:",
		"        ReturnStatement",
		"",
	}, "\n")

	if got := Print(sample()); got != expected {
		t.Errorf("Unexpected tree dump:\n%s\nwant:\n%s", got, expected)
	}
}

func TestTreePrinter_Reset(t *testing.T) {
	tp := NewTreePrinter()
	ident("a", 1).Accept(tp)
	tp.Reset()
	ident("b", 1).Accept(tp)
	if got := tp.String(); got != "Identifier b\n" {
		t.Errorf("Expected reset printer output, got %q", got)
	}
}

func TestExport(t *testing.T) {
	out := Export(sample())
	if out["type"] != "Program" || out["line"] != 1 {
		t.Fatalf("Unexpected root: %v", out)
	}
	body := out["body"].([]interface{})
	decl := body[0].(map[string]interface{})
	if decl["type"] != "VariableDeclaration" || decl["identifier"] != "x" || decl["declKind"] != "umubare" {
		t.Errorf("Unexpected declaration export: %v", decl)
	}
	value := decl["value"].(map[string]interface{})
	if value["operator"] != "+" {
		t.Errorf("Expected operator +, got %v", value["operator"])
	}
	left := value["left"].(map[string]interface{})
	if left["value"] != int64(1) {
		t.Errorf("Expected left value 1, got %v", left["value"])
	}

	if Export(nil) != nil {
		t.Error("Expected nil export for nil node")
	}
}

func TestInspectAndCollect(t *testing.T) {
	returns := Collect(sample(), "ReturnStatement")
	if len(returns) != 2 {
		t.Errorf("Expected 2 return statements, got %d", len(returns))
	}

	visited := 0
	Inspect(sample(), func(n Node) bool {
		visited++
		_, isFunc := n.(*FunctionDeclaration)
		return !isFunc
	})
	// Program, declaration, binary, two literals, function (children skipped)
	if visited != 6 {
		t.Errorf("Expected 6 visited nodes, got %d", visited)
	}
}

type countingVisitor struct {
	BaseVisitor
	identifiers int
}

func (v *countingVisitor) VisitIdentifier(*Identifier) interface{} {
	v.identifiers++
	return nil
}

func TestBaseVisitor_Embedding(t *testing.T) {
	v := &countingVisitor{}
	Inspect(sample(), func(n Node) bool {
		n.Accept(v)
		return true
	})
	if v.identifiers != 2 {
		t.Errorf("Expected 2 identifiers, got %d", v.identifiers)
	}
}
