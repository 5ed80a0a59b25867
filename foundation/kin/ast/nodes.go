// File: nodes.go
// Title: Kin Abstract Syntax Tree Nodes
// Description: Defines the closed set of statement and expression nodes
//              produced by the Kin parser. Every node reports its source
//              line, renders itself as Kin source and validates its own
//              structural invariants.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial AST model

package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kin-lang/kin/foundation/kin/token"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String renders the node as Kin source. Expressions are fully
	// parenthesized so the rendering shows the parsed grouping.
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate checks the structural invariants of the node and its children
	Validate() error

	// Type returns the node kind name, e.g. "BinaryExpression"
	Type() string
}

// Position is the location of the first token of a node
type Position struct {
	Line int // Line number (1-based)
}

func (p Position) String() string {
	return fmt.Sprintf("line %d", p.Line)
}

// Stmt is implemented by statement nodes only
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by expression nodes only
type Expr interface {
	Node
	exprNode()
}

// Program is the root of every parse
type Program struct {
	Body []Stmt
	Pos  Position
}

// VariableDeclaration declares a variable or constant. Exactly one of
// Value != nil and Uninitialized holds.
type VariableDeclaration struct {
	Constant      bool
	DeclKind      token.Kind // REKA, UMUBARE, ... or NTAHINDUKA for a bare constant
	Identifier    string
	Value         Expr
	Uninitialized bool
	Pos           Position
}

// FunctionDeclaration defines a named function
type FunctionDeclaration struct {
	Name       string
	Parameters []string
	Body       []Stmt
	Pos        Position
}

// IfStatement is a conditional. Alternate holds the else block, or a single
// nested *IfStatement for an else-if chain; it is empty when absent.
type IfStatement struct {
	Test       Expr
	Consequent []Stmt
	Alternate  []Stmt
	Pos        Position
}

// LoopStatement repeats Body while Test holds
type LoopStatement struct {
	Test Expr
	Body []Stmt
	Pos  Position
}

// SwitchStatement selects among cases by comparing Discriminant
type SwitchStatement struct {
	Discriminant Expr
	Cases        []*SwitchCase
	Pos          Position
}

// SwitchCase is one arm of a switch; Test is nil for the default arm
type SwitchCase struct {
	Test Expr
	Body []Stmt
	Pos  Position
}

// ReturnStatement returns from a function; Value is nil for a bare return
type ReturnStatement struct {
	Value Expr
	Pos   Position
}

type BreakStatement struct {
	Pos Position
}

type ContinueStatement struct {
	Pos Position
}

// ExpressionStatement evaluates an expression for its effect
type ExpressionStatement struct {
	Expression Expr
	Pos        Position
}

// AssignmentExpression assigns Value to an Identifier or MemberExpression
type AssignmentExpression struct {
	Assignee Expr
	Value    Expr
	Pos      Position
}

type CallExpression struct {
	Callee    Expr
	Arguments []Expr
	Pos       Position
}

// BinaryExpression keeps the operator token that produced it
type BinaryExpression struct {
	Operator token.Token
	Left     Expr
	Right    Expr
	Pos      Position
}

// UnaryExpression covers prefix - ! ++ -- and postfix ++ --
type UnaryExpression struct {
	Operator token.Token
	Argument Expr
	Prefix   bool
	Pos      Position
}

// MemberExpression is obj.prop (Computed false) or obj[expr] (Computed true)
type MemberExpression struct {
	Object   Expr
	Property Expr
	Computed bool
	Pos      Position
}

type Identifier struct {
	Name string
	Pos  Position
}

type IntegerLiteral struct {
	Value int64
	Raw   string
	Pos   Position
}

type FloatLiteral struct {
	Value float64
	Raw   string
	Pos   Position
}

type StringLiteral struct {
	Value string
	Pos   Position
}

type BooleanLiteral struct {
	Value bool
	Pos   Position
}

type NullLiteral struct {
	Pos Position
}

type ListLiteral struct {
	Elements []Expr
	Pos      Position
}

// StructureLiteral is { key: value, shorthand }
type StructureLiteral struct {
	Properties []*Property
	Pos        Position
}

// Property is a structure entry; Value is nil for the shorthand form
type Property struct {
	Key   string
	Value Expr
	Pos   Position
}

// Marker methods sealing Stmt and Expr

func (*VariableDeclaration) stmtNode() {}
func (*FunctionDeclaration) stmtNode() {}
func (*IfStatement) stmtNode()         {}
func (*LoopStatement) stmtNode()       {}
func (*SwitchStatement) stmtNode()     {}
func (*ReturnStatement) stmtNode()     {}
func (*BreakStatement) stmtNode()      {}
func (*ContinueStatement) stmtNode()   {}
func (*ExpressionStatement) stmtNode() {}

func (*AssignmentExpression) exprNode() {}
func (*CallExpression) exprNode()       {}
func (*BinaryExpression) exprNode()     {}
func (*UnaryExpression) exprNode()      {}
func (*MemberExpression) exprNode()     {}
func (*Identifier) exprNode()           {}
func (*IntegerLiteral) exprNode()       {}
func (*FloatLiteral) exprNode()         {}
func (*StringLiteral) exprNode()        {}
func (*BooleanLiteral) exprNode()       {}
func (*NullLiteral) exprNode()          {}
func (*ListLiteral) exprNode()          {}
func (*StructureLiteral) exprNode()     {}

// Type names

func (*Program) Type() string              { return "Program" }
func (*VariableDeclaration) Type() string  { return "VariableDeclaration" }
func (*FunctionDeclaration) Type() string  { return "FunctionDeclaration" }
func (*IfStatement) Type() string          { return "IfStatement" }
func (*LoopStatement) Type() string        { return "LoopStatement" }
func (*SwitchStatement) Type() string      { return "SwitchStatement" }
func (*ReturnStatement) Type() string      { return "ReturnStatement" }
func (*BreakStatement) Type() string       { return "BreakStatement" }
func (*ContinueStatement) Type() string    { return "ContinueStatement" }
func (*ExpressionStatement) Type() string  { return "ExpressionStatement" }
func (*AssignmentExpression) Type() string { return "AssignmentExpression" }
func (*CallExpression) Type() string       { return "CallExpression" }
func (*BinaryExpression) Type() string     { return "BinaryExpression" }
func (*UnaryExpression) Type() string      { return "UnaryExpression" }
func (*MemberExpression) Type() string     { return "MemberExpression" }
func (*Identifier) Type() string           { return "Identifier" }
func (*IntegerLiteral) Type() string       { return "IntegerLiteral" }
func (*FloatLiteral) Type() string         { return "FloatLiteral" }
func (*StringLiteral) Type() string        { return "StringLiteral" }
func (*BooleanLiteral) Type() string       { return "BooleanLiteral" }
func (*NullLiteral) Type() string          { return "NullLiteral" }
func (*ListLiteral) Type() string          { return "ListLiteral" }
func (*StructureLiteral) Type() string     { return "StructureLiteral" }

// Positions

func (n *Program) Position() Position              { return n.Pos }
func (n *VariableDeclaration) Position() Position  { return n.Pos }
func (n *FunctionDeclaration) Position() Position  { return n.Pos }
func (n *IfStatement) Position() Position          { return n.Pos }
func (n *LoopStatement) Position() Position        { return n.Pos }
func (n *SwitchStatement) Position() Position      { return n.Pos }
func (n *ReturnStatement) Position() Position      { return n.Pos }
func (n *BreakStatement) Position() Position       { return n.Pos }
func (n *ContinueStatement) Position() Position    { return n.Pos }
func (n *ExpressionStatement) Position() Position  { return n.Pos }
func (n *AssignmentExpression) Position() Position { return n.Pos }
func (n *CallExpression) Position() Position       { return n.Pos }
func (n *BinaryExpression) Position() Position     { return n.Pos }
func (n *UnaryExpression) Position() Position      { return n.Pos }
func (n *MemberExpression) Position() Position     { return n.Pos }
func (n *Identifier) Position() Position           { return n.Pos }
func (n *IntegerLiteral) Position() Position       { return n.Pos }
func (n *FloatLiteral) Position() Position         { return n.Pos }
func (n *StringLiteral) Position() Position        { return n.Pos }
func (n *BooleanLiteral) Position() Position       { return n.Pos }
func (n *NullLiteral) Position() Position          { return n.Pos }
func (n *ListLiteral) Position() Position          { return n.Pos }
func (n *StructureLiteral) Position() Position     { return n.Pos }

// Accept

func (n *Program) Accept(v Visitor) interface{}              { return v.VisitProgram(n) }
func (n *VariableDeclaration) Accept(v Visitor) interface{}  { return v.VisitVariableDeclaration(n) }
func (n *FunctionDeclaration) Accept(v Visitor) interface{}  { return v.VisitFunctionDeclaration(n) }
func (n *IfStatement) Accept(v Visitor) interface{}          { return v.VisitIfStatement(n) }
func (n *LoopStatement) Accept(v Visitor) interface{}        { return v.VisitLoopStatement(n) }
func (n *SwitchStatement) Accept(v Visitor) interface{}      { return v.VisitSwitchStatement(n) }
func (n *ReturnStatement) Accept(v Visitor) interface{}      { return v.VisitReturnStatement(n) }
func (n *BreakStatement) Accept(v Visitor) interface{}       { return v.VisitBreakStatement(n) }
func (n *ContinueStatement) Accept(v Visitor) interface{}    { return v.VisitContinueStatement(n) }
func (n *ExpressionStatement) Accept(v Visitor) interface{}  { return v.VisitExpressionStatement(n) }
func (n *AssignmentExpression) Accept(v Visitor) interface{} { return v.VisitAssignmentExpression(n) }
func (n *CallExpression) Accept(v Visitor) interface{}       { return v.VisitCallExpression(n) }
func (n *BinaryExpression) Accept(v Visitor) interface{}     { return v.VisitBinaryExpression(n) }
func (n *UnaryExpression) Accept(v Visitor) interface{}      { return v.VisitUnaryExpression(n) }
func (n *MemberExpression) Accept(v Visitor) interface{}     { return v.VisitMemberExpression(n) }
func (n *Identifier) Accept(v Visitor) interface{}           { return v.VisitIdentifier(n) }
func (n *IntegerLiteral) Accept(v Visitor) interface{}       { return v.VisitIntegerLiteral(n) }
func (n *FloatLiteral) Accept(v Visitor) interface{}         { return v.VisitFloatLiteral(n) }
func (n *StringLiteral) Accept(v Visitor) interface{}        { return v.VisitStringLiteral(n) }
func (n *BooleanLiteral) Accept(v Visitor) interface{}       { return v.VisitBooleanLiteral(n) }
func (n *NullLiteral) Accept(v Visitor) interface{}          { return v.VisitNullLiteral(n) }
func (n *ListLiteral) Accept(v Visitor) interface{}          { return v.VisitListLiteral(n) }
func (n *StructureLiteral) Accept(v Visitor) interface{}     { return v.VisitStructureLiteral(n) }

// String rendering

func (n *Program) String() string {
	parts := make([]string, len(n.Body))
	for i, s := range n.Body {
		parts[i] = s.String()
	}
	return strings.Join(parts, "\n")
}

func (n *VariableDeclaration) String() string {
	var sb strings.Builder
	if n.Constant {
		sb.WriteString("ntahinduka ")
	}
	if n.DeclKind != token.NTAHINDUKA {
		sb.WriteString(strings.ToLower(n.DeclKind.String()))
		sb.WriteString(" ")
	}
	sb.WriteString(n.Identifier)
	if !n.Uninitialized && n.Value != nil {
		sb.WriteString(" = ")
		sb.WriteString(n.Value.String())
	}
	sb.WriteString(";")
	return sb.String()
}

func (n *FunctionDeclaration) String() string {
	return fmt.Sprintf("porogaramu_ntoya %s(%s) %s",
		n.Name, strings.Join(n.Parameters, ", "), blockString(n.Body))
}

func (n *IfStatement) String() string {
	s := fmt.Sprintf("niba (%s) %s", exprString(n.Test), blockString(n.Consequent))
	if len(n.Alternate) == 1 {
		if elif, ok := n.Alternate[0].(*IfStatement); ok {
			return s + " nanone_" + elif.String()
		}
	}
	if len(n.Alternate) > 0 {
		s += " niba_byanze " + blockString(n.Alternate)
	}
	return s
}

func (n *LoopStatement) String() string {
	return fmt.Sprintf("subiramo (%s) %s", exprString(n.Test), blockString(n.Body))
}

func (n *SwitchStatement) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "gereranya (%s) {", exprString(n.Discriminant))
	for _, c := range n.Cases {
		if c.Test == nil {
			sb.WriteString(" ibindi:")
		} else {
			fmt.Fprintf(&sb, " usanze %s:", c.Test.String())
		}
		for _, s := range c.Body {
			sb.WriteString(" ")
			sb.WriteString(s.String())
		}
	}
	sb.WriteString(" }")
	return sb.String()
}

func (n *ReturnStatement) String() string {
	if n.Value == nil {
		return "tanga;"
	}
	return "tanga " + n.Value.String() + ";"
}

func (n *BreakStatement) String() string    { return "hagarara;" }
func (n *ContinueStatement) String() string { return "komeza;" }

func (n *ExpressionStatement) String() string {
	return exprString(n.Expression) + ";"
}

func (n *AssignmentExpression) String() string {
	return fmt.Sprintf("(%s = %s)", exprString(n.Assignee), exprString(n.Value))
}

func (n *CallExpression) String() string {
	return fmt.Sprintf("%s(%s)", exprString(n.Callee), joinExprs(n.Arguments))
}

func (n *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", exprString(n.Left), n.Operator.Lexeme, exprString(n.Right))
}

func (n *UnaryExpression) String() string {
	if n.Prefix {
		return fmt.Sprintf("(%s%s)", n.Operator.Lexeme, exprString(n.Argument))
	}
	return fmt.Sprintf("(%s%s)", exprString(n.Argument), n.Operator.Lexeme)
}

func (n *MemberExpression) String() string {
	if n.Computed {
		return fmt.Sprintf("%s[%s]", exprString(n.Object), exprString(n.Property))
	}
	return fmt.Sprintf("%s.%s", exprString(n.Object), exprString(n.Property))
}

func (n *Identifier) String() string     { return n.Name }
func (n *IntegerLiteral) String() string { return n.Raw }
func (n *FloatLiteral) String() string   { return n.Raw }

func (n *StringLiteral) String() string {
	return strconv.Quote(n.Value)
}

func (n *BooleanLiteral) String() string {
	if n.Value {
		return "nibyo"
	}
	return "sibyo"
}

func (n *NullLiteral) String() string { return "ubusa" }

func (n *ListLiteral) String() string {
	return "[" + joinExprs(n.Elements) + "]"
}

func (n *StructureLiteral) String() string {
	parts := make([]string, len(n.Properties))
	for i, p := range n.Properties {
		if p.Value == nil {
			parts[i] = p.Key
		} else {
			parts[i] = p.Key + ": " + p.Value.String()
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func blockString(body []Stmt) string {
	if len(body) == 0 {
		return "{}"
	}
	parts := make([]string, len(body))
	for i, s := range body {
		parts[i] = s.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = exprString(e)
	}
	return strings.Join(parts, ", ")
}

func exprString(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}
