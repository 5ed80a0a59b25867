// File: visitor.go
// Title: Kin AST Visitor
// Description: Visitor interface over the closed set of Kin nodes, a
//              no-op base visitor, generic traversal helpers and an
//              indented tree printer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial visitor implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor has one method per concrete node kind
type Visitor interface {
	// Statements
	VisitProgram(n *Program) interface{}
	VisitVariableDeclaration(n *VariableDeclaration) interface{}
	VisitFunctionDeclaration(n *FunctionDeclaration) interface{}
	VisitIfStatement(n *IfStatement) interface{}
	VisitLoopStatement(n *LoopStatement) interface{}
	VisitSwitchStatement(n *SwitchStatement) interface{}
	VisitReturnStatement(n *ReturnStatement) interface{}
	VisitBreakStatement(n *BreakStatement) interface{}
	VisitContinueStatement(n *ContinueStatement) interface{}
	VisitExpressionStatement(n *ExpressionStatement) interface{}

	// Expressions
	VisitAssignmentExpression(n *AssignmentExpression) interface{}
	VisitCallExpression(n *CallExpression) interface{}
	VisitBinaryExpression(n *BinaryExpression) interface{}
	VisitUnaryExpression(n *UnaryExpression) interface{}
	VisitMemberExpression(n *MemberExpression) interface{}
	VisitIdentifier(n *Identifier) interface{}
	VisitIntegerLiteral(n *IntegerLiteral) interface{}
	VisitFloatLiteral(n *FloatLiteral) interface{}
	VisitStringLiteral(n *StringLiteral) interface{}
	VisitBooleanLiteral(n *BooleanLiteral) interface{}
	VisitNullLiteral(n *NullLiteral) interface{}
	VisitListLiteral(n *ListLiteral) interface{}
	VisitStructureLiteral(n *StructureLiteral) interface{}
}

// BaseVisitor returns nil for every node. Embed it in visitors that only
// care about a few node kinds.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(*Program) interface{}                           { return nil }
func (BaseVisitor) VisitVariableDeclaration(*VariableDeclaration) interface{}   { return nil }
func (BaseVisitor) VisitFunctionDeclaration(*FunctionDeclaration) interface{}   { return nil }
func (BaseVisitor) VisitIfStatement(*IfStatement) interface{}                   { return nil }
func (BaseVisitor) VisitLoopStatement(*LoopStatement) interface{}               { return nil }
func (BaseVisitor) VisitSwitchStatement(*SwitchStatement) interface{}           { return nil }
func (BaseVisitor) VisitReturnStatement(*ReturnStatement) interface{}           { return nil }
func (BaseVisitor) VisitBreakStatement(*BreakStatement) interface{}             { return nil }
func (BaseVisitor) VisitContinueStatement(*ContinueStatement) interface{}       { return nil }
func (BaseVisitor) VisitExpressionStatement(*ExpressionStatement) interface{}   { return nil }
func (BaseVisitor) VisitAssignmentExpression(*AssignmentExpression) interface{} { return nil }
func (BaseVisitor) VisitCallExpression(*CallExpression) interface{}             { return nil }
func (BaseVisitor) VisitBinaryExpression(*BinaryExpression) interface{}         { return nil }
func (BaseVisitor) VisitUnaryExpression(*UnaryExpression) interface{}           { return nil }
func (BaseVisitor) VisitMemberExpression(*MemberExpression) interface{}         { return nil }
func (BaseVisitor) VisitIdentifier(*Identifier) interface{}                     { return nil }
func (BaseVisitor) VisitIntegerLiteral(*IntegerLiteral) interface{}             { return nil }
func (BaseVisitor) VisitFloatLiteral(*FloatLiteral) interface{}                 { return nil }
func (BaseVisitor) VisitStringLiteral(*StringLiteral) interface{}               { return nil }
func (BaseVisitor) VisitBooleanLiteral(*BooleanLiteral) interface{}             { return nil }
func (BaseVisitor) VisitNullLiteral(*NullLiteral) interface{}                   { return nil }
func (BaseVisitor) VisitListLiteral(*ListLiteral) interface{}                   { return nil }
func (BaseVisitor) VisitStructureLiteral(*StructureLiteral) interface{}         { return nil }

// Children returns the direct child nodes of n in source order. Switch
// case tests and structure property values are flattened into the list.
func Children(n Node) []Node {
	var out []Node
	addExpr := func(e Expr) {
		if e != nil {
			out = append(out, e)
		}
	}
	addStmts := func(body []Stmt) {
		for _, s := range body {
			out = append(out, s)
		}
	}

	switch n := n.(type) {
	case *Program:
		addStmts(n.Body)
	case *VariableDeclaration:
		addExpr(n.Value)
	case *FunctionDeclaration:
		addStmts(n.Body)
	case *IfStatement:
		addExpr(n.Test)
		addStmts(n.Consequent)
		addStmts(n.Alternate)
	case *LoopStatement:
		addExpr(n.Test)
		addStmts(n.Body)
	case *SwitchStatement:
		addExpr(n.Discriminant)
		for _, c := range n.Cases {
			addExpr(c.Test)
			addStmts(c.Body)
		}
	case *ReturnStatement:
		addExpr(n.Value)
	case *ExpressionStatement:
		addExpr(n.Expression)
	case *AssignmentExpression:
		addExpr(n.Assignee)
		addExpr(n.Value)
	case *CallExpression:
		addExpr(n.Callee)
		for _, a := range n.Arguments {
			addExpr(a)
		}
	case *BinaryExpression:
		addExpr(n.Left)
		addExpr(n.Right)
	case *UnaryExpression:
		addExpr(n.Argument)
	case *MemberExpression:
		addExpr(n.Object)
		addExpr(n.Property)
	case *ListLiteral:
		for _, e := range n.Elements {
			addExpr(e)
		}
	case *StructureLiteral:
		for _, p := range n.Properties {
			addExpr(p.Value)
		}
	}
	return out
}

// Inspect walks the tree depth-first, calling fn for every node. When fn
// returns false the children of that node are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, fn)
	}
}

// Collect returns every node in the tree whose Type() equals nodeType
func Collect(root Node, nodeType string) []Node {
	var out []Node
	Inspect(root, func(n Node) bool {
		if n.Type() == nodeType {
			out = append(out, n)
		}
		return true
	})
	return out
}

// TreePrinter renders an indented, one-node-per-line dump of the tree
type TreePrinter struct {
	buffer strings.Builder
	indent int
}

// NewTreePrinter creates a new tree printer
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// Print renders n and returns the dump
func Print(n Node) string {
	tp := NewTreePrinter()
	n.Accept(tp)
	return tp.String()
}

// String returns the built representation
func (tp *TreePrinter) String() string {
	return tp.buffer.String()
}

// Reset clears the internal buffer
func (tp *TreePrinter) Reset() {
	tp.buffer.Reset()
	tp.indent = 0
}

func (tp *TreePrinter) line(format string, args ...interface{}) {
	for i := 0; i < tp.indent; i++ {
		tp.buffer.WriteString("  ")
	}
	fmt.Fprintf(&tp.buffer, format, args...)
	tp.buffer.WriteString("\n")
}

func (tp *TreePrinter) nested(label string, nodes ...Node) {
	if label != "" {
		tp.line("%s:", label)
	}
	tp.indent++
	for _, n := range nodes {
		if n != nil {
			n.Accept(tp)
		}
	}
	tp.indent--
}

func (tp *TreePrinter) block(label string, body []Stmt) {
	nodes := make([]Node, len(body))
	for i, s := range body {
		nodes[i] = s
	}
	tp.nested(label, nodes...)
}

func (tp *TreePrinter) VisitProgram(n *Program) interface{} {
	tp.line("Program")
	tp.block("", n.Body)
	return nil
}

func (tp *TreePrinter) VisitVariableDeclaration(n *VariableDeclaration) interface{} {
	kind := "Variable"
	if n.Constant {
		kind = "Constant"
	}
	tp.line("VariableDeclaration %s %s (%s)", kind, n.Identifier, strings.ToLower(n.DeclKind.String()))
	if n.Uninitialized {
		tp.indent++
		tp.line("<uninitialized>")
		tp.indent--
		return nil
	}
	tp.nested("", n.Value)
	return nil
}

func (tp *TreePrinter) VisitFunctionDeclaration(n *FunctionDeclaration) interface{} {
	tp.line("FunctionDeclaration %s(%s)", n.Name, strings.Join(n.Parameters, ", "))
	tp.block("", n.Body)
	return nil
}

func (tp *TreePrinter) VisitIfStatement(n *IfStatement) interface{} {
	tp.line("IfStatement")
	tp.indent++
	tp.nested("Test", n.Test)
	tp.block("Consequent", n.Consequent)
	if len(n.Alternate) > 0 {
		tp.block("Alternate", n.Alternate)
	}
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitLoopStatement(n *LoopStatement) interface{} {
	tp.line("LoopStatement")
	tp.indent++
	tp.nested("Test", n.Test)
	tp.block("Body", n.Body)
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitSwitchStatement(n *SwitchStatement) interface{} {
	tp.line("SwitchStatement")
	tp.indent++
	tp.nested("Discriminant", n.Discriminant)
	for _, c := range n.Cases {
		if c.Test == nil {
			tp.line("Default")
		} else {
			tp.nested("Case", c.Test)
		}
		tp.block("", c.Body)
	}
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitReturnStatement(n *ReturnStatement) interface{} {
	tp.line("ReturnStatement")
	if n.Value != nil {
		tp.nested("", n.Value)
	}
	return nil
}

func (tp *TreePrinter) VisitBreakStatement(*BreakStatement) interface{} {
	tp.line("BreakStatement")
	return nil
}

func (tp *TreePrinter) VisitContinueStatement(*ContinueStatement) interface{} {
	tp.line("ContinueStatement")
	return nil
}

func (tp *TreePrinter) VisitExpressionStatement(n *ExpressionStatement) interface{} {
	tp.line("ExpressionStatement")
	tp.nested("", n.Expression)
	return nil
}

func (tp *TreePrinter) VisitAssignmentExpression(n *AssignmentExpression) interface{} {
	tp.line("AssignmentExpression")
	tp.nested("", n.Assignee, n.Value)
	return nil
}

func (tp *TreePrinter) VisitCallExpression(n *CallExpression) interface{} {
	tp.line("CallExpression")
	tp.indent++
	tp.nested("Callee", n.Callee)
	if len(n.Arguments) > 0 {
		args := make([]Node, len(n.Arguments))
		for i, a := range n.Arguments {
			args[i] = a
		}
		tp.nested("Arguments", args...)
	}
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitBinaryExpression(n *BinaryExpression) interface{} {
	tp.line("BinaryExpression %s", n.Operator.Lexeme)
	tp.nested("", n.Left, n.Right)
	return nil
}

func (tp *TreePrinter) VisitUnaryExpression(n *UnaryExpression) interface{} {
	fix := "postfix"
	if n.Prefix {
		fix = "prefix"
	}
	tp.line("UnaryExpression %s (%s)", n.Operator.Lexeme, fix)
	tp.nested("", n.Argument)
	return nil
}

func (tp *TreePrinter) VisitMemberExpression(n *MemberExpression) interface{} {
	if n.Computed {
		tp.line("MemberExpression [computed]")
	} else {
		tp.line("MemberExpression")
	}
	tp.nested("", n.Object, n.Property)
	return nil
}

func (tp *TreePrinter) VisitIdentifier(n *Identifier) interface{} {
	tp.line("Identifier %s", n.Name)
	return nil
}

func (tp *TreePrinter) VisitIntegerLiteral(n *IntegerLiteral) interface{} {
	tp.line("IntegerLiteral %s", n.Raw)
	return nil
}

func (tp *TreePrinter) VisitFloatLiteral(n *FloatLiteral) interface{} {
	tp.line("FloatLiteral %s", n.Raw)
	return nil
}

func (tp *TreePrinter) VisitStringLiteral(n *StringLiteral) interface{} {
	tp.line("StringLiteral %q", n.Value)
	return nil
}

func (tp *TreePrinter) VisitBooleanLiteral(n *BooleanLiteral) interface{} {
	tp.line("BooleanLiteral %s", n.String())
	return nil
}

func (tp *TreePrinter) VisitNullLiteral(*NullLiteral) interface{} {
	tp.line("NullLiteral")
	return nil
}

func (tp *TreePrinter) VisitListLiteral(n *ListLiteral) interface{} {
	tp.line("ListLiteral (%d)", len(n.Elements))
	elems := make([]Node, len(n.Elements))
	for i, e := range n.Elements {
		elems[i] = e
	}
	tp.nested("", elems...)
	return nil
}

func (tp *TreePrinter) VisitStructureLiteral(n *StructureLiteral) interface{} {
	tp.line("StructureLiteral (%d)", len(n.Properties))
	tp.indent++
	for _, p := range n.Properties {
		if p.Value == nil {
			tp.line("Property %s (shorthand)", p.Key)
			continue
		}
		tp.line("Property %s", p.Key)
		tp.nested("", p.Value)
	}
	tp.indent--
	return nil
}
