// File: export.go
// Title: Kin AST Export
// Description: Converts AST nodes into plain maps and slices suitable for
//              JSON or YAML encoding.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial export visitor

package ast

import (
	"strings"
)

// Export converts n into a tree of map[string]interface{} values. Each map
// has "type" and "line" keys plus the node's own fields.
func Export(n Node) map[string]interface{} {
	if n == nil {
		return nil
	}
	out, _ := n.Accept(exporter{}).(map[string]interface{})
	return out
}

type exporter struct{}

func (e exporter) node(n Node, fields map[string]interface{}) map[string]interface{} {
	fields["type"] = n.Type()
	fields["line"] = n.Position().Line
	return fields
}

func (e exporter) expr(x Expr) interface{} {
	if x == nil {
		return nil
	}
	return x.Accept(e)
}

func (e exporter) stmts(body []Stmt) []interface{} {
	out := make([]interface{}, len(body))
	for i, s := range body {
		out[i] = s.Accept(e)
	}
	return out
}

func (e exporter) exprs(list []Expr) []interface{} {
	out := make([]interface{}, len(list))
	for i, x := range list {
		out[i] = e.expr(x)
	}
	return out
}

func (e exporter) VisitProgram(n *Program) interface{} {
	return e.node(n, map[string]interface{}{"body": e.stmts(n.Body)})
}

func (e exporter) VisitVariableDeclaration(n *VariableDeclaration) interface{} {
	return e.node(n, map[string]interface{}{
		"constant":      n.Constant,
		"declKind":      strings.ToLower(n.DeclKind.String()),
		"identifier":    n.Identifier,
		"value":         e.expr(n.Value),
		"uninitialized": n.Uninitialized,
	})
}

func (e exporter) VisitFunctionDeclaration(n *FunctionDeclaration) interface{} {
	params := make([]interface{}, len(n.Parameters))
	for i, p := range n.Parameters {
		params[i] = p
	}
	return e.node(n, map[string]interface{}{
		"name":       n.Name,
		"parameters": params,
		"body":       e.stmts(n.Body),
	})
}

func (e exporter) VisitIfStatement(n *IfStatement) interface{} {
	return e.node(n, map[string]interface{}{
		"test":       e.expr(n.Test),
		"consequent": e.stmts(n.Consequent),
		"alternate":  e.stmts(n.Alternate),
	})
}

func (e exporter) VisitLoopStatement(n *LoopStatement) interface{} {
	return e.node(n, map[string]interface{}{
		"test": e.expr(n.Test),
		"body": e.stmts(n.Body),
	})
}

func (e exporter) VisitSwitchStatement(n *SwitchStatement) interface{} {
	cases := make([]interface{}, len(n.Cases))
	for i, c := range n.Cases {
		cases[i] = map[string]interface{}{
			"type":    "SwitchCase",
			"line":    c.Pos.Line,
			"test":    e.expr(c.Test),
			"default": c.Test == nil,
			"body":    e.stmts(c.Body),
		}
	}
	return e.node(n, map[string]interface{}{
		"discriminant": e.expr(n.Discriminant),
		"cases":        cases,
	})
}

func (e exporter) VisitReturnStatement(n *ReturnStatement) interface{} {
	return e.node(n, map[string]interface{}{"value": e.expr(n.Value)})
}

func (e exporter) VisitBreakStatement(n *BreakStatement) interface{} {
	return e.node(n, map[string]interface{}{})
}

func (e exporter) VisitContinueStatement(n *ContinueStatement) interface{} {
	return e.node(n, map[string]interface{}{})
}

func (e exporter) VisitExpressionStatement(n *ExpressionStatement) interface{} {
	return e.node(n, map[string]interface{}{"expression": e.expr(n.Expression)})
}

func (e exporter) VisitAssignmentExpression(n *AssignmentExpression) interface{} {
	return e.node(n, map[string]interface{}{
		"assignee": e.expr(n.Assignee),
		"value":    e.expr(n.Value),
	})
}

func (e exporter) VisitCallExpression(n *CallExpression) interface{} {
	return e.node(n, map[string]interface{}{
		"callee":    e.expr(n.Callee),
		"arguments": e.exprs(n.Arguments),
	})
}

func (e exporter) VisitBinaryExpression(n *BinaryExpression) interface{} {
	return e.node(n, map[string]interface{}{
		"operator": n.Operator.Lexeme,
		"left":     e.expr(n.Left),
		"right":    e.expr(n.Right),
	})
}

func (e exporter) VisitUnaryExpression(n *UnaryExpression) interface{} {
	return e.node(n, map[string]interface{}{
		"operator": n.Operator.Lexeme,
		"prefix":   n.Prefix,
		"argument": e.expr(n.Argument),
	})
}

func (e exporter) VisitMemberExpression(n *MemberExpression) interface{} {
	return e.node(n, map[string]interface{}{
		"object":   e.expr(n.Object),
		"property": e.expr(n.Property),
		"computed": n.Computed,
	})
}

func (e exporter) VisitIdentifier(n *Identifier) interface{} {
	return e.node(n, map[string]interface{}{"name": n.Name})
}

func (e exporter) VisitIntegerLiteral(n *IntegerLiteral) interface{} {
	return e.node(n, map[string]interface{}{"value": n.Value})
}

func (e exporter) VisitFloatLiteral(n *FloatLiteral) interface{} {
	return e.node(n, map[string]interface{}{"value": n.Value})
}

func (e exporter) VisitStringLiteral(n *StringLiteral) interface{} {
	return e.node(n, map[string]interface{}{"value": n.Value})
}

func (e exporter) VisitBooleanLiteral(n *BooleanLiteral) interface{} {
	return e.node(n, map[string]interface{}{"value": n.Value})
}

func (e exporter) VisitNullLiteral(n *NullLiteral) interface{} {
	return e.node(n, map[string]interface{}{"value": nil})
}

func (e exporter) VisitListLiteral(n *ListLiteral) interface{} {
	return e.node(n, map[string]interface{}{"elements": e.exprs(n.Elements)})
}

func (e exporter) VisitStructureLiteral(n *StructureLiteral) interface{} {
	props := make([]interface{}, len(n.Properties))
	for i, p := range n.Properties {
		props[i] = map[string]interface{}{
			"type":      "Property",
			"line":      p.Pos.Line,
			"key":       p.Key,
			"value":     e.expr(p.Value),
			"shorthand": p.Value == nil,
		}
	}
	return e.node(n, map[string]interface{}{"properties": props})
}
