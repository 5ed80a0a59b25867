// File: validate.go
// Title: Kin AST Validation
// Description: Structural invariant checks for every AST node. The
//              parser only builds valid trees; Validate guards trees
//              assembled by hand or transformed by later passes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial validation rules

package ast

import (
	"errors"
	"fmt"

	"github.com/kin-lang/kin/foundation/kin/token"
	kinstringx "github.com/kin-lang/kin/foundation/utils/stringx"
)

// ErrInvalidNode is wrapped by every validation failure
var ErrInvalidNode = errors.New("invalid node")

func invalid(n Node, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s at %s: %s", ErrInvalidNode, n.Type(), n.Position(), fmt.Sprintf(format, args...))
}

func validateStmts(body []Stmt) error {
	for _, s := range body {
		if s == nil {
			return fmt.Errorf("%w: nil statement", ErrInvalidNode)
		}
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func validateExpr(parent Node, field string, e Expr) error {
	if e == nil {
		return invalid(parent, "missing %s", field)
	}
	return e.Validate()
}

func validateIdent(parent Node, field, name string) error {
	if !kinstringx.IsIdentifier(name) {
		return invalid(parent, "%s %q is not an identifier", field, name)
	}
	return nil
}

func (n *Program) Validate() error {
	return validateStmts(n.Body)
}

func (n *VariableDeclaration) Validate() error {
	if err := validateIdent(n, "identifier", n.Identifier); err != nil {
		return err
	}
	if !n.DeclKind.IsDeclaration() && n.DeclKind != token.NTAHINDUKA {
		return invalid(n, "declaration kind %s", n.DeclKind)
	}
	if n.DeclKind == token.NTAHINDUKA && !n.Constant {
		return invalid(n, "bare ntahinduka declaration must be constant")
	}
	switch {
	case n.Uninitialized && n.Value != nil:
		return invalid(n, "uninitialized declaration carries a value")
	case !n.Uninitialized && n.Value == nil:
		return invalid(n, "missing initializer")
	case n.Uninitialized && n.Constant:
		return invalid(n, "constant %q must be assigned a value", n.Identifier)
	}
	if n.Value != nil {
		return n.Value.Validate()
	}
	return nil
}

func (n *FunctionDeclaration) Validate() error {
	if err := validateIdent(n, "name", n.Name); err != nil {
		return err
	}
	for _, p := range n.Parameters {
		if err := validateIdent(n, "parameter", p); err != nil {
			return err
		}
	}
	return validateStmts(n.Body)
}

func (n *IfStatement) Validate() error {
	if err := validateExpr(n, "test", n.Test); err != nil {
		return err
	}
	if err := validateStmts(n.Consequent); err != nil {
		return err
	}
	return validateStmts(n.Alternate)
}

func (n *LoopStatement) Validate() error {
	if err := validateExpr(n, "test", n.Test); err != nil {
		return err
	}
	return validateStmts(n.Body)
}

func (n *SwitchStatement) Validate() error {
	if err := validateExpr(n, "discriminant", n.Discriminant); err != nil {
		return err
	}
	defaults := 0
	for i, c := range n.Cases {
		if c == nil {
			return invalid(n, "nil case")
		}
		if c.Test == nil {
			defaults++
			if i != len(n.Cases)-1 {
				return invalid(n, "default case must be last")
			}
		} else if err := c.Test.Validate(); err != nil {
			return err
		}
		if err := validateStmts(c.Body); err != nil {
			return err
		}
	}
	if defaults > 1 {
		return invalid(n, "multiple default cases")
	}
	return nil
}

func (n *ReturnStatement) Validate() error {
	if n.Value != nil {
		return n.Value.Validate()
	}
	return nil
}

func (n *BreakStatement) Validate() error    { return nil }
func (n *ContinueStatement) Validate() error { return nil }

func (n *ExpressionStatement) Validate() error {
	return validateExpr(n, "expression", n.Expression)
}

func (n *AssignmentExpression) Validate() error {
	switch n.Assignee.(type) {
	case *Identifier, *MemberExpression:
	default:
		return invalid(n, "invalid assignment target %s", exprString(n.Assignee))
	}
	if err := n.Assignee.Validate(); err != nil {
		return err
	}
	return validateExpr(n, "value", n.Value)
}

func (n *CallExpression) Validate() error {
	if err := validateExpr(n, "callee", n.Callee); err != nil {
		return err
	}
	for _, a := range n.Arguments {
		if err := validateExpr(n, "argument", a); err != nil {
			return err
		}
	}
	return nil
}

var binaryOperators = map[token.Kind]bool{
	token.OR: true, token.AND: true,
	token.EQUALITY: true, token.NOT_EQUAL: true,
	token.LESS: true, token.GREATER: true, token.LESS_EQUAL: true, token.GREATER_EQUAL: true,
	token.PLUS: true, token.MINUS: true,
	token.STAR: true, token.SLASH: true, token.PERCENT: true,
	token.CARET: true,
}

func (n *BinaryExpression) Validate() error {
	if !binaryOperators[n.Operator.Kind] {
		return invalid(n, "unsupported binary operator %s", n.Operator.Kind)
	}
	if err := validateExpr(n, "left operand", n.Left); err != nil {
		return err
	}
	return validateExpr(n, "right operand", n.Right)
}

func (n *UnaryExpression) Validate() error {
	switch n.Operator.Kind {
	case token.INCREMENT, token.DECREMENT:
	case token.MINUS, token.BANG:
		if !n.Prefix {
			return invalid(n, "operator %s is prefix only", n.Operator.Lexeme)
		}
	default:
		return invalid(n, "unsupported unary operator %s", n.Operator.Kind)
	}
	return validateExpr(n, "argument", n.Argument)
}

func (n *MemberExpression) Validate() error {
	if err := validateExpr(n, "object", n.Object); err != nil {
		return err
	}
	if !n.Computed {
		if _, ok := n.Property.(*Identifier); !ok {
			return invalid(n, "non-computed property must be an identifier")
		}
	}
	return validateExpr(n, "property", n.Property)
}

func (n *Identifier) Validate() error {
	return validateIdent(n, "name", n.Name)
}

func (n *IntegerLiteral) Validate() error { return nil }
func (n *FloatLiteral) Validate() error   { return nil }
func (n *StringLiteral) Validate() error  { return nil }
func (n *BooleanLiteral) Validate() error { return nil }
func (n *NullLiteral) Validate() error    { return nil }

func (n *ListLiteral) Validate() error {
	for _, e := range n.Elements {
		if err := validateExpr(n, "element", e); err != nil {
			return err
		}
	}
	return nil
}

func (n *StructureLiteral) Validate() error {
	for _, p := range n.Properties {
		if p == nil {
			return invalid(n, "nil property")
		}
		if err := validateIdent(n, "key", p.Key); err != nil {
			return err
		}
		if p.Value != nil {
			if err := p.Value.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
