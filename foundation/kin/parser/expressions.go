// File: expressions.go
// Title: Kin Expression Parsing
// Description: Parses assignment, binary operators by precedence
//              climbing, prefix and postfix operators, calls, member
//              access and primary expressions including list and
//              structure literals.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial expression grammar

package parser

import (
	"strconv"

	"github.com/kin-lang/kin/foundation/kin/ast"
	"github.com/kin-lang/kin/foundation/kin/token"
)

// Binding power of binary operators, lowest first
const (
	precLogicalOr = iota + 1
	precLogicalAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
	precPower
)

var binaryPrecedence = map[token.Kind]int{
	token.OR:            precLogicalOr,
	token.AND:           precLogicalAnd,
	token.EQUALITY:      precEquality,
	token.NOT_EQUAL:     precEquality,
	token.LESS:          precRelational,
	token.GREATER:       precRelational,
	token.LESS_EQUAL:    precRelational,
	token.GREATER_EQUAL: precRelational,
	token.PLUS:          precAdditive,
	token.MINUS:         precAdditive,
	token.STAR:          precMultiplicative,
	token.SLASH:         precMultiplicative,
	token.PERCENT:       precMultiplicative,
	token.CARET:         precPower,
}

func rightAssociative(kind token.Kind) bool {
	return kind == token.CARET
}

// parseExpression parses an expression (assignment is lowest precedence)
func (s *state) parseExpression() (ast.Expr, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	defer s.leave()

	return s.parseAssignment()
}

// parseAssignment parses right-associative assignment. The target must be
// an identifier or a member expression.
func (s *state) parseAssignment() (ast.Expr, error) {
	start := s.cur()
	left, err := s.parseBinary(precLogicalOr)
	if err != nil {
		return nil, err
	}

	if !s.check(token.ASSIGNMENT) {
		return left, nil
	}

	switch left.(type) {
	case *ast.Identifier, *ast.MemberExpression:
	default:
		return nil, s.unexpected("assignable expression before '='")
	}
	s.advance()

	value, err := s.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentExpression{Assignee: left, Value: value, Pos: at(start)}, nil
}

// parseBinary implements precedence climbing over binaryPrecedence
func (s *state) parseBinary(minPrec int) (ast.Expr, error) {
	start := s.cur()
	left, err := s.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		op := s.cur()
		prec, ok := binaryPrecedence[op.Kind]
		if !ok || prec < minPrec {
			return left, nil
		}
		s.advance()

		next := prec + 1
		if rightAssociative(op.Kind) {
			next = prec
		}
		right, err := s.parseBinary(next)
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpression{Operator: op, Left: left, Right: right, Pos: at(start)}
	}
}

// parseUnary parses prefix - ! ++ --
func (s *state) parseUnary() (ast.Expr, error) {
	switch s.cur().Kind {
	case token.MINUS, token.BANG, token.INCREMENT, token.DECREMENT:
	default:
		return s.parsePostfix()
	}

	if err := s.enter(); err != nil {
		return nil, err
	}
	defer s.leave()

	op := s.advance()
	arg, err := s.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpression{Operator: op, Argument: arg, Prefix: true, Pos: at(op)}, nil
}

// parsePostfix parses calls, member access, indexing and postfix ++ --
func (s *state) parsePostfix() (ast.Expr, error) {
	start := s.cur()
	expr, err := s.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch s.cur().Kind {
		case token.LPAREN:
			args, err := s.parseArguments()
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpression{Callee: expr, Arguments: args, Pos: at(start)}

		case token.PERIOD:
			s.advance()
			name, err := s.expect(token.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpression{
				Object:   expr,
				Property: &ast.Identifier{Name: name.Lexeme, Pos: at(name)},
				Pos:      at(start),
			}

		case token.LBRACKET:
			s.advance()
			index, err := s.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := s.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			expr = &ast.MemberExpression{Object: expr, Property: index, Computed: true, Pos: at(start)}

		case token.INCREMENT, token.DECREMENT:
			op := s.advance()
			expr = &ast.UnaryExpression{Operator: op, Argument: expr, Prefix: false, Pos: at(start)}

		default:
			return expr, nil
		}
	}
}

// parseArguments parses "(" (expression ("," expression)*)? ")"
func (s *state) parseArguments() ([]ast.Expr, error) {
	s.advance() // consume '('

	args := []ast.Expr{}
	if !s.check(token.RPAREN) {
		for {
			arg, err := s.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !s.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := s.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

func (s *state) parsePrimary() (ast.Expr, error) {
	tok := s.cur()

	switch tok.Kind {
	case token.INTEGER:
		value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, s.unexpected("integer within 64-bit range")
		}
		s.advance()
		return &ast.IntegerLiteral{Value: value, Raw: tok.Lexeme, Pos: at(tok)}, nil

	case token.FLOAT:
		value, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, s.unexpected("representable float")
		}
		s.advance()
		return &ast.FloatLiteral{Value: value, Raw: tok.Lexeme, Pos: at(tok)}, nil

	case token.STRING:
		s.advance()
		return &ast.StringLiteral{Value: tok.Lexeme, Pos: at(tok)}, nil

	case token.IDENTIFIER:
		s.advance()
		return &ast.Identifier{Name: tok.Lexeme, Pos: at(tok)}, nil

	case token.NIBYO, token.SIBYO:
		s.advance()
		return &ast.BooleanLiteral{Value: tok.Kind == token.NIBYO, Pos: at(tok)}, nil

	case token.UBUSA:
		s.advance()
		return &ast.NullLiteral{Pos: at(tok)}, nil

	case token.LPAREN:
		s.advance()
		expr, err := s.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := s.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case token.LBRACKET:
		return s.parseList()

	case token.IMITERERE:
		s.advance()
		if !s.check(token.LBRACE) {
			_, err := s.expect(token.LBRACE)
			return nil, err
		}
		return s.parseStructure(tok)

	case token.LBRACE:
		return s.parseStructure(tok)
	}

	return nil, s.unexpected("expression")
}

// parseList parses "[" (expression ("," expression)* ","?)? "]"
func (s *state) parseList() (ast.Expr, error) {
	start := s.advance()
	list := &ast.ListLiteral{Elements: []ast.Expr{}, Pos: at(start)}

	for !s.check(token.RBRACKET) {
		elem, err := s.parseExpression()
		if err != nil {
			return nil, err
		}
		list.Elements = append(list.Elements, elem)
		if !s.match(token.COMMA) {
			break
		}
	}
	if _, err := s.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return list, nil
}

// parseStructure parses "{" (IDENTIFIER (":" expression)? ("," ...)* ","?)? "}".
// start is the token that opened the literal, "imiterere" or "{".
func (s *state) parseStructure(start token.Token) (ast.Expr, error) {
	s.advance() // consume '{'
	st := &ast.StructureLiteral{Properties: []*ast.Property{}, Pos: at(start)}

	for !s.check(token.RBRACE) {
		key, err := s.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		prop := &ast.Property{Key: key.Lexeme, Pos: at(key)}
		if s.match(token.COLON) {
			if prop.Value, err = s.parseExpression(); err != nil {
				return nil, err
			}
		}
		st.Properties = append(st.Properties, prop)
		if !s.match(token.COMMA) {
			break
		}
	}
	if _, err := s.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return st, nil
}
