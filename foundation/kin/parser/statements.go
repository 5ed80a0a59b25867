// File: statements.go
// Title: Kin Statement Parsing
// Description: Parses declarations, functions, conditionals, loops,
//              switches, jumps, blocks and expression statements.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial statement grammar

package parser

import (
	"github.com/kin-lang/kin/foundation/kin/ast"
	"github.com/kin-lang/kin/foundation/kin/token"
)

func (s *state) parseStatement() (ast.Stmt, error) {
	tok := s.cur()
	switch {
	case tok.Kind == token.NTAHINDUKA || tok.Kind.IsDeclaration():
		return s.parseVariableDeclaration()
	}

	switch tok.Kind {
	case token.POROGARAMU_NTOYA:
		return s.parseFunctionDeclaration()
	case token.NIBA:
		stmt, err := s.parseIfStatement()
		if err != nil {
			return nil, err
		}
		return stmt, nil
	case token.SUBIRAMO:
		return s.parseLoopStatement()
	case token.GERERANYA:
		return s.parseSwitchStatement()
	case token.TANGA:
		return s.parseReturnStatement()
	case token.HAGARARA:
		s.advance()
		if _, err := s.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		return &ast.BreakStatement{Pos: at(tok)}, nil
	case token.KOMEZA:
		s.advance()
		if _, err := s.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		return &ast.ContinueStatement{Pos: at(tok)}, nil
	case token.EOF:
		return nil, s.unexpected("statement")
	}

	return s.parseExpressionStatement()
}

// parseVariableDeclaration parses
//
//	ntahinduka? declKw IDENTIFIER ("=" expression)? ";"
//	ntahinduka IDENTIFIER "=" expression ";"
func (s *state) parseVariableDeclaration() (ast.Stmt, error) {
	start := s.advance()
	decl := &ast.VariableDeclaration{DeclKind: start.Kind, Pos: at(start)}

	if start.Kind == token.NTAHINDUKA {
		decl.Constant = true
		if s.cur().Kind.IsDeclaration() {
			decl.DeclKind = s.advance().Kind
		}
	}

	name, err := s.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	decl.Identifier = name.Lexeme

	// Constants must be assigned a value
	if !decl.Constant && s.match(token.SEMICOLON) {
		decl.Uninitialized = true
		return decl, nil
	}
	if decl.Constant {
		if _, err := s.expect(token.ASSIGNMENT); err != nil {
			return nil, err
		}
	} else if !s.match(token.ASSIGNMENT) {
		_, err := s.expect(token.SEMICOLON)
		return nil, err
	}

	if decl.Value, err = s.parseExpression(); err != nil {
		return nil, err
	}
	if _, err := s.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return decl, nil
}

func (s *state) parseFunctionDeclaration() (ast.Stmt, error) {
	start := s.advance()

	name, err := s.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(token.LPAREN); err != nil {
		return nil, err
	}

	fn := &ast.FunctionDeclaration{Name: name.Lexeme, Parameters: []string{}, Pos: at(start)}
	if !s.check(token.RPAREN) {
		for {
			param, err := s.expect(token.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			fn.Parameters = append(fn.Parameters, param.Lexeme)
			if !s.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := s.expect(token.RPAREN); err != nil {
		return nil, err
	}

	if fn.Body, err = s.parseBlock(); err != nil {
		return nil, err
	}
	return fn, nil
}

// parseIfStatement handles "niba" and, for else-if chains, "nanone_niba"
// followed by a parenthesized condition.
func (s *state) parseIfStatement() (*ast.IfStatement, error) {
	start := s.advance()

	test, err := s.parseCondition()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStatement{Test: test, Pos: at(start)}
	if stmt.Consequent, err = s.parseBlock(); err != nil {
		return nil, err
	}

	switch s.cur().Kind {
	case token.NANONE_NIBA:
		if s.peek(1).Kind == token.LPAREN {
			elif, err := s.parseIfStatement()
			if err != nil {
				return nil, err
			}
			stmt.Alternate = []ast.Stmt{elif}
			return stmt, nil
		}
		s.advance()
		stmt.Alternate, err = s.parseBlock()
	case token.NIBA_BYANZE:
		s.advance()
		stmt.Alternate, err = s.parseBlock()
	}
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

func (s *state) parseLoopStatement() (ast.Stmt, error) {
	start := s.advance()

	test, err := s.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := s.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.LoopStatement{Test: test, Body: body, Pos: at(start)}, nil
}

// parseSwitchStatement parses
//
//	"gereranya" "(" expression ")" "{" ("usanze" expression ":" statement*)* ("ibindi" ":" statement*)? "}"
func (s *state) parseSwitchStatement() (ast.Stmt, error) {
	start := s.advance()

	disc, err := s.parseCondition()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(token.LBRACE); err != nil {
		return nil, err
	}
	if err := s.enter(); err != nil {
		return nil, err
	}
	defer s.leave()

	stmt := &ast.SwitchStatement{Discriminant: disc, Pos: at(start)}
	for s.check(token.USANZE) {
		caseTok := s.advance()
		test, err := s.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := s.expect(token.COLON); err != nil {
			return nil, err
		}
		body, err := s.parseCaseBody()
		if err != nil {
			return nil, err
		}
		stmt.Cases = append(stmt.Cases, &ast.SwitchCase{Test: test, Body: body, Pos: at(caseTok)})
	}

	if s.check(token.IBINDI) {
		defTok := s.advance()
		if _, err := s.expect(token.COLON); err != nil {
			return nil, err
		}
		body, err := s.parseCaseBody()
		if err != nil {
			return nil, err
		}
		stmt.Cases = append(stmt.Cases, &ast.SwitchCase{Body: body, Pos: at(defTok)})
	}

	if _, err := s.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (s *state) parseCaseBody() ([]ast.Stmt, error) {
	body := []ast.Stmt{}
	for !s.check(token.USANZE) && !s.check(token.IBINDI) && !s.check(token.RBRACE) && !s.check(token.EOF) {
		stmt, err := s.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return body, nil
}

func (s *state) parseReturnStatement() (ast.Stmt, error) {
	start := s.advance()
	stmt := &ast.ReturnStatement{Pos: at(start)}

	if !s.check(token.SEMICOLON) {
		value, err := s.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Value = value
	}
	if _, err := s.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (s *state) parseExpressionStatement() (ast.Stmt, error) {
	start := s.cur()
	expr, err := s.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expression: expr, Pos: at(start)}, nil
}

// parseCondition parses "(" expression ")"
func (s *state) parseCondition() (ast.Expr, error) {
	if _, err := s.expect(token.LPAREN); err != nil {
		return nil, err
	}
	expr, err := s.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseBlock parses "{" statement* "}"
func (s *state) parseBlock() ([]ast.Stmt, error) {
	if _, err := s.expect(token.LBRACE); err != nil {
		return nil, err
	}
	if err := s.enter(); err != nil {
		return nil, err
	}
	defer s.leave()

	body := []ast.Stmt{}
	for !s.check(token.RBRACE) && !s.check(token.EOF) {
		stmt, err := s.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if _, err := s.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return body, nil
}
