// File: doc.go
// Title: Kin AST Package Documentation
// Description: Package documentation for the Kin abstract syntax tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial documentation

/*
Package ast defines the syntax tree produced by the Kin parser.

The node set is closed: Stmt and Expr are sealed with unexported marker
methods, so only the types in this package implement them. Code that
consumes a tree either implements Visitor, which has one method per node
kind, or uses a type switch.

Every node reports the line of its first token through Position, renders
itself as source through String (expressions fully parenthesized) and
checks its structural invariants through Validate.

Helpers:

	ast.Print(program)          indented tree dump
	ast.Export(program)         map form for JSON and YAML encoders
	ast.Inspect(program, fn)    depth-first walk
	ast.Collect(program, "CallExpression")
*/
package ast
