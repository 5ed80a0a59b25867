// Package kin is the entry point to the Kin front end.
//
// An Engine tokenizes and parses source text under configurable limits and
// returns *ast.Program values. Failures come back as *error.Error values
// (codes KIN_LEX, KIN_SYNTAX, KIN_RESOURCE) that carry the source line and
// a localization key; Diagnose renders them in English or Kinyarwanda:
//
//	engine := kin.NewEngine(kin.DefaultOptions())
//	program, err := engine.Parse(src)
//	if err != nil {
//		fmt.Fprintln(os.Stderr, kin.Diagnose(err, nil))
//	}
//
// The scanner, parser and AST live in the token, lexer, parser and ast
// subpackages and can be used directly.
package kin
