// File: doc.go
// Title: Kin Token Package Documentation
// Description: Package documentation for the Kin token model.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial documentation

/*
Package token defines the lexical vocabulary shared by the Kin scanner and
parser: the closed Kind enumeration, the Token value and the table of
Kinyarwanda keywords.

Keywords:

	reka, ntahinduka              declarations (let, constant)
	umubare, umubare_wibice       integer and float declarations
	ijambo, ubwoko                string and type declarations
	niba, nanone_niba, niba_byanze   if, else-if, else
	subiramo                      loop
	porogaramu_ntoya, tanga       function, return
	hagarara, komeza              break, continue
	gereranya, usanze, ibindi     switch, case, default
	nibyo, sibyo, ubusa           true, false, null

The builtins tangaza_amakuru and injiza_amakuru are ordinary identifiers.
*/
package token
