// File: encode.go
// Title: AST and Token Encoding
// Description: Writes programs and token streams as an indented tree, JSON
//              or YAML for the kin command and for tooling.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: EncodeNodes for selected subtrees

package kin

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	kinerror "github.com/kin-lang/kin/foundation/core/error"
	"github.com/kin-lang/kin/foundation/kin/ast"
	"github.com/kin-lang/kin/foundation/kin/token"
	kinslicex "github.com/kin-lang/kin/foundation/utils/slicex"
)

// Format selects an output encoding
type Format string

const (
	FormatTree Format = "tree"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted encodings
func Formats() []Format {
	return []Format{FormatTree, FormatJSON, FormatYAML}
}

// ParseFormat parses a format name; "yml" is accepted for YAML
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tree":
		return FormatTree, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", kinerror.New(fmt.Sprintf("unknown output format %q", s)).
			WithCode(kinerror.CodeInvalidInput).
			WithOperation("kin.ParseFormat").
			WithDetail("format", s)
	}
}

// Encode writes node to w in the given format
func Encode(w io.Writer, node ast.Node, format Format) error {
	switch format {
	case FormatTree:
		_, err := io.WriteString(w, ast.Print(node))
		return err
	case FormatJSON, FormatYAML:
		return encodeData(w, ast.Export(node), format)
	default:
		return unsupported(format)
	}
}

// EncodeNodes writes a node list such as the result of ast.Collect. The
// tree format prints each subtree in order; JSON and YAML write an array.
func EncodeNodes(w io.Writer, nodes []ast.Node, format Format) error {
	switch format {
	case FormatTree:
		for _, n := range nodes {
			if _, err := io.WriteString(w, ast.Print(n)); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON, FormatYAML:
		rows := kinslicex.Map(nodes, ast.Export)
		if rows == nil {
			rows = []map[string]interface{}{}
		}
		return encodeData(w, rows, format)
	default:
		return unsupported(format)
	}
}

// EncodeTokens writes tokens to w. The tree format prints one
// "line kind lexeme" row per token.
func EncodeTokens(w io.Writer, tokens []token.Token, format Format) error {
	switch format {
	case FormatTree:
		for _, tok := range tokens {
			if _, err := fmt.Fprintf(w, "%4d  %-16s %s\n", tok.Line, tok.Kind, tok.Lexeme); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON, FormatYAML:
		rows := kinslicex.Map(tokens, func(tok token.Token) map[string]interface{} {
			return map[string]interface{}{
				"kind":   tok.Kind.String(),
				"lexeme": tok.Lexeme,
				"line":   tok.Line,
			}
		})
		return encodeData(w, rows, format)
	default:
		return unsupported(format)
	}
}

func encodeData(w io.Writer, data interface{}, format Format) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}

func unsupported(format Format) error {
	return kinerror.New(fmt.Sprintf("unsupported output format %q", string(format))).
		WithCode(kinerror.CodeInvalidInput).
		WithOperation("kin.Encode")
}
