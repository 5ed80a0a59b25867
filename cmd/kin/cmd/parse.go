package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kin-lang/kin/foundation/kin"
	"github.com/kin-lang/kin/foundation/kin/ast"
)

func newParseCmd(a *app) *cobra.Command {
	var (
		format     string
		eval       string
		expression bool
		selected   string
	)

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Print the syntax tree of a Kin file",
		Long: `Parses the input and prints its syntax tree as an indented tree, JSON
or YAML. Parsing stops at the first error. --select prints only the
subtrees whose node type matches, in source order.`,
		Example: `  kin parse examples/hello.kin
  kin parse --format yaml -
  kin parse --expression --eval 'a + b * 2'
  kin parse --select CallExpression --format json examples/hello.kin`,
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := kin.ParseFormat(format)
			if err != nil {
				return err
			}
			src, err := a.sourceArg(args, eval)
			if err != nil {
				return err
			}

			var node ast.Node
			if expression {
				node, err = a.engine.ParseExpression(src)
			} else {
				node, err = a.engine.Parse(src)
			}
			if err != nil {
				return err
			}
			if selected != "" {
				return kin.EncodeNodes(cmd.OutOrStdout(), ast.Collect(node, selected), f)
			}
			return kin.Encode(cmd.OutOrStdout(), node, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "tree", "output format: tree, json, yaml")
	cmd.Flags().StringVarP(&eval, "eval", "e", "", "parse this source instead of a file")
	cmd.Flags().BoolVarP(&expression, "expression", "x", false, "parse a single expression")
	cmd.Flags().StringVarP(&selected, "select", "s", "", "print only nodes of this type, e.g. CallExpression")
	return cmd
}
