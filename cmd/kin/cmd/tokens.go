package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kin-lang/kin/foundation/kin"
)

func newTokensCmd(a *app) *cobra.Command {
	var (
		format string
		eval   string
	)

	cmd := &cobra.Command{
		Use:   "tokens [file|-]",
		Short: "Print the token stream of a Kin file",
		Long: `Scans the input and prints one token per line: line number, kind
and lexeme. The stream always ends with a single EOF token.`,
		Example: `  kin tokens examples/hello.kin
  echo 'reka x = 1;' | kin tokens -
  kin tokens --eval 'umubare x = 5;' --format json`,
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
			tokens, err := a.engine.Tokenize(src)
			if err != nil {
				return err
			}
			return kin.EncodeTokens(cmd.OutOrStdout(), tokens, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "tree", "output format: tree, json, yaml")
	cmd.Flags().StringVarP(&eval, "eval", "e", "", "scan this source instead of a file")
	return cmd
}
