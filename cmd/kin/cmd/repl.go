package cmd

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	kinerror "github.com/kin-lang/kin/foundation/core/error"
	kinlog "github.com/kin-lang/kin/foundation/core/log"
	"github.com/kin-lang/kin/foundation/kin"
	"github.com/kin-lang/kin/internal/repl"
	"github.com/kin-lang/kin/pkg/core/version"
)

func newReplCmd(a *app) *cobra.Command {
	var (
		plain  bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive Kin REPL",
		Long: `Reads Kin statements one at a time and prints their syntax tree.

Input that leaves a block, list or call open continues on the next line.

Commands:
  :tokens          - toggle printing tokens instead of the tree
  .exit .quit .q   - leave the REPL

Keys (terminal mode):
  Enter    - run the line
  Up/Down  - history
  Esc      - drop an unfinished block
  Ctrl+L   - clear the screen
  Ctrl+C   - quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := kin.ParseFormat(format)
			if err != nil {
				return err
			}

			opts := a.engine.Options()
			if !plain {
				// the terminal UI owns the screen
				opts.Logger = kinlog.NewWithConfig(kinlog.Config{Level: kinlog.LevelOff, Output: io.Discard})
			}
			session := repl.NewSession(kin.NewEngine(opts), a.loc)
			session.SetFormat(f)

			welcome := a.loc.T("repl.welcome", map[string]interface{}{"version": version.Tool})

			if plain {
				fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(welcome))
				return repl.RunPlain(cmd.InOrStdin(), cmd.OutOrStdout(), session, true)
			}

			p := tea.NewProgram(
				repl.NewModel(session, welcome),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return kinerror.Wrap(err, "REPL terminated").
					WithCode(kinerror.CodeInternal).
					WithOperation("kin.repl")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "line mode without the terminal UI (for pipes)")
	cmd.Flags().StringVarP(&format, "format", "f", "tree", "tree output format: tree, json, yaml")
	return cmd
}
