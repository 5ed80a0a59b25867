package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kin-lang/kin/foundation/kin"
	"github.com/kin-lang/kin/pkg/core/version"
)

func newVersionCmd(a *app) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version.Tool)
				return
			}

			info := version.Get()
			fmt.Fprintln(out, titleStyle.Render("kin "+version.Short()))
			fmt.Fprintf(out, "  Grammar:    %s\n", info.Grammar)
			fmt.Fprintf(out, "  Git Commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
			fmt.Fprintf(out, "  Locales:    %v\n", kin.Locales())
			if a.cfg != nil && a.cfg.FilePath() != "" {
				fmt.Fprintf(out, "  Config:     %s\n", a.cfg.FilePath())
			}
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "print only the tool version")
	return cmd
}
