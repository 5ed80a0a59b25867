package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kin-lang/kin/foundation/core/config"
	kinerror "github.com/kin-lang/kin/foundation/core/error"
	"github.com/kin-lang/kin/foundation/core/i18n"
	kinlog "github.com/kin-lang/kin/foundation/core/log"
	"github.com/kin-lang/kin/foundation/kin"
)

// app holds what the commands share once flags and configuration are read
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfgFile   string
	logLevel  string
	logFormat string
	locale    string

	cfg    *config.Config
	logger *kinlog.Logger
	loc    *i18n.Manager
	engine *kin.Engine
}

// reportedError marks a failure whose diagnostics were already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Execute runs the kin command with the process arguments and returns the
// exit code
func Execute() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run runs the kin command with explicit arguments and streams
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return kinerror.ExitSuccess
	}

	// unstructured errors come from cobra's command and flag handling
	if _, ok := kinerror.As(err); !ok {
		err = kinerror.Wrap(err, "invalid arguments").WithCode(kinerror.CodeInvalidInput)
	}

	var reported *reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintln(stderr, RenderError(kin.Diagnose(err, a.loc)))
	}
	return kinerror.GetCode(err).ExitCode()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "kin",
		Short: "Kin - programming in Kinyarwanda",
		Long: `kin reads Kin source code and shows how the front end sees it.

Commands:
  tokens   - print the token stream of a file
  parse    - print the syntax tree of a file
  check    - parse several files concurrently and report errors
  repl     - interactive read-parse-print loop
  version  - version information

Configuration is read from kin.toml, kin.yaml or kin.yml in ., ./config
or $HOME/.config/kin. Environment variables such as KIN_PARSER_MAX_DEPTH
override file values.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: discovered kin.toml|kin.yaml|kin.yml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, off")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, json, console, logfmt")
	root.PersistentFlags().StringVar(&a.locale, "locale", "", "diagnostics locale: en, rw")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return kinerror.Wrap(err, "invalid flag").
			WithCode(kinerror.CodeInvalidInput).
			WithOperation("kin." + cmd.Name())
	})

	root.AddCommand(
		newTokensCmd(a),
		newParseCmd(a),
		newCheckCmd(a),
		newReplCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads configuration, then applies flag overrides
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := kin.LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Set(kin.KeyLogLevel, a.logLevel)
	}
	if a.logFormat != "" {
		cfg.Set(kin.KeyLogFormat, a.logFormat)
	}
	if a.locale != "" {
		cfg.Set(kin.KeyLocale, a.locale)
	}

	if err := kin.ValidateConfig(cfg); err != nil {
		return err
	}

	loc, err := kin.NewLocalizer(kin.LocaleFromConfig(cfg))
	if err != nil {
		return err
	}
	a.loc = loc

	logger, err := kin.NewLogger(cfg, a.stderr)
	if err != nil {
		return kinerror.Wrap(err, "invalid logging settings").
			WithCode(kinerror.CodeInvalidConfig).
			WithOperation("kin.setup")
	}

	opts := kin.OptionsFromConfig(cfg)
	opts.Logger = logger

	a.cfg = cfg
	a.logger = logger.WithField("command", cmd.Name())
	a.engine = kin.NewEngine(opts)

	a.logger.Debug("Configuration loaded", kinlog.Fields{
		"config":    cfg.FilePath(),
		"locale":    loc.GetCurrentLocale(),
		"max_depth": opts.MaxDepth,
	})
	return nil
}

// maxArgs is cobra.MaximumNArgs with a structured error
func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(n)(cmd, args); err != nil {
			return invalidArgs(cmd, err)
		}
		return nil
	}
}

// minArgs is cobra.MinimumNArgs with a structured error
func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return invalidArgs(cmd, err)
		}
		return nil
	}
}

func invalidArgs(cmd *cobra.Command, err error) error {
	return kinerror.Wrap(err, "invalid arguments").
		WithCode(kinerror.CodeInvalidInput).
		WithOperation("kin." + cmd.Name()).
		WithMessage("diagnostics.invalid_arguments", nil)
}

func (a *app) diagnose(err error) string {
	return kin.Diagnose(err, a.loc)
}
