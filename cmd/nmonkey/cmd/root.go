package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/agenthands/nmonkey/pkg/compiler/parser"
	"github.com/agenthands/nmonkey/pkg/config"
	"github.com/agenthands/nmonkey/pkg/logging"
)

// Version is set at build time with -ldflags "-X ...".
var Version = "0.1.0"

// app is the state shared by the subcommands of one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
}

// Execute runs the CLI against os.Args.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		// Diagnostics were already printed by the parse command.
		if !errors.Is(err, parser.ErrSyntax) {
			fmt.Fprintf(root.ErrOrStderr(), "error: %v\n", err)
		}
		return err
	}
	return nil
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "nmonkey",
		Short: "nmonkey - lexer and parser front end",
		Long: `nmonkey turns Monkey source text into tokens or a syntax tree.

Input is read from the file argument, or from stdin when the
argument is "-" or missing.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.toml or .yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newTokensCmd(a), newParseCmd(a), newVersionCmd())
	return root
}

func (a *app) setup(stderr io.Writer) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		loaded, err := config.Load(a.cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	a.cfg = cfg

	a.logger = logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: stderr,
	})
	a.logger.Debug("config loaded", "file", a.cfgFile, "output", cfg.Output)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nmonkey %s\n", Version)
		},
	}
}
