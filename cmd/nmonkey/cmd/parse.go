package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agenthands/nmonkey/pkg/compiler/ast"
	"github.com/agenthands/nmonkey/pkg/compiler/parser"
	"github.com/agenthands/nmonkey/pkg/config"
	"github.com/agenthands/nmonkey/pkg/printer"
)

func newParseCmd(a *app) *cobra.Command {
	var output string
	var color bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse source and print the program",
		Long: `Parses the input and prints the program, one statement per line,
in canonical form (--output string) or as a node outline (--output tree).

On syntax errors every diagnostic is printed to stderr and the command
exits non-zero.

Examples:
  nmonkey parse script.mk
  nmonkey parse --output tree script.mk`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("output") {
				a.cfg.Output = output
			}
			if cmd.Flags().Changed("color") {
				a.cfg.Color = color
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			name, src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return a.parse(cmd.OutOrStdout(), cmd.ErrOrStderr(), name, src)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", config.OutputString, "output mode: string or tree")
	cmd.Flags().BoolVar(&color, "color", true, "colored diagnostics")
	return cmd
}

func (a *app) parse(stdout, stderr io.Writer, name, src string) error {
	program, err := parser.Parse(src)

	var synErr *parser.SyntaxError
	if errors.As(err, &synErr) {
		a.logger.Info("parsed with errors", "input", name,
			"statements", len(program.Statements), "diagnostics", len(synErr.Diagnostics))
		a.printDiagnostics(stderr, name, synErr.Diagnostics)
		return fmt.Errorf("%s: %w", name, err)
	}
	if err != nil {
		return err
	}

	a.logger.Info("parsed", "input", name, "statements", len(program.Statements))
	return a.printProgram(stdout, program)
}

func (a *app) printProgram(w io.Writer, program *ast.Program) error {
	if a.cfg.Output == config.OutputTree {
		return (&printer.Printer{Indent: a.cfg.Indent}).Fprint(w, program)
	}

	for _, stmt := range program.Statements {
		if _, err := fmt.Fprintln(w, stmt.String()); err != nil {
			return fmt.Errorf("write program: %w", err)
		}
	}
	return nil
}

func (a *app) printDiagnostics(w io.Writer, name string, diags []parser.Diagnostic) {
	st := newStyles(w, a.cfg.Color)

	shown := diags
	if limit := a.cfg.MaxErrors; limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	fmt.Fprintln(w, st.Header.Render(fmt.Sprintf("%s: %d syntax error(s)", name, len(diags))))
	for _, d := range shown {
		pos := fmt.Sprintf("%s:%d:%d:", name, d.Token.Line, d.Token.Column)
		fmt.Fprintf(w, "  %s %s\n", st.Position.Render(pos), st.Error.Render(d.Msg))
	}
	if hidden := len(diags) - len(shown); hidden > 0 {
		fmt.Fprintf(w, "  %s\n", st.Position.Render(fmt.Sprintf("... and %d more", hidden)))
	}
}
