package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agenthands/nmonkey/pkg/compiler/lexer"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream",
		Long: `Prints one token per line: position, kind and literal.

Examples:
  nmonkey tokens script.mk
  echo 'let x = 5;' | nmonkey tokens`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return a.printTokens(cmd.OutOrStdout(), name, src)
		},
	}
}

func (a *app) printTokens(w io.Writer, name, src string) error {
	st := newStyles(w, a.cfg.Color)

	count, illegal := 0, 0
	for tok := range lexer.NewScanner(src).All() {
		pos := fmt.Sprintf("%d:%d", tok.Line, tok.Column)
		kind := st.Kind
		if tok.Kind == lexer.KindIllegal {
			kind = st.Error
			illegal++
		}
		_, err := fmt.Fprintf(w, "%s %s %s\n",
			st.Position.Render(fmt.Sprintf("%-7s", pos)),
			kind.Render(fmt.Sprintf("%-9s", tok.Kind)),
			strconv.Quote(tok.Literal))
		if err != nil {
			return fmt.Errorf("write tokens: %w", err)
		}
		count++
	}

	a.logger.Info("lexed", "input", name, "tokens", count, "illegal", illegal)
	return nil
}

// readInput returns the display name and content of the command input.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read source: %w", err)
	}
	return args[0], string(data), nil
}
