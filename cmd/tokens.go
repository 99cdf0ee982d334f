package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnolang/gym/formatter"
	"github.com/gnolang/gym/rewrite"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens TEXT...",
	Short: "Print the token stream of an expression",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		tokens, err := rewrite.Lex(text)
		if err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatError(text, err))
			return errFailed
		}

		out := cmd.OutOrStdout()
		for _, tok := range tokens {
			pos := fmt.Sprintf("%d:%d", tok.Line, tok.Col)
			if tok.Type == rewrite.TokenEOF {
				fmt.Fprintf(out, "%-6s %s\n", pos, tok.Type)
				continue
			}
			fmt.Fprintf(out, "%-6s %-10s %q\n", pos, tok.Type, tok.Value)
		}
		return nil
	},
}
