package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gnolang/gym/formatter"
	"github.com/gnolang/gym/rewrite"
)

var warningStyle = color.New(color.FgHiYellow, color.Bold)

var parseCmd = &cobra.Command{
	Use:   "parse TEXT...",
	Short: "Parse an expression or rule and print its canonical form",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := parseArg(cmd, strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), rewrite.Render(expr))
		if rule, ok := expr.(*rewrite.Rule); ok {
			warnUnbound(cmd, rule)
		}
		return nil
	},
}

// parseArg parses text, printing a diagnostic on failure.
func parseArg(cmd *cobra.Command, text string) (rewrite.Expr, error) {
	expr, err := rewrite.Parse(text)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatError(text, err))
		return nil, errFailed
	}
	return expr, nil
}

func warnUnbound(cmd *cobra.Command, rule *rewrite.Rule) {
	unbound := rule.UnboundSymbols()
	if len(unbound) == 0 {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%srule %s uses symbols not bound by its head: %s\n",
		warningStyle.Sprint("warning: "), rule.Name, strings.Join(unbound, ", "))
}
