package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnolang/gym/rewrite"
)

var matchCmd = &cobra.Command{
	Use:   "match PATTERN CANDIDATE",
	Short: "Match a candidate against a pattern and print the bindings",
	Long: `Match a candidate against a pattern and print the bindings.
When PATTERN is a rule, its head is used. Exits with status 1 if the
candidate does not match.

Example) gym match "pair(a, b)" "pair(x, triple(u, v, w))"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := parseArg(cmd, args[0])
		if err != nil {
			return err
		}
		candidate, err := parseArg(cmd, args[1])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		b, ok := rewrite.Match(pattern, candidate)
		if !ok {
			fmt.Fprintln(out, "no match")
			return errFailed
		}

		b.Each(func(name string, e rewrite.Expr) {
			fmt.Fprintf(out, "%s = %s\n", name, e)
		})
		return nil
	},
}
