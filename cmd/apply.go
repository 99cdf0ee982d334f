package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/gym/rewrite"
)

var applySteps int

var applyCmd = &cobra.Command{
	Use:   "apply RULE INPUT",
	Short: "Rewrite an expression with a rule and print every step",
	Long: `Rewrite an expression with a rule and print every step.
RULE is either rule text or the name of a rule from the configuration.

Example) gym apply "swap(pair(a, b)) => pair(b, a)" "pair(x, y)"
Example) gym apply --steps 3 rot "triple(x, y, z)"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if applySteps <= 0 {
			return fmt.Errorf("--steps must be positive, got %d", applySteps)
		}

		rule, err := resolveRule(cmd, args[0])
		if err != nil {
			return err
		}
		input, err := parseArg(cmd, args[1])
		if err != nil {
			return err
		}

		trace, err := rewrite.Iterate(rule, input, applySteps)
		if err != nil {
			logger.Error("Error applying rule", zap.String("rule", rule.Name), zap.Error(err))
			return err
		}

		out := cmd.OutOrStdout()
		if trace.Applied() == 0 {
			fmt.Fprintf(out, "%s does not match rule %s\n", input, rule.Name)
			return errFailed
		}
		for _, step := range trace.Strings()[1:] {
			fmt.Fprintln(out, step)
		}
		return nil
	},
}

func init() {
	applyCmd.Flags().IntVar(&applySteps, "steps", 1, "Maximum number of times the rule is applied")
}

// resolveRule accepts rule text or the name of a configured rule.
func resolveRule(cmd *cobra.Command, text string) (*rewrite.Rule, error) {
	expr, err := parseArg(cmd, text)
	if err != nil {
		return nil, err
	}

	switch e := expr.(type) {
	case *rewrite.Rule:
		warnUnbound(cmd, e)
		return e, nil
	case rewrite.Symbol:
		config, err := loadConfig(cmd)
		if err != nil {
			return nil, err
		}
		library, err := rewrite.NewLibrary(config.Rules)
		if err != nil {
			return nil, fmt.Errorf("error loading rules: %w", err)
		}
		rule, ok := library.Lookup(string(e))
		if !ok {
			return nil, fmt.Errorf("unknown rule %q", e)
		}
		return rule, nil
	default:
		return nil, fmt.Errorf("%s is not a rule (expected name(pattern) => template or a rule name)", expr)
	}
}
