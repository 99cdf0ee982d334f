package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/gym/formatter"
	tt "github.com/gnolang/gym/internal/types"
)

var (
	watchRule  string
	watchSteps int
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Re-run .gym files whenever they are saved",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd, watchRule, watchSteps)
		if err != nil {
			logger.Error("Failed to initialize rewrite engine", zap.Error(err))
			return err
		}

		out := cmd.OutOrStdout()
		report := func(filename string, results []tt.Result, err error) {
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %s: %v\n", filename, err)
				return
			}
			fmt.Fprint(out, formatter.FormatResults(results))
			fmt.Fprintf(out, "%s: %s\n", filename, formatter.Summary(results))
		}

		if err := engine.StartWatching(args, report); err != nil {
			logger.Error("Failed to start watching", zap.Error(err))
			return err
		}
		defer func() {
			if err := engine.StopWatching(); err != nil {
				logger.Error("Failed to stop watching", zap.Error(err))
			}
		}()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		fmt.Fprintln(out, "watching for changes, press Ctrl+C to stop")
		<-ctx.Done()
		return nil
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchRule, "rule", "", "Name of the configured rule to apply")
	watchCmd.Flags().IntVar(&watchSteps, "steps", 1, "Maximum number of times the rule is applied to each line")
}
