package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/gym/internal"
	"github.com/gnolang/gym/runner"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile string
	timeout time.Duration
	verbose bool

	logger *zap.Logger
)

// ExitError makes the process exit with Code. Its message, if any, has
// already been shown to the user.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

var errFailed = &ExitError{Code: 1}

var rootCmd = &cobra.Command{
	Use:           "gym",
	Short:         "gym - a small term-rewriting engine",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("error creating logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the command line and reports the exit code to use.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	return 1
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", runner.DefaultConfigPath, "Path to the rule configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Set a timeout for batch processing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(replCmd)
}

// loadConfig reads the configuration file. A missing file is only an
// error when --config was given explicitly.
func loadConfig(cmd *cobra.Command) (runner.Config, error) {
	config, err := runner.LoadConfig(cfgFile)
	if err == nil {
		return config, nil
	}
	if errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config") {
		logger.Debug("no configuration file, using defaults", zap.String("path", cfgFile))
		return runner.DefaultConfig(), nil
	}
	return config, err
}

// newEngine builds an engine from the configuration and applies the
// rule and step overrides given on the command line.
func newEngine(cmd *cobra.Command, rule string, steps int) (*internal.Engine, error) {
	config, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	engine, err := runner.NewWithConfig(config, logger)
	if err != nil {
		return nil, err
	}

	if rule != "" {
		if err := engine.SelectRule(rule); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("steps") {
		if steps <= 0 {
			return nil, fmt.Errorf("--steps must be positive, got %d", steps)
		}
		engine.SetSteps(steps)
	}

	return engine, nil
}
