package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/gym/formatter"
	"github.com/gnolang/gym/internal"
	tt "github.com/gnolang/gym/internal/types"
	"github.com/gnolang/gym/runner"
)

var (
	runRule       string
	runSteps      int
	runJsonOutput bool
	outPath       string
	cacheDir      string
)

var runCmd = &cobra.Command{
	Use:   "run [paths...]",
	Short: "Rewrite every expression of the given .gym files",
	Long: `Rewrite every expression of the given .gym files.
Directories are searched recursively. Each line of a file is one
expression; a line holding a rule makes it current for the lines below.
Exits with status 1 if any line fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		engine, err := newEngine(cmd, runRule, runSteps)
		if err != nil {
			logger.Error("Failed to initialize rewrite engine", zap.Error(err))
			return err
		}

		if cacheDir != "" {
			cache, err := newCache(cacheDir)
			if err != nil {
				logger.Error("Failed to open cache", zap.Error(err))
				return err
			}
			engine.SetCache(cache)
		}

		return runRewriteProcess(ctx, cmd.OutOrStdout(), engine, args, runJsonOutput, outPath)
	},
}

func init() {
	runCmd.Flags().StringVar(&runRule, "rule", "", "Name of the configured rule to apply")
	runCmd.Flags().IntVar(&runSteps, "steps", internal.DefaultSteps, "Maximum number of times the rule is applied to each line")
	runCmd.Flags().BoolVar(&runJsonOutput, "json", false, "Output results in JSON format")
	runCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	runCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Reuse results of unchanged files stored in this directory")
}

// newCache opens the result cache, invalidated when the configuration
// file changes.
func newCache(dir string) (*internal.Cache, error) {
	var deps []string
	if _, err := os.Stat(cfgFile); err == nil {
		deps = append(deps, cfgFile)
	}
	return internal.NewCache(dir, deps...)
}

func runRewriteProcess(ctx context.Context, out io.Writer, engine runner.RewriteEngine, paths []string, isJson bool, jsonOutput string) error {
	results, err := runner.ProcessFiles(ctx, logger, engine, paths, runner.ProcessFile)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		return err
	}

	if err := printResults(out, results, isJson, jsonOutput); err != nil {
		logger.Error("Error writing results", zap.Error(err))
		return err
	}

	for _, r := range results {
		if r.Failed() {
			return errFailed
		}
	}
	return nil
}

func printResults(out io.Writer, results []tt.Result, isJson bool, jsonOutput string) error {
	if !isJson {
		fmt.Fprint(out, formatter.FormatResults(results))
		fmt.Fprintln(out, formatter.Summary(results))
		return nil
	}

	if results == nil {
		results = []tt.Result{}
	}
	d, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling results to JSON: %w", err)
	}

	if jsonOutput == "" {
		fmt.Fprintln(out, string(d))
		return nil
	}
	return os.WriteFile(jsonOutput, d, 0o644)
}
