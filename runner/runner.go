// Package runner is the entry point for processing .gym files: it builds
// an engine from a configuration and fans input paths out to it.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/gnolang/gym/internal"
	tt "github.com/gnolang/gym/internal/types"
	"github.com/gnolang/gym/rewrite"
	"github.com/gnolang/gym/scanner"
)

type RewriteEngine interface {
	Run(filePath string) ([]tt.Result, error)
	RunSource(source []byte) ([]tt.Result, error)
	SelectRule(name string) error
}

// New builds an engine from the configuration file at configPath. An
// empty path means the default configuration.
func New(configPath string, logger *zap.Logger) (*internal.Engine, error) {
	config := DefaultConfig()
	if configPath != "" {
		var err error
		config, err = LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
	}
	return NewWithConfig(config, logger)
}

// NewWithConfig builds an engine from an already loaded configuration.
func NewWithConfig(config Config, logger *zap.Logger) (*internal.Engine, error) {
	library, err := rewrite.NewLibrary(config.Rules)
	if err != nil {
		return nil, fmt.Errorf("error loading rules: %w", err)
	}
	return internal.NewEngine(library, config.Steps, logger)
}

func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine RewriteEngine,
	sources [][]byte,
	processor func(RewriteEngine, []byte) ([]tt.Result, error),
) ([]tt.Result, error) {
	var allResults []tt.Result
	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			return allResults, err
		}
		results, err := processor(engine, source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allResults = append(allResults, results...)
	}

	return allResults, nil
}

func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine RewriteEngine,
	paths []string,
	processor func(RewriteEngine, string) ([]tt.Result, error),
) ([]tt.Result, error) {
	var allResults []tt.Result
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return append(allResults, results...), err
		}
		allResults = append(allResults, results...)
	}

	return allResults, nil
}

// ProcessPath processes a single file, or every .gym file below a
// directory using one worker per CPU. Results come back ordered by file
// and line. Files that fail to process are logged and reported through
// the returned error; the results of the other files are still returned.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine RewriteEngine,
	path string,
	processor func(RewriteEngine, string) ([]tt.Result, error),
) ([]tt.Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		return processor(engine, path)
	}

	files, err := scanner.New(path).Paths()
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", path, err)
	}
	logger.Debug("scanned directory", zap.String("path", path), zap.Int("files", len(files)))

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = []tt.Result{}
		errs    []error
	)

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	var cancelled error
loop:
	for _, filePath := range files {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break loop
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(fp string) {
			defer wg.Done()
			defer func() { <-sem }()

			fileResults, err := processor(engine, fp)

			mu.Lock()
			if err != nil {
				logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				errs = append(errs, err)
			} else {
				results = append(results, fileResults...)
			}
			mu.Unlock()

			_ = bar.Add(1)
		}(filePath)
	}

	wg.Wait()
	_ = bar.Finish()

	sortResults(results)

	if cancelled != nil {
		return results, cancelled
	}
	return results, errors.Join(errs...)
}

func ProcessFile(engine RewriteEngine, filePath string) ([]tt.Result, error) {
	return engine.Run(filePath)
}

func ProcessSource(engine RewriteEngine, source []byte) ([]tt.Result, error) {
	return engine.RunSource(source)
}

func sortResults(results []tt.Result) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Filename != results[j].Filename {
			return results[i].Filename < results[j].Filename
		}
		return results[i].Line < results[j].Line
	})
}
