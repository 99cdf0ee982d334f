package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/gnolang/gym/internal/types"
	"github.com/gnolang/gym/rewrite"
)

// DefaultSteps is how many times a rule is applied to each input when
// the configuration does not say otherwise.
const DefaultSteps = 1

// Engine rewrites the expressions of .gym input files.
//
// Each non-blank line that does not start with '#' is one expression.
// A line holding a rule makes that rule current for the rest of the
// file; every other line is rewritten with the current rule.
type Engine struct {
	library *rewrite.Library
	rule    *rewrite.Rule // rule in effect at the top of every file
	steps   int
	logger  *zap.Logger
	cache   *Cache

	watcher   *fsnotify.Watcher
	watchDirs []string
	stopWatch chan struct{}
}

// NewEngine creates a new rewrite engine.
func NewEngine(library *rewrite.Library, steps int, logger *zap.Logger) (*Engine, error) {
	if steps < 0 {
		return nil, fmt.Errorf("steps must not be negative, got %d", steps)
	}
	if steps == 0 {
		steps = DefaultSteps
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if library == nil {
		library = &rewrite.Library{}
	}

	engine := &Engine{
		library: library,
		steps:   steps,
		logger:  logger,
	}

	// A single-rule library needs no selection.
	if names := library.Names(); len(names) == 1 {
		engine.rule, _ = library.Lookup(names[0])
	}

	return engine, nil
}

// Library returns the rules known to the engine.
func (e *Engine) Library() *rewrite.Library {
	return e.library
}

// SelectRule makes the named library rule the default for every file.
func (e *Engine) SelectRule(name string) error {
	rule, ok := e.library.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown rule %q (known: %s)", name, strings.Join(e.library.Names(), ", "))
	}
	e.rule = rule
	return nil
}

// Rule returns the default rule, or nil.
func (e *Engine) Rule() *rewrite.Rule {
	return e.rule
}

// SetSteps changes how many times a rule is applied to each input.
func (e *Engine) SetSteps(steps int) {
	if steps > 0 {
		e.steps = steps
	}
}

// Steps returns how many times a rule is applied to each input.
func (e *Engine) Steps() int {
	return e.steps
}

// SetCache makes Run reuse results of unchanged files.
func (e *Engine) SetCache(cache *Cache) {
	e.cache = cache
}

// fingerprint identifies the settings a cached result was produced with.
func (e *Engine) fingerprint() string {
	name := ""
	if e.rule != nil {
		name = e.rule.String()
	}
	return fmt.Sprintf("%s|%d", name, e.steps)
}

// Run processes the given file and returns one Result per input line.
func (e *Engine) Run(filename string) ([]tt.Result, error) {
	fingerprint := e.fingerprint()
	if e.cache != nil {
		if results, ok := e.cache.Get(filename, fingerprint); ok {
			e.logger.Debug("cache hit", zap.String("file", filename))
			return results, nil
		}
	}

	source, err := readFile(filename)
	if err != nil {
		return nil, err
	}

	results := e.process(filename, source)

	if e.cache != nil {
		if err := e.cache.Set(filename, fingerprint, results); err != nil {
			e.logger.Warn("failed to cache results", zap.String("file", filename), zap.Error(err))
		}
	}

	return results, nil
}

// RunSource processes source as if it were the content of an unnamed file.
func (e *Engine) RunSource(source []byte) ([]tt.Result, error) {
	return e.process("", string(source)), nil
}

func (e *Engine) process(filename, source string) []tt.Result {
	var results []tt.Result
	current := e.rule

	for i, line := range strings.Split(source, "\n") {
		lineNo := i + 1
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		line = strings.TrimRight(line, "\r")

		expr, err := rewrite.Parse(line)
		if err != nil {
			msg, col := diagnostic(err)
			results = append(results, tt.Result{
				Filename: filename,
				Line:     lineNo,
				Column:   col,
				Status:   tt.StatusError,
				Input:    line,
				Error:    msg,
			})
			continue
		}

		if rule, ok := expr.(*rewrite.Rule); ok {
			current = rule
			if unbound := rule.UnboundSymbols(); len(unbound) > 0 {
				e.logger.Warn("rule body uses symbols not bound by its head",
					zap.String("file", filename),
					zap.Int("line", lineNo),
					zap.String("rule", rule.Name),
					zap.Strings("symbols", unbound))
			}
			e.logger.Debug("rule defined",
				zap.String("file", filename),
				zap.Int("line", lineNo),
				zap.String("rule", rule.String()))
			continue
		}

		results = append(results, e.rewriteLine(filename, lineNo, current, expr))
	}

	return results
}

func (e *Engine) rewriteLine(filename string, lineNo int, rule *rewrite.Rule, expr rewrite.Expr) tt.Result {
	result := tt.Result{
		Filename: filename,
		Line:     lineNo,
		Input:    expr.String(),
	}

	if rule == nil {
		result.Status = tt.StatusError
		result.Error = "no rule in effect; define one in the file or select one with --rule"
		return result
	}
	result.Rule = rule.Name

	trace, err := rewrite.Iterate(rule, expr, e.steps)
	if err != nil {
		result.Status = tt.StatusError
		result.Error = err.Error()
		return result
	}

	e.logger.Debug("rewrite",
		zap.String("file", filename),
		zap.Int("line", lineNo),
		zap.String("rule", rule.Name),
		zap.Strings("trace", trace.Strings()))

	if trace.Applied() == 0 {
		result.Status = tt.StatusNoMatch
		return result
	}

	result.Status = tt.StatusRewritten
	result.Output = trace.Result().String()
	result.Trace = trace.Strings()[1:]
	return result
}

// diagnostic extracts a message without location prefix and the 1-based
// column from lexer and parser errors.
func diagnostic(err error) (string, int) {
	var lexErr *rewrite.LexError
	if errors.As(err, &lexErr) {
		return fmt.Sprintf("unexpected character %q", lexErr.Char), lexErr.Col
	}
	var parseErr *rewrite.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Msg, parseErr.Col
	}
	return err.Error(), 0
}

func readFile(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("error reading file: %w", err)
	}
	return string(data), nil
}
