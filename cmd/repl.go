package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/gym/formatter"
	"github.com/gnolang/gym/internal/trie"
	"github.com/gnolang/gym/rewrite"
)

const (
	historyFile = ".gym_history"
	promptMain  = "gym> "
	promptCont  = "...  "
)

const replHelp = `Enter an expression to rewrite it with the current rule, or a rule
such as swap(pair(a, b)) => pair(b, a) to make it current.
An empty line rewrites the previous result again.

  :rule TEXT   make TEXT the current rule
  :use NAME    make a configured rule current
  :rules       list configured rules
  :steps N     apply the rule up to N times per input
  :help        show this help
  :quit        leave
`

var replCommands = []string{":rule", ":use", ":rules", ":steps", ":help", ":quit", ":exit"}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Rewrite expressions interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		library, err := rewrite.NewLibrary(config.Rules)
		if err != nil {
			return fmt.Errorf("error loading rules: %w", err)
		}
		return runREPL(newReplSession(library, config.Steps, cmd.OutOrStdout()))
	},
}

// replSession holds the state of one interactive session.
type replSession struct {
	library *rewrite.Library
	rule    *rewrite.Rule
	steps   int
	last    rewrite.Expr // result of the previous rewrite
	words   *trie.Trie
	out     io.Writer
}

func newReplSession(library *rewrite.Library, steps int, out io.Writer) *replSession {
	if steps <= 0 {
		steps = 1
	}
	s := &replSession{
		library: library,
		steps:   steps,
		words:   trie.New(),
		out:     out,
	}
	for _, c := range replCommands {
		s.words.Insert(c)
	}
	for _, name := range library.Names() {
		s.words.Insert(name)
		rule, _ := library.Lookup(name)
		s.learn(rule)
	}
	if names := library.Names(); len(names) == 1 {
		s.rule, _ = library.Lookup(names[0])
	}
	return s
}

// learn records the names used in e for completion.
func (s *replSession) learn(e rewrite.Expr) {
	switch e := e.(type) {
	case rewrite.Symbol:
		s.words.Insert(string(e))
	case *rewrite.NamedExpr:
		s.words.Insert(e.Name)
		for _, arg := range e.Args {
			s.learn(arg)
		}
	case *rewrite.Rule:
		s.words.Insert(e.Name)
		s.learn(e.Head)
		s.learn(e.Body)
	}
}

// complete returns full-line completions for the word under the cursor
// at the end of line.
func (s *replSession) complete(line string) []string {
	start := 0
	if i := strings.LastIndexFunc(line, func(r rune) bool {
		return !unicode.IsLetter(r) && r != ':'
	}); i >= 0 {
		_, size := utf8.DecodeRuneInString(line[i:])
		start = i + size
	}
	head, prefix := line[:start], line[start:]
	if prefix == "" {
		return nil
	}

	var out []string
	for _, word := range s.words.Complete(prefix) {
		out = append(out, head+word)
	}
	return out
}

// handle processes one input line. It reports whether the session ends.
func (s *replSession) handle(line string) bool {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, ":") {
		return s.command(trimmed)
	}

	if trimmed == "" {
		if s.last != nil {
			s.rewrite(s.last)
		}
		return false
	}

	expr, err := rewrite.Parse(line)
	if err != nil {
		fmt.Fprint(s.out, formatter.FormatError(line, err))
		return false
	}
	s.learn(expr)

	if rule, ok := expr.(*rewrite.Rule); ok {
		s.setRule(rule)
		return false
	}
	s.rewrite(expr)
	return false
}

func (s *replSession) command(line string) bool {
	fields := strings.Fields(line)
	arg := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))

	switch strings.ToLower(fields[0]) {
	case ":quit", ":exit":
		return true

	case ":help":
		fmt.Fprint(s.out, replHelp)

	case ":rule":
		if arg == "" {
			if s.rule == nil {
				fmt.Fprintln(s.out, "no rule in effect")
			} else {
				fmt.Fprintln(s.out, s.rule)
			}
			return false
		}
		expr, err := rewrite.Parse(arg)
		if err != nil {
			fmt.Fprint(s.out, formatter.FormatError(arg, err))
			return false
		}
		rule, ok := expr.(*rewrite.Rule)
		if !ok {
			fmt.Fprintf(s.out, "%s is not a rule\n", expr)
			return false
		}
		s.learn(rule)
		s.setRule(rule)

	case ":use":
		rule, ok := s.library.Lookup(arg)
		if !ok {
			fmt.Fprintf(s.out, "unknown rule %q (known: %s)\n", arg, strings.Join(s.library.Names(), ", "))
			return false
		}
		s.setRule(rule)

	case ":rules":
		if s.library.Len() == 0 {
			fmt.Fprintln(s.out, "no configured rules")
			return false
		}
		for _, name := range s.library.Names() {
			rule, _ := s.library.Lookup(name)
			marker := " "
			if s.rule == rule {
				marker = "*"
			}
			fmt.Fprintf(s.out, "%s %s\n", marker, rule)
		}

	case ":steps":
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			fmt.Fprintln(s.out, "usage: :steps N (N > 0)")
			return false
		}
		s.steps = n

	default:
		fmt.Fprintln(s.out, "unknown command. Type :help for help.")
	}
	return false
}

func (s *replSession) setRule(rule *rewrite.Rule) {
	s.rule = rule
	s.last = nil
	fmt.Fprintf(s.out, "rule %s: %s\n", rule.Name, rule)
	if unbound := rule.UnboundSymbols(); len(unbound) > 0 {
		fmt.Fprintf(s.out, "%srule %s uses symbols not bound by its head: %s\n",
			warningStyle.Sprint("warning: "), rule.Name, strings.Join(unbound, ", "))
	}
}

func (s *replSession) rewrite(expr rewrite.Expr) {
	if s.rule == nil {
		fmt.Fprintln(s.out, "no rule in effect; enter a rule or use :use NAME")
		return
	}

	trace, err := rewrite.Iterate(s.rule, expr, s.steps)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	if trace.Applied() == 0 {
		fmt.Fprintf(s.out, "%s does not match rule %s\n", expr, s.rule.Name)
		return
	}

	for _, step := range trace.Strings()[1:] {
		fmt.Fprintf(s.out, "=> %s\n", step)
	}
	s.last = trace.Result()
}

// incomplete reports whether err means the input stopped before the
// expression was closed.
func incomplete(err error) bool {
	var parseErr *rewrite.ParseError
	if !errors.As(err, &parseErr) {
		return false
	}
	return strings.HasPrefix(parseErr.Msg, "unbalanced '('") ||
		strings.HasPrefix(parseErr.Msg, "unexpected end of input") ||
		strings.HasSuffix(parseErr.Msg, "has no body")
}

func runREPL(s *replSession) error {
	fmt.Fprintln(s.out, "gym repl, :help for help, Ctrl+D to quit")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(s.complete)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := readExpression(ln)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(s.out)
			break
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(strings.ReplaceAll(line, "\n", " "))
		}
		if s.handle(line) {
			break
		}
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	} else {
		logger.Debug("could not save history", zap.Error(err))
	}
	return nil
}

// readExpression reads lines until they form a complete expression or
// a definite error. Ctrl+C drops the pending input and returns
// liner.ErrPromptAborted.
func readExpression(ln *liner.State) (string, error) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if err != nil {
			return "", err
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, nil
		}
		if _, err := rewrite.Parse(src); err != nil && incomplete(err) {
			continue
		}
		return src, nil
	}
}
