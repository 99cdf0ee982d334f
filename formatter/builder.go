package formatter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	tt "github.com/gnolang/gym/internal/types"
	"github.com/gnolang/gym/rewrite"
)

const tabWidth = 8

// diagnostic kinds
const (
	ParseError   = "parse-error"
	RewriteError = "rewrite-error"
	NoMatch      = "no-match"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	successStyle = color.New(color.FgGreen, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
	stepStyle    = color.New(color.FgGreen)
)

// resultFormatter is implemented by the per-status renderers.
type resultFormatter interface {
	ResultTemplate() string
}

func getResultFormatter(status tt.Status) resultFormatter {
	switch status {
	case tt.StatusRewritten:
		return &RewrittenFormatter{}
	case tt.StatusNoMatch:
		return &NoMatchFormatter{}
	default:
		return &ErrorFormatter{}
	}
}

// FormatResults renders results in file order.
func FormatResults(results []tt.Result) string {
	var builder strings.Builder
	for _, result := range results {
		builder.WriteString(buildResult(result, getResultFormatter(result.Status)))
	}
	return builder.String()
}

// FormatError renders a lexer or parser error against the source it came
// from. Other errors are rendered as a plain message.
func FormatError(source string, err error) string {
	var (
		line, col int
		msg       string
	)

	var lexErr *rewrite.LexError
	var parseErr *rewrite.ParseError
	switch {
	case errors.As(err, &lexErr):
		line, col = lexErr.Line, lexErr.Col
		msg = fmt.Sprintf("unexpected character %q", lexErr.Char)
	case errors.As(err, &parseErr):
		line, col = parseErr.Line, parseErr.Col
		msg = parseErr.Msg
	default:
		return errorStyle.Sprint("error: ") + messageStyle.Sprintf("%s\n", err)
	}

	lines := strings.Split(source, "\n")
	input := ""
	if line >= 1 && line <= len(lines) {
		input = strings.TrimRight(lines[line-1], "\r")
	}

	return buildResult(tt.Result{
		Line:   line,
		Column: col,
		Status: tt.StatusError,
		Input:  input,
		Error:  msg,
	}, &ErrorFormatter{})
}

// Summary counts results per status, e.g. "2 rewritten, 1 no-match, 0 errors".
func Summary(results []tt.Result) string {
	var rewritten, noMatch, failed int
	for _, r := range results {
		switch r.Status {
		case tt.StatusRewritten:
			rewritten++
		case tt.StatusNoMatch:
			noMatch++
		default:
			failed++
		}
	}
	return fmt.Sprintf("%d rewritten, %d no-match, %d errors", rewritten, noMatch, failed)
}

/***** Result Formatter Builder *****/

type ResultData struct {
	Kind            string
	Status          string
	Rule            string
	Filename        string
	Line            int
	Column          int
	MaxLineNumWidth int
	Padding         string
	Input           string
	Output          string
	Trace           []string
	Message         string
}

func buildResult(result tt.Result, formatter resultFormatter) string {
	maxLineNumWidth := calculateMaxLineNumWidth(result.Line)

	data := ResultData{
		Kind:            kindOf(result),
		Status:          result.Status.String(),
		Rule:            result.Rule,
		Filename:        displayName(result.Filename),
		Line:            result.Line,
		Column:          result.Column,
		MaxLineNumWidth: maxLineNumWidth,
		Padding:         strings.Repeat(" ", maxLineNumWidth+1),
		Input:           result.Input,
		Output:          result.Output,
		Trace:           result.Trace,
		Message:         result.Error,
	}

	funcMap := template.FuncMap{
		"header":  header,
		"snippet": snippet,
		"caret":   caret,
		"steps":   steps,
		"message": message,
	}

	tmpl := template.Must(template.New("result").Funcs(funcMap).Parse(formatter.ResultTemplate()))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting result: %v", err)
	}
	return buf.String()
}

func kindOf(result tt.Result) string {
	switch result.Status {
	case tt.StatusRewritten:
		return result.Rule
	case tt.StatusNoMatch:
		return NoMatch
	}
	if result.Column > 0 {
		return ParseError
	}
	return RewriteError
}

func displayName(filename string) string {
	if filename == "" {
		return "<input>"
	}
	return filename
}

// utils functions used in the text templates

func header(kind string, status string, maxLineNumWidth int, filename string, line int, column int) string {
	var endString string
	switch status {
	case "rewritten":
		endString = successStyle.Sprint("rewrite: ")
	case "no-match":
		endString = warningStyle.Sprint("warning: ")
	default:
		endString = errorStyle.Sprint("error: ")
	}

	endString += ruleStyle.Sprintf("%s\n", kind)

	padding := strings.Repeat(" ", maxLineNumWidth)
	endString += lineStyle.Sprintf("%s--> ", padding)
	if column > 0 {
		endString += fileStyle.Sprintf("%s:%d:%d", filename, line, column)
	} else {
		endString += fileStyle.Sprintf("%s:%d", filename, line)
	}

	return endString
}

func snippet(input string, line int, maxLineNumWidth int, padding string) string {
	endString := lineStyle.Sprintf("%s|\n", padding)
	lineNum := fmt.Sprintf("%*d", maxLineNumWidth, line)
	endString += lineStyle.Sprintf("%s | ", lineNum)
	endString += expandTabs(input) + "\n"
	return endString
}

func caret(input string, column int, padding string) string {
	if column <= 0 {
		return ""
	}
	endString := lineStyle.Sprintf("%s| ", padding)
	endString += strings.Repeat(" ", calculateVisualColumn(input, column))
	endString += messageStyle.Sprint("^") + "\n"
	return endString
}

func steps(trace []string, padding string) string {
	var endString string
	for _, step := range trace {
		endString += lineStyle.Sprintf("%s= ", padding)
		endString += stepStyle.Sprintf("%s\n", step)
	}
	return endString
}

func message(msg string, padding string) string {
	return lineStyle.Sprintf("%s= ", padding) + messageStyle.Sprintf("%s\n", msg)
}

func calculateMaxLineNumWidth(line int) int {
	return len(fmt.Sprintf("%d", line))
}

func expandTabs(line string) string {
	var expanded strings.Builder
	column := 0
	for _, ch := range line {
		if ch == '\t' {
			spaceCount := tabWidth - (column % tabWidth)
			expanded.WriteString(strings.Repeat(" ", spaceCount))
			column += spaceCount
		} else {
			expanded.WriteRune(ch)
			column++
		}
	}
	return expanded.String()
}

// calculateVisualColumn returns how many cells precede the 1-based rune
// column in line, taking tab stops into account.
func calculateVisualColumn(line string, column int) int {
	visualColumn := 0
	runeCol := 1
	for _, ch := range line {
		if runeCol == column {
			break
		}
		if ch == '\t' {
			visualColumn += tabWidth - (visualColumn % tabWidth)
		} else {
			visualColumn++
		}
		runeCol++
	}
	return visualColumn
}
