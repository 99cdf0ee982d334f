package rewrite

import "fmt"

// LexError reports a character the lexer does not recognize.
type LexError struct {
	Char rune
	Pos  int
	Line int
	Col  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d col %d: unexpected character %q", e.Line, e.Col, e.Char)
}

// ParseError reports malformed token sequences. No partial tree is ever
// returned alongside it.
type ParseError struct {
	Msg  string
	Pos  int
	Line int
	Col  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d col %d: %s", e.Line, e.Col, e.Msg)
}

func newParseError(tok Token, format string, args ...any) *ParseError {
	return &ParseError{
		Msg:  fmt.Sprintf(format, args...),
		Pos:  tok.Pos,
		Line: tok.Line,
		Col:  tok.Col,
	}
}

// UnsupportedConstructError is returned when substitution meets a rule
// inside a template.
type UnsupportedConstructError struct {
	Construct string
	Expr      Expr
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("cannot substitute into %s %s", e.Construct, e.Expr)
}
