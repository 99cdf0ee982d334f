package rewrite

import "fmt"

// TokenType defines the type of a token
type TokenType int

const (
	TokenEOF        TokenType = iota
	TokenWord                 // run of letters
	TokenLeftParen            // '('
	TokenRightParen           // ')'
	TokenComma                // ','
	TokenArrow                // "=>"
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenWord:
		return "Word"
	case TokenLeftParen:
		return "LeftParen"
	case TokenRightParen:
		return "RightParen"
	case TokenComma:
		return "Comma"
	case TokenArrow:
		return "Arrow"
	default:
		return "Unknown"
	}
}

// Token represents a lexical token.
type Token struct {
	Type  TokenType
	Value string
	Pos   int // byte offset in the input
	Line  int
	Col   int
}

func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Value)
}

// describe is used in parse error messages.
func (t Token) describe() string {
	if t.Type == TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Value)
}
