package rewrite

import (
	"unicode"
	"unicode/utf8"
)

// Lex performs lexical analysis on the input string
// and returns a sequence of tokens terminated by TokenEOF.
//
// Any character that is not whitespace, a letter, '(', ')', ',' or the
// start of "=>" is rejected with a *LexError.
func Lex(input string) ([]Token, error) {
	var tokens []Token

	line, col := 1, 1
	i := 0

	emit := func(typ TokenType, start, end, startCol int) {
		tokens = append(tokens, Token{
			Type:  typ,
			Value: input[start:end],
			Pos:   start,
			Line:  line,
			Col:   startCol,
		})
	}

	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])

		switch {
		case r == '\n':
			line++
			col = 1
			i += size

		case unicode.IsSpace(r):
			col++
			i += size

		case unicode.IsLetter(r):
			start, startCol := i, col
			for i < len(input) {
				r, size = utf8.DecodeRuneInString(input[i:])
				if !unicode.IsLetter(r) {
					break
				}
				i += size
				col++
			}
			emit(TokenWord, start, i, startCol)

		case r == '(':
			emit(TokenLeftParen, i, i+1, col)
			i++
			col++

		case r == ')':
			emit(TokenRightParen, i, i+1, col)
			i++
			col++

		case r == ',':
			emit(TokenComma, i, i+1, col)
			i++
			col++

		case r == '=' && i+1 < len(input) && input[i+1] == '>':
			emit(TokenArrow, i, i+2, col)
			i += 2
			col += 2

		default:
			return nil, &LexError{Char: r, Pos: i, Line: line, Col: col}
		}
	}

	tokens = append(tokens, Token{
		Type: TokenEOF,
		Pos:  len(input),
		Line: line,
		Col:  col,
	})

	return tokens, nil
}
