package rewrite

// Parser consumes the tokens produced by Lex and builds a single Expr.
//
// Grammar:
//
//	expr    := WORD ( '(' arglist ')' )?
//	arglist := expr (',' expr)*
//	top     := expr ('=>' expr)?
//
// A top-level WORD '(' ... ')' group is a rule head only when the token
// after its matching ')' is '=>'.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a new Parser instance. A missing trailing EOF token
// is supplied.
func NewParser(tokens []Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != TokenEOF {
		eof := Token{Type: TokenEOF, Line: 1, Col: 1}
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1]
			eof.Pos = last.Pos + len(last.Value)
			eof.Line = last.Line
			eof.Col = last.Col + len(last.Value)
		}
		tokens = append(append([]Token(nil), tokens...), eof)
	}
	return &Parser{tokens: tokens}
}

// Parse lexes and parses text into one expression.
func Parse(text string) (Expr, error) {
	tokens, err := Lex(text)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Parse()
}

// MustParse is like Parse but panics on error. Intended for tests and
// static rule tables.
func MustParse(text string) Expr {
	e, err := Parse(text)
	if err != nil {
		panic("rewrite: MustParse(" + text + "): " + err.Error())
	}
	return e
}

// Parse processes all tokens and returns the top-level expression.
// All input must be consumed.
func (p *Parser) Parse() (Expr, error) {
	if p.peek().Type == TokenEOF {
		return nil, newParseError(p.peek(), "empty input")
	}

	var (
		expr Expr
		err  error
	)
	isRule := p.isRuleHead()
	if isRule {
		expr, err = p.parseRule()
	} else {
		expr, err = p.parseExpr()
	}
	if err != nil {
		return nil, err
	}

	switch tok := p.peek(); tok.Type {
	case TokenEOF:
		return expr, nil
	case TokenArrow:
		if isRule {
			return nil, newParseError(tok, "unexpected '=>' after rule body")
		}
		return nil, newParseError(tok, "unexpected '=>': a rule head must have the form name(pattern)")
	case TokenRightParen:
		return nil, newParseError(tok, "unbalanced ')'")
	default:
		return nil, newParseError(tok, "unexpected %s after complete expression", tok.describe())
	}
}

// isRuleHead scans forward from the cursor, tracking parenthesis depth,
// to the ')' matching the '(' after the current word and reports
// whether the token after it is an arrow. The cursor does not move.
func (p *Parser) isRuleHead() bool {
	if p.peek().Type != TokenWord || p.peekAt(1).Type != TokenLeftParen {
		return false
	}

	depth := 0
	for i := p.current + 1; i < len(p.tokens); i++ {
		switch p.tokens[i].Type {
		case TokenLeftParen:
			depth++
		case TokenRightParen:
			depth--
			if depth == 0 {
				return i+1 < len(p.tokens) && p.tokens[i+1].Type == TokenArrow
			}
		case TokenEOF:
			return false
		}
	}
	return false
}

// parseRule parses name '(' pattern ')' '=>' expr.
func (p *Parser) parseRule() (Expr, error) {
	nameTok := p.advance()
	open := p.advance() // '(' guaranteed by isRuleHead

	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	if err := p.expectClose(open); err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, newParseError(nameTok, "rule %q must have exactly one head pattern, found %d", nameTok.Value, len(args))
	}

	if tok := p.peek(); tok.Type != TokenArrow {
		return nil, newParseError(tok, "expected '=>' after rule head, found %s", tok.describe())
	}
	p.advance()

	if p.peek().Type == TokenEOF {
		return nil, newParseError(p.peek(), "rule %q has no body", nameTok.Value)
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &Rule{Name: nameTok.Value, Head: args[0], Body: body}, nil
}

// parseExpr parses WORD ( '(' arglist ')' )?.
func (p *Parser) parseExpr() (Expr, error) {
	tok := p.peek()

	switch tok.Type {
	case TokenWord:
		p.advance()
		if p.peek().Type != TokenLeftParen {
			return Symbol(tok.Value), nil
		}
		open := p.advance()
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		if err := p.expectClose(open); err != nil {
			return nil, err
		}
		return &NamedExpr{Name: tok.Value, Args: args}, nil
	case TokenEOF:
		return nil, newParseError(tok, "unexpected end of input, expected a name")
	case TokenRightParen:
		return nil, newParseError(tok, "unbalanced ')'")
	case TokenArrow:
		return nil, newParseError(tok, "unexpected '=>'")
	case TokenLeftParen:
		return nil, newParseError(tok, "expected a name before '('")
	default:
		return nil, newParseError(tok, "unexpected %s, expected a name", tok.describe())
	}
}

// parseArgList parses expr (',' expr)* and stops before the closing ')'.
func (p *Parser) parseArgList() ([]Expr, error) {
	var args []Expr
	for {
		if tok := p.peek(); tok.Type == TokenComma || tok.Type == TokenRightParen {
			return nil, newParseError(tok, "empty argument")
		}

		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.peek().Type != TokenComma {
			return args, nil
		}
		p.advance()
	}
}

// expectClose consumes the ')' matching open.
func (p *Parser) expectClose(open Token) error {
	switch tok := p.peek(); tok.Type {
	case TokenRightParen:
		p.advance()
		return nil
	case TokenEOF:
		return newParseError(open, "unbalanced '(': missing ')'")
	case TokenArrow:
		return newParseError(tok, "unexpected '=>' inside argument list")
	default:
		return newParseError(tok, "expected ',' or ')', found %s", tok.describe())
	}
}

func (p *Parser) peek() Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(offset int) Token {
	i := p.current + offset
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.current < len(p.tokens)-1 {
		p.current++
	}
	return tok
}
