package boolexpr

// binaryLevels holds one grammar rule per binary precedence rank, loosest
// first. Unary NOT and primaries sit below the last level.
var binaryLevels = []Operator{EQUIV, IMPLIES, XOR, OR, AND}

type parser struct {
	tokens []Token
	pos    int
}

// Parse builds an expression tree from tokens produced by Tokenize.
func Parse(tokens []Token) (*Node, error) {
	p := &parser{tokens: tokens}
	if p.peek().Kind == TokenEOF {
		return nil, newSyntaxError(p.peek().Pos, "empty expression")
	}

	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	t := p.peek()
	switch {
	case t.Kind == TokenEOF:
		return root, nil
	case t.Kind == TokenRParen:
		return nil, newSyntaxError(t.Pos, "unbalanced parentheses: unexpected ')'")
	default:
		return nil, p.missingOperator(t)
	}
}

func (p *parser) peek() Token {
	if p.pos >= len(p.tokens) {
		end := 0
		if len(p.tokens) > 0 {
			end = p.tokens[len(p.tokens)-1].Pos + len(p.tokens[len(p.tokens)-1].Text)
		}
		return Token{Kind: TokenEOF, Pos: end}
	}
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *parser) parseExpr() (*Node, error) {
	return p.parseLevel(0)
}

func (p *parser) parseLevel(level int) (*Node, error) {
	if level == len(binaryLevels) {
		return p.parseUnary()
	}
	op := binaryLevels[level]

	left, err := p.parseLevel(level + 1)
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.Kind != TokenOperator || t.Operator != op {
			return left, nil
		}
		p.next()
		right, err := p.parseLevel(level + 1)
		if err != nil {
			return nil, err
		}
		left = Binary(op, left, right)
	}
}

func (p *parser) parseUnary() (*Node, error) {
	t := p.peek()
	if t.Kind == TokenOperator && t.Operator == NOT {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not(operand), nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (*Node, error) {
	t := p.next()
	switch t.Kind {
	case TokenVariable:
		return Variable(t.Text), nil
	case TokenLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closing := p.next()
		switch closing.Kind {
		case TokenRParen:
			return inner, nil
		case TokenEOF:
			return nil, newSyntaxError(closing.Pos, "unbalanced parentheses: '(' at position %d is never closed", t.Pos)
		default:
			return nil, p.missingOperator(closing)
		}
	case TokenRParen:
		return nil, newSyntaxError(t.Pos, "missing operand before ')'")
	case TokenOperator:
		return nil, newSyntaxError(t.Pos, "missing operand before operator %s", t)
	default:
		return nil, newSyntaxError(t.Pos, "missing operand at end of expression")
	}
}

func (p *parser) missingOperator(t Token) error {
	return newSyntaxError(t.Pos, "missing operator before %s", t)
}
