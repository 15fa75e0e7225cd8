package boolexpr

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

type TokenKind int

const (
	TokenVariable TokenKind = iota
	TokenOperator
	TokenLParen
	TokenRParen
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenVariable:
		return "VARIABLE"
	case TokenOperator:
		return "OPERATOR"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	case TokenEOF:
		return "EOF"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is one lexical unit of an expression. Operator is only meaningful
// for TokenOperator.
type Token struct {
	Kind     TokenKind
	Text     string
	Pos      int
	Operator Operator
}

func (t Token) String() string {
	if t.Kind == TokenEOF {
		return "end of expression"
	}
	return fmt.Sprintf("%q", t.Text)
}

type lexer struct {
	input  string
	pos    int
	lex    *Lexicon
	folder cases.Caser
	tokens []Token
}

// Tokenize splits expression into tokens, resolving every connective through
// lex. The returned slice always ends with a TokenEOF token.
func Tokenize(expression string, lex *Lexicon) ([]Token, error) {
	if lex == nil {
		lex = DefaultLexicon
	}
	l := &lexer{
		input:  expression,
		lex:    lex,
		folder: cases.Fold(),
	}

	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		switch {
		case unicode.IsSpace(r):
			l.pos += size
		case r == '(':
			l.emit(TokenLParen, l.pos, l.pos+size, VARIABLE)
		case r == ')':
			l.emit(TokenRParen, l.pos, l.pos+size, VARIABLE)
		case isWordRune(r):
			if err := l.word(); err != nil {
				return nil, err
			}
		default:
			if !l.symbol() {
				return nil, newSyntaxError(l.pos, "unexpected character %q", r)
			}
		}
	}

	l.tokens = append(l.tokens, Token{Kind: TokenEOF, Pos: len(l.input)})
	return l.tokens, nil
}

func (l *lexer) emit(kind TokenKind, start, end int, op Operator) {
	l.tokens = append(l.tokens, Token{
		Kind:     kind,
		Text:     l.input[start:end],
		Pos:      start,
		Operator: op,
	})
	l.pos = end
}

// scanWord returns the end offset of the run of word runes starting at from.
func (l *lexer) scanWord(from int) int {
	end := from
	for end < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[end:])
		if !isWordRune(r) {
			break
		}
		end += size
	}
	return end
}

func (l *lexer) word() error {
	start := l.pos
	end := l.scanWord(start)
	first := l.folder.String(l.input[start:end])

	for _, candidate := range l.lex.phrases[first] {
		if phraseEnd, ok := l.matchRest(end, candidate.words[1:]); ok {
			l.emit(TokenOperator, start, phraseEnd, candidate.operator)
			return nil
		}
	}

	if !isIdentifier(l.input[start:end]) {
		return newSyntaxError(start, "unknown word %q", l.input[start:end])
	}
	l.emit(TokenVariable, start, end, VARIABLE)
	return nil
}

// matchRest checks that the words following from are exactly rest, allowing
// any whitespace in between.
func (l *lexer) matchRest(from int, rest []string) (int, bool) {
	pos := from
	for _, want := range rest {
		next := pos
		for next < len(l.input) {
			r, size := utf8.DecodeRuneInString(l.input[next:])
			if !unicode.IsSpace(r) {
				break
			}
			next += size
		}
		if next == pos {
			return 0, false
		}
		end := l.scanWord(next)
		if end == next || l.folder.String(l.input[next:end]) != want {
			return 0, false
		}
		pos = end
	}
	return pos, true
}

func (l *lexer) symbol() bool {
	rest := l.input[l.pos:]
	for _, s := range l.lex.symbols {
		if len(rest) >= len(s.text) && rest[:len(s.text)] == s.text {
			l.emit(TokenOperator, l.pos, l.pos+len(s.text), s.operator)
			return true
		}
	}
	return false
}

func isIdentifier(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', c == '_':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return len(s) > 0
}
