package boolexpr

import (
	"strings"
	"unicode/utf8"
)

// String renders the canonical English form of the expression. Binary
// sub-expressions are always wrapped in parentheses so parsing the result
// gives back the same tree.
func (n *Node) String() string {
	return n.Format(EnglishLexicon)
}

// Format renders the expression with the operator spellings of lex.
func (n *Node) Format(lex *Lexicon) string {
	var sb strings.Builder
	n.format(&sb, lex)
	return sb.String()
}

func (n *Node) format(sb *strings.Builder, lex *Lexicon) {
	switch n.Operator {
	case VARIABLE:
		sb.WriteString(n.Name)
	case NOT:
		spelling := lex.Spelling(NOT)
		sb.WriteString(spelling)
		if r, _ := utf8.DecodeRuneInString(spelling); isWordRune(r) {
			sb.WriteByte(' ')
		}
		n.Left.format(sb, lex)
	default:
		sb.WriteByte('(')
		n.Left.format(sb, lex)
		sb.WriteByte(' ')
		sb.WriteString(lex.Spelling(n.Operator))
		sb.WriteByte(' ')
		n.Right.format(sb, lex)
		sb.WriteByte(')')
	}
}

// Text is Format without the parentheses around the root, for headings.
func (n *Node) Text(lex *Lexicon) string {
	s := n.Format(lex)
	if n.Operator.IsBinary() {
		return s[1 : len(s)-1]
	}
	return s
}

// Dump draws the tree, one node per line.
func (n *Node) Dump() string {
	var lines []string
	n.dump(0, &lines)
	return strings.Join(lines, "\n")
}

func getPadding(depth int) string {
	if depth == 0 {
		return ""
	}
	return strings.Repeat("│   ", depth-1) + "└── "
}

func (n *Node) dump(depth int, lines *[]string) {
	if n.Operator == VARIABLE {
		*lines = append(*lines, getPadding(depth)+"VAR("+n.Name+")")
		return
	}
	*lines = append(*lines, getPadding(depth)+n.Operator.String())
	n.Left.dump(depth+1, lines)
	if n.Right != nil {
		n.Right.dump(depth+1, lines)
	}
}
