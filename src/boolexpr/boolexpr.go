package boolexpr

import (
	"fmt"

	"github.com/samber/lo"
)

type Operator int

const (
	VARIABLE Operator = iota
	NOT
	AND
	OR
	XOR
	IMPLIES
	EQUIV
)

// Operators lists the connectives from tightest to loosest binding.
var Operators = []Operator{NOT, AND, OR, XOR, IMPLIES, EQUIV}

func (o Operator) String() string {
	switch o {
	case VARIABLE:
		return "VARIABLE"
	case NOT:
		return "NOT"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case XOR:
		return "XOR"
	case IMPLIES:
		return "IMPLIES"
	case EQUIV:
		return "EQUIV"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// Precedence returns the binding strength of the operator. Higher binds
// tighter. Variables are not operators and return 0.
func (o Operator) Precedence() int {
	switch o {
	case NOT:
		return 6
	case AND:
		return 5
	case OR:
		return 4
	case XOR:
		return 3
	case IMPLIES:
		return 2
	case EQUIV:
		return 1
	default:
		return 0
	}
}

func (o Operator) IsBinary() bool {
	return o.Precedence() > 0 && o != NOT
}

// Apply computes the operator over already resolved operands. NOT only looks
// at a.
func (o Operator) Apply(a, b bool) bool {
	switch o {
	case NOT:
		return !a
	case AND:
		return a && b
	case OR:
		return a || b
	case XOR:
		return a != b
	case IMPLIES:
		return !a || b
	case EQUIV:
		return a == b
	}
	panic(fmt.Sprintf("operator %v cannot be applied", o))
}

// Node is one vertex of an expression tree. Leaves are variables and carry a
// Name. NOT uses Left only, binary operators use both children.
type Node struct {
	Operator Operator
	Name     string
	Left     *Node
	Right    *Node
}

// Assignment maps every variable name of an expression to a value.
type Assignment map[string]bool

// Variable builds a leaf node.
func Variable(name string) *Node {
	return &Node{Operator: VARIABLE, Name: name}
}

// Not builds a negation node.
func Not(operand *Node) *Node {
	return &Node{Operator: NOT, Left: operand}
}

// Binary builds a node for one of the two-operand connectives.
func Binary(op Operator, left, right *Node) *Node {
	return &Node{Operator: op, Left: left, Right: right}
}

// New creates a new solvable boolean expression based on the given input
// string, accepting every spelling in DefaultLexicon.
// Example usage:
//
//	tree, err := boolexpr.New("A AND (B OR NOT C)")
//	if err != nil {
//		log.Fatalf("failed to parse expression: %v", err)
//	}
//	value, trace, err := tree.Solve(boolexpr.Assignment{"A": true, "B": false, "C": false})
func New(expression string) (*Node, error) {
	return NewWithLexicon(expression, DefaultLexicon)
}

// NewWithLexicon is New restricted to the spellings of lex.
func NewWithLexicon(expression string, lex *Lexicon) (*Node, error) {
	tokens, err := Tokenize(expression, lex)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize expression '%s': %w", expression, err)
	}
	root, err := Parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expression '%s': %w", expression, err)
	}
	return root, nil
}

// Variables returns the distinct variable names in pre-order, left to right,
// keeping the first appearance of each name.
func (n *Node) Variables() []string {
	return lo.Uniq(n.Leaves())
}

// Leaves returns the name of every variable leaf in pre-order, duplicates
// included.
func (n *Node) Leaves() []string {
	if n == nil {
		return nil
	}
	if n.Operator == VARIABLE {
		return []string{n.Name}
	}
	return append(n.Left.Leaves(), n.Right.Leaves()...)
}

// Connectives returns the operator nodes in the order Solve resolves them,
// matching Trace.Operations step for step.
func (n *Node) Connectives() []*Node {
	if n == nil || n.Operator == VARIABLE {
		return nil
	}
	nodes := append(n.Left.Connectives(), n.Right.Connectives()...)
	return append(nodes, n)
}

// Equal reports whether both trees have the same shape, operators and names.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Operator != other.Operator || n.Name != other.Name {
		return false
	}
	return n.Left.Equal(other.Left) && n.Right.Equal(other.Right)
}
