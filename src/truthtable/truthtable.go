package truthtable

import (
	"fmt"

	"github.com/eriklarko/truthtable/src/boolexpr"
	"github.com/samber/lo"
)

// DefaultMaxVariables bounds the table at about a million rows.
const DefaultMaxVariables = 20

// MaxVariables is the hard ceiling on the variable cap. 2^n must stay a
// sensible slice length, whatever the configured cap.
const MaxVariables = 30

type Row struct {
	Assignment boolexpr.Assignment
	Value      bool
	Trace      boolexpr.Trace
}

// Values returns the assignment in column order.
func (r Row) Values(variables []string) []bool {
	return lo.Map(variables, func(name string, _ int) bool {
		return r.Assignment[name]
	})
}

// Table holds one row per assignment. Rows are ordered by the binary number
// formed by the variable values, first variable as the most significant bit.
type Table struct {
	Expression *boolexpr.Node
	Variables  []string
	Rows       []Row
}

type Classification int

const (
	Contingent Classification = iota
	Tautology
	Contradiction
)

func (c Classification) String() string {
	switch c {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	default:
		return "contingent"
	}
}

type options struct {
	maxVariables int
}

type Option func(*options)

// WithMaxVariables changes the variable cap. Values below 1 keep the default,
// values above MaxVariables are lowered to it.
func WithMaxVariables(max int) Option {
	return func(o *options) {
		if max > 0 {
			o.maxVariables = min(max, MaxVariables)
		}
	}
}

// Generate evaluates root for every assignment of its variables.
// Example usage:
//
//	root, _ := boolexpr.New("(A AND B) OR C")
//	table, err := truthtable.Generate(root)
//	// table.Variables == []string{"A", "B", "C"}, len(table.Rows) == 8
func Generate(root *boolexpr.Node, opts ...Option) (*Table, error) {
	o := options{maxVariables: DefaultMaxVariables}
	for _, opt := range opts {
		opt(&o)
	}

	variables := root.Variables()
	n := len(variables)
	if n == 0 {
		return nil, NewDegenerateInputError(0, o.maxVariables)
	}
	if n > o.maxVariables {
		return nil, NewDegenerateInputError(n, o.maxVariables)
	}

	count := 1 << n
	table := &Table{
		Expression: root,
		Variables:  variables,
		Rows:       make([]Row, 0, count),
	}
	for i := 0; i < count; i++ {
		assignment := make(boolexpr.Assignment, n)
		for j, name := range variables {
			assignment[name] = (i>>(n-1-j))&1 == 1
		}

		value, trace, err := root.Solve(assignment)
		if err != nil {
			return nil, fmt.Errorf("failed solving row %d: %w", i, err)
		}
		table.Rows = append(table.Rows, Row{
			Assignment: assignment,
			Value:      value,
			Trace:      trace,
		})
	}

	return table, nil
}

// Steps lists the connective sub-expressions in resolution order. Every row
// shares the same steps, only their values differ.
func (t *Table) Steps() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return lo.Map(t.Rows[0].Trace.Operations(), func(step boolexpr.Step, _ int) string {
		return step.Expression
	})
}

// Satisfying returns the rows where the expression is true.
func (t *Table) Satisfying() []Row {
	return lo.Filter(t.Rows, func(r Row, _ int) bool {
		return r.Value
	})
}

func (t *Table) Classify() Classification {
	switch len(t.Satisfying()) {
	case len(t.Rows):
		return Tautology
	case 0:
		return Contradiction
	default:
		return Contingent
	}
}
