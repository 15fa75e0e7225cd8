package boolexpr

import (
	"fmt"

	"github.com/samber/lo"
)

// Step records the value of one sub-expression during a Solve call.
type Step struct {
	Expression string
	Value      bool
	Leaf       bool
}

// Trace lists the steps of one evaluation, children before parents. The last
// step is always the root.
type Trace []Step

// Operations drops the variable lookups and keeps the connective steps.
func (t Trace) Operations() Trace {
	return lo.Filter(t, func(step Step, _ int) bool {
		return !step.Leaf
	})
}

// Solve evaluates the expression for the given assignment and returns its
// value together with the trace of every resolved sub-expression.
func (n *Node) Solve(assignment Assignment) (bool, Trace, error) {
	var trace Trace
	value, err := n.solve(assignment, &trace)
	if err != nil {
		return false, nil, err
	}
	return value, trace, nil
}

func (n *Node) solve(assignment Assignment, trace *Trace) (bool, error) {
	if n.Operator == VARIABLE {
		v, ok := assignment[n.Name]
		if !ok {
			return false, NewUnboundVariableError(n.Name)
		}
		*trace = append(*trace, Step{Expression: n.Name, Value: v, Leaf: true})
		return v, nil
	}

	if n.Operator == NOT {
		operand, err := n.Left.solve(assignment, trace)
		if err != nil {
			return false, fmt.Errorf("failed solving NOT sub-expression: %w", err)
		}
		return n.record(trace, NOT.Apply(operand, false)), nil
	}

	if !n.Operator.IsBinary() {
		return false, fmt.Errorf("unknown operator: %v", n.Operator)
	}

	leftResult, err := n.Left.solve(assignment, trace)
	if err != nil {
		return false, fmt.Errorf("failed solving left expression: %w", err)
	}
	rightResult, err := n.Right.solve(assignment, trace)
	if err != nil {
		return false, fmt.Errorf("failed solving right expression: %w", err)
	}

	return n.record(trace, n.Operator.Apply(leftResult, rightResult)), nil
}

func (n *Node) record(trace *Trace, value bool) bool {
	*trace = append(*trace, Step{Expression: n.String(), Value: value})
	return value
}
