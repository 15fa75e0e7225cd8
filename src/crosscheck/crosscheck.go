package crosscheck

import (
	"fmt"
	"strings"

	"github.com/eriklarko/truthtable/src/boolexpr"
	"github.com/eriklarko/truthtable/src/truthtable"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// MismatchError is returned when the expr program disagrees with a row of
// the table.
type MismatchError struct {
	Row  int
	Want bool
	Got  bool
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("row %d: table says %v, expr says %v", e.Row, e.Want, e.Got)
}

// Program translates the tree into expr-lang source. Variables are exposed
// through the `v` map so any identifier is accepted.
func Program(root *boolexpr.Node) string {
	var sb strings.Builder
	writeProgram(&sb, root)
	return sb.String()
}

func writeProgram(sb *strings.Builder, n *boolexpr.Node) {
	if n.Operator == boolexpr.VARIABLE {
		fmt.Fprintf(sb, "v[%q]", n.Name)
		return
	}
	if n.Operator == boolexpr.NOT {
		sb.WriteString("(not ")
		writeProgram(sb, n.Left)
		sb.WriteString(")")
		return
	}

	sb.WriteString("(")
	switch n.Operator {
	case boolexpr.IMPLIES:
		sb.WriteString("(not ")
		writeProgram(sb, n.Left)
		sb.WriteString(") or ")
		writeProgram(sb, n.Right)
	default:
		writeProgram(sb, n.Left)
		sb.WriteString(" " + exprOperator(n.Operator) + " ")
		writeProgram(sb, n.Right)
	}
	sb.WriteString(")")
}

func exprOperator(op boolexpr.Operator) string {
	switch op {
	case boolexpr.AND:
		return "and"
	case boolexpr.OR:
		return "or"
	case boolexpr.XOR:
		return "!="
	case boolexpr.EQUIV:
		return "=="
	}
	panic(fmt.Sprintf("no expr operator for %v", op))
}

func compile(root *boolexpr.Node) (*vm.Program, error) {
	env := map[string]any{"v": map[string]bool{}}
	program, err := expr.Compile(Program(root), expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile expr program: %w", err)
	}
	return program, nil
}

// Verify evaluates every row of the table again with the expr virtual
// machine and reports the first row where the results differ.
func Verify(table *truthtable.Table) error {
	program, err := compile(table.Expression)
	if err != nil {
		return err
	}

	for i, row := range table.Rows {
		out, err := expr.Run(program, map[string]any{"v": map[string]bool(row.Assignment)})
		if err != nil {
			return fmt.Errorf("failed to run expr program on row %d: %w", i, err)
		}
		got, ok := out.(bool)
		if !ok {
			return fmt.Errorf("expr program returned %T on row %d", out, i)
		}
		if got != row.Value {
			return &MismatchError{Row: i, Want: row.Value, Got: got}
		}
	}
	return nil
}
