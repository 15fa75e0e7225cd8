package boolexpr

import (
	"fmt"
)

// UnboundVariableError is returned when an assignment has no value for a
// variable of the expression being solved.
type UnboundVariableError struct {
	VariableName string
}

// NewUnboundVariableError creates a new UnboundVariableError with the given variable name.
func NewUnboundVariableError(variableName string) error {
	return &UnboundVariableError{VariableName: variableName}
}

func (e UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.VariableName)
}

// SyntaxError is returned by the tokenizer and the parser. Pos is the byte
// offset in the input where the problem was found.
type SyntaxError struct {
	Pos int
	Msg string
}

func newSyntaxError(pos int, format string, a ...any) error {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, a...)}
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}
