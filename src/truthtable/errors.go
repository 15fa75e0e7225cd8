package truthtable

import (
	"fmt"
)

// DegenerateInputError is returned when an expression has no variables or
// more variables than the table may hold.
type DegenerateInputError struct {
	Variables int
	Max       int
}

func NewDegenerateInputError(variables, max int) error {
	return &DegenerateInputError{Variables: variables, Max: max}
}

func (e DegenerateInputError) Error() string {
	if e.Variables == 0 {
		return "expression has no variables"
	}
	return fmt.Sprintf("expression has %d variables, at most %d are allowed", e.Variables, e.Max)
}
