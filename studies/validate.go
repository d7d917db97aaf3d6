package studies

import "fmt"

// ValidationError describes a malformed input rejected before the
// synthesis runs: it names the offending argument and the constraint
// it violates. Validation never produces partial results.
type ValidationError struct {
	// Arg is the name of the offending argument.
	Arg string
	// Constraint describes the violated constraint.
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Arg, e.Constraint)
}
