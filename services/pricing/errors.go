package pricing

import "fmt"

// ValidationError reports malformed numeric input to one of the pricing
// rules (negative price, out-of-range rate or percentage).
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("pricing input %s: %s", e.Field, e.Message)
}

// BreakdownValidationError reports an internally inconsistent pricing
// breakdown: a stored value drifted from the value re-derived from its
// inputs. It carries the offending field plus expected/actual values so the
// caller can present actionable feedback.
type BreakdownValidationError struct {
	Field    string
	Expected float64
	Actual   float64
}

func (e BreakdownValidationError) Error() string {
	return fmt.Sprintf("pricing breakdown inconsistent on %s: expected %.2f, got %.2f",
		e.Field, e.Expected, e.Actual)
}
