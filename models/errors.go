package models

import "fmt"

// ValidationError reports malformed input to one of the pure components
// (bad date, negative price, incomplete snapshot). It is recoverable by the
// caller correcting the input and maps to a client error at the API boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
	}
	return "validation failed: " + e.Message
}

// NotFoundError indicates a missing resource (catalog item or booking), as
// opposed to a malformed request.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}
