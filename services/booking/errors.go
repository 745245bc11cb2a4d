package booking

import (
	"fmt"
	"strings"

	"github.com/kanata-kan/explorekg-backend-sub001/models"
)

// StateTransitionError reports an illegal lifecycle move. It carries the
// current and target status plus the legal next-state set so the caller can
// present actionable feedback.
type StateTransitionError struct {
	From             models.BookingStatus
	To               models.BookingStatus
	ValidTransitions []models.BookingStatus
}

func (e StateTransitionError) Error() string {
	next := make([]string, len(e.ValidTransitions))
	for i, s := range e.ValidTransitions {
		next[i] = string(s)
	}
	return fmt.Sprintf("cannot transition booking from %s to %s (valid: [%s])",
		e.From, e.To, strings.Join(next, ", "))
}
