package booking

import (
	"github.com/kanata-kan/explorekg-backend-sub001/models"
)

// validTransitions is the adjacency table of the booking lifecycle.
// Cancelled and expired are terminal: their next-state sets are empty.
var validTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled, models.StatusExpired},
	models.StatusConfirmed: {models.StatusCancelled},
	models.StatusCancelled: {},
	models.StatusExpired:   {},
}

// ValidNextStates returns a copy of the legal transitions out of a status.
func ValidNextStates(from models.BookingStatus) []models.BookingStatus {
	next := validTransitions[from]
	out := make([]models.BookingStatus, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether the lifecycle permits moving from one
// status to another. A transition to the same status is always a no-op.
func CanTransition(from, to models.BookingStatus) bool {
	if from == to {
		return true
	}
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns a StateTransitionError when the requested move
// is illegal. The caller applies the new status and persists it; this
// component only decides.
func ValidateTransition(from, to models.BookingStatus) error {
	if CanTransition(from, to) {
		return nil
	}
	return StateTransitionError{
		From:             from,
		To:               to,
		ValidTransitions: ValidNextStates(from),
	}
}

// CanModify reports whether field edits (e.g. quantity changes) are still
// allowed. Terminal states are read-only.
func CanModify(status models.BookingStatus) bool {
	return status == models.StatusPending || status == models.StatusConfirmed
}

// CanCancel reports whether the booking may still be cancelled.
func CanCancel(status models.BookingStatus) bool {
	return status == models.StatusPending || status == models.StatusConfirmed
}

// CanPay reports whether a payment outcome may be recorded: only a pending,
// unexpired booking that is not yet paid accepts payment. A previously
// failed attempt keeps the booking payable so the guest can retry within
// the hold window.
func CanPay(status models.BookingStatus, paymentStatus models.PaymentStatus, isExpired bool) bool {
	if status != models.StatusPending || isExpired {
		return false
	}
	return paymentStatus == models.PaymentUnpaid || paymentStatus == models.PaymentFailed
}
