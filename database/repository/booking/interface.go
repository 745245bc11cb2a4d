package bookingRepo

import (
	"context"
	"errors"
	"time"

	"github.com/kanata-kan/explorekg-backend-sub001/models"
)

// ErrDateConflict is returned when a create collides with an existing
// booking of the same item over an overlapping date range.
var ErrDateConflict = errors.New("item already booked for an overlapping date range")

// ErrStatusConflict is returned when a guarded update finds the booking in a
// different status than the caller expected (a concurrent transition won).
var ErrStatusConflict = errors.New("booking status changed concurrently")

// BookingRepository defines the persistence contract for bookings. Creation
// against a date-ranged item and status transitions are the two contention
// points of the system, so both are atomic here rather than in the caller.
type BookingRepository interface {
	// CreateWithConflictCheck inserts the booking, rejecting it with
	// ErrDateConflict when the item already has an active booking whose
	// [start, end) range overlaps. Bookings without a date range insert
	// unconditionally.
	CreateWithConflictCheck(ctx context.Context, b *models.Booking) error
	GetByBookingNumber(ctx context.Context, bookingNumber string) (*models.Booking, error)
	ListByGuest(ctx context.Context, guestID string) ([]models.Booking, error)
	// UpdateGuarded persists the booking only while its stored status still
	// equals expected, returning ErrStatusConflict otherwise.
	UpdateGuarded(ctx context.Context, b *models.Booking, expected models.BookingStatus) error
	// ListExpiredPending returns pending bookings whose hold lapsed before
	// the cutoff, for the externally triggered expiration sweep.
	ListExpiredPending(ctx context.Context, cutoff time.Time) ([]models.Booking, error)
	EnsureIndexes() error
}
