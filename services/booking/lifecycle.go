package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "github.com/kanata-kan/explorekg-backend-sub001/database/repository/booking"
	"github.com/kanata-kan/explorekg-backend-sub001/models"

	"go.uber.org/zap"
)

// GetBooking fetches one booking by its public number.
func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingNumber string) (*models.Booking, error) {
	return s.Repo.GetByBookingNumber(ctx, bookingNumber)
}

// ListGuestBookings returns all bookings made by a guest.
func (s *DefaultBookingService) ListGuestBookings(ctx context.Context, guestID string) ([]models.Booking, error) {
	return s.Repo.ListByGuest(ctx, guestID)
}

// RecordPayment applies an externally reported payment outcome. A
// successful payment moves the booking pending → confirmed; a failed one
// records the failure and leaves the booking pending so the guest can retry
// within the hold window.
func (s *DefaultBookingService) RecordPayment(ctx context.Context, bookingNumber string, report PaymentReport) (*models.Booking, error) {
	b, err := s.Repo.GetByBookingNumber(ctx, bookingNumber)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if !CanPay(b.Status, b.PaymentStatus, b.IsExpired(now)) {
		return nil, models.ValidationError{
			Field:   "payment",
			Message: "booking does not accept payment in its current state",
		}
	}

	expected := b.Status
	b.PaymentMethod = report.Method
	b.TransactionID = report.TransactionID
	b.UpdatedAt = now

	if report.Succeeded {
		if err := ValidateTransition(b.Status, models.StatusConfirmed); err != nil {
			return nil, err
		}
		b.Status = models.StatusConfirmed
		b.PaymentStatus = models.PaymentPaid
		b.PaidAt = &now
	} else {
		b.PaymentStatus = models.PaymentFailed
	}

	if err := s.Repo.UpdateGuarded(ctx, b, expected); err != nil {
		return nil, err
	}

	if report.Succeeded {
		s.publish(ctx, models.EventPaymentConfirmed, b, map[string]any{
			"paymentStatus": string(b.PaymentStatus),
			"method":        b.PaymentMethod,
		})
	}

	return b, nil
}

// CancelBooking performs a guarded cancel. A paid booking is marked refunded
// on the payment sub-state; moving the money back is the payment provider's
// problem, this core only records the outcome.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingNumber, reason string) (*models.Booking, error) {
	b, err := s.Repo.GetByBookingNumber(ctx, bookingNumber)
	if err != nil {
		return nil, err
	}

	if err := ValidateTransition(b.Status, models.StatusCancelled); err != nil {
		return nil, err
	}

	now := time.Now()
	expected := b.Status
	b.Status = models.StatusCancelled
	b.CancelledAt = &now
	b.CancelReason = reason
	if b.PaymentStatus == models.PaymentPaid {
		b.PaymentStatus = models.PaymentRefunded
	}
	b.UpdatedAt = now

	if err := s.Repo.UpdateGuarded(ctx, b, expected); err != nil {
		return nil, err
	}

	s.publish(ctx, models.EventBookingCancelled, b, map[string]any{"reason": reason})

	return b, nil
}

// ModifyBooking applies quantity edits. Terminal bookings are read-only, and
// pricing is only recomputed while the booking is still pending; once
// confirmed, the breakdown is frozen alongside the snapshot.
func (s *DefaultBookingService) ModifyBooking(ctx context.Context, bookingNumber string, req ModifyBookingRequest) (*models.Booking, error) {
	b, err := s.Repo.GetByBookingNumber(ctx, bookingNumber)
	if err != nil {
		return nil, err
	}

	if !CanModify(b.Status) {
		return nil, models.ValidationError{Field: "status", Message: "booking can no longer be modified"}
	}
	if b.Status != models.StatusPending {
		return nil, models.ValidationError{Field: "status", Message: "quantities are frozen after confirmation"}
	}

	if req.Persons > 0 {
		b.Persons = req.Persons
	}
	if req.Units > 0 {
		b.Units = req.Units
	}

	// Re-price from the frozen snapshot; the catalog is never consulted.
	sess := &models.BookingSession{
		Snapshot:        b.Snapshot,
		Persons:         b.Persons,
		Units:           b.Units,
		Days:            b.Days,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		DiscountPercent: b.Pricing.DiscountPercent,
	}
	if err := s.priceSession(sess); err != nil {
		return nil, err
	}
	b.Pricing = sess.Pricing
	b.UpdatedAt = time.Now()

	if err := s.Repo.UpdateGuarded(ctx, b, models.StatusPending); err != nil {
		return nil, err
	}

	return b, nil
}

// ExpireSweep transitions lapsed pending bookings to expired. It is
// triggered by an external scheduler; each booking is moved under the same
// optimistic guard as any other transition, so a concurrent payment that
// already confirmed a booking simply wins the race.
func (s *DefaultBookingService) ExpireSweep(ctx context.Context) (int, error) {
	expired, err := s.Repo.ListExpiredPending(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	swept := 0
	for i := range expired {
		b := &expired[i]
		if err := ValidateTransition(b.Status, models.StatusExpired); err != nil {
			continue
		}
		b.Status = models.StatusExpired
		b.UpdatedAt = time.Now()

		if err := s.Repo.UpdateGuarded(ctx, b, models.StatusPending); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				continue
			}
			s.Logger.Warn("failed to expire booking",
				zap.String("bookingNumber", b.BookingNumber), zap.Error(err))
			continue
		}

		swept++
		s.publish(ctx, models.EventBookingExpired, b, nil)
	}

	s.Logger.Info("expiration sweep finished",
		zap.Int("candidates", len(expired)), zap.Int("swept", swept))
	return swept, nil
}
