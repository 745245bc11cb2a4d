package booking

import (
	"context"
	"strings"
	"time"

	"github.com/kanata-kan/explorekg-backend-sub001/models"
	"github.com/kanata-kan/explorekg-backend-sub001/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// newBookingNumber derives a short public identifier from a fresh uuid.
func newBookingNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "EKG-" + id[:10]
}

// ConfirmBooking turns an in-flight session into a persisted pending
// booking. The snapshot and breakdown computed during the session are frozen
// into the booking; the catalog is not consulted again. Creation is rejected
// at the persistence boundary when the item's date range is already taken.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, sessionID string) (*models.Booking, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// The snapshot passed validation when it was captured; re-running the
	// check here costs nothing and guards against a session blob that was
	// tampered with or truncated in the cache.
	if err := ValidateSnapshot(sess.Snapshot); err != nil {
		return nil, err
	}
	if err := s.priceSession(sess); err != nil {
		return nil, err
	}

	now := time.Now()
	expiresAt := now.Add(s.HoldWindow)
	b := &models.Booking{
		ID:            uuid.New().String(),
		BookingNumber: newBookingNumber(),
		GuestID:       sess.GuestID,
		GuestContact:  sess.Guest,
		Snapshot:      sess.Snapshot,
		Persons:       sess.Persons,
		Units:         sess.Units,
		Days:          sess.Days,
		StartDate:     sess.StartDate,
		EndDate:       sess.EndDate,
		Pricing:       sess.Pricing,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentUnpaid,
		ExpiresAt:     &expiresAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.CreateWithConflictCheck(ctx, b); err != nil {
		return nil, err
	}

	// The session is spent. A failed delete only means the TTL cleans up.
	if err := s.CacheClient.Del(ctx, utils.SessionCachePrefix+sessionID).Err(); err != nil {
		s.Logger.Warn("failed to delete spent booking session",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	s.publish(ctx, models.EventBookingConfirmed, b, nil)

	s.Logger.Info("booking created",
		zap.String("bookingNumber", b.BookingNumber),
		zap.String("itemId", b.Snapshot.ItemID),
		zap.Float64("finalTotal", b.Pricing.FinalTotal))

	return b, nil
}

// publish emits a lifecycle event after the state change is durably
// persisted. Enqueueing is fire-and-forget; a notification failure can
// never fail the booking operation that triggered it.
func (s *DefaultBookingService) publish(ctx context.Context, t models.EventType, b *models.Booking, extra map[string]any) {
	if s.Events == nil {
		return
	}
	data := map[string]any{
		"bookingNumber": b.BookingNumber,
		"title":         b.Snapshot.Title,
		"itemType":      string(b.Snapshot.ItemType),
		"finalTotal":    b.Pricing.FinalTotal,
		"currency":      b.Snapshot.Currency,
	}
	for k, v := range extra {
		data[k] = v
	}
	s.Events.Publish(ctx, models.Notification{
		Type:      t,
		Recipient: b.GuestContact,
		Data:      data,
		Metadata:  map[string]string{"bookingNumber": b.BookingNumber},
	})
}
