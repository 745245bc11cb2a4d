package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kanata-kan/explorekg-backend-sub001/models"
	"github.com/kanata-kan/explorekg-backend-sub001/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateSession looks the item up in the catalog, captures its snapshot,
// prices a first quote and parks everything in Redis under a fresh session id.
func (s *DefaultBookingService) InitiateSession(ctx context.Context, req InitiateSessionRequest) (*models.QuoteResponse, error) {
	item, err := s.CatalogSvc.GetItem(ctx, req.ItemType, req.ItemID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	snapshot := item.BuildSnapshot(now)
	if err := ValidateSnapshot(snapshot); err != nil {
		return nil, err
	}

	sess := &models.BookingSession{
		SessionID:       uuid.New().String(),
		GuestID:         req.GuestID,
		Guest:           req.Guest,
		Snapshot:        snapshot,
		Persons:         req.Persons,
		Units:           req.Units,
		Days:            req.Days,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		DiscountPercent: item.DefaultDiscount(),
		CreatedAt:       now,
	}

	// Tours have a fixed itinerary length; the guest picks a start, not a span.
	if pkg, ok := item.(*models.TourPackage); ok {
		sess.Days = pkg.DurationDays
	}

	if err := s.priceSession(sess); err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	s.Logger.Info("booking session initiated",
		zap.String("sessionId", sess.SessionID),
		zap.String("itemType", string(snapshot.ItemType)),
		zap.String("itemId", snapshot.ItemID))

	return quoteResponse(sess), nil
}

// UpdateSession applies quantity/date adjustments and re-prices the quote.
// The snapshot captured at initiation is reused untouched.
func (s *DefaultBookingService) UpdateSession(ctx context.Context, sessionID string, req UpdateSessionRequest) (*models.QuoteResponse, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	// A truncated or tampered cache blob must fail here, not while pricing
	// dereferences a missing snapshot price.
	if err := ValidateSnapshot(sess.Snapshot); err != nil {
		return nil, err
	}

	if req.Persons > 0 {
		sess.Persons = req.Persons
	}
	if req.Units > 0 {
		sess.Units = req.Units
	}
	if req.Days > 0 && sess.Snapshot.ItemType == models.ItemTypeCar {
		sess.Days = req.Days
		sess.EndDate = nil
	}
	if req.StartDate != nil {
		sess.StartDate = req.StartDate
		sess.EndDate = nil
	}
	if req.EndDate != nil {
		sess.EndDate = req.EndDate
	}

	if err := s.priceSession(sess); err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	return quoteResponse(sess), nil
}

// CancelSession drops an in-flight session.
func (s *DefaultBookingService) CancelSession(ctx context.Context, sessionID string) error {
	deleted, err := s.CacheClient.Del(ctx, utils.SessionCachePrefix+sessionID).Result()
	if err != nil {
		return fmt.Errorf("failed to cancel session: %w", err)
	}
	if deleted == 0 {
		return models.NotFoundError{Resource: "booking session", ID: sessionID}
	}
	return nil
}

// priceSession normalizes dates per item type and recomputes the breakdown
// from the frozen snapshot prices.
func (s *DefaultBookingService) priceSession(sess *models.BookingSession) error {
	var subtotal float64

	switch sess.Snapshot.ItemType {
	case models.ItemTypePackage:
		if sess.Persons < 1 {
			return models.ValidationError{Field: "persons", Message: "at least one person is required"}
		}
		if sess.StartDate != nil {
			// Guests need at least a day's notice for a guided tour.
			if err := ValidateFutureDate(*sess.StartDate, false); err != nil {
				return err
			}
			start, end, err := AutoCalculateDates(sess.StartDate, sess.EndDate, sess.Days)
			if err != nil {
				return err
			}
			sess.StartDate, sess.EndDate = start, end
		}
		subtotal = *sess.Snapshot.PricePerPerson * float64(sess.Persons)

	case models.ItemTypeActivity:
		if sess.Units < 1 {
			return models.ValidationError{Field: "units", Message: "at least one unit is required"}
		}
		if sess.StartDate != nil {
			if err := ValidateFutureDate(*sess.StartDate, true); err != nil {
				return err
			}
		}
		subtotal = *sess.Snapshot.PricePerPerson * float64(sess.Units)

	case models.ItemTypeCar:
		start, end, err := AutoCalculateDates(sess.StartDate, sess.EndDate, sess.Days)
		if err != nil {
			return err
		}
		if start == nil || end == nil {
			return models.ValidationError{Field: "dateRange", Message: "a start date with an end date or day count is required"}
		}
		if err := ValidateFutureDate(*start, true); err != nil {
			return err
		}
		if err := ValidateDateRange(*start, *end); err != nil {
			return err
		}
		if err := ValidateMinimumDuration(start, end, s.MinDays); err != nil {
			return err
		}
		if err := ValidateMaximumDuration(start, end, s.MaxDays); err != nil {
			return err
		}
		sess.StartDate, sess.EndDate = start, end
		sess.Days = CalculateDurationInDays(*start, *end)
		subtotal = *sess.Snapshot.PricePerDay * float64(sess.Days)

	default:
		return models.ValidationError{Field: "itemType", Message: "unknown item type " + string(sess.Snapshot.ItemType)}
	}

	breakdown, err := s.Engine.ComputeBreakdown(subtotal, sess.DiscountPercent, true)
	if err != nil {
		return err
	}
	// Guardrail only: engine output must satisfy its own validator.
	if err := s.Engine.ValidatePricingBreakdown(breakdown, s.StrictMode); err != nil {
		return err
	}

	sess.Pricing = breakdown
	return nil
}

func (s *DefaultBookingService) saveSession(ctx context.Context, sess *models.BookingSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	key := utils.SessionCachePrefix + sess.SessionID
	if err := s.CacheClient.Set(ctx, key, data, s.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.CacheClient.Get(ctx, utils.SessionCachePrefix+sessionID).Result()
	if err != nil {
		return nil, models.NotFoundError{Resource: "booking session", ID: sessionID}
	}
	var sess models.BookingSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &sess, nil
}

func quoteResponse(sess *models.BookingSession) *models.QuoteResponse {
	return &models.QuoteResponse{
		SessionID: sess.SessionID,
		Snapshot:  sess.Snapshot,
		Persons:   sess.Persons,
		Units:     sess.Units,
		Days:      sess.Days,
		StartDate: sess.StartDate,
		EndDate:   sess.EndDate,
		Pricing:   sess.Pricing,
	}
}
