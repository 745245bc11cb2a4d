package models

import "time"

// BookingSession holds a guest's in-flight quote between initiate and confirm.
// It lives in Redis under a TTL; confirming or cancelling removes it.
type BookingSession struct {
	SessionID string           `json:"sessionId"`
	GuestID   string           `json:"guestId"`
	Guest     Recipient        `json:"guest"`
	Snapshot  Snapshot         `json:"snapshot"`
	Persons   int              `json:"persons,omitempty"`
	Units     int              `json:"units,omitempty"`
	Days      int              `json:"days,omitempty"`
	StartDate *time.Time       `json:"startDate,omitempty"`
	EndDate   *time.Time       `json:"endDate,omitempty"`
	// DiscountPercent is captured from the catalog item at initiation so a
	// later promo change cannot shift an in-flight quote.
	DiscountPercent float64          `json:"discountPercent"`
	Pricing         PricingBreakdown `json:"pricing"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// QuoteResponse is returned by the session endpoints: the priced quote a
// guest can still adjust before confirming.
type QuoteResponse struct {
	SessionID string           `json:"sessionId"`
	Snapshot  Snapshot         `json:"snapshot"`
	Persons   int              `json:"persons,omitempty"`
	Units     int              `json:"units,omitempty"`
	Days      int              `json:"days,omitempty"`
	StartDate *time.Time       `json:"startDate,omitempty"`
	EndDate   *time.Time       `json:"endDate,omitempty"`
	Pricing   PricingBreakdown `json:"pricing"`
}
