package models

import "time"

// EventType identifies the booking lifecycle event a notification reports.
type EventType string

const (
	EventBookingConfirmed EventType = "booking_confirmed"
	EventPaymentConfirmed EventType = "payment_confirmed"
	EventBookingCancelled EventType = "booking_cancelled"
	EventBookingExpired   EventType = "booking_expired"
)

// Priority orders delivery urgency across channels.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// Recipient carries the guest contact data available for channel selection.
type Recipient struct {
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Name        string `json:"name,omitempty"`
	Locale      string `json:"locale,omitempty"`
	DeviceToken string `json:"deviceToken,omitempty"`
}

// Notification is a lifecycle event emitted by the booking flow. Upstream
// code fills type, recipient and data; the policy resolves channels and
// priority when they are left empty.
type Notification struct {
	Type      EventType         `json:"type"`
	Recipient Recipient         `json:"recipient"`
	Data      map[string]any    `json:"data,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Channels  []string          `json:"channels,omitempty"`
	Priority  Priority          `json:"priority,omitempty"`
}

// NotificationResult is the per-channel outcome of one delivery attempt.
type NotificationResult struct {
	Success   bool      `json:"success"`
	Channel   string    `json:"channel"`
	MessageID string    `json:"messageId,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// DispatchSummary aggregates delivery results without collapsing them into a
// single pass/fail outcome.
type DispatchSummary struct {
	Total     int                  `json:"total"`
	Succeeded int                  `json:"succeeded"`
	Failed    int                  `json:"failed"`
	Results   []NotificationResult `json:"results"`
}
