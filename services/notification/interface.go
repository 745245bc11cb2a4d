package notification

import (
	"context"

	"github.com/kanata-kan/explorekg-backend-sub001/models"
)

// Channel is a delivery transport for lifecycle notifications. Each
// implementation validates for itself whether a concrete message can go out
// (recipient has the contact field it needs, event type is supported, the
// channel is enabled) before attempting delivery.
type Channel interface {
	Name() string
	Send(ctx context.Context, n models.Notification) models.NotificationResult
	Validate(n models.Notification) bool
	SupportedTypes() []models.EventType
	IsEnabled() bool
}

// Publisher is what the booking flow sees: hand over an event after the
// state change is durably persisted and move on. Delivery is best-effort and
// asynchronous; its outcome never reaches the booking operation.
type Publisher interface {
	Publish(ctx context.Context, n models.Notification)
}
