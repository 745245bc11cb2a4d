package notification

import (
	"github.com/kanata-kan/explorekg-backend-sub001/models"
)

// Channel names known to the default policy.
const (
	ChannelEmail = "email"
	ChannelPush  = "push"
)

// ShouldNotify decides whether a lifecycle event warrants sending at all.
// Payment confirmations only fire when the payment actually went through;
// everything else just needs a known event type.
func ShouldNotify(n models.Notification) bool {
	switch n.Type {
	case models.EventPaymentConfirmed:
		status, ok := n.Data["paymentStatus"].(string)
		return ok && status == string(models.PaymentPaid)
	case models.EventBookingConfirmed, models.EventBookingCancelled, models.EventBookingExpired:
		return true
	default:
		return false
	}
}

// ResolveChannels derives the channel set from the recipient's available
// contact data: push when a device token exists, email when an address
// exists, and email as the fallback when nothing else qualifies.
func ResolveChannels(r models.Recipient) []string {
	var channels []string
	if r.DeviceToken != "" {
		channels = append(channels, ChannelPush)
	}
	if r.Email != "" {
		channels = append(channels, ChannelEmail)
	}
	if len(channels) == 0 {
		channels = append(channels, ChannelEmail)
	}
	return channels
}

// PriorityFor maps event types to delivery priority: confirmations and
// payments are high, cancellations normal, expirations low.
func PriorityFor(t models.EventType) models.Priority {
	switch t {
	case models.EventBookingConfirmed, models.EventPaymentConfirmed:
		return models.PriorityHigh
	case models.EventBookingCancelled:
		return models.PriorityNormal
	default:
		return models.PriorityLow
	}
}

// ApplyPolicy fills in channels and priority on events whose emitter left
// them unset. Upstream code does not need to know the selection rules.
func ApplyPolicy(n models.Notification) models.Notification {
	if len(n.Channels) == 0 {
		n.Channels = ResolveChannels(n.Recipient)
	}
	if n.Priority == "" {
		n.Priority = PriorityFor(n.Type)
	}
	return n
}
