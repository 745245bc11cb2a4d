package notification

import (
	"testing"

	"github.com/kanata-kan/explorekg-backend-sub001/models"

	"github.com/stretchr/testify/assert"
)

func TestShouldNotify(t *testing.T) {
	assert.True(t, ShouldNotify(models.Notification{Type: models.EventBookingConfirmed}))
	assert.True(t, ShouldNotify(models.Notification{Type: models.EventBookingCancelled}))
	assert.True(t, ShouldNotify(models.Notification{Type: models.EventBookingExpired}))
	assert.False(t, ShouldNotify(models.Notification{Type: "unknown_event"}))
}

func TestShouldNotifyPaymentRequiresPaid(t *testing.T) {
	paid := models.Notification{
		Type: models.EventPaymentConfirmed,
		Data: map[string]any{"paymentStatus": string(models.PaymentPaid)},
	}
	assert.True(t, ShouldNotify(paid))

	failed := models.Notification{
		Type: models.EventPaymentConfirmed,
		Data: map[string]any{"paymentStatus": string(models.PaymentFailed)},
	}
	assert.False(t, ShouldNotify(failed))

	// Missing status data suppresses the event entirely.
	assert.False(t, ShouldNotify(models.Notification{Type: models.EventPaymentConfirmed}))
}

func TestResolveChannels(t *testing.T) {
	both := models.Recipient{Email: "guest@example.com", DeviceToken: "tok-1"}
	assert.Equal(t, []string{ChannelPush, ChannelEmail}, ResolveChannels(both))

	emailOnly := models.Recipient{Email: "guest@example.com"}
	assert.Equal(t, []string{ChannelEmail}, ResolveChannels(emailOnly))

	pushOnly := models.Recipient{DeviceToken: "tok-1"}
	assert.Equal(t, []string{ChannelPush}, ResolveChannels(pushOnly))

	// No contact data at all still falls back to email.
	assert.Equal(t, []string{ChannelEmail}, ResolveChannels(models.Recipient{}))
}

func TestPriorityFor(t *testing.T) {
	assert.Equal(t, models.PriorityHigh, PriorityFor(models.EventBookingConfirmed))
	assert.Equal(t, models.PriorityHigh, PriorityFor(models.EventPaymentConfirmed))
	assert.Equal(t, models.PriorityNormal, PriorityFor(models.EventBookingCancelled))
	assert.Equal(t, models.PriorityLow, PriorityFor(models.EventBookingExpired))
}

func TestApplyPolicyFillsOnlyUnset(t *testing.T) {
	n := models.Notification{
		Type:      models.EventBookingConfirmed,
		Recipient: models.Recipient{Email: "guest@example.com"},
	}
	filled := ApplyPolicy(n)
	assert.Equal(t, []string{ChannelEmail}, filled.Channels)
	assert.Equal(t, models.PriorityHigh, filled.Priority)

	// Explicit choices from the emitter are preserved.
	n.Channels = []string{ChannelPush}
	n.Priority = models.PriorityLow
	filled = ApplyPolicy(n)
	assert.Equal(t, []string{ChannelPush}, filled.Channels)
	assert.Equal(t, models.PriorityLow, filled.Priority)
}
