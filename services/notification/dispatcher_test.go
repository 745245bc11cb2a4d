package notification

import (
	"context"
	"testing"
	"time"

	"github.com/kanata-kan/explorekg-backend-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChannel struct {
	name     string
	enabled  bool
	fail     bool
	rejected bool
	sent     []models.Notification
}

func (f *fakeChannel) Name() string { return f.name }

func (f *fakeChannel) Send(_ context.Context, n models.Notification) models.NotificationResult {
	f.sent = append(f.sent, n)
	if f.fail {
		return models.NotificationResult{Channel: f.name, Error: "send failed", Timestamp: time.Now()}
	}
	return models.NotificationResult{Success: true, Channel: f.name, MessageID: "msg-1", Timestamp: time.Now()}
}

func (f *fakeChannel) Validate(models.Notification) bool { return !f.rejected }

func (f *fakeChannel) SupportedTypes() []models.EventType { return nil }

func (f *fakeChannel) IsEnabled() bool { return f.enabled }

func confirmedNotification(channels ...string) models.Notification {
	return models.Notification{
		Type:      models.EventBookingConfirmed,
		Recipient: models.Recipient{Email: "guest@example.com", DeviceToken: "tok-1"},
		Channels:  channels,
	}
}

func TestDispatchFansOut(t *testing.T) {
	email := &fakeChannel{name: ChannelEmail, enabled: true}
	push := &fakeChannel{name: ChannelPush, enabled: true}
	d := NewDispatcher(zap.NewNop())
	d.Register(email)
	d.Register(push)

	summary := d.Dispatch(context.Background(), confirmedNotification())

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	assert.Len(t, email.sent, 1)
	assert.Len(t, push.sent, 1)
}

func TestDispatchFailureDoesNotBlockOthers(t *testing.T) {
	email := &fakeChannel{name: ChannelEmail, enabled: true}
	push := &fakeChannel{name: ChannelPush, enabled: true, fail: true}
	d := NewDispatcher(zap.NewNop())
	d.Register(email)
	d.Register(push)

	summary := d.Dispatch(context.Background(), confirmedNotification(ChannelPush, ChannelEmail))

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, email.sent, 1)
}

func TestDispatchUnregisteredChannel(t *testing.T) {
	d := NewDispatcher(zap.NewNop())

	summary := d.Dispatch(context.Background(), confirmedNotification(ChannelEmail))

	require.Len(t, summary.Results, 1)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, "channel not registered", summary.Results[0].Error)
}

func TestDispatchChannelValidationFailure(t *testing.T) {
	email := &fakeChannel{name: ChannelEmail, enabled: true, rejected: true}
	d := NewDispatcher(zap.NewNop())
	d.Register(email)

	summary := d.Dispatch(context.Background(), confirmedNotification(ChannelEmail))

	assert.Equal(t, 1, summary.Failed)
	assert.Empty(t, email.sent, "a rejected notification must not be sent")
}

func TestDispatchSuppressedByPolicy(t *testing.T) {
	email := &fakeChannel{name: ChannelEmail, enabled: true}
	d := NewDispatcher(zap.NewNop())
	d.Register(email)

	n := models.Notification{
		Type:      models.EventPaymentConfirmed,
		Recipient: models.Recipient{Email: "guest@example.com"},
		Data:      map[string]any{"paymentStatus": string(models.PaymentFailed)},
	}
	summary := d.Dispatch(context.Background(), n)

	assert.Equal(t, 0, summary.Total)
	assert.Empty(t, email.sent)
}

func TestDispatchAppliesPolicyDefaults(t *testing.T) {
	email := &fakeChannel{name: ChannelEmail, enabled: true}
	d := NewDispatcher(zap.NewNop())
	d.Register(email)

	n := models.Notification{
		Type:      models.EventBookingExpired,
		Recipient: models.Recipient{Email: "guest@example.com"},
	}
	summary := d.Dispatch(context.Background(), n)

	require.Len(t, email.sent, 1)
	assert.Equal(t, models.PriorityLow, email.sent[0].Priority)
	assert.Equal(t, 1, summary.Succeeded)
}
