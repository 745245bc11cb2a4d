package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/kanata-kan/explorekg-backend-sub001/models"

	"firebase.google.com/go/v4/messaging"
)

// PushChannel delivers lifecycle notifications as FCM pushes.
type PushChannel struct {
	Client *messaging.Client
}

func NewPushChannel(client *messaging.Client) *PushChannel {
	return &PushChannel{Client: client}
}

func (c *PushChannel) Name() string { return ChannelPush }

func (c *PushChannel) IsEnabled() bool { return c.Client != nil }

func (c *PushChannel) SupportedTypes() []models.EventType {
	// Expirations are email-only; a push about a lapsed hold is noise.
	return []models.EventType{
		models.EventBookingConfirmed,
		models.EventPaymentConfirmed,
		models.EventBookingCancelled,
	}
}

// Validate checks the recipient has a device token, the event type is
// supported and the channel is enabled.
func (c *PushChannel) Validate(n models.Notification) bool {
	if !c.IsEnabled() || n.Recipient.DeviceToken == "" {
		return false
	}
	for _, t := range c.SupportedTypes() {
		if t == n.Type {
			return true
		}
	}
	return false
}

func (c *PushChannel) Send(ctx context.Context, n models.Notification) models.NotificationResult {
	title, body := pushContent(n)

	data := make(map[string]string, len(n.Metadata)+1)
	for k, v := range n.Metadata {
		data[k] = v
	}
	data["eventType"] = string(n.Type)

	msg := &messaging.Message{
		Token: n.Recipient.DeviceToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := c.Client.Send(ctx, msg)
	if err != nil {
		return models.NotificationResult{
			Channel:   c.Name(),
			Error:     err.Error(),
			Timestamp: time.Now(),
		}
	}

	return models.NotificationResult{
		Success:   true,
		Channel:   c.Name(),
		MessageID: messageID,
		Timestamp: time.Now(),
	}
}

func pushContent(n models.Notification) (title, body string) {
	bookingNumber, _ := n.Data["bookingNumber"].(string)
	itemTitle, _ := n.Data["title"].(string)

	switch n.Type {
	case models.EventBookingConfirmed:
		title = "Booking received"
		body = fmt.Sprintf("Booking %s for %s has been received.", bookingNumber, itemTitle)
	case models.EventPaymentConfirmed:
		title = "Payment received"
		body = fmt.Sprintf("Payment confirmed for booking %s.", bookingNumber)
	case models.EventBookingCancelled:
		title = "Booking cancelled"
		body = fmt.Sprintf("Booking %s has been cancelled.", bookingNumber)
	}
	return title, body
}
