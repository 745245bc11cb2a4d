package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/kanata-kan/explorekg-backend-sub001/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailChannel delivers lifecycle notifications over SendGrid.
type EmailChannel struct {
	APIKey   string
	From     string
	FromName string
	Disabled bool
}

func NewEmailChannel(apiKey, from, fromName string) *EmailChannel {
	return &EmailChannel{
		APIKey:   apiKey,
		From:     from,
		FromName: fromName,
		Disabled: apiKey == "",
	}
}

func (c *EmailChannel) Name() string { return ChannelEmail }

func (c *EmailChannel) IsEnabled() bool { return !c.Disabled }

func (c *EmailChannel) SupportedTypes() []models.EventType {
	return []models.EventType{
		models.EventBookingConfirmed,
		models.EventPaymentConfirmed,
		models.EventBookingCancelled,
		models.EventBookingExpired,
	}
}

// Validate checks the recipient has an address, the event type is supported
// and the channel is enabled.
func (c *EmailChannel) Validate(n models.Notification) bool {
	if !c.IsEnabled() || n.Recipient.Email == "" {
		return false
	}
	for _, t := range c.SupportedTypes() {
		if t == n.Type {
			return true
		}
	}
	return false
}

func (c *EmailChannel) Send(ctx context.Context, n models.Notification) models.NotificationResult {
	subject, body := emailContent(n)

	from := mail.NewEmail(c.FromName, c.From)
	to := mail.NewEmail(n.Recipient.Name, n.Recipient.Email)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(c.APIKey)
	response, err := client.Send(message)
	if err != nil {
		return models.NotificationResult{
			Channel:   c.Name(),
			Error:     err.Error(),
			Timestamp: time.Now(),
		}
	}
	if response.StatusCode >= 400 {
		return models.NotificationResult{
			Channel:   c.Name(),
			Error:     fmt.Sprintf("sendgrid error: status %d", response.StatusCode),
			Timestamp: time.Now(),
		}
	}

	var messageID string
	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		messageID = ids[0]
	}
	return models.NotificationResult{
		Success:   true,
		Channel:   c.Name(),
		MessageID: messageID,
		Timestamp: time.Now(),
	}
}

func emailContent(n models.Notification) (subject, body string) {
	bookingNumber, _ := n.Data["bookingNumber"].(string)
	title, _ := n.Data["title"].(string)

	switch n.Type {
	case models.EventBookingConfirmed:
		subject = fmt.Sprintf("Booking %s confirmed", bookingNumber)
		body = fmt.Sprintf("Hello %s,\n\nYour booking %s for %s has been received.\n\nThe ExploreKG Team",
			n.Recipient.Name, bookingNumber, title)
	case models.EventPaymentConfirmed:
		subject = fmt.Sprintf("Payment received for booking %s", bookingNumber)
		body = fmt.Sprintf("Hello %s,\n\nWe received your payment for booking %s. You are all set.\n\nThe ExploreKG Team",
			n.Recipient.Name, bookingNumber)
	case models.EventBookingCancelled:
		subject = fmt.Sprintf("Booking %s cancelled", bookingNumber)
		body = fmt.Sprintf("Hello %s,\n\nYour booking %s has been cancelled.\n\nThe ExploreKG Team",
			n.Recipient.Name, bookingNumber)
	case models.EventBookingExpired:
		subject = fmt.Sprintf("Booking %s expired", bookingNumber)
		body = fmt.Sprintf("Hello %s,\n\nYour booking %s expired before payment was completed.\n\nThe ExploreKG Team",
			n.Recipient.Name, bookingNumber)
	}
	return subject, body
}
