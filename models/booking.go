package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusExpired   BookingStatus = "expired"
)

// PaymentStatus is the payment sub-state of a booking.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

// Booking represents a reservation of a catalog item by a guest. Once the
// status leaves pending, the embedded snapshot and pricing breakdown are
// frozen and never recomputed from the live catalog.
type Booking struct {
	ID            string           `bson:"id" json:"id"`
	BookingNumber string           `bson:"booking_number" json:"bookingNumber"`
	GuestID       string           `bson:"guest_id" json:"guestId"`
	GuestContact  Recipient        `bson:"guest_contact" json:"guestContact"`
	Snapshot      Snapshot         `bson:"snapshot" json:"snapshot"`
	Persons       int              `bson:"persons,omitempty" json:"persons,omitempty"`
	Units         int              `bson:"units,omitempty" json:"units,omitempty"`
	Days          int              `bson:"days,omitempty" json:"days,omitempty"`
	StartDate     *time.Time       `bson:"start_date,omitempty" json:"startDate,omitempty"`
	EndDate       *time.Time       `bson:"end_date,omitempty" json:"endDate,omitempty"`
	Pricing       PricingBreakdown `bson:"pricing" json:"pricing"`
	Status        BookingStatus    `bson:"status" json:"status"`
	PaymentStatus PaymentStatus    `bson:"payment_status" json:"paymentStatus"`
	PaymentMethod string           `bson:"payment_method,omitempty" json:"paymentMethod,omitempty"`
	TransactionID string           `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`
	PaidAt        *time.Time       `bson:"paid_at,omitempty" json:"paidAt,omitempty"`
	ExpiresAt     *time.Time       `bson:"expires_at,omitempty" json:"expiresAt,omitempty"`
	CancelledAt   *time.Time       `bson:"cancelled_at,omitempty" json:"cancelledAt,omitempty"`
	CancelReason  string           `bson:"cancel_reason,omitempty" json:"cancelReason,omitempty"`
	CreatedAt     time.Time        `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time        `bson:"updated_at" json:"updatedAt"`
}

// IsExpired reports whether a pending booking's hold window has lapsed.
func (b *Booking) IsExpired(now time.Time) bool {
	if b.Status == StatusExpired {
		return true
	}
	return b.Status == StatusPending && b.ExpiresAt != nil && now.After(*b.ExpiresAt)
}
