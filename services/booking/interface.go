package booking

import (
	"context"
	"time"

	bookingRepo "github.com/kanata-kan/explorekg-backend-sub001/database/repository/booking"
	"github.com/kanata-kan/explorekg-backend-sub001/models"
	"github.com/kanata-kan/explorekg-backend-sub001/services/catalog"
	"github.com/kanata-kan/explorekg-backend-sub001/services/notification"
	"github.com/kanata-kan/explorekg-backend-sub001/services/pricing"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// InitiateSessionRequest starts a guest's booking session for one catalog item.
type InitiateSessionRequest struct {
	GuestID   string           `json:"guestId" binding:"required"`
	Guest     models.Recipient `json:"guest"`
	ItemType  models.ItemType  `json:"itemType" binding:"required"`
	ItemID    string           `json:"itemId" binding:"required"`
	Persons   int              `json:"persons,omitempty"`
	Units     int              `json:"units,omitempty"`
	Days      int              `json:"days,omitempty"`
	StartDate *time.Time       `json:"startDate,omitempty"`
	EndDate   *time.Time       `json:"endDate,omitempty"`
}

// UpdateSessionRequest adjusts quantities or dates on an in-flight session.
// Zero values leave the current session value untouched.
type UpdateSessionRequest struct {
	Persons   int        `json:"persons,omitempty"`
	Units     int        `json:"units,omitempty"`
	Days      int        `json:"days,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// PaymentReport is the externally observed payment outcome for a booking.
// The engine records it; it never talks to a payment gateway itself.
type PaymentReport struct {
	Method        string `json:"method" binding:"required"`
	TransactionID string `json:"transactionId,omitempty"`
	Succeeded     bool   `json:"succeeded"`
}

// ModifyBookingRequest carries quantity edits on a pending booking.
type ModifyBookingRequest struct {
	Persons int `json:"persons,omitempty"`
	Units   int `json:"units,omitempty"`
}

// BookingService is the orchestration surface over the pure components:
// catalog lookup, snapshot capture, date validation, pricing, lifecycle
// guards, persistence and notification emission.
type BookingService interface {
	InitiateSession(ctx context.Context, req InitiateSessionRequest) (*models.QuoteResponse, error)
	UpdateSession(ctx context.Context, sessionID string, req UpdateSessionRequest) (*models.QuoteResponse, error)
	CancelSession(ctx context.Context, sessionID string) error
	ConfirmBooking(ctx context.Context, sessionID string) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingNumber string) (*models.Booking, error)
	ListGuestBookings(ctx context.Context, guestID string) ([]models.Booking, error)
	RecordPayment(ctx context.Context, bookingNumber string, report PaymentReport) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingNumber, reason string) (*models.Booking, error)
	ModifyBooking(ctx context.Context, bookingNumber string, req ModifyBookingRequest) (*models.Booking, error)
	ExpireSweep(ctx context.Context) (int, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	CatalogSvc  catalog.CatalogService
	Repo        bookingRepo.BookingRepository
	Engine      *pricing.Engine
	CacheClient *redis.Client
	Events      notification.Publisher
	Logger      *zap.Logger

	SessionTTL  time.Duration
	HoldWindow  time.Duration
	MinDays     int
	MaxDays     int
	StrictMode  bool
}
