package handlers

import (
	"github.com/kanata-kan/explorekg-backend-sub001/services/booking"
	"github.com/kanata-kan/explorekg-backend-sub001/services/catalog"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so routes
// can be registered from a single wired value.
type HandlerBundle struct {
	// Booking session endpoints
	InitiateSession gin.HandlerFunc
	UpdateSession   gin.HandlerFunc
	CancelSession   gin.HandlerFunc
	ConfirmBooking  gin.HandlerFunc

	// Booking lifecycle endpoints
	GetBooking        gin.HandlerFunc
	ListGuestBookings gin.HandlerFunc
	RecordPayment     gin.HandlerFunc
	CancelBooking     gin.HandlerFunc
	ModifyBooking     gin.HandlerFunc
	ExpireSweep       gin.HandlerFunc

	// Catalog endpoints
	ListCatalogItems gin.HandlerFunc
	GetCatalogItem   gin.HandlerFunc
}

// NewHandlerBundle wires the services into their endpoint handlers.
func NewHandlerBundle(bookingSvc booking.BookingService, catalogSvc catalog.CatalogService) *HandlerBundle {
	return &HandlerBundle{
		InitiateSession: InitiateSessionHandler(bookingSvc),
		UpdateSession:   UpdateSessionHandler(bookingSvc),
		CancelSession:   CancelSessionHandler(bookingSvc),
		ConfirmBooking:  ConfirmBookingHandler(bookingSvc),

		GetBooking:        GetBookingHandler(bookingSvc),
		ListGuestBookings: ListGuestBookingsHandler(bookingSvc),
		RecordPayment:     RecordPaymentHandler(bookingSvc),
		CancelBooking:     CancelBookingHandler(bookingSvc),
		ModifyBooking:     ModifyBookingHandler(bookingSvc),
		ExpireSweep:       ExpireSweepHandler(bookingSvc),

		ListCatalogItems: ListCatalogItemsHandler(catalogSvc),
		GetCatalogItem:   GetCatalogItemHandler(catalogSvc),
	}
}
