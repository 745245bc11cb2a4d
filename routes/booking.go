package routes

import (
	"github.com/kanata-kan/explorekg-backend-sub001/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		// Session phase: quote, edit, discard, confirm.
		booking.POST("/session", hb.InitiateSession)
		booking.PUT("/session/:sessionID", hb.UpdateSession)
		booking.DELETE("/session/:sessionID", hb.CancelSession)
		booking.POST("/confirm", hb.ConfirmBooking)

		// Lifecycle phase: persisted bookings addressed by booking number.
		booking.GET("/guest/:guestID", hb.ListGuestBookings)
		booking.GET("/:bookingNumber", hb.GetBooking)
		booking.POST("/:bookingNumber/pay", hb.RecordPayment)
		booking.POST("/:bookingNumber/cancel", hb.CancelBooking)
		booking.PATCH("/:bookingNumber", hb.ModifyBooking)
	}
}
