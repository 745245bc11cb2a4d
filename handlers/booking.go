package handlers

import (
	"net/http"

	"github.com/kanata-kan/explorekg-backend-sub001/services/booking"
	"github.com/kanata-kan/explorekg-backend-sub001/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InitiateSessionHandler starts a new booking session and returns the quote.
func InitiateSessionHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req booking.InitiateSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		req.Guest.Email = utils.NormalizeEmail(req.Guest.Email)
		req.Guest.Phone = utils.NormalizePhone(req.Guest.Phone)
		req.Guest.Name = utils.SanitizeText(req.Guest.Name)

		quote, err := svc.InitiateSession(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, quote)
	}
}

// UpdateSessionHandler applies partial edits to an in-flight session and
// returns the re-priced quote.
func UpdateSessionHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionID")
		var req booking.UpdateSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		quote, err := svc.UpdateSession(c.Request.Context(), sessionID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, quote)
	}
}

// CancelSessionHandler discards a session before confirmation.
func CancelSessionHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionID")
		if err := svc.CancelSession(c.Request.Context(), sessionID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "session cancelled"})
	}
}

// ConfirmBookingHandler turns a session into a pending booking.
func ConfirmBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			SessionID string `json:"sessionId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		bk, err := svc.ConfirmBooking(c.Request.Context(), req.SessionID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, bk)
	}
}

// GetBookingHandler fetches one booking by its booking number.
func GetBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bk, err := svc.GetBooking(c.Request.Context(), c.Param("bookingNumber"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, bk)
	}
}

// ListGuestBookingsHandler lists a guest's bookings, newest first.
func ListGuestBookingsHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.ListGuestBookings(c.Request.Context(), c.Param("guestID"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
	}
}

// RecordPaymentHandler records an externally observed payment outcome.
func RecordPaymentHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var report booking.PaymentReport
		if err := c.ShouldBindJSON(&report); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		bk, err := svc.RecordPayment(c.Request.Context(), c.Param("bookingNumber"), report)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, bk)
	}
}

// CancelBookingHandler cancels a pending or confirmed booking.
func CancelBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Reason string `json:"reason,omitempty"`
		}
		// Body is optional for cancellations.
		_ = c.ShouldBindJSON(&req)

		bk, err := svc.CancelBooking(c.Request.Context(), c.Param("bookingNumber"), utils.SanitizeText(req.Reason))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, bk)
	}
}

// ModifyBookingHandler edits quantities on a pending booking and re-prices
// it against the frozen snapshot.
func ModifyBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req booking.ModifyBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		bk, err := svc.ModifyBooking(c.Request.Context(), c.Param("bookingNumber"), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, bk)
	}
}

// ExpireSweepHandler transitions overdue pending bookings to expired.
func ExpireSweepHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		expired, err := svc.ExpireSweep(c.Request.Context())
		if err != nil {
			utils.GetLogger().Error("Expire sweep failed", zap.Error(err))
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"expired": expired})
	}
}
