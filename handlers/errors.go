package handlers

import (
	"errors"
	"net/http"

	bookingRepo "github.com/kanata-kan/explorekg-backend-sub001/database/repository/booking"
	"github.com/kanata-kan/explorekg-backend-sub001/models"
	"github.com/kanata-kan/explorekg-backend-sub001/services/booking"
	"github.com/kanata-kan/explorekg-backend-sub001/services/pricing"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error kinds onto HTTP responses. Pure
// component errors always reach here synchronously; nothing in the core
// swallows them.
func respondError(c *gin.Context, err error) {
	var notFound models.NotFoundError
	var transition booking.StateTransitionError
	var breakdown pricing.BreakdownValidationError
	var validation models.ValidationError
	var pricingInput pricing.ValidationError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &transition):
		c.JSON(http.StatusConflict, gin.H{
			"error":            transition.Error(),
			"currentStatus":    transition.From,
			"targetStatus":     transition.To,
			"validTransitions": transition.ValidTransitions,
		})
	case errors.As(err, &breakdown):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    breakdown.Error(),
			"field":    breakdown.Field,
			"expected": breakdown.Expected,
			"actual":   breakdown.Actual,
		})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error(), "field": validation.Field})
	case errors.As(err, &pricingInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": pricingInput.Error(), "field": pricingInput.Field})
	case errors.Is(err, bookingRepo.ErrDateConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, bookingRepo.ErrStatusConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
