package pricing

import (
	"testing"

	"github.com/kanata-kan/explorekg-backend-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 { return &v }

func validBreakdown() models.PricingBreakdown {
	return models.PricingBreakdown{
		Subtotal:        100,
		DiscountPercent: 10,
		DiscountAmount:  10,
		Tax:             9,
		FinalTotal:      99,
		Deposit:         float(19.8),
	}
}

func TestValidateBreakdownAccepts(t *testing.T) {
	e := testEngine()
	require.NoError(t, e.ValidatePricingBreakdown(validBreakdown(), true))
}

func TestValidateBreakdownStrictDiscountDrift(t *testing.T) {
	e := testEngine()
	b := validBreakdown()
	b.DiscountAmount = 5

	err := e.ValidatePricingBreakdown(b, true)
	var berr BreakdownValidationError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, "discountAmount", berr.Field)
	assert.Equal(t, 10.0, berr.Expected)
	assert.Equal(t, 5.0, berr.Actual)
}

func TestValidateBreakdownStrictTotalDrift(t *testing.T) {
	e := testEngine()
	b := validBreakdown()
	b.FinalTotal = 95

	err := e.ValidatePricingBreakdown(b, true)
	var berr BreakdownValidationError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, "finalTotal", berr.Field)
}

func TestValidateBreakdownDepositDrift(t *testing.T) {
	e := testEngine()
	b := validBreakdown()
	b.Deposit = float(10)

	err := e.ValidatePricingBreakdown(b, true)
	var berr BreakdownValidationError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, "deposit", berr.Field)
	assert.Equal(t, 19.8, berr.Expected)
}

func TestValidateBreakdownDiscountWithoutPercent(t *testing.T) {
	e := testEngine()
	b := models.PricingBreakdown{
		Subtotal:       100,
		DiscountAmount: 10,
		Tax:            9,
		FinalTotal:     99,
	}

	err := e.ValidatePricingBreakdown(b, true)
	var berr BreakdownValidationError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, "discountPercent", berr.Field)
}

func TestValidateBreakdownNegativeValues(t *testing.T) {
	e := testEngine()
	b := validBreakdown()
	b.Tax = -9

	err := e.ValidatePricingBreakdown(b, true)
	var berr BreakdownValidationError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, "tax", berr.Field)
}

func TestValidateBreakdownWithinTolerance(t *testing.T) {
	e := testEngine()
	b := validBreakdown()
	// A cent-level wobble inside the tolerance is accepted.
	b.FinalTotal = 99.01
	require.NoError(t, e.ValidatePricingBreakdown(b, true))
}

func TestValidateBreakdownNonStrictLogsOnly(t *testing.T) {
	e := testEngine()
	b := validBreakdown()
	b.DiscountAmount = 5

	assert.NoError(t, e.ValidatePricingBreakdown(b, false))
}

func TestValidateBreakdownDetailed(t *testing.T) {
	e := testEngine()

	report := e.ValidatePricingBreakdownDetailed(validBreakdown())
	assert.True(t, report.IsValid)
	assert.Empty(t, report.Errors)

	b := validBreakdown()
	b.DiscountAmount = 5
	b.FinalTotal = -1
	report = e.ValidatePricingBreakdownDetailed(b)
	assert.False(t, report.IsValid)
	assert.GreaterOrEqual(t, len(report.Errors), 2)
}

func TestValidateBreakdownDetailedWarnings(t *testing.T) {
	e := testEngine()

	// Tax computed at a different rate is advisory, not a violation.
	b := models.PricingBreakdown{
		Subtotal:   100,
		Tax:        5,
		FinalTotal: 105,
	}
	report := e.ValidatePricingBreakdownDetailed(b)
	assert.True(t, report.IsValid)
	assert.Contains(t, report.Warnings, "tax does not match the configured rate")

	// Unrounded amounts get flagged too.
	b = validBreakdown()
	b.Subtotal = 100.001
	report = e.ValidatePricingBreakdownDetailed(b)
	assert.Contains(t, report.Warnings, "field subtotal is not rounded to cents")
}
