package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testEngine() *Engine {
	return &Engine{
		TaxRate:     DefaultTaxRate,
		DepositRate: DefaultDepositRate,
		Tolerance:   DefaultTolerance,
		Logger:      zap.NewNop(),
	}
}

func TestCalculateTax(t *testing.T) {
	e := testEngine()

	tax, err := e.CalculateTax(100)
	require.NoError(t, err)
	assert.Equal(t, 10.0, tax)

	tax, err = e.CalculateTax(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, tax)

	_, err = e.CalculateTax(-1)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "subtotal", verr.Field)

	_, err = e.CalculateTaxWithRate(100, 1.5)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "taxRate", verr.Field)
}

func TestApplyDiscount(t *testing.T) {
	e := testEngine()

	got, err := e.ApplyDiscount(100, 10)
	require.NoError(t, err)
	assert.Equal(t, 90.0, got)

	// Boundary percentages are legal.
	got, err = e.ApplyDiscount(100, 0)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	got, err = e.ApplyDiscount(100, 100)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = e.ApplyDiscount(100, 101)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "discountPercent", verr.Field)

	_, err = e.ApplyDiscount(-5, 10)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)
}

func TestCalculateDiscountAmount(t *testing.T) {
	e := testEngine()

	amount, err := e.CalculateDiscountAmount(100, 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, amount)

	amount, err = e.CalculateDiscountAmount(333.33, 15)
	require.NoError(t, err)
	assert.Equal(t, 50.0, amount)
}

func TestCalculateDeposit(t *testing.T) {
	e := testEngine()

	dep, err := e.CalculateDeposit(100)
	require.NoError(t, err)
	assert.Equal(t, 20.0, dep)

	dep, err = e.CalculateDeposit(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dep)

	_, err = e.CalculateDepositWithRate(100, -0.1)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "depositRate", verr.Field)
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	e := testEngine()

	assert.Equal(t, 10.13, e.Round(10.125))
	assert.Equal(t, -10.13, e.Round(-10.125))
	assert.Equal(t, 99.99, e.Round(99.994))
}

func TestComputeBreakdown(t *testing.T) {
	e := testEngine()

	b, err := e.ComputeBreakdown(100, 10, true)
	require.NoError(t, err)

	// Tax is charged on the discounted amount.
	assert.Equal(t, 100.0, b.Subtotal)
	assert.Equal(t, 10.0, b.DiscountPercent)
	assert.Equal(t, 10.0, b.DiscountAmount)
	assert.Equal(t, 9.0, b.Tax)
	assert.Equal(t, 99.0, b.FinalTotal)
	require.NotNil(t, b.Deposit)
	assert.Equal(t, 19.8, *b.Deposit)

	// The engine's own output always satisfies its validator.
	require.NoError(t, e.ValidatePricingBreakdown(b, true))
}

func TestComputeBreakdownNoDiscountNoDeposit(t *testing.T) {
	e := testEngine()

	b, err := e.ComputeBreakdown(250, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.DiscountAmount)
	assert.Equal(t, 25.0, b.Tax)
	assert.Equal(t, 275.0, b.FinalTotal)
	assert.Nil(t, b.Deposit)

	require.NoError(t, e.ValidatePricingBreakdown(b, true))
}

func TestComputeBreakdownRejectsBadInput(t *testing.T) {
	e := testEngine()

	_, err := e.ComputeBreakdown(-1, 0, false)
	assert.Error(t, err)

	_, err = e.ComputeBreakdown(100, 101, false)
	assert.Error(t, err)
}
