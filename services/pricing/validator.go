package pricing

import (
	"math"

	"github.com/kanata-kan/explorekg-backend-sub001/models"

	"go.uber.org/zap"
)

// BreakdownReport is the outcome of a detailed validation run: every
// violation and advisory finding, never an error value.
type BreakdownReport struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// ValidatePricingBreakdown re-derives each dependent value of a breakdown
// from its inputs and compares against the stored value within the engine
// tolerance. In strict mode the first violation is returned as a
// BreakdownValidationError; otherwise violations are logged as warnings and
// the breakdown is allowed through. The validator never modifies a
// correctly computed result, it only catches drift between the rules.
func (e *Engine) ValidatePricingBreakdown(b models.PricingBreakdown, strict bool) error {
	violations := e.collectViolations(b)
	if len(violations) == 0 {
		return nil
	}
	if strict {
		return violations[0]
	}
	if e.Logger != nil {
		for _, v := range violations {
			e.Logger.Warn("pricing breakdown inconsistency",
				zap.String("field", v.Field),
				zap.Float64("expected", v.Expected),
				zap.Float64("actual", v.Actual))
		}
	}
	return nil
}

// ValidatePricingBreakdownDetailed collects all violations and warnings for
// reporting and testing contexts instead of stopping at the first problem.
func (e *Engine) ValidatePricingBreakdownDetailed(b models.PricingBreakdown) BreakdownReport {
	report := BreakdownReport{IsValid: true}
	for _, v := range e.collectViolations(b) {
		report.Errors = append(report.Errors, v.Error())
	}
	report.Warnings = e.collectWarnings(b)
	report.IsValid = len(report.Errors) == 0
	return report
}

func (e *Engine) collectViolations(b models.PricingBreakdown) []BreakdownValidationError {
	var out []BreakdownValidationError

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"subtotal", b.Subtotal},
		{"discountAmount", b.DiscountAmount},
		{"tax", b.Tax},
		{"finalTotal", b.FinalTotal},
	} {
		if f.value < 0 {
			out = append(out, BreakdownValidationError{Field: f.name, Expected: 0, Actual: f.value})
		}
	}
	if b.Deposit != nil && *b.Deposit < 0 {
		out = append(out, BreakdownValidationError{Field: "deposit", Expected: 0, Actual: *b.Deposit})
	}

	if b.DiscountPercent < 0 || b.DiscountPercent > 100 {
		out = append(out, BreakdownValidationError{Field: "discountPercent", Expected: 0, Actual: b.DiscountPercent})
	}

	if b.DiscountAmount > b.Subtotal+e.tolerance() {
		out = append(out, BreakdownValidationError{Field: "discountAmount", Expected: b.Subtotal, Actual: b.DiscountAmount})
	}

	// A recorded discount amount must be backed by a percentage, and the two
	// must agree with each other.
	if b.DiscountAmount > 0 && b.DiscountPercent <= 0 {
		out = append(out, BreakdownValidationError{Field: "discountPercent", Expected: 0, Actual: b.DiscountPercent})
	}
	if b.DiscountPercent >= 0 && b.DiscountPercent <= 100 {
		expectedDiscount := e.Round(b.Subtotal * b.DiscountPercent / 100)
		if !e.withinTolerance(b.DiscountAmount, expectedDiscount) {
			out = append(out, BreakdownValidationError{Field: "discountAmount", Expected: expectedDiscount, Actual: b.DiscountAmount})
		}
	}

	expectedTotal := e.Round(b.Subtotal - b.DiscountAmount + b.Tax)
	if !e.withinTolerance(b.FinalTotal, expectedTotal) {
		out = append(out, BreakdownValidationError{Field: "finalTotal", Expected: expectedTotal, Actual: b.FinalTotal})
	}

	if b.Deposit != nil {
		expectedDeposit := e.Round(b.FinalTotal * e.DepositRate)
		if !e.withinTolerance(*b.Deposit, expectedDeposit) {
			out = append(out, BreakdownValidationError{Field: "deposit", Expected: expectedDeposit, Actual: *b.Deposit})
		}
	}

	return out
}

// collectWarnings flags advisory findings that do not invalidate a
// breakdown but usually indicate drift worth investigating.
func (e *Engine) collectWarnings(b models.PricingBreakdown) []string {
	var out []string

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"subtotal", b.Subtotal},
		{"discountAmount", b.DiscountAmount},
		{"tax", b.Tax},
		{"finalTotal", b.FinalTotal},
	} {
		if math.Abs(f.value-e.Round(f.value)) > 1e-9 {
			out = append(out, "field "+f.name+" is not rounded to cents")
		}
	}

	// Tax should match the configured rate applied to the discounted
	// subtotal. A mismatch is advisory only: the rate may have changed in
	// config since the breakdown was computed.
	expectedTax := e.Round((b.Subtotal - b.DiscountAmount) * e.TaxRate)
	if !e.withinTolerance(b.Tax, expectedTax) {
		out = append(out, "tax does not match the configured rate")
	}

	return out
}
