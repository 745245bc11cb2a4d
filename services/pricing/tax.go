package pricing

// CalculateTax applies the engine's configured tax rate to a subtotal.
func (e *Engine) CalculateTax(subtotal float64) (float64, error) {
	return e.CalculateTaxWithRate(subtotal, e.TaxRate)
}

// CalculateTaxWithRate computes subtotal × rate. The rate must lie in [0,1]
// and the subtotal must not be negative.
func (e *Engine) CalculateTaxWithRate(subtotal, rate float64) (float64, error) {
	if subtotal < 0 {
		return 0, ValidationError{Field: "subtotal", Message: "must not be negative"}
	}
	if rate < 0 || rate > 1 {
		return 0, ValidationError{Field: "taxRate", Message: "must be between 0 and 1"}
	}
	return e.Round(subtotal * rate), nil
}
