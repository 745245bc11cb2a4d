package pricing

// CalculateDeposit applies the engine's configured deposit rate to a total.
func (e *Engine) CalculateDeposit(total float64) (float64, error) {
	return e.CalculateDepositWithRate(total, e.DepositRate)
}

// CalculateDepositWithRate computes total × rate. The rate must lie in [0,1]
// and the total must not be negative.
func (e *Engine) CalculateDepositWithRate(total, rate float64) (float64, error) {
	if total < 0 {
		return 0, ValidationError{Field: "total", Message: "must not be negative"}
	}
	if rate < 0 || rate > 1 {
		return 0, ValidationError{Field: "depositRate", Message: "must be between 0 and 1"}
	}
	return e.Round(total * rate), nil
}
