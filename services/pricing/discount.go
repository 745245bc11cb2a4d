package pricing

// ApplyDiscount returns the price after deducting a percentage discount.
func (e *Engine) ApplyDiscount(price, percent float64) (float64, error) {
	amount, err := e.CalculateDiscountAmount(price, percent)
	if err != nil {
		return 0, err
	}
	return e.Round(price - amount), nil
}

// CalculateDiscountAmount returns the monetary value of a percentage
// discount. The price must not be negative and the percentage must lie in
// [0,100].
func (e *Engine) CalculateDiscountAmount(price, percent float64) (float64, error) {
	if price < 0 {
		return 0, ValidationError{Field: "price", Message: "must not be negative"}
	}
	if percent < 0 || percent > 100 {
		return 0, ValidationError{Field: "discountPercent", Message: "must be between 0 and 100"}
	}
	return e.Round(price * percent / 100), nil
}
