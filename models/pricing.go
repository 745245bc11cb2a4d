package models

// PricingBreakdown is the set of computed monetary fields for one booking.
// The fields are derived once by the pricing engine and cross-checked by its
// validator; they are never recomputed after the booking leaves pending.
type PricingBreakdown struct {
	Subtotal        float64  `bson:"subtotal" json:"subtotal"`
	DiscountPercent float64  `bson:"discount_percent" json:"discountPercent"`
	DiscountAmount  float64  `bson:"discount_amount" json:"discountAmount"`
	Tax             float64  `bson:"tax" json:"tax"`
	FinalTotal      float64  `bson:"final_total" json:"finalTotal"`
	Deposit         *float64 `bson:"deposit,omitempty" json:"deposit,omitempty"`
}
