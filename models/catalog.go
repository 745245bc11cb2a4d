package models

import "time"

// CatalogItem is the tagged union over the three bookable item kinds. Each
// variant carries only the price field its type requires, so snapshot
// construction never probes for missing fields at runtime.
type CatalogItem interface {
	Type() ItemType
	Identifier() string
	ItemCurrency() string
	DefaultDiscount() float64
	// BuildSnapshot captures the priced item data for a new booking.
	BuildSnapshot(now time.Time) Snapshot
}

// TourPackage is a multi-day guided tour sold per person.
type TourPackage struct {
	ID              string    `bson:"id" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Currency        string    `bson:"currency" json:"currency"`
	Locale          string    `bson:"locale" json:"locale"`
	PricePerPerson  float64   `bson:"price_per_person" json:"pricePerPerson"`
	DiscountPercent float64   `bson:"discount_percent,omitempty" json:"discountPercent,omitempty"`
	DurationDays    int       `bson:"duration_days" json:"durationDays"`
	Region          string    `bson:"region,omitempty" json:"region,omitempty"`
	MaxGroupSize    int       `bson:"max_group_size,omitempty" json:"maxGroupSize,omitempty"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

func (p *TourPackage) Type() ItemType          { return ItemTypePackage }
func (p *TourPackage) Identifier() string      { return p.ID }
func (p *TourPackage) ItemCurrency() string    { return p.Currency }
func (p *TourPackage) DefaultDiscount() float64 { return p.DiscountPercent }

func (p *TourPackage) BuildSnapshot(now time.Time) Snapshot {
	price := p.PricePerPerson
	return Snapshot{
		ItemType:       ItemTypePackage,
		ItemID:         p.ID,
		Title:          p.Title,
		Currency:       p.Currency,
		Locale:         p.Locale,
		PricePerPerson: &price,
		CapturedAt:     &now,
	}
}

// Activity is a single-day bookable experience sold per person.
type Activity struct {
	ID              string    `bson:"id" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Currency        string    `bson:"currency" json:"currency"`
	Locale          string    `bson:"locale" json:"locale"`
	PricePerPerson  float64   `bson:"price_per_person" json:"pricePerPerson"`
	DiscountPercent float64   `bson:"discount_percent,omitempty" json:"discountPercent,omitempty"`
	Location        string    `bson:"location,omitempty" json:"location,omitempty"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

func (a *Activity) Type() ItemType          { return ItemTypeActivity }
func (a *Activity) Identifier() string      { return a.ID }
func (a *Activity) ItemCurrency() string    { return a.Currency }
func (a *Activity) DefaultDiscount() float64 { return a.DiscountPercent }

func (a *Activity) BuildSnapshot(now time.Time) Snapshot {
	price := a.PricePerPerson
	return Snapshot{
		ItemType:       ItemTypeActivity,
		ItemID:         a.ID,
		Title:          a.Title,
		Currency:       a.Currency,
		Locale:         a.Locale,
		PricePerPerson: &price,
		CapturedAt:     &now,
	}
}

// CarRental is a vehicle rented over a date range and priced per day.
type CarRental struct {
	ID              string    `bson:"id" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Currency        string    `bson:"currency" json:"currency"`
	Locale          string    `bson:"locale" json:"locale"`
	PricePerDay     float64   `bson:"price_per_day" json:"pricePerDay"`
	DiscountPercent float64   `bson:"discount_percent,omitempty" json:"discountPercent,omitempty"`
	Seats           int       `bson:"seats,omitempty" json:"seats,omitempty"`
	Transmission    string    `bson:"transmission,omitempty" json:"transmission,omitempty"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

func (c *CarRental) Type() ItemType          { return ItemTypeCar }
func (c *CarRental) Identifier() string      { return c.ID }
func (c *CarRental) ItemCurrency() string    { return c.Currency }
func (c *CarRental) DefaultDiscount() float64 { return c.DiscountPercent }

func (c *CarRental) BuildSnapshot(now time.Time) Snapshot {
	price := c.PricePerDay
	return Snapshot{
		ItemType:    ItemTypeCar,
		ItemID:      c.ID,
		Title:       c.Title,
		Currency:    c.Currency,
		Locale:      c.Locale,
		PricePerDay: &price,
		CapturedAt:  &now,
	}
}
