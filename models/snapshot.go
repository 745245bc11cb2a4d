package models

import "time"

// ItemType tags which catalog collection an item belongs to.
type ItemType string

const (
	ItemTypePackage  ItemType = "package"
	ItemTypeActivity ItemType = "activity"
	ItemTypeCar      ItemType = "car"
)

// Snapshot is an immutable copy of priced catalog-item data captured at
// booking time. Which price field is set depends on the item type:
// packages and activities carry PricePerPerson, cars carry PricePerDay.
// A later catalog edit must never change what a booked guest is charged.
type Snapshot struct {
	ItemType       ItemType   `bson:"item_type" json:"itemType"`
	ItemID         string     `bson:"item_id" json:"itemId"`
	Title          string     `bson:"title" json:"title"`
	Currency       string     `bson:"currency" json:"currency"`
	Locale         string     `bson:"locale" json:"locale"`
	PricePerPerson *float64   `bson:"price_per_person,omitempty" json:"pricePerPerson,omitempty"`
	PricePerDay    *float64   `bson:"price_per_day,omitempty" json:"pricePerDay,omitempty"`
	CapturedAt     *time.Time `bson:"captured_at" json:"capturedAt"`
}
