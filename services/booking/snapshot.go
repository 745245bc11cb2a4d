package booking

import (
	"github.com/kanata-kan/explorekg-backend-sub001/models"
)

// ValidateSnapshot checks that a snapshot captured every field a booking
// needs to stay priceable after the catalog changes: identity, display and
// currency data plus the price field its item type requires. The policy
// never mutates a snapshot; callers build one from catalog data and pass it
// through here exactly once, at booking creation.
func ValidateSnapshot(s models.Snapshot) error {
	if s.ItemType == "" {
		return models.ValidationError{Field: "itemType", Message: "snapshot is missing the item type"}
	}
	if s.ItemID == "" {
		return models.ValidationError{Field: "itemId", Message: "snapshot is missing the item id"}
	}
	if s.Title == "" {
		return models.ValidationError{Field: "title", Message: "snapshot is missing the title"}
	}
	if s.Currency == "" {
		return models.ValidationError{Field: "currency", Message: "snapshot is missing the currency"}
	}
	if s.Locale == "" {
		return models.ValidationError{Field: "locale", Message: "snapshot is missing the locale"}
	}
	if s.CapturedAt == nil || s.CapturedAt.IsZero() {
		return models.ValidationError{Field: "capturedAt", Message: "snapshot is missing the capture timestamp"}
	}

	switch s.ItemType {
	case models.ItemTypePackage, models.ItemTypeActivity:
		if s.PricePerPerson == nil {
			return models.ValidationError{Field: "pricePerPerson", Message: "snapshot is missing the per-person price"}
		}
	case models.ItemTypeCar:
		if s.PricePerDay == nil {
			return models.ValidationError{Field: "pricePerDay", Message: "snapshot is missing the per-day price"}
		}
	default:
		return models.ValidationError{Field: "itemType", Message: "unknown item type " + string(s.ItemType)}
	}

	return nil
}

// IsSnapshotComplete is the boolean form of ValidateSnapshot.
func IsSnapshotComplete(s models.Snapshot) bool {
	return ValidateSnapshot(s) == nil
}
