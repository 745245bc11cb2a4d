package booking

import (
	"testing"
	"time"

	"github.com/kanata-kan/explorekg-backend-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeSnapshot(itemType models.ItemType) models.Snapshot {
	price := 100.0
	captured := time.Now()
	s := models.Snapshot{
		ItemType:   itemType,
		ItemID:     "item-1",
		Title:      "Song-Kul Horse Trek",
		Currency:   "USD",
		Locale:     "en",
		CapturedAt: &captured,
	}
	switch itemType {
	case models.ItemTypeCar:
		s.PricePerDay = &price
	default:
		s.PricePerPerson = &price
	}
	return s
}

func TestValidateSnapshotComplete(t *testing.T) {
	for _, it := range []models.ItemType{
		models.ItemTypePackage,
		models.ItemTypeActivity,
		models.ItemTypeCar,
	} {
		assert.NoError(t, ValidateSnapshot(completeSnapshot(it)), string(it))
		assert.True(t, IsSnapshotComplete(completeSnapshot(it)), string(it))
	}
}

func TestValidateSnapshotMissingFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*models.Snapshot)
	}{
		{"itemType", func(s *models.Snapshot) { s.ItemType = "" }},
		{"itemId", func(s *models.Snapshot) { s.ItemID = "" }},
		{"title", func(s *models.Snapshot) { s.Title = "" }},
		{"currency", func(s *models.Snapshot) { s.Currency = "" }},
		{"locale", func(s *models.Snapshot) { s.Locale = "" }},
		{"capturedAt", func(s *models.Snapshot) { s.CapturedAt = nil }},
	}
	for _, tc := range cases {
		s := completeSnapshot(models.ItemTypePackage)
		tc.mutate(&s)

		err := ValidateSnapshot(s)
		var verr models.ValidationError
		require.ErrorAs(t, err, &verr, tc.field)
		assert.Equal(t, tc.field, verr.Field)
	}
}

func TestValidateSnapshotPriceFieldPerType(t *testing.T) {
	// Per-person items need PricePerPerson; a per-day price does not help.
	s := completeSnapshot(models.ItemTypeActivity)
	perDay := 40.0
	s.PricePerPerson = nil
	s.PricePerDay = &perDay

	err := ValidateSnapshot(s)
	var verr models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "pricePerPerson", verr.Field)

	// Car rentals are priced per day.
	s = completeSnapshot(models.ItemTypeCar)
	s.PricePerDay = nil

	err = ValidateSnapshot(s)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "pricePerDay", verr.Field)
}

func TestValidateSnapshotUnknownType(t *testing.T) {
	s := completeSnapshot(models.ItemTypePackage)
	s.ItemType = "yurt"

	err := ValidateSnapshot(s)
	var verr models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "itemType", verr.Field)
	assert.Contains(t, verr.Error(), "unknown item type")
}

func TestValidateSnapshotIsReadOnly(t *testing.T) {
	s := completeSnapshot(models.ItemTypePackage)
	before := s

	require.NoError(t, ValidateSnapshot(s))
	assert.Equal(t, before, s)
}
