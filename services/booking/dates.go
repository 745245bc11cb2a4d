package booking

import (
	"math"
	"time"

	"github.com/kanata-kan/explorekg-backend-sub001/models"
)

const millisPerDay = 24 * 60 * 60 * 1000

// dateOnly strips the time-of-day, keeping the calendar date in the value's
// own location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CalculateEndDate returns start + days with the time-of-day normalized to
// midnight, making the end exclusive: the booking occupies [start, end).
func CalculateEndDate(start time.Time, days int) (time.Time, error) {
	if start.IsZero() {
		return time.Time{}, models.ValidationError{Field: "startDate", Message: "start date is required"}
	}
	if days < 1 {
		return time.Time{}, models.ValidationError{Field: "days", Message: "duration must be at least 1 day"}
	}
	return dateOnly(start.AddDate(0, 0, days)), nil
}

// AutoCalculateDates fills in a missing end date. An explicit end passes
// through untouched; otherwise, when both a start and a day count are
// supplied, the end is derived. Anything else is returned unchanged so the
// caller can decide whether an open range is acceptable.
func AutoCalculateDates(start, end *time.Time, days int) (*time.Time, *time.Time, error) {
	if end != nil {
		return start, end, nil
	}
	if start != nil && days > 0 {
		derived, err := CalculateEndDate(*start, days)
		if err != nil {
			return nil, nil, err
		}
		return start, &derived, nil
	}
	return start, end, nil
}

// ValidateDateRange fails unless start is strictly before end. A zero-length
// range is disallowed.
func ValidateDateRange(start, end time.Time) error {
	if !start.Before(end) {
		return models.ValidationError{Field: "dateRange", Message: "start date must be before end date"}
	}
	return nil
}

// ValidateFutureDate compares date-only against today. A date before today
// always fails; when allowToday is false the date must be strictly after
// today.
func ValidateFutureDate(date time.Time, allowToday bool) error {
	today := dateOnly(time.Now())
	d := dateOnly(date)
	if d.Before(today) {
		return models.ValidationError{Field: "date", Message: "date must not be in the past"}
	}
	if !allowToday && !d.After(today) {
		return models.ValidationError{Field: "date", Message: "date must be after today"}
	}
	return nil
}

// CalculateDurationInDays returns the day count of [start, end) using
// date-only values, rounding partial days up. Equal dates yield 0.
func CalculateDurationInDays(start, end time.Time) int {
	diff := dateOnly(end).Sub(dateOnly(start)).Milliseconds()
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(float64(diff) / float64(millisPerDay)))
}

// ValidateMinimumDuration fails when the range spans fewer than days days.
// It is a no-op when either date is absent.
func ValidateMinimumDuration(start, end *time.Time, days int) error {
	if start == nil || end == nil {
		return nil
	}
	if CalculateDurationInDays(*start, *end) < days {
		return models.ValidationError{Field: "dateRange", Message: "booking is shorter than the minimum duration"}
	}
	return nil
}

// ValidateMaximumDuration fails when the range spans more than days days.
// It is a no-op when either date is absent.
func ValidateMaximumDuration(start, end *time.Time, days int) error {
	if start == nil || end == nil {
		return nil
	}
	if CalculateDurationInDays(*start, *end) > days {
		return models.ValidationError{Field: "dateRange", Message: "booking is longer than the maximum duration"}
	}
	return nil
}

// DoRangesOverlap reports whether two [start, end) ranges intersect. Because
// ends are exclusive, ranges that merely touch at a boundary do not overlap,
// which is what permits back-to-back bookings of the same resource.
func DoRangesOverlap(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && start2.Before(end1)
}
