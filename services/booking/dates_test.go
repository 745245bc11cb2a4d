package booking

import (
	"testing"
	"time"

	"github.com/kanata-kan/explorekg-backend-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateEndDate(t *testing.T) {
	end, err := CalculateEndDate(day(2026, time.June, 1), 5)
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.June, 6), end)

	// Time-of-day on the start is stripped from the result.
	end, err = CalculateEndDate(time.Date(2026, time.June, 1, 15, 30, 0, 0, time.UTC), 5)
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.June, 6), end)

	_, err = CalculateEndDate(time.Time{}, 5)
	var verr models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "startDate", verr.Field)

	_, err = CalculateEndDate(day(2026, time.June, 1), 0)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "days", verr.Field)
}

func TestEndDateDurationRoundTrip(t *testing.T) {
	start := day(2026, time.June, 1)
	for _, days := range []int{1, 2, 7, 30} {
		end, err := CalculateEndDate(start, days)
		require.NoError(t, err)
		assert.Equal(t, days, CalculateDurationInDays(start, end))
	}
}

func TestAutoCalculateDates(t *testing.T) {
	start := day(2026, time.June, 1)
	explicitEnd := day(2026, time.June, 4)

	// An explicit end wins over the day count.
	s, e, err := AutoCalculateDates(&start, &explicitEnd, 10)
	require.NoError(t, err)
	assert.Equal(t, &start, s)
	assert.Equal(t, &explicitEnd, e)

	// No end: derived from start + days.
	s, e, err = AutoCalculateDates(&start, nil, 3)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, day(2026, time.June, 4), *e)
	assert.Equal(t, &start, s)

	// Nothing to derive from: passed through.
	s, e, err = AutoCalculateDates(nil, nil, 3)
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.Nil(t, e)
}

func TestValidateDateRange(t *testing.T) {
	assert.NoError(t, ValidateDateRange(day(2026, time.June, 1), day(2026, time.June, 2)))
	assert.Error(t, ValidateDateRange(day(2026, time.June, 2), day(2026, time.June, 1)))
	// Zero-length range is disallowed.
	assert.Error(t, ValidateDateRange(day(2026, time.June, 1), day(2026, time.June, 1)))
}

func TestValidateFutureDate(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	today := time.Now()
	tomorrow := time.Now().AddDate(0, 0, 1)

	assert.Error(t, ValidateFutureDate(yesterday, true))
	assert.Error(t, ValidateFutureDate(yesterday, false))
	assert.NoError(t, ValidateFutureDate(today, true))
	assert.Error(t, ValidateFutureDate(today, false))
	assert.NoError(t, ValidateFutureDate(tomorrow, false))
}

func TestCalculateDurationInDays(t *testing.T) {
	assert.Equal(t, 5, CalculateDurationInDays(day(2026, time.June, 1), day(2026, time.June, 6)))
	assert.Equal(t, 0, CalculateDurationInDays(day(2026, time.June, 6), day(2026, time.June, 6)))
	assert.Equal(t, 0, CalculateDurationInDays(day(2026, time.June, 6), day(2026, time.June, 1)))

	// Partial days round up once the time-of-day is stripped.
	assert.Equal(t, 1, CalculateDurationInDays(
		time.Date(2026, time.June, 1, 23, 0, 0, 0, time.UTC),
		time.Date(2026, time.June, 2, 1, 0, 0, 0, time.UTC)))
}

func TestDurationBounds(t *testing.T) {
	start := day(2026, time.June, 1)
	end := day(2026, time.June, 4)

	assert.NoError(t, ValidateMinimumDuration(&start, &end, 1))
	assert.Error(t, ValidateMinimumDuration(&start, &end, 5))
	assert.NoError(t, ValidateMaximumDuration(&start, &end, 30))
	assert.Error(t, ValidateMaximumDuration(&start, &end, 2))

	// Absent dates are not this validator's problem.
	assert.NoError(t, ValidateMinimumDuration(nil, &end, 5))
	assert.NoError(t, ValidateMaximumDuration(&start, nil, 2))
}

func TestDoRangesOverlap(t *testing.T) {
	jan := func(d int) time.Time { return day(2026, time.January, d) }

	assert.True(t, DoRangesOverlap(jan(1), jan(6), jan(4), jan(8)))
	assert.False(t, DoRangesOverlap(jan(1), jan(6), jan(6), jan(10)))
	assert.True(t, DoRangesOverlap(jan(4), jan(8), jan(1), jan(6)))
	assert.False(t, DoRangesOverlap(jan(6), jan(10), jan(1), jan(6)))

	// One range fully inside the other.
	assert.True(t, DoRangesOverlap(jan(1), jan(10), jan(3), jan(5)))
}
