package booking

import (
	"testing"

	"github.com/kanata-kan/explorekg-backend-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to models.BookingStatus
		want     bool
	}{
		{models.StatusPending, models.StatusConfirmed, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusPending, models.StatusExpired, true},
		{models.StatusConfirmed, models.StatusCancelled, true},
		{models.StatusConfirmed, models.StatusPending, false},
		{models.StatusConfirmed, models.StatusExpired, false},
		{models.StatusCancelled, models.StatusConfirmed, false},
		{models.StatusCancelled, models.StatusPending, false},
		{models.StatusExpired, models.StatusConfirmed, false},
		{models.StatusExpired, models.StatusCancelled, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransitionSameStateIsNoOp(t *testing.T) {
	for _, s := range []models.BookingStatus{
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusCancelled,
		models.StatusExpired,
	} {
		assert.True(t, CanTransition(s, s), "%s -> %s", s, s)
	}
}

func TestValidateTransitionError(t *testing.T) {
	err := ValidateTransition(models.StatusCancelled, models.StatusConfirmed)
	var terr StateTransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, models.StatusCancelled, terr.From)
	assert.Equal(t, models.StatusConfirmed, terr.To)
	assert.Empty(t, terr.ValidTransitions)
	assert.Contains(t, terr.Error(), "cannot transition booking from cancelled to confirmed")
}

func TestValidNextStatesReturnsCopy(t *testing.T) {
	next := ValidNextStates(models.StatusPending)
	require.Len(t, next, 3)
	next[0] = models.StatusExpired

	assert.Equal(t, models.StatusConfirmed, ValidNextStates(models.StatusPending)[0])
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	assert.Empty(t, ValidNextStates(models.StatusCancelled))
	assert.Empty(t, ValidNextStates(models.StatusExpired))
}

func TestCanModifyAndCancel(t *testing.T) {
	assert.True(t, CanModify(models.StatusPending))
	assert.True(t, CanModify(models.StatusConfirmed))
	assert.False(t, CanModify(models.StatusCancelled))
	assert.False(t, CanModify(models.StatusExpired))

	assert.True(t, CanCancel(models.StatusPending))
	assert.True(t, CanCancel(models.StatusConfirmed))
	assert.False(t, CanCancel(models.StatusExpired))
}

func TestCanPay(t *testing.T) {
	assert.True(t, CanPay(models.StatusPending, models.PaymentUnpaid, false))
	assert.False(t, CanPay(models.StatusPending, models.PaymentUnpaid, true))
	assert.False(t, CanPay(models.StatusPending, models.PaymentPaid, false))
	assert.False(t, CanPay(models.StatusConfirmed, models.PaymentUnpaid, false))

	// A failed attempt does not consume the guest's chance to pay.
	assert.True(t, CanPay(models.StatusPending, models.PaymentFailed, false))
	assert.False(t, CanPay(models.StatusPending, models.PaymentFailed, true))
}
