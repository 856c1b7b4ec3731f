//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"rehearsal-rooms/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	hours, err := reservation.NewHourRange(9, 11)
	require.NoError(t, err)
	return reservation.NewReservation(uuid.New(), uuid.New(), date(2026, 8, 26), hours)
}

func TestNewReservation(t *testing.T) {
	res := newTestReservation(t)

	assert.NotEqual(t, uuid.Nil, res.ID())
	assert.Equal(t, reservation.StatusActive, res.Status())
	assert.True(t, res.IsActive())
	assert.False(t, res.KeyPickedUp())
	assert.Nil(t, res.KeyPickupTime())
	assert.False(t, res.KeyReturned())
	assert.Nil(t, res.KeyReturnTime())
}

func TestCancel(t *testing.T) {
	t.Run("active reservation cancels", func(t *testing.T) {
		res := newTestReservation(t)
		require.NoError(t, res.Cancel())
		assert.Equal(t, reservation.StatusCancelled, res.Status())
		assert.False(t, res.IsActive())
	})

	t.Run("second cancel fails", func(t *testing.T) {
		res := newTestReservation(t)
		require.NoError(t, res.Cancel())
		assert.ErrorIs(t, res.Cancel(), reservation.ErrAlreadyCancelled)
	})
}

func TestPickUpKey(t *testing.T) {
	now := time.Date(2026, 8, 26, 8, 5, 0, 0, time.UTC)

	t.Run("first pickup stamps the time", func(t *testing.T) {
		res := newTestReservation(t)
		require.NoError(t, res.PickUpKey(now))
		assert.True(t, res.KeyPickedUp())
		require.NotNil(t, res.KeyPickupTime())
		assert.Equal(t, now, *res.KeyPickupTime())
	})

	t.Run("second pickup fails and keeps the original stamp", func(t *testing.T) {
		res := newTestReservation(t)
		require.NoError(t, res.PickUpKey(now))
		later := now.Add(time.Hour)
		assert.ErrorIs(t, res.PickUpKey(later), reservation.ErrKeyAlreadyPickedUp)
		assert.Equal(t, now, *res.KeyPickupTime())
	})

	t.Run("cancelled reservation rejects pickup", func(t *testing.T) {
		res := newTestReservation(t)
		require.NoError(t, res.Cancel())
		assert.ErrorIs(t, res.PickUpKey(now), reservation.ErrNotActive)
	})
}

func TestReturnKey(t *testing.T) {
	pickupAt := time.Date(2026, 8, 26, 8, 5, 0, 0, time.UTC)
	returnAt := pickupAt.Add(4 * time.Hour)

	t.Run("return after pickup stamps the time", func(t *testing.T) {
		res := newTestReservation(t)
		require.NoError(t, res.PickUpKey(pickupAt))
		require.NoError(t, res.ReturnKey(returnAt))
		assert.True(t, res.KeyReturned())
		require.NotNil(t, res.KeyReturnTime())
		assert.Equal(t, returnAt, *res.KeyReturnTime())
	})

	t.Run("return without pickup fails", func(t *testing.T) {
		res := newTestReservation(t)
		assert.ErrorIs(t, res.ReturnKey(returnAt), reservation.ErrKeyNotPickedUp)
	})

	t.Run("second return fails", func(t *testing.T) {
		res := newTestReservation(t)
		require.NoError(t, res.PickUpKey(pickupAt))
		require.NoError(t, res.ReturnKey(returnAt))
		assert.ErrorIs(t, res.ReturnKey(returnAt.Add(time.Minute)), reservation.ErrKeyAlreadyReturned)
	})
}
