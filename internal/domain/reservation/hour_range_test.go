//go:build unit

package reservation_test

import (
	"testing"

	"rehearsal-rooms/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHourRange(t *testing.T) {
	t.Run("accepts whole slots and sub-ranges", func(t *testing.T) {
		cases := []struct {
			name       string
			start, end int
		}{
			{"morning slot", 8, 12},
			{"afternoon slot", 13, 18},
			{"evening slot", 19, 22},
			{"sub-range of morning", 9, 11},
			{"single hour", 13, 14},
			{"sub-range touching slot end", 20, 22},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				hr, err := reservation.NewHourRange(tc.start, tc.end)
				require.NoError(t, err)
				assert.Equal(t, tc.start, hr.Start())
				assert.Equal(t, tc.end, hr.End())
			})
		}
	})

	t.Run("rejects ranges outside a single slot", func(t *testing.T) {
		cases := []struct {
			name       string
			start, end int
		}{
			{"spans lunch break", 11, 14},
			{"spans dinner break", 17, 20},
			{"starts before opening", 7, 10},
			{"ends after closing", 21, 23},
			{"inside the lunch gap", 12, 13},
			{"start equals end", 9, 9},
			{"start after end", 11, 9},
			{"negative start", -1, 10},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := reservation.NewHourRange(tc.start, tc.end)
				assert.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)
			})
		}
	})
}

func TestHourRangeHours(t *testing.T) {
	hr, err := reservation.NewHourRange(13, 18)
	require.NoError(t, err)
	assert.Equal(t, 5, hr.Hours())
}

func TestHourRangeOverlaps(t *testing.T) {
	base := reservation.ReconstructHourRange(9, 11)

	cases := []struct {
		name    string
		other   reservation.HourRange
		overlap bool
	}{
		{"identical", reservation.ReconstructHourRange(9, 11), true},
		{"contained", reservation.ReconstructHourRange(9, 10), true},
		{"partial front", reservation.ReconstructHourRange(8, 10), true},
		{"partial back", reservation.ReconstructHourRange(10, 12), true},
		{"adjacent before", reservation.ReconstructHourRange(8, 9), false},
		{"adjacent after", reservation.ReconstructHourRange(11, 12), false},
		{"disjoint", reservation.ReconstructHourRange(13, 15), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlap, base.Overlaps(tc.other))
			assert.Equal(t, tc.overlap, tc.other.Overlaps(base))
		})
	}
}

func TestCanonicalSlots(t *testing.T) {
	slots := reservation.CanonicalSlots()
	require.Len(t, slots, 3)
	assert.Equal(t, "08:00-12:00", slots[0].String())
	assert.Equal(t, "13:00-18:00", slots[1].String())
	assert.Equal(t, "19:00-22:00", slots[2].String())
}
