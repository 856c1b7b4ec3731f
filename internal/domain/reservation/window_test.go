//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"rehearsal-rooms/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWindowAt(t *testing.T) {
	// 2026-08-23 and 2026-08-30 are Sundays.
	cases := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "midweek points at the coming Sunday",
			now:       time.Date(2026, 8, 26, 15, 0, 0, 0, time.UTC), // Wednesday
			wantStart: date(2026, 8, 23),
			wantEnd:   date(2026, 8, 30),
		},
		{
			name:      "Sunday before rollover still ends today",
			now:       time.Date(2026, 8, 23, 21, 59, 0, 0, time.UTC),
			wantStart: date(2026, 8, 16),
			wantEnd:   date(2026, 8, 23),
		},
		{
			name:      "Sunday at rollover opens the next week",
			now:       time.Date(2026, 8, 23, 22, 0, 0, 0, time.UTC),
			wantStart: date(2026, 8, 23),
			wantEnd:   date(2026, 8, 30),
		},
		{
			name:      "Sunday after rollover opens the next week",
			now:       time.Date(2026, 8, 23, 23, 0, 0, 0, time.UTC),
			wantStart: date(2026, 8, 23),
			wantEnd:   date(2026, 8, 30),
		},
		{
			name:      "Monday right after rollover keeps the same window",
			now:       time.Date(2026, 8, 24, 0, 30, 0, 0, time.UTC),
			wantStart: date(2026, 8, 23),
			wantEnd:   date(2026, 8, 30),
		},
		{
			name:      "Saturday still ends on the coming Sunday",
			now:       time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC),
			wantStart: date(2026, 8, 23),
			wantEnd:   date(2026, 8, 30),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := reservation.WindowAt(tc.now)
			assert.Equal(t, tc.wantStart, w.Start())
			assert.Equal(t, tc.wantEnd, w.End())
		})
	}
}

func TestWindowBoundaryProperty(t *testing.T) {
	// One minute before Sunday rollover and one hour after it resolve to
	// windows exactly one week apart.
	before := reservation.WindowAt(time.Date(2026, 8, 23, 21, 59, 0, 0, time.UTC))
	after := reservation.WindowAt(time.Date(2026, 8, 23, 23, 0, 0, 0, time.UTC))

	assert.Equal(t, before.End().AddDate(0, 0, 7), after.End())
	assert.Equal(t, before.Start().AddDate(0, 0, 7), after.Start())
}

func TestWindowContains(t *testing.T) {
	w := reservation.WindowAt(time.Date(2026, 8, 26, 15, 0, 0, 0, time.UTC))

	assert.True(t, w.Contains(date(2026, 8, 23)), "start boundary is bookable")
	assert.True(t, w.Contains(date(2026, 8, 30)), "end boundary is bookable")
	assert.True(t, w.Contains(date(2026, 8, 26)))
	assert.False(t, w.Contains(date(2026, 8, 22)))
	assert.False(t, w.Contains(date(2026, 8, 31)))
}

func TestWindowContainsNonUTCClock(t *testing.T) {
	// Dates arriving over the wire parse as UTC midnight; the window must
	// treat them as plain calendar days no matter the server's offset.
	parsed, err := time.Parse("2006-01-02", "2026-08-30")
	assert.NoError(t, err)

	east := reservation.WindowAt(time.Date(2026, 8, 26, 15, 0, 0, 0, time.FixedZone("UTC+8", 8*3600)))
	assert.True(t, east.Contains(parsed), "window-end Sunday is bookable on a UTC-positive server")

	west := reservation.WindowAt(time.Date(2026, 8, 26, 10, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)))
	assert.True(t, west.Contains(parsed))
	assert.Equal(t, date(2026, 8, 23), west.Start())
	assert.Equal(t, date(2026, 8, 30), west.End())
}

func TestDateOf(t *testing.T) {
	got := reservation.DateOf(time.Date(2026, 8, 26, 19, 45, 12, 99, time.UTC))
	assert.Equal(t, date(2026, 8, 26), got)
}

func TestDateOfNormalizesLocation(t *testing.T) {
	west := time.FixedZone("UTC-5", -5*3600)
	east := time.FixedZone("UTC+8", 8*3600)

	// The same wall-clock day in any location resolves to the same day.
	assert.Equal(t, date(2026, 8, 26), reservation.DateOf(time.Date(2026, 8, 26, 10, 0, 0, 0, west)))
	assert.Equal(t, date(2026, 8, 26), reservation.DateOf(time.Date(2026, 8, 26, 23, 30, 0, 0, east)))
}
