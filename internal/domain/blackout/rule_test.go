//go:build unit

package blackout_test

import (
	"testing"
	"time"

	"rehearsal-rooms/internal/domain/blackout"
	"rehearsal-rooms/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-08-26 is a Wednesday.
var wednesday = time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

func TestRuleConstructors(t *testing.T) {
	campusID := uuid.New()

	t.Run("exact date rule", func(t *testing.T) {
		rule, err := blackout.NewExactDateRule(campusID, wednesday, 8, 12, "maintenance")
		require.NoError(t, err)
		assert.Equal(t, blackout.KindExactDate, rule.RuleKind())
		assert.Equal(t, wednesday, rule.Date())
	})

	t.Run("weekly rule", func(t *testing.T) {
		rule, err := blackout.NewWeeklyRule(campusID, time.Monday, 8, 12, "")
		require.NoError(t, err)
		assert.Equal(t, blackout.KindWeekly, rule.RuleKind())
		assert.Equal(t, time.Monday, rule.Weekday())
	})

	t.Run("global rule", func(t *testing.T) {
		rule, err := blackout.NewGlobalRule(campusID, 0, 24, "renovation")
		require.NoError(t, err)
		assert.Equal(t, blackout.KindGlobal, rule.RuleKind())
	})

	t.Run("invalid hours rejected", func(t *testing.T) {
		cases := []struct{ start, end int }{
			{-1, 12},
			{8, 25},
			{12, 12},
			{14, 9},
		}
		for _, tc := range cases {
			_, err := blackout.NewGlobalRule(campusID, tc.start, tc.end, "")
			assert.ErrorIs(t, err, blackout.ErrInvalidHourRange)
		}
	})
}

func TestRuleAppliesTo(t *testing.T) {
	campusID := uuid.New()
	thursday := wednesday.AddDate(0, 0, 1)

	exact, err := blackout.NewExactDateRule(campusID, wednesday, 8, 12, "")
	require.NoError(t, err)
	assert.True(t, exact.AppliesTo(wednesday))
	assert.False(t, exact.AppliesTo(thursday))

	weekly, err := blackout.NewWeeklyRule(campusID, time.Wednesday, 8, 12, "")
	require.NoError(t, err)
	assert.True(t, weekly.AppliesTo(wednesday))
	assert.True(t, weekly.AppliesTo(wednesday.AddDate(0, 0, 7)))
	assert.False(t, weekly.AppliesTo(thursday))

	global, err := blackout.NewGlobalRule(campusID, 8, 12, "")
	require.NoError(t, err)
	assert.True(t, global.AppliesTo(wednesday))
	assert.True(t, global.AppliesTo(thursday))
}

func TestRuleBlocks(t *testing.T) {
	campusID := uuid.New()
	rule, err := blackout.NewExactDateRule(campusID, wednesday, 10, 14, "")
	require.NoError(t, err)

	hours := func(start, end int) reservation.HourRange {
		return reservation.ReconstructHourRange(start, end)
	}

	assert.True(t, rule.Blocks(wednesday, hours(9, 11)), "partial overlap at front")
	assert.True(t, rule.Blocks(wednesday, hours(13, 15)), "partial overlap at back")
	assert.True(t, rule.Blocks(wednesday, hours(10, 14)), "identical range")
	assert.True(t, rule.Blocks(wednesday, hours(11, 12)), "contained range")
	assert.False(t, rule.Blocks(wednesday, hours(8, 10)), "adjacent before")
	assert.False(t, rule.Blocks(wednesday, hours(14, 16)), "adjacent after")
	assert.False(t, rule.Blocks(wednesday.AddDate(0, 0, 1), hours(10, 12)), "different day")
}

func TestReconstructRule(t *testing.T) {
	id, campusID := uuid.New(), uuid.New()
	monday := time.Monday

	t.Run("date wins over weekday", func(t *testing.T) {
		rule := blackout.ReconstructRule(id, campusID, &wednesday, &monday, 8, 12, "x")
		assert.Equal(t, blackout.KindExactDate, rule.RuleKind())
	})

	t.Run("weekday alone makes a weekly rule", func(t *testing.T) {
		rule := blackout.ReconstructRule(id, campusID, nil, &monday, 8, 12, "x")
		assert.Equal(t, blackout.KindWeekly, rule.RuleKind())
		assert.Equal(t, time.Monday, rule.Weekday())
	})

	t.Run("neither makes a global rule", func(t *testing.T) {
		rule := blackout.ReconstructRule(id, campusID, nil, nil, 8, 12, "x")
		assert.Equal(t, blackout.KindGlobal, rule.RuleKind())
	})
}

func TestRuleReason(t *testing.T) {
	campusID := uuid.New()

	withReason, err := blackout.NewGlobalRule(campusID, 8, 12, "band camp")
	require.NoError(t, err)
	assert.Equal(t, "band camp", withReason.Reason())

	withoutReason, err := blackout.NewGlobalRule(campusID, 8, 12, "")
	require.NoError(t, err)
	assert.Equal(t, blackout.DefaultReason, withoutReason.Reason())
	assert.Equal(t, "", withoutReason.RawReason())
}
