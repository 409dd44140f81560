package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekKeyFor_StableAcrossWeek(t *testing.T) {
	// 2025-01-06 is a Monday; the whole span through Sunday shares a key.
	mon := date(2025, time.January, 6)
	key := WeekKeyFor(mon)
	assert.Equal(t, "2025-W02", key)
	for i := 1; i < 7; i++ {
		assert.Equal(t, key, WeekKeyFor(mon.AddDate(0, 0, i)), "day offset %d", i)
	}
	assert.NotEqual(t, key, WeekKeyFor(mon.AddDate(0, 0, 7)))
	assert.NotEqual(t, key, WeekKeyFor(mon.AddDate(0, 0, -1)))
}

func TestWeekKeyFor_ThursdayRuleAtYearBoundary(t *testing.T) {
	// 2024-12-30 (Mon) and 2025-01-01 (Wed) belong to 2025-W01.
	assert.Equal(t, "2025-W01", WeekKeyFor(date(2024, time.December, 30)))
	assert.Equal(t, "2025-W01", WeekKeyFor(date(2025, time.January, 1)))
	// 2023-01-01 (Sun) still belongs to 2022-W52.
	assert.Equal(t, "2022-W52", WeekKeyFor(date(2023, time.January, 1)))
}

func TestWeekRange_RoundTripsKey(t *testing.T) {
	for _, d := range []time.Time{
		date(2025, time.January, 6),
		date(2025, time.June, 15),
		date(2024, time.December, 31),
		date(2026, time.January, 1),
	} {
		key := WeekKeyFor(d)
		start, end, err := WeekRange(key)
		require.NoError(t, err, "key %s", key)
		assert.Equal(t, time.Monday, start.Weekday())
		assert.True(t, DateInWeek(d, start, end), "date %s not in range of %s", d, key)
		assert.Equal(t, key, WeekKeyFor(start))
		assert.Equal(t, key, WeekKeyFor(end))
	}
}

func TestWeekRange_BoundsOfKnownWeek(t *testing.T) {
	start, end, err := WeekRange("2025-W02")
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.January, 6), start)
	assert.True(t, end.After(date(2025, time.January, 12)))
	assert.True(t, end.Before(date(2025, time.January, 13)))
}

func TestWeekRange_Week53(t *testing.T) {
	// 2020 has 53 ISO weeks; 2025 does not.
	_, _, err := WeekRange("2020-W53")
	require.NoError(t, err)

	_, _, err = WeekRange("2025-W53")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestWeekRange_Malformed(t *testing.T) {
	for _, key := range []string{"", "2025", "2025-W00", "2025-W54", "garbage"} {
		_, _, err := WeekRange(key)
		assert.ErrorIs(t, err, ErrInvalidInput, "key %q", key)
	}
}

func TestWeekSubmission_Approve(t *testing.T) {
	s := &WeekSubmission{WeekKey: "2025-W02", SubmittedAt: testNow}
	assert.Equal(t, WeekSubmitted, s.State())

	require.NoError(t, s.Approve(testNow.Add(time.Hour)))
	assert.Equal(t, WeekApproved, s.State())

	err := s.Approve(testNow.Add(2 * time.Hour))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyInState)
}
