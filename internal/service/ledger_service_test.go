package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tidvakt/internal/domain"
	"github.com/alexanderramin/tidvakt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_AddAssignsIDAndNormalizesDate(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	e := &domain.TimeEntry{Date: monday9.Add(13 * time.Hour), Minutes: 90}
	require.NoError(t, f.ledger.Add(ctx, e))

	got, err := f.ledger.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, domain.DateOnly(monday9), got.Date, "entry date is the calendar day")
	assert.Equal(t, 90, got.Minutes)
}

func TestLedger_AddRejectsInvalidEntry(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	err := f.ledger.Add(ctx, &domain.TimeEntry{Date: monday9, Minutes: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = f.ledger.Add(ctx, &domain.TimeEntry{Minutes: 60})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLedger_LockedWeekRejectsAddAndRemove(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	e := testutil.NewTestEntry(monday9, 60)
	require.NoError(t, f.ledger.Add(ctx, e))

	_, err := f.week.Submit(ctx, domain.WeekKeyFor(monday9))
	require.NoError(t, err)

	err = f.ledger.Add(ctx, testutil.NewTestEntry(monday9.AddDate(0, 0, 1), 30))
	assert.ErrorIs(t, err, domain.ErrLocked)

	err = f.ledger.Remove(ctx, e.ID)
	assert.ErrorIs(t, err, domain.ErrLocked)
}

func TestLedger_MarkBilledAllowedInLockedWeek(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	e := testutil.NewTestEntry(monday9, 60)
	require.NoError(t, f.ledger.Add(ctx, e))
	_, err := f.week.Submit(ctx, domain.WeekKeyFor(monday9))
	require.NoError(t, err)

	require.NoError(t, f.ledger.MarkBilled(ctx, e.ID))

	got, err := f.ledger.GetByID(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, got.BilledAt)

	err = f.ledger.MarkBilled(ctx, e.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyInState)
}

func TestLedger_RemoveMissing(t *testing.T) {
	f := newEngineFixture(t, monday9)
	err := f.ledger.Remove(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedger_AggregateRollups(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	day1 := domain.DateOnly(monday9)
	day2 := day1.AddDate(0, 0, 1)
	add := func(date time.Time, minutes int, customer, project string) {
		e := testutil.NewTestEntry(date, minutes,
			testutil.WithCustomer(customer), testutil.WithProject(project))
		require.NoError(t, f.ledger.Add(ctx, e))
	}
	add(day1, 120, "Acme", "Roof")
	add(day1, 60, "Acme", "Fence")
	add(day2, 90, "Berg", "Roof")
	add(day2.AddDate(0, 0, 10), 45, "Acme", "Roof") // outside range

	agg, err := f.ledger.Aggregate(ctx, day1, day2)
	require.NoError(t, err)
	assert.Equal(t, 270, agg.TotalMinutes)
	assert.Equal(t, 180, agg.ByDay["2025-06-16"])
	assert.Equal(t, 90, agg.ByDay["2025-06-17"])
	assert.Equal(t, 180, agg.ByCustomer["Acme"])
	assert.Equal(t, 90, agg.ByCustomer["Berg"])
	assert.Equal(t, 210, agg.ByProject["Roof"])
	assert.Equal(t, 60, agg.ByProject["Fence"])
}

func TestLedger_AggregateRejectsInvertedRange(t *testing.T) {
	f := newEngineFixture(t, monday9)
	_, err := f.ledger.Aggregate(context.Background(), monday9, monday9.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
