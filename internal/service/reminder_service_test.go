package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tidvakt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminder_GenerateFullLadder(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	// Tuesday due date; every rung lands on a weekday morning.
	due := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	batch, err := f.reminder.Generate(ctx, "bill-1", due)
	require.NoError(t, err)
	require.Len(t, batch, 5)

	wantKinds := []domain.ReminderKind{
		domain.RemindWeekBefore, domain.RemindDayBefore,
		domain.RemindOverdue3, domain.RemindOverdue10, domain.RemindOverdue30,
	}
	wantDays := []int{8, 14, 18, 25, 14} // July except the last, which is August
	for i, r := range batch {
		assert.Equal(t, wantKinds[i], r.Kind)
		assert.Equal(t, wantDays[i], r.ScheduledFor.Day())
		assert.Equal(t, 9, r.ScheduledFor.Hour(), "scheduled at 09:00")
	}
}

func TestReminder_GenerateAvoidsQuietWeekends(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	// Saturday due date puts the week-before rung on a Saturday; it must be
	// pushed to Monday 08:00, the first instant outside quiet hours.
	due := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	batch, err := f.reminder.Generate(ctx, "bill-1", due)
	require.NoError(t, err)

	first := batch[0]
	require.Equal(t, domain.RemindWeekBefore, first.Kind)
	assert.Equal(t, time.Monday, first.ScheduledFor.Weekday())
	assert.Equal(t, 14, first.ScheduledFor.Day())
	assert.Equal(t, 8, first.ScheduledFor.Hour())
	assert.Equal(t, 0, first.ScheduledFor.Minute())
}

func TestReminder_GenerateSkipsElapsedPreDueRungs(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	// Due today: both pre-due rungs are already in the past, overdue rungs
	// are still generated.
	batch, err := f.reminder.Generate(ctx, "bill-1", monday9)
	require.NoError(t, err)
	require.Len(t, batch, 3)
	assert.Equal(t, domain.RemindOverdue3, batch[0].Kind)
	assert.Equal(t, domain.RemindOverdue10, batch[1].Kind)
	assert.Equal(t, domain.RemindOverdue30, batch[2].Kind)
}

func TestReminder_GenerateRequiresBillID(t *testing.T) {
	f := newEngineFixture(t, monday9)
	_, err := f.reminder.Generate(context.Background(), "", monday9)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReminder_DispatchFiresEachRungOnce(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	// Due yesterday (a Sunday): only overdue rungs exist, first at T+3.
	due := monday9.AddDate(0, 0, -1)
	batch, err := f.reminder.Generate(ctx, "bill-1", due)
	require.NoError(t, err)
	require.Len(t, batch, 3)

	at := time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC)
	sent, err := f.reminder.Dispatch(ctx, at)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, domain.RemindOverdue3, sent[0].Kind)

	notes := f.notifier.Events()
	require.Len(t, notes, 1)
	assert.Equal(t, "Bill 3 days overdue", notes[0].Title)
	assert.Contains(t, notes[0].Body, "bill-1")

	// Replaying the same instant sends nothing.
	sent, err = f.reminder.Dispatch(ctx, at)
	require.NoError(t, err)
	assert.Empty(t, sent)
}

func TestReminder_MarkSentIdempotent(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	batch, err := f.reminder.Generate(ctx, "bill-1", monday9)
	require.NoError(t, err)

	id := batch[0].ID
	require.NoError(t, f.reminder.MarkSent(ctx, id))
	require.NoError(t, f.reminder.MarkSent(ctx, id))

	assert.ErrorIs(t, f.reminder.MarkSent(ctx, "nope"), domain.ErrNotFound)
}

func TestReminder_SnoozeDefersWithoutConsuming(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	batch, err := f.reminder.Generate(ctx, "bill-1", monday9.AddDate(0, 0, -1))
	require.NoError(t, err)
	r := batch[0] // T+3, scheduled 2025-06-18 09:00

	f.clock.Set(time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC))
	require.NoError(t, f.reminder.Snooze(ctx, r.ID, 3))

	due, err := f.reminder.GetDue(ctx, f.clock.Now())
	require.NoError(t, err)
	assert.Empty(t, due, "snoozed reminder is not due")

	// Snooze pins to 09:00 on the target day.
	wake := time.Date(2025, 6, 21, 9, 0, 0, 0, time.UTC)
	due, err = f.reminder.GetDue(ctx, wake)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, r.ID, due[0].ID)

	assert.ErrorIs(t, f.reminder.Snooze(ctx, r.ID, 0), domain.ErrInvalidInput)
}

func TestReminder_CancelAll(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	_, err := f.reminder.Generate(ctx, "bill-1", monday9)
	require.NoError(t, err)
	_, err = f.reminder.Generate(ctx, "bill-2", monday9)
	require.NoError(t, err)

	require.NoError(t, f.reminder.CancelAll(ctx, "bill-1"))

	due, err := f.reminder.GetDue(ctx, monday9.AddDate(0, 1, 0))
	require.NoError(t, err)
	for _, r := range due {
		assert.Equal(t, "bill-2", r.BillID)
	}
	assert.NotEmpty(t, due)
}
