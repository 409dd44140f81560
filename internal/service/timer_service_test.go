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

func TestTimer_StartStopProducesEntry(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	tm, err := f.timer.Start(ctx, "Acme", "Roof", "framing")
	require.NoError(t, err)

	f.clock.Advance(50 * time.Minute)
	entry, err := f.timer.Stop(ctx, tm.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, entry.Minutes)
	assert.Equal(t, domain.DateOnly(monday9), entry.Date)
	assert.Equal(t, "Acme", entry.Customer)
	assert.Equal(t, "Roof", entry.Project)

	// The running timer is gone; stopping again cannot double-log.
	_, err = f.timer.GetByID(ctx, tm.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.timer.Stop(ctx, tm.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := f.ledger.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Minutes)
}

func TestTimer_StopRoundsUpToAtLeastOneMinute(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	tm, err := f.timer.Start(ctx, "", "", "")
	require.NoError(t, err)
	f.clock.Advance(10 * time.Second)
	entry, err := f.timer.Stop(ctx, tm.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Minutes)

	tm, err = f.timer.Start(ctx, "", "", "")
	require.NoError(t, err)
	f.clock.Advance(90 * time.Second)
	entry, err = f.timer.Stop(ctx, tm.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, entry.Minutes)
}

func TestTimer_PauseExcludedFromStopMinutes(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	tm, err := f.timer.Start(ctx, "", "", "")
	require.NoError(t, err)

	f.clock.Advance(50 * time.Minute)
	require.NoError(t, f.timer.Pause(ctx, tm.ID))
	f.clock.Advance(30 * time.Minute)
	require.NoError(t, f.timer.Resume(ctx, tm.ID))
	f.clock.Advance(20 * time.Minute)

	entry, err := f.timer.Stop(ctx, tm.ID)
	require.NoError(t, err)
	assert.Equal(t, 70, entry.Minutes)
}

func TestTimer_PauseResumeStateGuards(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	tm, err := f.timer.Start(ctx, "", "", "")
	require.NoError(t, err)

	assert.ErrorIs(t, f.timer.Resume(ctx, tm.ID), domain.ErrAlreadyInState)
	require.NoError(t, f.timer.Pause(ctx, tm.ID))
	assert.ErrorIs(t, f.timer.Pause(ctx, tm.ID), domain.ErrAlreadyInState)

	assert.ErrorIs(t, f.timer.Pause(ctx, "nope"), domain.ErrNotFound)
	assert.ErrorIs(t, f.timer.RecordActivity(ctx, "nope"), domain.ErrNotFound)
}

func TestTimer_SingleTimerModeForceStopsPrevious(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	first, err := f.timer.Start(ctx, "Acme", "", "")
	require.NoError(t, err)
	f.clock.Advance(30 * time.Minute)

	second, err := f.timer.Start(ctx, "Berg", "", "")
	require.NoError(t, err)

	running, err := f.timer.List(ctx)
	require.NoError(t, err)
	require.Len(t, running, 1)
	assert.Equal(t, second.ID, running[0].ID)

	_, err = f.timer.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	entries, err := f.ledger.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 30, entries[0].Minutes)
	assert.Equal(t, "Acme", entries[0].Customer)
}

func TestTimer_MultipleTimersWhenEnabled(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	require.NoError(t, f.settings.SaveTimerSettings(ctx, domain.TimerSettings{EnableMultipleTimers: true}))

	_, err := f.timer.Start(ctx, "Acme", "", "")
	require.NoError(t, err)
	_, err = f.timer.Start(ctx, "Berg", "", "")
	require.NoError(t, err)

	running, err := f.timer.List(ctx)
	require.NoError(t, err)
	assert.Len(t, running, 2)
}

func TestTimer_LockedWeekRejectsStartAndStop(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	tm, err := f.timer.Start(ctx, "", "", "")
	require.NoError(t, err)

	require.NoError(t, f.ledger.Add(ctx, testutil.NewTestEntry(monday9, 60)))
	_, err = f.week.Submit(ctx, domain.WeekKeyFor(monday9))
	require.NoError(t, err)

	_, err = f.timer.Start(ctx, "", "", "")
	assert.ErrorIs(t, err, domain.ErrLocked)

	_, err = f.timer.Stop(ctx, tm.ID)
	assert.ErrorIs(t, err, domain.ErrLocked)

	// The timer survives a refused stop and can be closed after reopening.
	require.NoError(t, f.week.Reopen(ctx, domain.WeekKeyFor(monday9)))
	_, err = f.timer.Stop(ctx, tm.ID)
	require.NoError(t, err)
}

func TestTimer_TickAutoPausesIdleTimer(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	tm, err := f.timer.Start(ctx, "Acme", "", "")
	require.NoError(t, err)

	f.clock.Advance(15 * time.Minute)
	events, err := f.timer.Tick(ctx, f.clock.Now())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, TickAutoPaused, events[0].Kind)
	assert.Equal(t, tm.ID, events[0].TimerID)

	got, err := f.timer.GetByID(ctx, tm.ID)
	require.NoError(t, err)
	assert.True(t, got.Paused())

	notes := f.notifier.Events()
	require.Len(t, notes, 1)
	assert.Equal(t, "Timer paused automatically", notes[0].Title)
}

func TestTimer_TickSkipsAutoPauseAfterRecentActivity(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	tm, err := f.timer.Start(ctx, "", "", "")
	require.NoError(t, err)

	f.clock.Advance(10 * time.Minute)
	require.NoError(t, f.timer.RecordActivity(ctx, tm.ID))
	f.clock.Advance(10 * time.Minute)

	events, err := f.timer.Tick(ctx, f.clock.Now())
	require.NoError(t, err)
	assert.Empty(t, events, "10 idle minutes is under the threshold")
}

func TestTimer_TickAutoStops(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	require.NoError(t, f.settings.SaveTimerSettings(ctx, domain.TimerSettings{AutoStopAfterMinutes: 60}))

	tm, err := f.timer.Start(ctx, "Acme", "Roof", "")
	require.NoError(t, err)
	f.clock.Advance(60 * time.Minute)

	events, err := f.timer.Tick(ctx, f.clock.Now())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, TickAutoStopped, events[0].Kind)
	require.NotNil(t, events[0].Entry)
	assert.Equal(t, 60, events[0].Entry.Minutes)

	_, err = f.timer.GetByID(ctx, tm.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTimer_TickAutoStopsWhilePaused(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	require.NoError(t, f.settings.SaveTimerSettings(ctx, domain.TimerSettings{AutoStopAfterMinutes: 60}))

	tm, err := f.timer.Start(ctx, "", "", "")
	require.NoError(t, err)
	f.clock.Advance(60 * time.Minute)
	require.NoError(t, f.timer.Pause(ctx, tm.ID))
	f.clock.Advance(5 * time.Minute)

	events, err := f.timer.Tick(ctx, f.clock.Now())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, TickAutoStopped, events[0].Kind)
	assert.Equal(t, 60, events[0].Entry.Minutes, "paused interval is not billed")
}

func TestTimer_TickRemindsOncePerInterval(t *testing.T) {
	f := newEngineFixture(t, monday9)
	ctx := context.Background()

	// Activity detection off so only the periodic reminder is in play.
	require.NoError(t, f.settings.SaveTimerSettings(ctx, domain.TimerSettings{ReminderIntervalMinutes: 60}))

	tm, err := f.timer.Start(ctx, "Acme", "", "")
	require.NoError(t, err)

	f.clock.Advance(60 * time.Minute)
	events, err := f.timer.Tick(ctx, f.clock.Now())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, TickReminded, events[0].Kind)
	assert.Equal(t, tm.ID, events[0].TimerID)

	// Same elapsed multiple must not fire twice.
	events, err = f.timer.Tick(ctx, f.clock.Now())
	require.NoError(t, err)
	assert.Empty(t, events)

	f.clock.Advance(60 * time.Minute)
	events, err = f.timer.Tick(ctx, f.clock.Now())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, TickReminded, events[0].Kind)
}
