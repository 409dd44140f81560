package service

import (
	"testing"
	"time"

	"github.com/alexanderramin/tidvakt/internal/repository"
	"github.com/alexanderramin/tidvakt/internal/testutil"
)

// engineFixture wires every engine against one in-memory database with a
// fake clock and a recording notifier.
type engineFixture struct {
	clock    *testutil.FakeClock
	notifier *testutil.RecordingNotifier

	entries     repository.EntryRepo
	timers      repository.TimerRepo
	submissions repository.SubmissionRepo
	reminders   repository.ReminderRepo
	settings    repository.SettingsRepo

	ledger   LedgerService
	timer    TimerService
	week     WeekService
	reminder ReminderService
}

func newEngineFixture(t *testing.T, start time.Time) *engineFixture {
	t.Helper()

	database := testutil.NewTestDB(t)
	f := &engineFixture{
		clock:       testutil.NewFakeClock(start),
		notifier:    &testutil.RecordingNotifier{},
		entries:     repository.NewSQLiteEntryRepo(database),
		timers:      repository.NewSQLiteTimerRepo(database),
		submissions: repository.NewSQLiteSubmissionRepo(database),
		reminders:   repository.NewSQLiteReminderRepo(database),
		settings:    repository.NewSQLiteSettingsRepo(database),
	}

	f.week = NewWeekService(f.submissions, f.entries, f.clock)
	f.ledger = NewLedgerService(f.entries, f.week, f.clock)
	f.timer = NewTimerService(f.timers, f.settings, f.week, testutil.NewTestUoW(database), f.clock, f.notifier, nil)
	f.reminder = NewReminderService(f.reminders, f.settings, f.clock, f.notifier, nil)
	return f
}

// monday9 is a Monday morning well inside a week, outside quiet hours.
var monday9 = time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
