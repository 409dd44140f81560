package testutil

import (
	"time"

	"github.com/alexanderramin/tidvakt/internal/domain"
	"github.com/google/uuid"
)

// Entry options
type EntryOption func(*domain.TimeEntry)

func WithCustomer(c string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Customer = c
	}
}

func WithProject(p string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Project = p
	}
}

func WithNote(n string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Note = n
	}
}

func WithBilledAt(t time.Time) EntryOption {
	return func(e *domain.TimeEntry) {
		e.BilledAt = &t
	}
}

func NewTestEntry(date time.Time, minutes int, opts ...EntryOption) *domain.TimeEntry {
	e := &domain.TimeEntry{
		ID:        uuid.New().String(),
		Date:      domain.DateOnly(date),
		Minutes:   minutes,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Timer options
type TimerOption func(*domain.RunningTimer)

func WithTimerCustomer(c string) TimerOption {
	return func(t *domain.RunningTimer) {
		t.Customer = c
	}
}

func WithPausedAt(at time.Time) TimerOption {
	return func(t *domain.RunningTimer) {
		t.PausedAt = &at
	}
}

func WithTotalPaused(d time.Duration) TimerOption {
	return func(t *domain.RunningTimer) {
		t.TotalPaused = d
	}
}

func NewTestTimer(startedAt time.Time, opts ...TimerOption) *domain.RunningTimer {
	t := &domain.RunningTimer{
		ID:             uuid.New().String(),
		StartedAt:      startedAt,
		LastActivityAt: startedAt,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewTestReminder builds an unsent reminder for a bill.
func NewTestReminder(billID string, kind domain.ReminderKind, scheduledFor time.Time) *domain.Reminder {
	return &domain.Reminder{
		ID:           uuid.New().String(),
		BillID:       billID,
		Kind:         kind,
		ScheduledFor: scheduledFor,
	}
}

// NewTestSubmission builds a submitted, unapproved week.
func NewTestSubmission(weekKey string, submittedAt time.Time) *domain.WeekSubmission {
	return &domain.WeekSubmission{WeekKey: weekKey, SubmittedAt: submittedAt}
}
