package domain

import (
	"fmt"
	"time"
)

// ReminderKind names a rung on the fixed reminder ladder, relative to a
// bill's due date.
type ReminderKind string

const (
	RemindWeekBefore ReminderKind = "T-7"
	RemindDayBefore  ReminderKind = "T-1"
	RemindOverdue3   ReminderKind = "T+3"
	RemindOverdue10  ReminderKind = "T+10"
	RemindOverdue30  ReminderKind = "T+30"
)

// ReminderOffset pairs a kind with its day offset from the due date.
type ReminderOffset struct {
	Kind ReminderKind
	Days int
}

// ReminderLadder is the ordered set of reminders generated per bill.
var ReminderLadder = []ReminderOffset{
	{RemindWeekBefore, -7},
	{RemindDayBefore, -1},
	{RemindOverdue3, 3},
	{RemindOverdue10, 10},
	{RemindOverdue30, 30},
}

// Title is the short notification headline for the kind.
func (k ReminderKind) Title() string {
	switch k {
	case RemindWeekBefore:
		return "Bill due in 7 days"
	case RemindDayBefore:
		return "Bill due tomorrow"
	case RemindOverdue3:
		return "Bill 3 days overdue"
	case RemindOverdue10:
		return "Bill 10 days overdue"
	case RemindOverdue30:
		return "Bill 30 days overdue - consider collection"
	default:
		return "Bill reminder"
	}
}

// Reminder is one scheduled notification for a billable item. It fires at
// most once; snoozing defers it without consuming it.
type Reminder struct {
	ID           string
	BillID       string
	Kind         ReminderKind
	ScheduledFor time.Time
	Sent         bool
	SnoozedUntil *time.Time
}

// IsDue reports whether the reminder should fire at now.
func (r *Reminder) IsDue(now time.Time) bool {
	if r.Sent || r.ScheduledFor.After(now) {
		return false
	}
	if r.SnoozedUntil != nil && r.SnoozedUntil.After(now) {
		return false
	}
	return true
}

// Snooze defers the reminder for the given number of days, pinned to 09:00
// on the target day so it does not re-trigger mid-interval.
func (r *Reminder) Snooze(now time.Time, days int) error {
	if days <= 0 {
		return fmt.Errorf("snooze days must be positive, got %d: %w", days, ErrInvalidInput)
	}
	until := DateOnly(now.AddDate(0, 0, days)).Add(9 * time.Hour)
	r.SnoozedUntil = &until
	return nil
}

// ReminderSettings configures when reminders may not fire. The quiet window
// is a time-of-day span; start > end wraps past midnight.
type ReminderSettings struct {
	QuietStart    string // "18:00"
	QuietEnd      string // "08:00"
	QuietWeekends bool
}

// DefaultReminderSettings quiets evenings, nights and weekends.
func DefaultReminderSettings() ReminderSettings {
	return ReminderSettings{QuietStart: "18:00", QuietEnd: "08:00", QuietWeekends: true}
}

// WithDefaults replaces unset or unparseable clock strings with the stock
// quiet window. Applied once at load.
func (s ReminderSettings) WithDefaults() ReminderSettings {
	def := DefaultReminderSettings()
	if _, err := parseClockMinutes(s.QuietStart); err != nil {
		s.QuietStart = def.QuietStart
	}
	if _, err := parseClockMinutes(s.QuietEnd); err != nil {
		s.QuietEnd = def.QuietEnd
	}
	return s
}

// parseClockMinutes converts "HH:MM" into minutes past midnight.
func parseClockMinutes(clock string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("clock %q: %w", clock, ErrInvalidInput)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock %q out of range: %w", clock, ErrInvalidInput)
	}
	return h*60 + m, nil
}

// IsQuiet reports whether an instant falls inside the configured quiet
// period: a quiet weekend day, or the quiet time-of-day window.
func IsQuiet(t time.Time, s ReminderSettings) bool {
	if s.QuietWeekends {
		switch t.Weekday() {
		case time.Saturday, time.Sunday:
			return true
		}
	}

	start, err := parseClockMinutes(s.QuietStart)
	if err != nil {
		return false
	}
	end, err := parseClockMinutes(s.QuietEnd)
	if err != nil {
		return false
	}

	tod := t.Hour()*60 + t.Minute()
	if start > end {
		// Overnight window, e.g. 18:00-08:00.
		return tod >= start || tod < end
	}
	return tod >= start && tod < end
}

// NextAllowed advances a candidate instant in 30-minute steps until it is no
// longer quiet. Terminates because the quiet window is a strict subset of
// each day (weekends end, and an all-day window cannot be expressed).
func NextAllowed(t time.Time, s ReminderSettings) time.Time {
	for IsQuiet(t, s) {
		t = t.Add(30 * time.Minute)
	}
	return t
}
