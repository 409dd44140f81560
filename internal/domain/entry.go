package domain

import (
	"fmt"
	"time"
)

// TimeEntry is a finished block of worked time, dated on a single calendar
// day. Entries are created by stopping a timer or by manual logging, and
// become immutable once their week has been submitted.
type TimeEntry struct {
	ID        string
	Date      time.Time // calendar day, normalized to midnight UTC
	Minutes   int
	Customer  string
	Project   string
	Note      string
	CreatedAt time.Time
	BilledAt  *time.Time
}

// Validate checks the fields a caller must supply before an entry is stored.
func (e *TimeEntry) Validate() error {
	if e.Minutes <= 0 {
		return fmt.Errorf("minutes must be positive, got %d: %w", e.Minutes, ErrInvalidInput)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("date is required: %w", ErrInvalidInput)
	}
	return nil
}

// MarkBilled stamps the entry as invoiced. Billing is independent of week
// approval, so this is legal even inside a locked week.
func (e *TimeEntry) MarkBilled(now time.Time) error {
	if e.BilledAt != nil {
		return fmt.Errorf("entry %s already billed: %w", e.ID, ErrAlreadyInState)
	}
	t := now
	e.BilledAt = &t
	return nil
}

// DateOnly truncates t to its calendar day at midnight UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
