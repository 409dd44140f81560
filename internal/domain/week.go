package domain

import (
	"fmt"
	"time"
)

// WeekState is the lifecycle position of a calendar week.
type WeekState string

const (
	WeekOpen      WeekState = "open"
	WeekSubmitted WeekState = "submitted"
	WeekApproved  WeekState = "approved"
)

// WeekSubmission locks a week's entries. Its existence alone makes the week
// read-only; ApprovedAt only distinguishes submitted from approved for
// reporting.
type WeekSubmission struct {
	WeekKey     string
	SubmittedAt time.Time
	ApprovedAt  *time.Time
}

// State reports submitted or approved. A week without a submission row is
// open; that case never reaches this method.
func (s *WeekSubmission) State() WeekState {
	if s.ApprovedAt != nil {
		return WeekApproved
	}
	return WeekSubmitted
}

// Approve stamps the submission. Valid once.
func (s *WeekSubmission) Approve(now time.Time) error {
	if s.ApprovedAt != nil {
		return fmt.Errorf("week %s already approved: %w", s.WeekKey, ErrAlreadyInState)
	}
	at := now
	s.ApprovedAt = &at
	return nil
}

// WeekKeyFor derives the ISO-8601 week identifier ("2025-W02") for the week
// containing the given date. The week containing a Thursday owns the date.
func WeekKeyFor(date time.Time) string {
	y, w := DateOnly(date).ISOWeek()
	return fmt.Sprintf("%d-W%02d", y, w)
}

// WeekRange resolves a week key to its Monday 00:00:00 UTC start and the last
// instant of its Sunday.
func WeekRange(weekKey string) (start, end time.Time, err error) {
	var y, w int
	if _, scanErr := fmt.Sscanf(weekKey, "%d-W%d", &y, &w); scanErr != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("week key %q: %w", weekKey, ErrInvalidInput)
	}
	if w < 1 || w > 53 {
		return time.Time{}, time.Time{}, fmt.Errorf("week key %q: week out of range: %w", weekKey, ErrInvalidInput)
	}

	// January 4 is always inside week 1; walk back to its Monday.
	jan4 := time.Date(y, time.January, 4, 0, 0, 0, 0, time.UTC)
	dow := int(jan4.Weekday())
	if dow == 0 {
		dow = 7
	}
	start = jan4.AddDate(0, 0, -(dow-1)+(w-1)*7)

	// Reject week 53 in years that only have 52 ISO weeks.
	if isoY, isoW := start.AddDate(0, 0, 3).ISOWeek(); isoY != y || isoW != w {
		return time.Time{}, time.Time{}, fmt.Errorf("week key %q: no such week: %w", weekKey, ErrInvalidInput)
	}

	end = start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end, nil
}

// DateInWeek reports whether a calendar day falls inside the week span.
// The date is compared at noon so zone drift around midnight cannot move a
// day across the boundary.
func DateInWeek(date, start, end time.Time) bool {
	noon := DateOnly(date).Add(12 * time.Hour)
	return !noon.Before(start) && !noon.After(end)
}
