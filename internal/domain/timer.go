package domain

import (
	"fmt"
	"time"
)

// RunningTimer is a live or paused timer. It exists only between start and
// stop; stopping converts it into a TimeEntry and discards it.
type RunningTimer struct {
	ID             string
	Customer       string
	Project        string
	Note           string
	StartedAt      time.Time
	PausedAt       *time.Time
	TotalPaused    time.Duration
	LastActivityAt time.Time

	// LastRemindedMin is the elapsed-minute mark of the last periodic
	// reminder, so a reminder interval fires at most once per multiple.
	LastRemindedMin int
}

// Paused reports whether the timer is currently suspended.
func (t *RunningTimer) Paused() bool { return t.PausedAt != nil }

// Pause suspends accrual at now. Valid only while active.
func (t *RunningTimer) Pause(now time.Time) error {
	if t.Paused() {
		return fmt.Errorf("timer %s is already paused: %w", t.ID, ErrAlreadyInState)
	}
	at := now
	t.PausedAt = &at
	return nil
}

// Resume ends the current pause, folding it into TotalPaused. Valid only
// while paused. Resuming counts as activity.
func (t *RunningTimer) Resume(now time.Time) error {
	if !t.Paused() {
		return fmt.Errorf("timer %s is not paused: %w", t.ID, ErrAlreadyInState)
	}
	t.TotalPaused += now.Sub(*t.PausedAt)
	t.PausedAt = nil
	t.LastActivityAt = now
	return nil
}

// RecordActivity notes that the operator is still working. Called by an
// external activity detector, never by the engine itself.
func (t *RunningTimer) RecordActivity(now time.Time) {
	t.LastActivityAt = now
}

// Elapsed is worked time so far: wall time since start minus all paused time,
// including a still-open pause.
func (t *RunningTimer) Elapsed(now time.Time) time.Duration {
	d := now.Sub(t.StartedAt) - t.TotalPaused
	if t.PausedAt != nil {
		d -= now.Sub(*t.PausedAt)
	}
	if d < 0 {
		return 0
	}
	return d
}

// ElapsedMinutes is Elapsed truncated to whole minutes, used by tick policy.
func (t *RunningTimer) ElapsedMinutes(now time.Time) int {
	return int(t.Elapsed(now) / time.Minute)
}

// StopMinutes is the duration a stop finalizes: elapsed time rounded up to
// whole minutes, never less than 1.
func (t *RunningTimer) StopMinutes(now time.Time) int {
	d := t.Elapsed(now)
	min := int((d + time.Minute - 1) / time.Minute)
	if min < 1 {
		return 1
	}
	return min
}

// InactiveMinutes is whole minutes since the last recorded activity.
func (t *RunningTimer) InactiveMinutes(now time.Time) int {
	d := now.Sub(t.LastActivityAt)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}

// TimerSettings is the operator-tunable auto-pause/auto-stop policy, read on
// every tick.
type TimerSettings struct {
	AutoStopAfterMinutes    int
	AutoPauseAfterMinutes   int
	ReminderIntervalMinutes int
	EnableActivityDetection bool
	EnableMultipleTimers    bool
}

// DefaultTimerSettings returns the stock policy: stop after 8 hours, pause
// after 15 idle minutes, remind every hour.
func DefaultTimerSettings() TimerSettings {
	return TimerSettings{
		AutoStopAfterMinutes:    480,
		AutoPauseAfterMinutes:   15,
		ReminderIntervalMinutes: 60,
		EnableActivityDetection: true,
		EnableMultipleTimers:    false,
	}
}

// WithDefaults fills non-positive thresholds from the stock policy. Applied
// once at load, not re-validated per read.
func (s TimerSettings) WithDefaults() TimerSettings {
	def := DefaultTimerSettings()
	if s.AutoStopAfterMinutes <= 0 {
		s.AutoStopAfterMinutes = def.AutoStopAfterMinutes
	}
	if s.AutoPauseAfterMinutes <= 0 {
		s.AutoPauseAfterMinutes = def.AutoPauseAfterMinutes
	}
	if s.ReminderIntervalMinutes <= 0 {
		s.ReminderIntervalMinutes = def.ReminderIntervalMinutes
	}
	return s
}

// PolicyDecision is the outcome of evaluating one timer against the settings
// at a tick instant. At most one of AutoPause/AutoStop is acted on per tick;
// AutoStop wins.
type PolicyDecision struct {
	AutoPause bool
	AutoStop  bool
	Remind    bool
}

// CheckPolicy evaluates the tick policy for the timer. Pure: no state change.
func (t *RunningTimer) CheckPolicy(s TimerSettings, now time.Time) PolicyDecision {
	elapsed := t.ElapsedMinutes(now)

	var d PolicyDecision
	d.AutoStop = elapsed >= s.AutoStopAfterMinutes

	if !t.Paused() {
		d.AutoPause = s.EnableActivityDetection &&
			t.InactiveMinutes(now) >= s.AutoPauseAfterMinutes
		d.Remind = elapsed > 0 &&
			elapsed%s.ReminderIntervalMinutes == 0 &&
			elapsed != t.LastRemindedMin
	}
	return d
}
