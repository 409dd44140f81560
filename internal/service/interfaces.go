package service

import (
	"context"
	"time"

	"github.com/alexanderramin/tidvakt/internal/domain"
)

// LedgerService manages the append-only record of worked time.
type LedgerService interface {
	Add(ctx context.Context, e *domain.TimeEntry) error
	Remove(ctx context.Context, id string) error
	MarkBilled(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.TimeEntry, error)
	List(ctx context.Context, includeBilled bool) ([]*domain.TimeEntry, error)
	Aggregate(ctx context.Context, from, to time.Time) (*Aggregate, error)
}

// Aggregate is the rollup of entries over an inclusive date range.
type Aggregate struct {
	From         time.Time
	To           time.Time
	TotalMinutes int
	ByDay        map[string]int // keyed yyyy-mm-dd
	ByCustomer   map[string]int
	ByProject    map[string]int
}

// TickEventKind names a transition applied by a tick pass.
type TickEventKind string

const (
	TickAutoPaused  TickEventKind = "auto_paused"
	TickAutoStopped TickEventKind = "auto_stopped"
	TickReminded    TickEventKind = "reminded"
)

// TickEvent records one transition from a Tick pass. Entry is set only for
// auto-stops.
type TickEvent struct {
	TimerID string
	Kind    TickEventKind
	Entry   *domain.TimeEntry
}

// TimerService runs the live timers and their tick policy.
type TimerService interface {
	Start(ctx context.Context, customer, project, note string) (*domain.RunningTimer, error)
	Pause(ctx context.Context, id string) error
	Resume(ctx context.Context, id string) error
	Stop(ctx context.Context, id string) (*domain.TimeEntry, error)
	RecordActivity(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.RunningTimer, error)
	List(ctx context.Context) ([]*domain.RunningTimer, error)
	Tick(ctx context.Context, now time.Time) ([]TickEvent, error)
}

// WeekStatus is one week's position in the approval workflow, with its total.
type WeekStatus struct {
	WeekKey      string
	State        domain.WeekState
	TotalMinutes int
	SubmittedAt  *time.Time
	ApprovedAt   *time.Time
}

// WeekService runs the submit/approve/reopen workflow that locks weeks.
type WeekService interface {
	Submit(ctx context.Context, weekKey string) (*domain.WeekSubmission, error)
	Approve(ctx context.Context, weekKey string) error
	Reopen(ctx context.Context, weekKey string) error
	IsLocked(ctx context.Context, date time.Time) (bool, error)
	Status(ctx context.Context, weekKey string) (*WeekStatus, error)
	ListPending(ctx context.Context) ([]*WeekStatus, error)
	ListApproved(ctx context.Context) ([]*WeekStatus, error)
}

// ReminderService schedules and dispatches the per-bill reminder ladder.
type ReminderService interface {
	Generate(ctx context.Context, billID string, dueDate time.Time) ([]*domain.Reminder, error)
	ListByBill(ctx context.Context, billID string) ([]*domain.Reminder, error)
	GetDue(ctx context.Context, now time.Time) ([]*domain.Reminder, error)
	MarkSent(ctx context.Context, id string) error
	Snooze(ctx context.Context, id string, days int) error
	CancelAll(ctx context.Context, billID string) error
	Dispatch(ctx context.Context, now time.Time) ([]*domain.Reminder, error)
}
