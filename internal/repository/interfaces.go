package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/tidvakt/internal/domain"
)

type EntryRepo interface {
	Create(ctx context.Context, e *domain.TimeEntry) error
	GetByID(ctx context.Context, id string) (*domain.TimeEntry, error)
	List(ctx context.Context, includeBilled bool) ([]*domain.TimeEntry, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.TimeEntry, error)
	Update(ctx context.Context, e *domain.TimeEntry) error
	Delete(ctx context.Context, id string) error
}

type TimerRepo interface {
	Create(ctx context.Context, t *domain.RunningTimer) error
	GetByID(ctx context.Context, id string) (*domain.RunningTimer, error)
	List(ctx context.Context) ([]*domain.RunningTimer, error)
	Update(ctx context.Context, t *domain.RunningTimer) error
	Delete(ctx context.Context, id string) error
}

type SubmissionRepo interface {
	Create(ctx context.Context, s *domain.WeekSubmission) error
	GetByWeekKey(ctx context.Context, weekKey string) (*domain.WeekSubmission, error)
	List(ctx context.Context) ([]*domain.WeekSubmission, error)
	Update(ctx context.Context, s *domain.WeekSubmission) error
	Delete(ctx context.Context, weekKey string) error
}

type ReminderRepo interface {
	CreateBatch(ctx context.Context, rs []*domain.Reminder) error
	GetByID(ctx context.Context, id string) (*domain.Reminder, error)
	ListByBill(ctx context.Context, billID string) ([]*domain.Reminder, error)
	ListUnsent(ctx context.Context) ([]*domain.Reminder, error)
	Update(ctx context.Context, r *domain.Reminder) error
	DeleteByBill(ctx context.Context, billID string) error
}

// SettingsRepo reads and writes the two configuration singletons. Defaulting
// is applied by the repo on read so callers always see a complete record.
type SettingsRepo interface {
	TimerSettings(ctx context.Context) (domain.TimerSettings, error)
	SaveTimerSettings(ctx context.Context, s domain.TimerSettings) error
	ReminderSettings(ctx context.Context) (domain.ReminderSettings, error)
	SaveReminderSettings(ctx context.Context, s domain.ReminderSettings) error
}
