package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tidvakt/internal/domain"
	"github.com/alexanderramin/tidvakt/internal/repository"
	"github.com/google/uuid"
)

type reminderService struct {
	reminders repository.ReminderRepo
	settings  repository.SettingsRepo
	clock     domain.Clock
	notifier  Notifier
	observer  Observer
}

// NewReminderService builds the bill reminder scheduler.
func NewReminderService(
	reminders repository.ReminderRepo,
	settings repository.SettingsRepo,
	clock domain.Clock,
	notifier Notifier,
	observer Observer,
) ReminderService {
	return &reminderService{
		reminders: reminders,
		settings:  settings,
		clock:     clock,
		notifier:  notifierOrNoop(notifier),
		observer:  observerOrNoop(observer),
	}
}

// Generate schedules the full reminder ladder for a bill. Pre-due rungs whose
// moment has already passed are skipped; every rung is pushed out of quiet
// hours before it is stored.
func (s *reminderService) Generate(ctx context.Context, billID string, dueDate time.Time) ([]*domain.Reminder, error) {
	if billID == "" {
		return nil, fmt.Errorf("bill id is required: %w", domain.ErrInvalidInput)
	}

	cfg, err := s.settings.ReminderSettings(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	due := domain.DateOnly(dueDate)

	var batch []*domain.Reminder
	for _, rung := range domain.ReminderLadder {
		at := due.AddDate(0, 0, rung.Days).Add(9 * time.Hour)
		if rung.Days < 0 && at.Before(now) {
			continue
		}
		batch = append(batch, &domain.Reminder{
			ID:           uuid.New().String(),
			BillID:       billID,
			Kind:         rung.Kind,
			ScheduledFor: domain.NextAllowed(at, cfg),
		})
	}

	if len(batch) > 0 {
		if err := s.reminders.CreateBatch(ctx, batch); err != nil {
			return nil, err
		}
	}
	return batch, nil
}

func (s *reminderService) ListByBill(ctx context.Context, billID string) ([]*domain.Reminder, error) {
	return s.reminders.ListByBill(ctx, billID)
}

func (s *reminderService) GetDue(ctx context.Context, now time.Time) ([]*domain.Reminder, error) {
	unsent, err := s.reminders.ListUnsent(ctx)
	if err != nil {
		return nil, err
	}
	due := make([]*domain.Reminder, 0, len(unsent))
	for _, r := range unsent {
		if r.IsDue(now) {
			due = append(due, r)
		}
	}
	return due, nil
}

// MarkSent consumes the reminder. Marking an already-sent reminder is a
// no-op so a crashed dispatch loop can safely replay.
func (s *reminderService) MarkSent(ctx context.Context, id string) error {
	r, err := s.reminders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.Sent {
		return nil
	}
	r.Sent = true
	return s.reminders.Update(ctx, r)
}

func (s *reminderService) Snooze(ctx context.Context, id string, days int) error {
	r, err := s.reminders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.Snooze(s.clock.Now(), days); err != nil {
		return err
	}
	return s.reminders.Update(ctx, r)
}

func (s *reminderService) CancelAll(ctx context.Context, billID string) error {
	return s.reminders.DeleteByBill(ctx, billID)
}

// Dispatch fires every due reminder through the notifier and consumes it.
// Returns the reminders that were sent this pass.
func (s *reminderService) Dispatch(ctx context.Context, now time.Time) ([]*domain.Reminder, error) {
	started := s.clock.Now()
	sent, err := s.dispatch(ctx, now)
	s.observer.Observe(ctx, "reminder.dispatch", s.clock.Now().Sub(started), err, "sent", len(sent))
	return sent, err
}

func (s *reminderService) dispatch(ctx context.Context, now time.Time) ([]*domain.Reminder, error) {
	due, err := s.GetDue(ctx, now)
	if err != nil {
		return nil, err
	}

	var sent []*domain.Reminder
	for _, r := range due {
		s.notifier.Notify(r.Kind.Title(), fmt.Sprintf("Bill %s", r.BillID))
		if err := s.MarkSent(ctx, r.ID); err != nil {
			return sent, err
		}
		sent = append(sent, r)
	}
	return sent, nil
}
