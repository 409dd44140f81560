package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tidvakt/internal/db"
	"github.com/alexanderramin/tidvakt/internal/domain"
	"github.com/alexanderramin/tidvakt/internal/repository"
	"github.com/google/uuid"
)

type timerService struct {
	timers   repository.TimerRepo
	settings repository.SettingsRepo
	weeks    WeekService
	uow      db.UnitOfWork
	clock    domain.Clock
	notifier Notifier
	observer Observer
}

// NewTimerService builds the timer engine. Stops run inside the unit of work
// so the timer delete and the entry insert land together.
func NewTimerService(
	timers repository.TimerRepo,
	settings repository.SettingsRepo,
	weeks WeekService,
	uow db.UnitOfWork,
	clock domain.Clock,
	notifier Notifier,
	observer Observer,
) TimerService {
	return &timerService{
		timers:   timers,
		settings: settings,
		weeks:    weeks,
		uow:      uow,
		clock:    clock,
		notifier: notifierOrNoop(notifier),
		observer: observerOrNoop(observer),
	}
}

func (s *timerService) Start(ctx context.Context, customer, project, note string) (*domain.RunningTimer, error) {
	now := s.clock.Now()
	if err := s.requireUnlocked(ctx, now); err != nil {
		return nil, err
	}

	cfg, err := s.settings.TimerSettings(ctx)
	if err != nil {
		return nil, err
	}

	if !cfg.EnableMultipleTimers {
		running, err := s.timers.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, t := range running {
			if _, err := s.stopAt(ctx, t.ID, now); err != nil {
				return nil, fmt.Errorf("stopping timer %s before start: %w", t.ID, err)
			}
		}
	}

	t := &domain.RunningTimer{
		ID:             uuid.New().String(),
		Customer:       customer,
		Project:        project,
		Note:           note,
		StartedAt:      now,
		LastActivityAt: now,
	}
	if err := s.timers.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *timerService) Pause(ctx context.Context, id string) error {
	t, err := s.timers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := t.Pause(s.clock.Now()); err != nil {
		return err
	}
	return s.timers.Update(ctx, t)
}

func (s *timerService) Resume(ctx context.Context, id string) error {
	t, err := s.timers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := t.Resume(s.clock.Now()); err != nil {
		return err
	}
	return s.timers.Update(ctx, t)
}

// Stop finalizes the timer into a time entry dated on today's calendar day.
// A second stop for the same id finds no row and reports ErrNotFound.
func (s *timerService) Stop(ctx context.Context, id string) (*domain.TimeEntry, error) {
	return s.stopAt(ctx, id, s.clock.Now())
}

// stopAt is the single stop path: the entry lands on now's calendar day, so
// the week containing now must be open no matter who triggered the stop.
func (s *timerService) stopAt(ctx context.Context, id string, now time.Time) (*domain.TimeEntry, error) {
	if err := s.requireUnlocked(ctx, now); err != nil {
		return nil, err
	}
	var entry *domain.TimeEntry
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTimers := repository.NewSQLiteTimerRepo(tx)
		txEntries := repository.NewSQLiteEntryRepo(tx)

		t, err := txTimers.GetByID(ctx, id)
		if err != nil {
			return err
		}

		entry = &domain.TimeEntry{
			ID:        uuid.New().String(),
			Date:      domain.DateOnly(now),
			Minutes:   t.StopMinutes(now),
			Customer:  t.Customer,
			Project:   t.Project,
			Note:      t.Note,
			CreatedAt: now,
		}
		if err := txEntries.Create(ctx, entry); err != nil {
			return err
		}
		return txTimers.Delete(ctx, t.ID)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *timerService) RecordActivity(ctx context.Context, id string) error {
	t, err := s.timers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	t.RecordActivity(s.clock.Now())
	return s.timers.Update(ctx, t)
}

func (s *timerService) GetByID(ctx context.Context, id string) (*domain.RunningTimer, error) {
	return s.timers.GetByID(ctx, id)
}

func (s *timerService) List(ctx context.Context) ([]*domain.RunningTimer, error) {
	return s.timers.List(ctx)
}

// Tick evaluates the auto-pause/auto-stop/reminder policy for every live
// timer at the given instant and applies the resulting transitions.
func (s *timerService) Tick(ctx context.Context, now time.Time) ([]TickEvent, error) {
	started := s.clock.Now()
	events, err := s.tick(ctx, now)
	s.observer.Observe(ctx, "timer.tick", s.clock.Now().Sub(started), err, "events", len(events))
	return events, err
}

func (s *timerService) tick(ctx context.Context, now time.Time) ([]TickEvent, error) {
	cfg, err := s.settings.TimerSettings(ctx)
	if err != nil {
		return nil, err
	}
	timers, err := s.timers.List(ctx)
	if err != nil {
		return nil, err
	}

	var events []TickEvent
	for _, t := range timers {
		d := t.CheckPolicy(cfg, now)

		if d.AutoStop {
			entry, err := s.stopAt(ctx, t.ID, now)
			if err != nil {
				return events, err
			}
			s.notifier.Notify("Timer stopped automatically",
				fmt.Sprintf("%s logged after %d minutes", describeTimer(t), entry.Minutes))
			events = append(events, TickEvent{TimerID: t.ID, Kind: TickAutoStopped, Entry: entry})
			continue
		}

		changed := false
		if d.AutoPause {
			if err := t.Pause(now); err != nil {
				return events, err
			}
			changed = true
			s.notifier.Notify("Timer paused automatically",
				fmt.Sprintf("%s idle for %d minutes", describeTimer(t), cfg.AutoPauseAfterMinutes))
			events = append(events, TickEvent{TimerID: t.ID, Kind: TickAutoPaused})
		}
		if d.Remind {
			t.LastRemindedMin = t.ElapsedMinutes(now)
			changed = true
			s.notifier.Notify("Timer still running",
				fmt.Sprintf("%s at %s", describeTimer(t), domain.FormatMinutesHuman(t.ElapsedMinutes(now))))
			events = append(events, TickEvent{TimerID: t.ID, Kind: TickReminded})
		}

		if changed {
			if err := s.timers.Update(ctx, t); err != nil {
				return events, err
			}
		}
	}
	return events, nil
}

func (s *timerService) requireUnlocked(ctx context.Context, now time.Time) error {
	locked, err := s.weeks.IsLocked(ctx, now)
	if err != nil {
		return err
	}
	if locked {
		return fmt.Errorf("week %s is submitted: %w", domain.WeekKeyFor(now), domain.ErrLocked)
	}
	return nil
}

func describeTimer(t *domain.RunningTimer) string {
	switch {
	case t.Customer != "" && t.Project != "":
		return t.Customer + " / " + t.Project
	case t.Customer != "":
		return t.Customer
	case t.Project != "":
		return t.Project
	default:
		return "Timer"
	}
}
