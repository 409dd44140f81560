package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tidvakt/internal/domain"
	"github.com/alexanderramin/tidvakt/internal/repository"
	"github.com/google/uuid"
)

type ledgerService struct {
	entries repository.EntryRepo
	weeks   WeekService
	clock   domain.Clock
}

// NewLedgerService builds the time ledger. The week service guards every
// mutation of dated entries against locked weeks.
func NewLedgerService(entries repository.EntryRepo, weeks WeekService, clock domain.Clock) LedgerService {
	return &ledgerService{entries: entries, weeks: weeks, clock: clock}
}

func (s *ledgerService) Add(ctx context.Context, e *domain.TimeEntry) error {
	e.Date = domain.DateOnly(e.Date)
	if err := e.Validate(); err != nil {
		return err
	}
	if err := s.requireUnlocked(ctx, e.Date); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.CreatedAt = s.clock.Now()
	return s.entries.Create(ctx, e)
}

func (s *ledgerService) Remove(ctx context.Context, id string) error {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireUnlocked(ctx, e.Date); err != nil {
		return err
	}
	return s.entries.Delete(ctx, id)
}

// MarkBilled is legal regardless of week state; billing and approval are
// independent lifecycles.
func (s *ledgerService) MarkBilled(ctx context.Context, id string) error {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := e.MarkBilled(s.clock.Now()); err != nil {
		return err
	}
	return s.entries.Update(ctx, e)
}

func (s *ledgerService) GetByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	return s.entries.GetByID(ctx, id)
}

func (s *ledgerService) List(ctx context.Context, includeBilled bool) ([]*domain.TimeEntry, error) {
	return s.entries.List(ctx, includeBilled)
}

func (s *ledgerService) Aggregate(ctx context.Context, from, to time.Time) (*Aggregate, error) {
	from, to = domain.DateOnly(from), domain.DateOnly(to)
	if to.Before(from) {
		return nil, fmt.Errorf("range end %s before start %s: %w",
			to.Format("2006-01-02"), from.Format("2006-01-02"), domain.ErrInvalidInput)
	}

	entries, err := s.entries.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	agg := &Aggregate{
		From:       from,
		To:         to,
		ByDay:      make(map[string]int),
		ByCustomer: make(map[string]int),
		ByProject:  make(map[string]int),
	}
	for _, e := range entries {
		agg.TotalMinutes += e.Minutes
		agg.ByDay[e.Date.Format("2006-01-02")] += e.Minutes
		if e.Customer != "" {
			agg.ByCustomer[e.Customer] += e.Minutes
		}
		if e.Project != "" {
			agg.ByProject[e.Project] += e.Minutes
		}
	}
	return agg, nil
}

func (s *ledgerService) requireUnlocked(ctx context.Context, date time.Time) error {
	locked, err := s.weeks.IsLocked(ctx, date)
	if err != nil {
		return err
	}
	if locked {
		return fmt.Errorf("week %s is submitted: %w", domain.WeekKeyFor(date), domain.ErrLocked)
	}
	return nil
}
