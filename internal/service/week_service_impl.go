package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/tidvakt/internal/domain"
	"github.com/alexanderramin/tidvakt/internal/repository"
)

type weekService struct {
	submissions repository.SubmissionRepo
	entries     repository.EntryRepo
	clock       domain.Clock
}

// NewWeekService builds the weekly approval workflow.
func NewWeekService(submissions repository.SubmissionRepo, entries repository.EntryRepo, clock domain.Clock) WeekService {
	return &weekService{submissions: submissions, entries: entries, clock: clock}
}

func (s *weekService) Submit(ctx context.Context, weekKey string) (*domain.WeekSubmission, error) {
	start, end, err := domain.WeekRange(weekKey)
	if err != nil {
		return nil, err
	}

	if existing, err := s.submissions.GetByWeekKey(ctx, weekKey); err == nil {
		return nil, fmt.Errorf("week %s already %s: %w", weekKey, existing.State(), domain.ErrAlreadyInState)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	entries, err := s.entries.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("week %s has no entries to submit: %w", weekKey, domain.ErrInvalidInput)
	}

	sub := &domain.WeekSubmission{WeekKey: weekKey, SubmittedAt: s.clock.Now()}
	if err := s.submissions.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *weekService) Approve(ctx context.Context, weekKey string) error {
	sub, err := s.submissions.GetByWeekKey(ctx, weekKey)
	if err != nil {
		return err
	}
	if err := sub.Approve(s.clock.Now()); err != nil {
		return err
	}
	return s.submissions.Update(ctx, sub)
}

// Reopen discards the submission row, including any approval, and unlocks
// the week's entries.
func (s *weekService) Reopen(ctx context.Context, weekKey string) error {
	return s.submissions.Delete(ctx, weekKey)
}

// IsLocked reports whether the week containing date has been submitted.
// Approval does not change the answer; the submission row alone locks.
func (s *weekService) IsLocked(ctx context.Context, date time.Time) (bool, error) {
	_, err := s.submissions.GetByWeekKey(ctx, domain.WeekKeyFor(date))
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *weekService) Status(ctx context.Context, weekKey string) (*WeekStatus, error) {
	total, err := s.weekTotal(ctx, weekKey)
	if err != nil {
		return nil, err
	}

	st := &WeekStatus{WeekKey: weekKey, State: domain.WeekOpen, TotalMinutes: total}
	sub, err := s.submissions.GetByWeekKey(ctx, weekKey)
	if errors.Is(err, domain.ErrNotFound) {
		return st, nil
	}
	if err != nil {
		return nil, err
	}

	st.State = sub.State()
	submittedAt := sub.SubmittedAt
	st.SubmittedAt = &submittedAt
	st.ApprovedAt = sub.ApprovedAt
	return st, nil
}

func (s *weekService) ListPending(ctx context.Context) ([]*WeekStatus, error) {
	return s.listByState(ctx, domain.WeekSubmitted)
}

func (s *weekService) ListApproved(ctx context.Context) ([]*WeekStatus, error) {
	return s.listByState(ctx, domain.WeekApproved)
}

func (s *weekService) listByState(ctx context.Context, state domain.WeekState) ([]*WeekStatus, error) {
	subs, err := s.submissions.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*WeekStatus, 0, len(subs))
	for _, sub := range subs {
		if sub.State() != state {
			continue
		}
		total, err := s.weekTotal(ctx, sub.WeekKey)
		if err != nil {
			return nil, err
		}
		submittedAt := sub.SubmittedAt
		out = append(out, &WeekStatus{
			WeekKey:      sub.WeekKey,
			State:        sub.State(),
			TotalMinutes: total,
			SubmittedAt:  &submittedAt,
			ApprovedAt:   sub.ApprovedAt,
		})
	}
	return out, nil
}

func (s *weekService) weekTotal(ctx context.Context, weekKey string) (int, error) {
	start, end, err := domain.WeekRange(weekKey)
	if err != nil {
		return 0, err
	}
	entries, err := s.entries.ListByDateRange(ctx, start, end)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, e := range entries {
		total += e.Minutes
	}
	return total, nil
}
