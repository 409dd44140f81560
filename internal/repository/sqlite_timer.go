package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tidvakt/internal/db"
	"github.com/alexanderramin/tidvakt/internal/domain"
)

// SQLiteTimerRepo implements TimerRepo over SQLite. Rows exist only while a
// timer is live or paused; stopping deletes the row.
type SQLiteTimerRepo struct {
	db db.DBTX
}

// NewSQLiteTimerRepo creates a new SQLiteTimerRepo.
func NewSQLiteTimerRepo(db db.DBTX) *SQLiteTimerRepo {
	return &SQLiteTimerRepo{db: db}
}

const timerColumns = `id, customer, project, note, started_at, paused_at, total_paused_ms, last_activity_at, last_reminded_min`

func (r *SQLiteTimerRepo) Create(ctx context.Context, t *domain.RunningTimer) error {
	query := `INSERT INTO running_timers (` + timerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Customer,
		t.Project,
		t.Note,
		t.StartedAt.Format(time.RFC3339Nano),
		nullableTimeToString(t.PausedAt, time.RFC3339Nano),
		t.TotalPaused.Milliseconds(),
		t.LastActivityAt.Format(time.RFC3339Nano),
		t.LastRemindedMin,
	)
	if err != nil {
		return domain.WrapStorage("inserting running timer", err)
	}
	return nil
}

func (r *SQLiteTimerRepo) GetByID(ctx context.Context, id string) (*domain.RunningTimer, error) {
	query := `SELECT ` + timerColumns + ` FROM running_timers WHERE id = ?`
	return r.scanTimer(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTimerRepo) List(ctx context.Context) ([]*domain.RunningTimer, error) {
	query := `SELECT ` + timerColumns + ` FROM running_timers ORDER BY started_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.WrapStorage("listing running timers", err)
	}
	defer rows.Close()

	var timers []*domain.RunningTimer
	for rows.Next() {
		t, err := r.scanTimerFromRows(rows)
		if err != nil {
			return nil, err
		}
		timers = append(timers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapStorage("iterating running timers", err)
	}
	return timers, nil
}

func (r *SQLiteTimerRepo) Update(ctx context.Context, t *domain.RunningTimer) error {
	query := `UPDATE running_timers
		SET paused_at = ?, total_paused_ms = ?, last_activity_at = ?, last_reminded_min = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableTimeToString(t.PausedAt, time.RFC3339Nano),
		t.TotalPaused.Milliseconds(),
		t.LastActivityAt.Format(time.RFC3339Nano),
		t.LastRemindedMin,
		t.ID,
	)
	if err != nil {
		return domain.WrapStorage("updating running timer", err)
	}
	return requireRowAffected(res, "running timer")
}

func (r *SQLiteTimerRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM running_timers WHERE id = ?`, id)
	if err != nil {
		return domain.WrapStorage("deleting running timer", err)
	}
	return requireRowAffected(res, "running timer")
}

func (r *SQLiteTimerRepo) scanTimer(row *sql.Row) (*domain.RunningTimer, error) {
	var t domain.RunningTimer
	var startedAtStr, lastActivityStr string
	var pausedAt sql.NullString
	var pausedMs int64

	err := row.Scan(&t.ID, &t.Customer, &t.Project, &t.Note,
		&startedAtStr, &pausedAt, &pausedMs, &lastActivityStr, &t.LastRemindedMin)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("running timer: %w", domain.ErrNotFound)
		}
		return nil, domain.WrapStorage("scanning running timer", err)
	}
	return r.populateTimer(&t, startedAtStr, lastActivityStr, pausedAt, pausedMs)
}

func (r *SQLiteTimerRepo) scanTimerFromRows(rows *sql.Rows) (*domain.RunningTimer, error) {
	var t domain.RunningTimer
	var startedAtStr, lastActivityStr string
	var pausedAt sql.NullString
	var pausedMs int64

	if err := rows.Scan(&t.ID, &t.Customer, &t.Project, &t.Note,
		&startedAtStr, &pausedAt, &pausedMs, &lastActivityStr, &t.LastRemindedMin); err != nil {
		return nil, domain.WrapStorage("scanning running timer row", err)
	}
	return r.populateTimer(&t, startedAtStr, lastActivityStr, pausedAt, pausedMs)
}

func (r *SQLiteTimerRepo) populateTimer(t *domain.RunningTimer, startedAtStr, lastActivityStr string, pausedAt sql.NullString, pausedMs int64) (*domain.RunningTimer, error) {
	var err error
	if t.StartedAt, err = time.Parse(time.RFC3339Nano, startedAtStr); err != nil {
		return nil, domain.WrapStorage("parsing timer started_at", err)
	}
	if t.LastActivityAt, err = time.Parse(time.RFC3339Nano, lastActivityStr); err != nil {
		return nil, domain.WrapStorage("parsing timer last_activity_at", err)
	}
	t.PausedAt = parseNullableTime(pausedAt, time.RFC3339Nano)
	t.TotalPaused = time.Duration(pausedMs) * time.Millisecond
	return t, nil
}
