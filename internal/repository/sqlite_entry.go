package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tidvakt/internal/db"
	"github.com/alexanderramin/tidvakt/internal/domain"
)

// SQLiteEntryRepo implements EntryRepo over SQLite.
type SQLiteEntryRepo struct {
	db db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo.
func NewSQLiteEntryRepo(db db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: db}
}

const entryColumns = `id, date, minutes, customer, project, note, created_at, billed_at`

func (r *SQLiteEntryRepo) Create(ctx context.Context, e *domain.TimeEntry) error {
	query := `INSERT INTO time_entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Date.Format(dateLayout),
		e.Minutes,
		e.Customer,
		e.Project,
		e.Note,
		e.CreatedAt.Format(time.RFC3339),
		nullableTimeToString(e.BilledAt, time.RFC3339),
	)
	if err != nil {
		return domain.WrapStorage("inserting time entry", err)
	}
	return nil
}

func (r *SQLiteEntryRepo) GetByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries WHERE id = ?`
	return r.scanEntry(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteEntryRepo) List(ctx context.Context, includeBilled bool) ([]*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries ORDER BY date DESC, created_at DESC`
	if !includeBilled {
		query = `SELECT ` + entryColumns + ` FROM time_entries
			WHERE billed_at IS NULL ORDER BY date DESC, created_at DESC`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.WrapStorage("listing time entries", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries
		WHERE date >= ? AND date <= ? ORDER BY date, created_at`
	rows, err := r.db.QueryContext(ctx, query, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, domain.WrapStorage("listing time entries by range", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) Update(ctx context.Context, e *domain.TimeEntry) error {
	query := `UPDATE time_entries
		SET date = ?, minutes = ?, customer = ?, project = ?, note = ?, billed_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Date.Format(dateLayout),
		e.Minutes,
		e.Customer,
		e.Project,
		e.Note,
		nullableTimeToString(e.BilledAt, time.RFC3339),
		e.ID,
	)
	if err != nil {
		return domain.WrapStorage("updating time entry", err)
	}
	return requireRowAffected(res, "time entry")
}

func (r *SQLiteEntryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM time_entries WHERE id = ?`, id)
	if err != nil {
		return domain.WrapStorage("deleting time entry", err)
	}
	return requireRowAffected(res, "time entry")
}

func (r *SQLiteEntryRepo) scanEntry(row *sql.Row) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	var dateStr, createdAtStr string
	var billedAt sql.NullString

	err := row.Scan(&e.ID, &dateStr, &e.Minutes, &e.Customer, &e.Project, &e.Note, &createdAtStr, &billedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("time entry: %w", domain.ErrNotFound)
		}
		return nil, domain.WrapStorage("scanning time entry", err)
	}
	return r.populateEntry(&e, dateStr, createdAtStr, billedAt)
}

func (r *SQLiteEntryRepo) scanEntries(rows *sql.Rows) ([]*domain.TimeEntry, error) {
	var entries []*domain.TimeEntry
	for rows.Next() {
		var e domain.TimeEntry
		var dateStr, createdAtStr string
		var billedAt sql.NullString

		if err := rows.Scan(&e.ID, &dateStr, &e.Minutes, &e.Customer, &e.Project, &e.Note, &createdAtStr, &billedAt); err != nil {
			return nil, domain.WrapStorage("scanning time entry row", err)
		}
		entry, err := r.populateEntry(&e, dateStr, createdAtStr, billedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapStorage("iterating time entries", err)
	}
	return entries, nil
}

func (r *SQLiteEntryRepo) populateEntry(e *domain.TimeEntry, dateStr, createdAtStr string, billedAt sql.NullString) (*domain.TimeEntry, error) {
	var err error
	if e.Date, err = time.Parse(dateLayout, dateStr); err != nil {
		return nil, domain.WrapStorage("parsing entry date", err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, domain.WrapStorage("parsing entry created_at", err)
	}
	e.BilledAt = parseNullableTime(billedAt, time.RFC3339)
	return e, nil
}
