package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tidvakt/internal/db"
	"github.com/alexanderramin/tidvakt/internal/domain"
)

// SQLiteSubmissionRepo implements SubmissionRepo over SQLite.
type SQLiteSubmissionRepo struct {
	db db.DBTX
}

// NewSQLiteSubmissionRepo creates a new SQLiteSubmissionRepo.
func NewSQLiteSubmissionRepo(db db.DBTX) *SQLiteSubmissionRepo {
	return &SQLiteSubmissionRepo{db: db}
}

func (r *SQLiteSubmissionRepo) Create(ctx context.Context, s *domain.WeekSubmission) error {
	query := `INSERT INTO week_submissions (week_key, submitted_at, approved_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.WeekKey,
		s.SubmittedAt.Format(time.RFC3339),
		nullableTimeToString(s.ApprovedAt, time.RFC3339),
	)
	if err != nil {
		return domain.WrapStorage("inserting week submission", err)
	}
	return nil
}

func (r *SQLiteSubmissionRepo) GetByWeekKey(ctx context.Context, weekKey string) (*domain.WeekSubmission, error) {
	query := `SELECT week_key, submitted_at, approved_at FROM week_submissions WHERE week_key = ?`
	row := r.db.QueryRowContext(ctx, query, weekKey)

	var s domain.WeekSubmission
	var submittedAtStr string
	var approvedAt sql.NullString

	err := row.Scan(&s.WeekKey, &submittedAtStr, &approvedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("week submission %s: %w", weekKey, domain.ErrNotFound)
		}
		return nil, domain.WrapStorage("scanning week submission", err)
	}
	if s.SubmittedAt, err = time.Parse(time.RFC3339, submittedAtStr); err != nil {
		return nil, domain.WrapStorage("parsing submitted_at", err)
	}
	s.ApprovedAt = parseNullableTime(approvedAt, time.RFC3339)
	return &s, nil
}

func (r *SQLiteSubmissionRepo) List(ctx context.Context) ([]*domain.WeekSubmission, error) {
	query := `SELECT week_key, submitted_at, approved_at FROM week_submissions ORDER BY week_key DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.WrapStorage("listing week submissions", err)
	}
	defer rows.Close()

	var subs []*domain.WeekSubmission
	for rows.Next() {
		var s domain.WeekSubmission
		var submittedAtStr string
		var approvedAt sql.NullString

		if err := rows.Scan(&s.WeekKey, &submittedAtStr, &approvedAt); err != nil {
			return nil, domain.WrapStorage("scanning week submission row", err)
		}
		if s.SubmittedAt, err = time.Parse(time.RFC3339, submittedAtStr); err != nil {
			return nil, domain.WrapStorage("parsing submitted_at", err)
		}
		s.ApprovedAt = parseNullableTime(approvedAt, time.RFC3339)
		subs = append(subs, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapStorage("iterating week submissions", err)
	}
	return subs, nil
}

func (r *SQLiteSubmissionRepo) Update(ctx context.Context, s *domain.WeekSubmission) error {
	query := `UPDATE week_submissions SET submitted_at = ?, approved_at = ? WHERE week_key = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.SubmittedAt.Format(time.RFC3339),
		nullableTimeToString(s.ApprovedAt, time.RFC3339),
		s.WeekKey,
	)
	if err != nil {
		return domain.WrapStorage("updating week submission", err)
	}
	return requireRowAffected(res, "week submission")
}

func (r *SQLiteSubmissionRepo) Delete(ctx context.Context, weekKey string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM week_submissions WHERE week_key = ?`, weekKey)
	if err != nil {
		return domain.WrapStorage("deleting week submission", err)
	}
	return requireRowAffected(res, "week submission")
}
