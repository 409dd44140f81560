package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tidvakt/internal/db"
	"github.com/alexanderramin/tidvakt/internal/domain"
)

// SQLiteReminderRepo implements ReminderRepo over SQLite.
type SQLiteReminderRepo struct {
	db db.DBTX
}

// NewSQLiteReminderRepo creates a new SQLiteReminderRepo.
func NewSQLiteReminderRepo(db db.DBTX) *SQLiteReminderRepo {
	return &SQLiteReminderRepo{db: db}
}

const reminderColumns = `id, bill_id, kind, scheduled_for, sent, snoozed_until`

func (r *SQLiteReminderRepo) CreateBatch(ctx context.Context, rs []*domain.Reminder) error {
	query := `INSERT INTO reminders (` + reminderColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	for _, rem := range rs {
		_, err := r.db.ExecContext(ctx, query,
			rem.ID,
			rem.BillID,
			string(rem.Kind),
			rem.ScheduledFor.Format(time.RFC3339),
			boolToInt(rem.Sent),
			nullableTimeToString(rem.SnoozedUntil, time.RFC3339),
		)
		if err != nil {
			return domain.WrapStorage("inserting reminder", err)
		}
	}
	return nil
}

func (r *SQLiteReminderRepo) GetByID(ctx context.Context, id string) (*domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	rem, err := scanReminderRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("reminder: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	return rem, nil
}

func (r *SQLiteReminderRepo) ListByBill(ctx context.Context, billID string) ([]*domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE bill_id = ? ORDER BY scheduled_for`
	rows, err := r.db.QueryContext(ctx, query, billID)
	if err != nil {
		return nil, domain.WrapStorage("listing reminders by bill", err)
	}
	defer rows.Close()
	return collectReminders(rows)
}

func (r *SQLiteReminderRepo) ListUnsent(ctx context.Context) ([]*domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE sent = 0 ORDER BY scheduled_for`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.WrapStorage("listing unsent reminders", err)
	}
	defer rows.Close()
	return collectReminders(rows)
}

func (r *SQLiteReminderRepo) Update(ctx context.Context, rem *domain.Reminder) error {
	query := `UPDATE reminders SET scheduled_for = ?, sent = ?, snoozed_until = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		rem.ScheduledFor.Format(time.RFC3339),
		boolToInt(rem.Sent),
		nullableTimeToString(rem.SnoozedUntil, time.RFC3339),
		rem.ID,
	)
	if err != nil {
		return domain.WrapStorage("updating reminder", err)
	}
	return requireRowAffected(res, "reminder")
}

func (r *SQLiteReminderRepo) DeleteByBill(ctx context.Context, billID string) error {
	// Cancelling a bill with no reminders left is not an error.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE bill_id = ?`, billID); err != nil {
		return domain.WrapStorage("deleting reminders by bill", err)
	}
	return nil
}

// scanReminderRow scans one reminder given any row-shaped Scan function.
// sql.ErrNoRows passes through untouched so callers can map it.
func scanReminderRow(scan func(dest ...any) error) (*domain.Reminder, error) {
	var rem domain.Reminder
	var kindStr, scheduledForStr string
	var sentInt int
	var snoozedUntil sql.NullString

	if err := scan(&rem.ID, &rem.BillID, &kindStr, &scheduledForStr, &sentInt, &snoozedUntil); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, domain.WrapStorage("scanning reminder", err)
	}

	rem.Kind = domain.ReminderKind(kindStr)
	rem.Sent = intToBool(sentInt)
	rem.SnoozedUntil = parseNullableTime(snoozedUntil, time.RFC3339)

	var err error
	if rem.ScheduledFor, err = time.Parse(time.RFC3339, scheduledForStr); err != nil {
		return nil, domain.WrapStorage("parsing reminder scheduled_for", err)
	}
	return &rem, nil
}

func collectReminders(rows *sql.Rows) ([]*domain.Reminder, error) {
	var rems []*domain.Reminder
	for rows.Next() {
		rem, err := scanReminderRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		rems = append(rems, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapStorage("iterating reminders", err)
	}
	return rems, nil
}
