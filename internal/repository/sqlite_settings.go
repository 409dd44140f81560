package repository

import (
	"context"

	"github.com/alexanderramin/tidvakt/internal/db"
	"github.com/alexanderramin/tidvakt/internal/domain"
)

// SQLiteSettingsRepo reads and writes the two configuration singletons.
// Both rows are seeded by migration, so reads never miss.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(db db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: db}
}

func (r *SQLiteSettingsRepo) TimerSettings(ctx context.Context) (domain.TimerSettings, error) {
	query := `SELECT auto_stop_after_min, auto_pause_after_min, reminder_interval_min,
		enable_activity_detection, enable_multiple_timers
		FROM timer_settings WHERE id = 'default'`

	var s domain.TimerSettings
	var activity, multiple int
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.AutoStopAfterMinutes,
		&s.AutoPauseAfterMinutes,
		&s.ReminderIntervalMinutes,
		&activity,
		&multiple,
	)
	if err != nil {
		return domain.TimerSettings{}, domain.WrapStorage("reading timer settings", err)
	}
	s.EnableActivityDetection = intToBool(activity)
	s.EnableMultipleTimers = intToBool(multiple)
	return s.WithDefaults(), nil
}

func (r *SQLiteSettingsRepo) SaveTimerSettings(ctx context.Context, s domain.TimerSettings) error {
	query := `UPDATE timer_settings
		SET auto_stop_after_min = ?, auto_pause_after_min = ?, reminder_interval_min = ?,
		    enable_activity_detection = ?, enable_multiple_timers = ?
		WHERE id = 'default'`
	_, err := r.db.ExecContext(ctx, query,
		s.AutoStopAfterMinutes,
		s.AutoPauseAfterMinutes,
		s.ReminderIntervalMinutes,
		boolToInt(s.EnableActivityDetection),
		boolToInt(s.EnableMultipleTimers),
	)
	if err != nil {
		return domain.WrapStorage("saving timer settings", err)
	}
	return nil
}

func (r *SQLiteSettingsRepo) ReminderSettings(ctx context.Context) (domain.ReminderSettings, error) {
	query := `SELECT quiet_start, quiet_end, quiet_weekends FROM reminder_settings WHERE id = 'default'`

	var s domain.ReminderSettings
	var weekends int
	err := r.db.QueryRowContext(ctx, query).Scan(&s.QuietStart, &s.QuietEnd, &weekends)
	if err != nil {
		return domain.ReminderSettings{}, domain.WrapStorage("reading reminder settings", err)
	}
	s.QuietWeekends = intToBool(weekends)
	return s.WithDefaults(), nil
}

func (r *SQLiteSettingsRepo) SaveReminderSettings(ctx context.Context, s domain.ReminderSettings) error {
	query := `UPDATE reminder_settings SET quiet_start = ?, quiet_end = ?, quiet_weekends = ? WHERE id = 'default'`
	_, err := r.db.ExecContext(ctx, query, s.QuietStart, s.QuietEnd, boolToInt(s.QuietWeekends))
	if err != nil {
		return domain.WrapStorage("saving reminder settings", err)
	}
	return nil
}
