package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// duplicates from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS time_entries (
		id         TEXT PRIMARY KEY,
		date       TEXT NOT NULL,
		minutes    INTEGER NOT NULL CHECK(minutes >= 0),
		customer   TEXT NOT NULL DEFAULT '',
		project    TEXT NOT NULL DEFAULT '',
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		billed_at  TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_time_entries_date ON time_entries(date)`,

	`CREATE TABLE IF NOT EXISTS running_timers (
		id                TEXT PRIMARY KEY,
		customer          TEXT NOT NULL DEFAULT '',
		project           TEXT NOT NULL DEFAULT '',
		note              TEXT NOT NULL DEFAULT '',
		started_at        TEXT NOT NULL,
		paused_at         TEXT,
		total_paused_ms   INTEGER NOT NULL DEFAULT 0,
		last_activity_at  TEXT NOT NULL,
		last_reminded_min INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS week_submissions (
		week_key     TEXT PRIMARY KEY,
		submitted_at TEXT NOT NULL,
		approved_at  TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS reminders (
		id            TEXT PRIMARY KEY,
		bill_id       TEXT NOT NULL,
		kind          TEXT NOT NULL
		              CHECK(kind IN ('T-7','T-1','T+3','T+10','T+30')),
		scheduled_for TEXT NOT NULL,
		sent          INTEGER NOT NULL DEFAULT 0,
		snoozed_until TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_reminders_bill ON reminders(bill_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reminders_due ON reminders(sent, scheduled_for)`,

	`CREATE TABLE IF NOT EXISTS timer_settings (
		id                        TEXT PRIMARY KEY DEFAULT 'default',
		auto_stop_after_min       INTEGER NOT NULL DEFAULT 480,
		auto_pause_after_min      INTEGER NOT NULL DEFAULT 15,
		reminder_interval_min     INTEGER NOT NULL DEFAULT 60,
		enable_activity_detection INTEGER NOT NULL DEFAULT 1,
		enable_multiple_timers    INTEGER NOT NULL DEFAULT 0
	)`,

	// Seed the settings singletons.
	`INSERT OR IGNORE INTO timer_settings (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS reminder_settings (
		id             TEXT PRIMARY KEY DEFAULT 'default',
		quiet_start    TEXT NOT NULL DEFAULT '18:00',
		quiet_end      TEXT NOT NULL DEFAULT '08:00',
		quiet_weekends INTEGER NOT NULL DEFAULT 1
	)`,

	`INSERT OR IGNORE INTO reminder_settings (id) VALUES ('default')`,
}
