package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id           TEXT PRIMARY KEY,
		code         TEXT NOT NULL UNIQUE,
		name         TEXT NOT NULL,
		gender       TEXT NOT NULL DEFAULT '',
		address      TEXT NOT NULL DEFAULT '',
		nfc_id       TEXT NOT NULL DEFAULT '',
		photo        BLOB,
		face_feature BLOB,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_employees_nfc ON employees(nfc_id)`,

	`CREATE TABLE IF NOT EXISTS attendance_logs (
		id            TEXT PRIMARY KEY,
		employee_code TEXT NOT NULL REFERENCES employees(code) ON DELETE CASCADE,
		kind          TEXT NOT NULL CHECK(kind IN ('IN','OUT')),
		actual_time   TEXT NOT NULL,
		rounded_time  TEXT NOT NULL,
		work_date     TEXT NOT NULL,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_logs_employee_date ON attendance_logs(employee_code, work_date)`,
	`CREATE INDEX IF NOT EXISTS idx_logs_employee_actual ON attendance_logs(employee_code, actual_time)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id                TEXT PRIMARY KEY DEFAULT 'default',
		rounding_interval INTEGER NOT NULL DEFAULT 0,
		in_direction      TEXT NOT NULL DEFAULT 'up'   CHECK(in_direction IN ('up','down')),
		out_direction     TEXT NOT NULL DEFAULT 'down' CHECK(out_direction IN ('up','down')),
		cutoff_hour       INTEGER NOT NULL DEFAULT 0,
		cutoff_minute     INTEGER NOT NULL DEFAULT 0
	)`,

	// Seed default settings row
	`INSERT OR IGNORE INTO settings (id) VALUES ('default')`,
}
