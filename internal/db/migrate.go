package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Statements are idempotent and re-run on every
// open; "duplicate column name" from re-applied ALTER TABLE is tolerated.
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
	// One row per session. seq preserves insertion order within a day.
	`CREATE TABLE IF NOT EXISTS work_sessions (
		id       TEXT PRIMARY KEY,
		day      TEXT NOT NULL,
		seq      INTEGER NOT NULL,
		start_at REAL NOT NULL,
		end_at   REAL,
		CHECK(end_at IS NULL OR end_at >= start_at),
		UNIQUE(day, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_sessions_day ON work_sessions(day)`,
	`CREATE INDEX IF NOT EXISTS idx_work_sessions_open ON work_sessions(day) WHERE end_at IS NULL`,
}
