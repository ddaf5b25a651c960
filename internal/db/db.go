// Package db provides the SQLite database wrapper for the estimate ledger.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps *sql.DB and provides migration support.
type DB struct {
	*sql.DB
}

// New opens a SQLite connection with WAL mode and foreign keys enabled.
// Driver name is "sqlite" (modernc.org/sqlite, not mattn/go-sqlite3).
func New(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_journal=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("db.New: open: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("db.New: ping: %w", err)
	}
	// Limit to 1 writer at a time to avoid SQLITE_BUSY in WAL mode.
	sqlDB.SetMaxOpenConns(1)
	return &DB{sqlDB}, nil
}

// Migrate runs all CREATE TABLE IF NOT EXISTS migrations.
// Idempotent — safe to call on every startup.
func (d *DB) Migrate() error {
	for _, ddl := range []string{ddlEstimateLog} {
		if _, err := d.Exec(ddl); err != nil {
			return fmt.Errorf("db.Migrate: %w", err)
		}
	}
	return nil
}

const ddlEstimateLog = `
CREATE TABLE IF NOT EXISTS estimate_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	model         TEXT NOT NULL,
	input_tokens  INTEGER NOT NULL,
	output_tokens INTEGER NOT NULL,
	cost          REAL NOT NULL,
	date          TEXT NOT NULL,
	created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_estimate_log_date ON estimate_log(date);`
