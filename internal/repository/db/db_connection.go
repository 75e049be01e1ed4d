package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// MemoryDSN keeps the whole database inside the process; it vanishes on exit.
const MemoryDSN = ":memory:"

// InitDB opens a SQLite database and ensures tables exist.
// An empty path means MemoryDSN.
func InitDB(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		path = MemoryDSN
	}
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// One connection: SQLite serializes writers anyway, and an in-memory
	// database exists only as long as its connection does.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{"PRAGMA foreign_keys = ON;", "PRAGMA busy_timeout = 5000;"}
	if !isMemory(path) {
		pragmas = append([]string{"PRAGMA journal_mode = WAL;"}, pragmas...)
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", strings.TrimSuffix(p, ";"), err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

func isMemory(path string) bool {
	return path == MemoryDSN || strings.Contains(path, "mode=memory")
}

const sqliteDriverName = "sqlite"

const schemaKioskEvents = `
CREATE TABLE IF NOT EXISTS kiosk_events (
    id TEXT PRIMARY KEY,
    occurred_at TIMESTAMP NOT NULL,
    type TEXT NOT NULL,
    message TEXT NOT NULL,
    meta TEXT
);
`

const schemaTelemetrySamples = `
CREATE TABLE IF NOT EXISTS telemetry_samples (
    seq INTEGER NOT NULL,
    recorded_at TIMESTAMP NOT NULL,
    battery_pct REAL NOT NULL,
    temp_c REAL NOT NULL,
    humidity_pct REAL NOT NULL,
    air_quality TEXT NOT NULL,
    active_users INTEGER NOT NULL,
    energy_kwh REAL NOT NULL,
    noise_db REAL NOT NULL,
    co2_saved_kg REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_telemetry_samples_recorded_at ON telemetry_samples (recorded_at);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// no-op after a successful Commit
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaKioskEvents,
		schemaTelemetrySamples,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
