// Package store persists measurement records to SQLite for downstream
// analysis.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Dawit-Getachew/In-place-benchmark/harness"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp_iso TEXT NOT NULL,
    impl_name TEXT NOT NULL,
    scenario TEXT NOT NULL,
    n INTEGER NOT NULL,
    seed INTEGER NOT NULL,
    rep_id INTEGER NOT NULL,
    ops_in_run INTEGER NOT NULL,
    total_time_ns INTEGER NOT NULL,
    ns_per_op REAL NOT NULL,
    init_time_ns INTEGER NOT NULL,
    relocations_count INTEGER NOT NULL,
    conversions_count INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_records_scenario_n ON records(scenario, n);
`

// SQLite appends records to a SQLite database. It assumes the harness's
// single-writer access pattern.
type SQLite struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite works best with a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// WriteRecord inserts one record.
func (s *SQLite) WriteRecord(rec harness.Record) error {
	_, err := s.db.Exec(`INSERT INTO records (
		timestamp_iso, impl_name, scenario, n, seed, rep_id,
		ops_in_run, total_time_ns, ns_per_op, init_time_ns,
		relocations_count, conversions_count
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Timestamp, rec.Impl, rec.Scenario, rec.N, rec.Seed, rec.Rep,
		rec.Ops, rec.TotalNs, rec.NsPerOp, rec.InitNs,
		rec.Relocations, rec.Conversions,
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}

	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
