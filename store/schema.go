package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaVersion is the current schema version.
const SchemaVersion = 1

// schemaV1 is the initial schema for the SQLite store.
const schemaV1 = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,  -- fixed-width RFC3339 with nanoseconds, UTC

    -- Parameters
    seed INTEGER NOT NULL,
    topology TEXT NOT NULL,
    n_nodes INTEGER NOT NULL,
    p_connect REAL NOT NULL,
    time_steps INTEGER NOT NULL,
    noise_sigma REAL NOT NULL,

    -- Headline metrics
    average_state REAL NOT NULL,
    state_variance REAL NOT NULL,
    number_of_nodes INTEGER NOT NULL,
    number_of_edges INTEGER NOT NULL,
    average_clustering REAL NOT NULL,

    -- Structural report
    graph_report TEXT NOT NULL  -- JSON
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);

CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);
`

// InitSchema creates the tables if needed and records the schema version.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaV1); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, SchemaVersion); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	return nil
}
