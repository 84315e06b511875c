package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/katalvlaran/resilience/metrics"
)

// timeLayout is fixed-width so that created_at sorts lexicographically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements RunStore on a SQLite database file.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (or creates) the database at dbPath and initializes
// the schema. Parent directories are created as needed.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // SQLite works best with single writer

	if err := InitSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string { return s.dbPath }

// SaveRun implements RunStore.
func (s *SQLiteStore) SaveRun(ctx context.Context, rec RunRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("SaveRun: empty id: %w", ErrInvalidRecord)
	}
	graphJSON, err := json.Marshal(rec.Graph)
	if err != nil {
		return fmt.Errorf("SaveRun %s: encoding graph report: %w", rec.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (
			id, created_at, seed, topology, n_nodes, p_connect, time_steps, noise_sigma,
			average_state, state_variance, number_of_nodes, number_of_edges, average_clustering,
			graph_report
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt.UTC().Format(timeLayout),
		rec.Seed, rec.Topology, rec.Nodes, rec.PConnect, rec.TimeSteps, rec.NoiseSigma,
		rec.Report.AverageState, rec.Report.StateVariance, rec.Report.NumberOfNodes,
		rec.Report.NumberOfEdges, rec.Report.AverageClustering,
		string(graphJSON),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("SaveRun %s: %w", rec.ID, ErrDuplicate)
		}
		return fmt.Errorf("SaveRun %s: %w", rec.ID, err)
	}

	return nil
}

const selectRun = `
	SELECT id, created_at, seed, topology, n_nodes, p_connect, time_steps, noise_sigma,
	       average_state, state_variance, number_of_nodes, number_of_edges, average_clustering,
	       graph_report
	FROM runs`

// GetRun implements RunStore.
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*RunRecord, error) {
	row := s.db.QueryRowContext(ctx, selectRun+` WHERE id = ?`, id)
	rec, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("GetRun %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("GetRun %s: %w", id, err)
	}

	return rec, nil
}

// ListRuns implements RunStore.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	query := selectRun + ` ORDER BY created_at DESC, id ASC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListRuns: %w", err)
	}
	defer rows.Close()

	out := []RunRecord{}
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("ListRuns: %w", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRuns: %w", err)
	}

	return out, nil
}

// Close implements RunStore.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(r rowScanner) (*RunRecord, error) {
	var (
		rec       RunRecord
		createdAt string
		graphJSON string
	)
	err := r.Scan(
		&rec.ID, &createdAt, &rec.Seed, &rec.Topology, &rec.Nodes, &rec.PConnect, &rec.TimeSteps, &rec.NoiseSigma,
		&rec.Report.AverageState, &rec.Report.StateVariance, &rec.Report.NumberOfNodes,
		&rec.Report.NumberOfEdges, &rec.Report.AverageClustering,
		&graphJSON,
	)
	if err != nil {
		return nil, err
	}

	rec.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	var graph metrics.GraphReport
	if err := json.Unmarshal([]byte(graphJSON), &graph); err != nil {
		return nil, fmt.Errorf("decoding graph report: %w", err)
	}
	rec.Graph = graph

	return &rec, nil
}
