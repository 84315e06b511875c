// Package store defines the RunStore interface for recording finished
// experiment runs, with in-memory and SQLite implementations.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/resilience/metrics"
)

// Sentinel errors for run storage.
var (
	// ErrNotFound is returned when a run ID is unknown.
	ErrNotFound = errors.New("store: run not found")

	// ErrDuplicate is returned when a run ID is saved twice.
	ErrDuplicate = errors.New("store: duplicate run id")

	// ErrInvalidRecord is returned for a record without an ID.
	ErrInvalidRecord = errors.New("store: invalid record")
)

// RunRecord is the persisted summary of one experiment run.
type RunRecord struct {
	ID        string    `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Parameters
	Seed       int64   `json:"seed" yaml:"seed"`
	Topology   string  `json:"topology" yaml:"topology"`
	Nodes      int     `json:"n_nodes" yaml:"n_nodes"`
	PConnect   float64 `json:"p_connect" yaml:"p_connect"`
	TimeSteps  int     `json:"time_steps" yaml:"time_steps"`
	NoiseSigma float64 `json:"noise_sigma" yaml:"noise_sigma"`

	// Outcome
	Report metrics.Report      `json:"report" yaml:"report"`
	Graph  metrics.GraphReport `json:"graph" yaml:"graph"`
}

// RunStore records finished runs.
type RunStore interface {
	// SaveRun persists rec. The ID must be non-empty and unused.
	SaveRun(ctx context.Context, rec RunRecord) error

	// GetRun returns the run with the given ID, or ErrNotFound.
	GetRun(ctx context.Context, id string) (*RunRecord, error)

	// ListRuns returns up to limit runs, newest first; limit ≤ 0 means all.
	ListRuns(ctx context.Context, limit int) ([]RunRecord, error)

	// Close releases resources held by the store.
	Close() error
}

// Compile-time interface checks.
var (
	_ RunStore = (*MemoryStore)(nil)
	_ RunStore = (*SQLiteStore)(nil)
)
