// Package experiment wires the generator, the dynamics engine and the
// metrics into one reproducible run: generate → simulate → measure.
//
// Run executes one configuration; RunBatch executes one run per seed in
// parallel and returns the results in seed order. Each run is tagged with a
// random RunID, logged through log/slog, optionally traced step by step as
// JSONL, and optionally recorded in a store.RunStore.
package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/resilience/builder"
	"github.com/katalvlaran/resilience/config"
	"github.com/katalvlaran/resilience/core"
	"github.com/katalvlaran/resilience/dynamics"
	"github.com/katalvlaran/resilience/logging"
	"github.com/katalvlaran/resilience/metrics"
	"github.com/katalvlaran/resilience/store"
)

// Result is the outcome of one run.
type Result struct {
	RunID     uuid.UUID     `json:"run_id" yaml:"run_id"`
	Seed      int64         `json:"seed" yaml:"seed"`
	CreatedAt time.Time     `json:"created_at" yaml:"created_at"`
	Elapsed   time.Duration `json:"-" yaml:"-"`

	Config config.Config `json:"config" yaml:"config"`

	Report      metrics.Report      `json:"report" yaml:"report"`
	GraphReport metrics.GraphReport `json:"graph" yaml:"graph"`

	// Graph is the frozen network the run simulated on.
	Graph *core.Graph `json:"-" yaml:"-"`
	// States is the final state vector.
	States dynamics.StateVector `json:"-" yaml:"-"`
}

// Record converts r into the persisted summary form.
func (r *Result) Record() store.RunRecord {
	return store.RunRecord{
		ID:         r.RunID.String(),
		CreatedAt:  r.CreatedAt,
		Seed:       r.Seed,
		Topology:   r.Config.Network.Topology,
		Nodes:      r.Config.Network.Nodes,
		PConnect:   r.Config.Network.PConnect,
		TimeSteps:  r.Config.Dynamics.TimeSteps,
		NoiseSigma: r.Config.Dynamics.NoiseSigma,
		Report:     r.Report,
		Graph:      r.GraphReport,
	}
}

// Option configures Run and RunBatch.
type Option func(*runner)

// runner carries the collaborators of a run.
type runner struct {
	logger *slog.Logger
	tracer *logging.StepTracer
	store  store.RunStore
	newID  func() uuid.UUID
	now    func() time.Time
}

func newRunner(opts []Option) *runner {
	r := &runner{
		logger: logging.Discard(),
		newID:  uuid.New,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithLogger sets the operational logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTracer emits one JSONL event per simulated step.
func WithTracer(t *logging.StepTracer) Option {
	return func(r *runner) { r.tracer = t }
}

// WithStore records every finished run in s.
func WithStore(s store.RunStore) Option {
	return func(r *runner) { r.store = s }
}

// WithIDGenerator replaces uuid.New for run IDs. It must be safe for
// concurrent use when passed to RunBatch.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(r *runner) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// WithClock replaces time.Now for CreatedAt and elapsed time.
func WithClock(now func() time.Time) Option {
	return func(r *runner) {
		if now != nil {
			r.now = now
		}
	}
}

// Run validates cfg and executes one experiment with cfg.Seed.
// Cancelling ctx aborts the simulation at the next step boundary.
func Run(ctx context.Context, cfg *config.Config, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return newRunner(opts).run(ctx, cfg)
}

func (r *runner) run(ctx context.Context, cfg *config.Config) (*Result, error) {
	started := r.now()
	res := &Result{
		RunID:     r.newID(),
		Seed:      cfg.Seed,
		CreatedAt: started,
		Config:    *cfg.WithSeed(cfg.Seed),
	}
	log := r.logger.With("run_id", res.RunID.String(), "seed", cfg.Seed)
	log.Info("run started",
		"topology", cfg.Network.Topology,
		"nodes", cfg.Network.Nodes,
		"p_connect", cfg.Network.PConnect,
		"time_steps", cfg.Dynamics.TimeSteps,
	)

	g, err := BuildNetwork(cfg.Network, cfg.Seed)
	if err != nil {
		log.Error("network generation failed", "error", err)
		return nil, fmt.Errorf("experiment %s: %w", res.RunID, err)
	}
	res.Graph = g
	log.Debug("network generated", "edges", g.EdgeCount())

	states, err := dynamics.RunDynamics(g, cfg.Dynamics.TimeSteps, cfg.Seed,
		dynamics.WithNoise(cfg.Dynamics.NoiseSigma),
		dynamics.WithOnStep(r.stepHook(ctx, log, res.RunID, cfg.Seed)),
	)
	if err != nil {
		log.Error("dynamics failed", "error", err)
		return nil, fmt.Errorf("experiment %s: %w", res.RunID, err)
	}
	res.States = states

	if res.Report, err = metrics.Summarize(g, states); err != nil {
		return nil, fmt.Errorf("experiment %s: %w", res.RunID, err)
	}
	if res.GraphReport, err = metrics.GraphMetrics(g); err != nil {
		return nil, fmt.Errorf("experiment %s: %w", res.RunID, err)
	}
	res.Elapsed = r.now().Sub(started)

	if r.store != nil {
		if err = r.store.SaveRun(ctx, res.Record()); err != nil {
			log.Error("recording run failed", "error", err)
			return nil, fmt.Errorf("experiment %s: %w", res.RunID, err)
		}
	}

	log.Info("run finished",
		"average_state", res.Report.AverageState,
		"state_variance", res.Report.StateVariance,
		"edges", res.Report.NumberOfEdges,
		"average_clustering", res.Report.AverageClustering,
		"elapsed", res.Elapsed,
	)

	return res, nil
}

// stepHook checks for cancellation and emits per-step traces. The running
// mean and variance are only computed when someone consumes them.
func (r *runner) stepHook(ctx context.Context, log *slog.Logger, id uuid.UUID, seed int64) dynamics.StepFunc {
	debug := log.Enabled(ctx, slog.LevelDebug)

	return func(step int, states dynamics.StateVector) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.tracer == nil && !debug {
			return nil
		}
		avg, err := metrics.AverageState(states)
		if err != nil {
			// Zero-vertex networks have nothing to trace.
			return nil
		}
		variance, _ := metrics.StateVariance(states)

		r.tracer.Log(map[string]any{
			"run_id":                 id.String(),
			"seed":                   seed,
			"step":                   step,
			metrics.KeyAverageState:  avg,
			metrics.KeyStateVariance: variance,
		})
		log.Debug("step", "step", step, "average_state", avg, "state_variance", variance)

		return nil
	}
}

// BuildNetwork generates the frozen graph described by nc with seed.
// The random topology samples G(n, p); the fixtures ignore p.
func BuildNetwork(nc config.NetworkConfig, seed int64) (*core.Graph, error) {
	low, high := nc.WeightRange[0], nc.WeightRange[1]
	if nc.Topology == "" || nc.Topology == config.TopologyRandom {
		return builder.GenerateNetwork(nc.Nodes, nc.PConnect, seed, builder.WithWeightRange(low, high))
	}

	var ctor builder.Constructor
	switch nc.Topology {
	case config.TopologyComplete:
		ctor = builder.Complete(nc.Nodes)
	case config.TopologyCycle:
		ctor = builder.Cycle(nc.Nodes)
	case config.TopologyStar:
		ctor = builder.Star(nc.Nodes)
	case config.TopologyEmpty:
		ctor = builder.Empty(nc.Nodes)
	default:
		return nil, fmt.Errorf("BuildNetwork: %w: unknown topology %q", config.ErrInvalidConfig, nc.Topology)
	}

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightRange(low, high)}, ctor)
	if err != nil {
		return nil, err
	}
	g.Freeze()

	return g, nil
}
