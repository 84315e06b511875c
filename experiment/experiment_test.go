package experiment_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/resilience/builder"
	"github.com/katalvlaran/resilience/config"
	"github.com/katalvlaran/resilience/dynamics"
	"github.com/katalvlaran/resilience/experiment"
	"github.com/katalvlaran/resilience/logging"
	"github.com/katalvlaran/resilience/metrics"
	"github.com/katalvlaran/resilience/store"
)

// smallConfig is the (10, 0.2, 42) network with 10 steps.
func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Network.Nodes = 10
	cfg.Network.PConnect = 0.2
	cfg.Dynamics.TimeSteps = 10
	cfg.Seed = 42

	return cfg
}

// TestRun_MatchesManualPipeline checks the orchestrator against the bare
// generate → simulate → measure chain.
func TestRun_MatchesManualPipeline(t *testing.T) {
	res, err := experiment.Run(context.Background(), smallConfig())
	require.NoError(t, err)

	g, err := builder.GenerateNetwork(10, 0.2, 42)
	require.NoError(t, err)
	states, err := dynamics.RunDynamics(g, 10, 42)
	require.NoError(t, err)
	want, err := metrics.Summarize(g, states)
	require.NoError(t, err)

	assert.Equal(t, g.Edges(), res.Graph.Edges())
	assert.Equal(t, states, res.States)
	assert.Equal(t, want, res.Report)
	assert.Equal(t, 10, res.Report.NumberOfNodes)
	assert.True(t, res.Graph.Frozen())
	assert.Equal(t, int64(42), res.Seed)
}

func TestRun_Deterministic(t *testing.T) {
	a, err := experiment.Run(context.Background(), smallConfig())
	require.NoError(t, err)
	b, err := experiment.Run(context.Background(), smallConfig())
	require.NoError(t, err)

	assert.Equal(t, a.Report, b.Report)
	assert.Equal(t, a.GraphReport, b.GraphReport)
	assert.Equal(t, a.States, b.States)
	assert.NotEqual(t, a.RunID, b.RunID, "run IDs are unique per run")
}

func TestRun_Topologies(t *testing.T) {
	cases := []struct {
		topology   string
		edges      int
		clustering float64
	}{
		{config.TopologyEmpty, 0, 0},
		{config.TopologyComplete, 28, 1},
		{config.TopologyCycle, 8, 0},
		{config.TopologyStar, 7, 0},
	}
	for _, tc := range cases {
		t.Run(tc.topology, func(t *testing.T) {
			cfg := smallConfig()
			cfg.Network.Nodes = 8
			cfg.Network.Topology = tc.topology

			res, err := experiment.Run(context.Background(), cfg)
			require.NoError(t, err)
			assert.Equal(t, 8, res.Report.NumberOfNodes)
			assert.Equal(t, tc.edges, res.Report.NumberOfEdges)
			assert.InDelta(t, tc.clustering, res.Report.AverageClustering, 1e-12)
			for _, e := range res.Graph.Edges() {
				require.GreaterOrEqual(t, e.Weight, 0.1)
				require.Less(t, e.Weight, 1.0)
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	cfg := smallConfig()
	cfg.Network.PConnect = 2
	_, err := experiment.Run(context.Background(), cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg = smallConfig()
	cfg.Network.Topology = config.TopologyCycle
	cfg.Network.Nodes = 2
	_, err = experiment.Run(context.Background(), cfg)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = experiment.Run(ctx, smallConfig())
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_Collaborators(t *testing.T) {
	var logs, trace bytes.Buffer
	mem := store.NewMemoryStore()
	fixedID := uuid.MustParse("00000000-0000-4000-8000-000000000001")
	clock := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

	res, err := experiment.Run(context.Background(), smallConfig(),
		experiment.WithLogger(logging.NewLogger("debug", &logs)),
		experiment.WithTracer(logging.NewStepTracerWriter(&trace)),
		experiment.WithStore(mem),
		experiment.WithIDGenerator(func() uuid.UUID { return fixedID }),
		experiment.WithClock(func() time.Time { return clock }),
	)
	require.NoError(t, err)
	assert.Equal(t, fixedID, res.RunID)
	assert.Equal(t, clock, res.CreatedAt)
	assert.Zero(t, res.Elapsed)

	out := logs.String()
	assert.Contains(t, out, "msg=\"run started\"")
	assert.Contains(t, out, "msg=\"run finished\"")
	assert.Contains(t, out, "run_id="+fixedID.String())

	sc := bufio.NewScanner(&trace)
	steps := 0
	for sc.Scan() {
		var ev map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &ev))
		steps++
		assert.Equal(t, float64(steps), ev["step"])
		assert.Equal(t, fixedID.String(), ev["run_id"])
		assert.Contains(t, ev, metrics.KeyAverageState)
	}
	assert.Equal(t, 10, steps)

	rec, err := mem.GetRun(context.Background(), fixedID.String())
	require.NoError(t, err)
	assert.Equal(t, res.Record(), *rec)
	assert.Equal(t, config.TopologyRandom, rec.Topology)
	assert.Equal(t, 10, rec.TimeSteps)
}

func TestRunBatch(t *testing.T) {
	cfg := smallConfig()
	cfg.Seeds = []int64{3, 1, 2, 42}
	mem := store.NewMemoryStore()

	results, err := experiment.RunBatch(context.Background(), cfg, experiment.WithStore(mem))
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, seed := range cfg.Seeds {
		require.Equal(t, seed, results[i].Seed, "results in seed order")
		assert.Empty(t, results[i].Config.Seeds)

		single, err := experiment.Run(context.Background(), cfg.WithSeed(seed))
		require.NoError(t, err)
		assert.Equal(t, single.Report, results[i].Report, "seed %d", seed)
	}

	recs, err := mem.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, recs, 4)
}

func TestRunBatch_Errors(t *testing.T) {
	cfg := smallConfig()
	cfg.Dynamics.TimeSteps = -1
	_, err := experiment.RunBatch(context.Background(), cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	// The store rejects the second run with a reused ID.
	var calls atomic.Int32
	dup := uuid.MustParse("00000000-0000-4000-8000-000000000002")
	cfg = smallConfig()
	cfg.Seeds = []int64{1, 2}
	_, err = experiment.RunBatch(context.Background(), cfg,
		experiment.WithStore(store.NewMemoryStore()),
		experiment.WithIDGenerator(func() uuid.UUID { calls.Add(1); return dup }),
	)
	require.ErrorIs(t, err, store.ErrDuplicate)
	assert.Equal(t, int32(2), calls.Load())
}

func TestWriters(t *testing.T) {
	cfg := smallConfig()
	cfg.Seeds = []int64{1, 2}
	results, err := experiment.RunBatch(context.Background(), cfg)
	require.NoError(t, err)

	var js bytes.Buffer
	require.NoError(t, experiment.WriteJSON(&js, results))
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, results[0].RunID.String(), decoded[0]["run_id"])
	report := decoded[1]["report"].(map[string]any)
	assert.Equal(t, results[1].Report.AverageState, report[metrics.KeyAverageState])
	assert.NotContains(t, decoded[0], "Graph")

	var ys bytes.Buffer
	require.NoError(t, experiment.WriteYAML(&ys, results))
	var fromYAML []struct {
		RunID  string         `yaml:"run_id"`
		Seed   int64          `yaml:"seed"`
		Report metrics.Report `yaml:"report"`
	}
	require.NoError(t, yaml.Unmarshal(ys.Bytes(), &fromYAML))
	require.Len(t, fromYAML, 2)
	assert.Equal(t, results[0].RunID.String(), fromYAML[0].RunID)
	assert.Equal(t, int64(2), fromYAML[1].Seed)
	assert.Equal(t, results[1].Report, fromYAML[1].Report)

	var txt bytes.Buffer
	require.NoError(t, experiment.WriteText(&txt, results))
	lines := strings.Split(strings.TrimSpace(txt.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "SEED"))
	assert.Contains(t, lines[1], results[0].RunID.String())
}
