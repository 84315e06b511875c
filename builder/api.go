// SPDX-License-Identifier: MIT
// Package: resilience/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - GenerateNetwork is the seeded Erdős–Rényi facade used by experiments; it freezes its result.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose multiple constructors in BuildGraph to assemble fixtures; vertex
//     indices continue across constructors (Star(3) then Empty(2) yields 0..4).
//   - Use WithSeed(...) to freeze stochastic paths.

package builder

import (
	"fmt"

	"github.com/katalvlaran/resilience/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Append their own vertices via g.AddVertices and address them relative
//     to the returned first index.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error is
// wrapped with the context "BuildGraph: %w" and returned immediately;
// the partially built graph is discarded.
//
// The returned graph is NOT frozen, so callers may keep composing; call
// Freeze once construction is complete.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against
//     ErrInvalidParameter or the specific sentinels.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// GenerateNetwork samples the random weighted network: an Erdős–Rényi
// G(nNodes, pConnect) graph whose edge weights are uniform in the default
// range [DefaultWeightLow, DefaultWeightHigh), seeded from seed.
//
// opts are applied after the defaults, so WithWeightRange(low, high)
// overrides the range. A WithSeed/WithRand in opts replaces the seeded stream.
//
// The result is frozen: it is read-only for the dynamics and metrics stages.
//
// Errors (all match ErrInvalidParameter):
//   - ErrTooFewVertices: nNodes ≤ 0.
//   - ErrInvalidProbability: pConnect outside [0,1] or NaN.
//   - ErrInvalidWeightRange: low ≤ 0, low ≥ high, or non-finite bounds.
//
// Complexity: O(n²) Bernoulli trials + O(E) weight draws.
func GenerateNetwork(nNodes int, pConnect float64, seed int64, opts ...BuilderOption) (*core.Graph, error) {
	bopts := make([]BuilderOption, 0, len(opts)+2)
	bopts = append(bopts, WithSeed(seed), WithWeightRange(DefaultWeightLow, DefaultWeightHigh))
	bopts = append(bopts, opts...)

	g, err := BuildGraph(bopts, RandomSparse(nNodes, pConnect))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerateNetwork, err)
	}
	g.Freeze()

	return g, nil
}

// addVertices appends n vertices for a constructor and returns the first index.
func addVertices(method string, g *core.Graph, n int) (int, error) {
	first, err := g.AddVertices(n)
	if err != nil {
		return 0, fmt.Errorf("%s: AddVertices(%d): %w: %w", method, n, ErrConstructFailed, err)
	}

	return first, nil
}

// addEdge inserts {u,v} with weight w, wrapping core errors with method context.
func addEdge(method string, g *core.Graph, u, v int, w float64) error {
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
