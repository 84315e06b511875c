// SPDX-License-Identifier: MIT
// Package: resilience/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng       = nil                 (pure/deterministic unless seeded)
//   • weightFn  = DefaultWeightFn     (constant DefaultEdgeWeight)
//   • range     = unset               (GenerateNetwork sets [0.1, 1.0))
//
// AI-Hints:
//   • Set WithSeed for reproducible RandomSparse fixtures.
//   • WithWeightRange and WithWeightFn are mutually exclusive; the last one wins.

package builder

import (
	"math"
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges; nil when a weight range is configured.
	weightFn WeightFn

	// Uniform weight range [low, high); meaningful only when hasRange is set.
	low, high float64
	hasRange  bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weights resolves the effective WeightFn for a constructor.
//
// Behavior:
//   - With a weight range: validate it (ErrInvalidWeightRange), require an
//     RNG (ErrNeedRandSource), and return a uniform sampler.
//   - Otherwise: return the configured weightFn unchanged.
//
// Complexity: O(1).
func (c builderConfig) weights(method string) (WeightFn, error) {
	if !c.hasRange {
		return c.weightFn, nil
	}
	if err := validateWeightRange(method, c.low, c.high); err != nil {
		return nil, err
	}
	if c.rng == nil {
		return nil, invalidf(method, ErrNeedRandSource, "weight range [%g,%g) needs a random source", c.low, c.high)
	}

	return uniformWeight(c.low, c.high), nil
}

// validateWeightRange enforces 0 < low < high with finite bounds.
// Complexity: O(1).
func validateWeightRange(method string, low, high float64) error {
	finite := !math.IsNaN(low) && !math.IsNaN(high) && !math.IsInf(low, 0) && !math.IsInf(high, 0)
	if !finite || low <= 0 || low >= high {
		return invalidf(method, ErrInvalidWeightRange, "weight range [%g,%g) requires 0 < low < high", low, high)
	}

	return nil
}
