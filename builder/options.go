// SPDX-License-Identifier: MIT
// Package: resilience/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC only on programmer errors (nil functions or RNGs).
//   • Values that come from user configuration (weight ranges) are validated
//     by the constructors and surface as ErrInvalidParameter errors.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible stochastic builders (RandomSparse).
//   • Do not share one *rand.Rand between concurrent BuildGraph calls.

package builder

import (
	"math/rand" // RNG source for stochastic builders
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Every call of the returned option builds a fresh stream, so two BuildGraph
// calls with the same WithSeed never share random state.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator and clears any weight
// range. The function receives the (possibly nil) RNG. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
		c.hasRange = false
	}
}

// WithWeightRange samples every edge weight uniformly from [low, high).
// The range is validated when a constructor runs: low must be positive and
// strictly below high, otherwise the build fails with ErrInvalidWeightRange.
// Complexity: O(1) time, O(1) space.
func WithWeightRange(low, high float64) BuilderOption {
	return func(c *builderConfig) {
		c.low, c.high = low, high
		c.hasRange = true
		c.weightFn = nil
	}
}
