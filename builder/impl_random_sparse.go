// SPDX-License-Identifier: MIT
// Package: resilience/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently with prob p.
//   - No self-loops, no multi-edges (the core graph is simple).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for p∈{0,1}, so
//     that the stream consumption is identical for every p.
//   - Weight policy resolved once via cfg.weights (range ⇒ uniform sampler).
//   - Returns only sentinel errors; never panics at runtime.
//
// Stream consumption (two phases):
//   - Phase 1: exactly n(n-1)/2 draws rng.Float64(), one per pair, (i asc, j asc).
//   - Phase 2: one weight draw per included edge, in phase-1 order.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials + O(E) weight draws.
//   - Space: O(E) for the pending pair list.

package builder

import (
	"github.com/katalvlaran/resilience/core"
)

// pair is an included edge awaiting its weight.
type pair struct{ u, v int }

// RandomSparse returns a Constructor that samples an Erdős–Rényi graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	// The returned closure captures (n, p); BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(MethodRandomSparse, n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return invalidf(MethodRandomSparse, ErrNeedRandSource, "seed or rand source not configured")
		}
		weightFn, err := cfg.weights(MethodRandomSparse)
		if err != nil {
			return err
		}

		// 2) Append vertices first..first+n-1.
		first, err := addVertices(MethodRandomSparse, g, n)
		if err != nil {
			return err
		}

		rng := cfg.rng
		var (
			i, j    int
			pending = make([]pair, 0, expectedEdges(n, p))
		)

		// 3) Phase 1: structural Bernoulli trials in stable (i asc, j asc) order.
		// Float64 is in [0,1), so p=0 never includes and p=1 always includes.
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if rng.Float64() < p {
					pending = append(pending, pair{u: first + i, v: first + j})
				}
			}
		}

		// 4) Phase 2: weights, one draw per included edge, in phase-1 order.
		var w float64
		for _, e := range pending {
			w = weightFn(rng)
			if err = addEdge(MethodRandomSparse, g, e.u, e.v, w); err != nil {
				return err
			}
		}

		return nil
	}
}

// expectedEdges returns a capacity hint of roughly p·n(n-1)/2 for the pending list.
func expectedEdges(n int, p float64) int {
	total := float64(n) * float64(n-1) / 2

	return int(total*p) + 1
}
