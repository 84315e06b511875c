// SPDX-License-Identifier: MIT
// Package: resilience/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges i-(i+1) for i=0..n-2, then the closing edge 0-(n-1).
//   • Weight policy: cfg.weights(...) resolved once, drawn per edge.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//
// Determinism:
//   • Deterministic weights given fixed cfg.rng/weightFn.

package builder

import (
	"github.com/katalvlaran/resilience/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		weightFn, err := cfg.weights(MethodCycle)
		if err != nil {
			return err
		}
		first, err := addVertices(MethodCycle, g, n)
		if err != nil {
			return err
		}

		// Ring edges in ascending order, then close the ring.
		for i := 0; i < n-1; i++ {
			if err = addEdge(MethodCycle, g, first+i, first+i+1, weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return addEdge(MethodCycle, g, first, first+n-1, weightFn(cfg.rng))
	}
}
