// SPDX-License-Identifier: MIT
// Package: resilience/builder
//
// impl_complete.go - implementation of Complete(n) and Empty(n) constructors.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Appends n vertices; indices are relative to the first one issued.
//   • Complete emits each unordered pair {i,j} with i<j exactly once.
//   • Empty emits no edges: n isolated vertices.
//   • Weight policy: cfg.weights(...) resolved once, drawn per edge.
//
// Complexity:
//   • Complete: O(n) vertices + O(n²) edges. Empty: O(n).
//
// Determinism:
//   • Pair order: lexicographic by (i,j), i<j.
//   • Deterministic weights for a fixed cfg.rng/weightFn.

package builder

import (
	"github.com/katalvlaran/resilience/core"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
// Every vertex of K_n with n ≥ 3 has local clustering coefficient 1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		weightFn, err := cfg.weights(MethodComplete)
		if err != nil {
			return err
		}
		first, err := addVertices(MethodComplete, g, n)
		if err != nil {
			return err
		}

		// Emit each unordered pair {i,j} with i<j in stable lexicographic order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(MethodComplete, g, first+i, first+j, weightFn(cfg.rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Empty returns a Constructor that appends n isolated vertices.
func Empty(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodEmpty, n, MinEmptyNodes); err != nil {
			return err
		}
		_, err := addVertices(MethodEmpty, g, n)

		return err
	}
}
