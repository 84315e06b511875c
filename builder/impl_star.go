// SPDX-License-Identifier: MIT
// Package: resilience/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The hub is the first vertex issued (StarHub offset); leaves follow.
//   • Emits hub-leaf spokes in increasing leaf order.
//
// Determinism:
//   • Deterministic edge emission order by increasing leaf index.
//   • Deterministic weights for fixed cfg.rng/weightFn.

package builder

import (
	"github.com/katalvlaran/resilience/core"
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub and n-1 leaves. No two leaves are adjacent, so every vertex has
// local clustering coefficient 0.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		weightFn, err := cfg.weights(MethodStar)
		if err != nil {
			return err
		}
		first, err := addVertices(MethodStar, g, n)
		if err != nil {
			return err
		}

		hub := first + StarHub
		for leaf := 1; leaf < n; leaf++ {
			if err = addEdge(MethodStar, g, hub, first+leaf, weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
