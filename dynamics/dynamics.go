// SPDX-License-Identifier: MIT
//
// File: dynamics.go
// Role: state initialization and the synchronous noisy update loop.
// Policy:
//   - Every call owns its *rand.Rand; no package-level random state.
//   - Inputs are never mutated; each step allocates the next vector.

package dynamics

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/resilience/core"
)

// InitializeStates returns n values drawn uniformly from [0,1) using a
// fresh stream seeded with seed. n ≤ 0 yields an empty vector.
//
// Complexity: O(n).
func InitializeStates(n int, seed int64) StateVector {
	if n < 0 {
		n = 0
	}
	rng := rand.New(rand.NewSource(seed))
	states := make(StateVector, n)
	for i := range states {
		states[i] = rng.Float64()
	}

	return states
}

// Propagate performs one noiseless synchronous step with the tanh
// activation: next[i] = tanh(Σ_j w(i,j)·prev[j]) over the neighbors j of i.
// A vertex without neighbors gets exactly 0. prev is read only.
func Propagate(g *core.Graph, prev StateVector) (StateVector, error) {
	if err := checkInputs("Propagate", g, prev); err != nil {
		return nil, err
	}

	return propagate(g, prev, DefaultOptions().Activation)
}

// UpdateStates advances states by timeSteps synchronous steps. After each
// Propagate, Gaussian noise N(0, σ) is added to every entry in vertex order,
// drawn from a fresh stream seeded with seed. timeSteps = 0 returns a copy of
// states. states itself is never modified.
//
// Errors: ErrGraphNil, ErrDimensionMismatch, ErrInvalidParameter, or a
// wrapped OnStep error (the run stops at that step).
func UpdateStates(g *core.Graph, states StateVector, timeSteps int, seed int64, opts ...Option) (StateVector, error) {
	const method = "UpdateStates"
	if err := checkInputs(method, g, states); err != nil {
		return nil, err
	}
	if timeSteps < 0 {
		return nil, fmt.Errorf("%s: timeSteps=%d must be ≥ 0: %w", method, timeSteps, ErrInvalidParameter)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	rng := rand.New(rand.NewSource(seed))
	cur := states.Clone()
	for step := 1; step <= timeSteps; step++ {
		next, err := propagate(g, cur, o.Activation)
		if err != nil {
			return nil, fmt.Errorf("%s: step %d: %w", method, step, err)
		}
		if o.NoiseSigma > 0 {
			for i := range next {
				next[i] += rng.NormFloat64() * o.NoiseSigma
			}
		}
		cur = next

		if o.OnStep != nil {
			if err = o.OnStep(step, cur); err != nil {
				return nil, fmt.Errorf("%s: OnStep at step %d: %w", method, step, err)
			}
		}
	}

	return cur, nil
}

// RunDynamics initializes N states from seed and runs UpdateStates for
// timeSteps with the same seed. N is g's vertex count.
func RunDynamics(g *core.Graph, timeSteps int, seed int64, opts ...Option) (StateVector, error) {
	if g == nil {
		return nil, fmt.Errorf("RunDynamics: %w", ErrGraphNil)
	}
	states := InitializeStates(g.VertexCount(), seed)

	return UpdateStates(g, states, timeSteps, seed, opts...)
}

// checkInputs validates the graph pointer and the vector length.
func checkInputs(method string, g *core.Graph, states StateVector) error {
	if g == nil {
		return fmt.Errorf("%s: %w", method, ErrGraphNil)
	}
	if n := g.VertexCount(); len(states) != n {
		return fmt.Errorf("%s: len(states)=%d, vertices=%d: %w", method, len(states), n, ErrDimensionMismatch)
	}

	return nil
}

// propagate computes act(Σ w·prev[j]) for every vertex into a new vector.
func propagate(g *core.Graph, prev StateVector, act func(float64) float64) (StateVector, error) {
	next := make(StateVector, len(prev))
	for i := range next {
		nbrs, err := g.Neighbors(i)
		if err != nil {
			return nil, err
		}
		if len(nbrs) == 0 {
			// Isolated: exactly zero regardless of the activation.
			continue
		}
		var sum float64
		for _, nb := range nbrs {
			sum += nb.Weight * prev[nb.ID]
		}
		next[i] = act(sum)
	}

	return next, nil
}
