// Package dynamics runs the bounded diffusion process over a frozen
// core.Graph.
//
// What
//
//   - InitializeStates(n, seed): n values uniform in [0,1) from a fresh
//     stream seeded with seed.
//   - Propagate(g, prev): one noiseless synchronous step,
//     next[i] = tanh(Σ_j w(i,j)·prev[j]). Isolated vertices become exactly 0.
//   - UpdateStates(g, states, T, seed, opts...): T steps of Propagate, each
//     followed by N(0, σ) noise added to every entry in vertex order.
//   - RunDynamics(g, T, seed, opts...): InitializeStates then UpdateStates.
//
// Determinism
//
//	The initial values and the noise are drawn from two independent streams,
//	each seeded freshly from the same seed. Every step reads only the
//	previous vector and writes a newly allocated one, so the result does
//	not depend on the order in which vertices are visited.
//
// Options
//
//   - WithNoise(σ):       noise standard deviation, σ ≥ 0 (default 0.01).
//   - WithActivation(f):  bounded nonlinearity (default math.Tanh).
//   - WithOnStep(fn):     hook called after each completed step with the
//     fresh state vector; returning an error aborts the run.
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrInvalidParameter    for negative time steps, negative or NaN σ, or a nil activation.
//   - ErrDimensionMismatch   if len(states) differs from the vertex count.
//   - Wrapped hook errors from OnStep.
//
// Complexity
//
//   - Propagate:    O(V + E) time, O(V) memory.
//   - UpdateStates: O(T·(V + E)) time, O(V) live memory.
package dynamics
