// Package builder constructs core.Graph networks from functional options and
// composable Constructor closures. It is the graph generator of the module:
// GenerateNetwork samples the reproducible random weighted network that the
// dynamics engine runs on.
//
// The package offers the following key components:
//
//   - Entry points:
//     – GenerateNetwork(n, p, seed, opts...): seeded Erdős–Rényi G(n,p) with
//     uniform weights, frozen on return.
//     – BuildGraph(opts, cons...): apply any constructors in order.
//   - Constructors (Constructor implementations):
//     – RandomSparse(n, p): independent Bernoulli(p) trial per unordered pair.
//     – Complete(n), Cycle(n), Star(n), Empty(n): deterministic fixtures.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, weight function and weight range.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[low,high).
//
// Reproducibility:
//
// RandomSparse consumes the random stream in two phases. First every pair
// {i,j}, i<j, is visited in (i asc, j asc) order and included iff
// rng.Float64() < p. Then one weight is drawn per included edge, in the same
// order. The same (n, p, seed, weight range) therefore always yields the same
// edge set and the same weights.
//
// Errors:
//
// Every validation failure matches ErrInvalidParameter through errors.Is, and
// also the specific sentinel (ErrTooFewVertices, ErrInvalidProbability,
// ErrInvalidWeightRange, ErrNeedRandSource).
package builder
