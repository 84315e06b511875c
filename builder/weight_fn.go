// Package builder provides helper functions and types
// for configuring edge-weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn or weight range is provided.
const DefaultEdgeWeight float64 = 1

// Default uniform weight range used by GenerateNetwork.
const (
	DefaultWeightLow  = 0.1
	DefaultWeightHigh = 1.0
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state and return a positive value.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value ≤ 0, since the core graph rejects non-positive weights.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value float64) WeightFn {
	if value <= 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [low, high).
// Panics if the range is invalid (low ≤ 0 or high ≤ low); use
// WithWeightRange when the bounds come from user input.
// If rng is nil, yields the midpoint to keep a deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(low, high float64) WeightFn {
	if err := validateWeightRange("UniformWeightFn", low, high); err != nil {
		panic(err.Error())
	}
	sample := uniformWeight(low, high)

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return low + (high-low)/2
		}
		return sample(rng)
	}
}

// uniformWeight is the unchecked sampler low + U[0,1)·(high-low).
// Callers validate the range and guarantee a non-nil rng.
func uniformWeight(low, high float64) WeightFn {
	span := high - low

	return func(rng *rand.Rand) float64 {
		return low + rng.Float64()*span
	}
}
