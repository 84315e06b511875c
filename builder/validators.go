// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns an error wrapping ErrInvalidParameter and the
// specific sentinel when its precondition is violated.
package builder

import "math"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: n=<got> < min=<min>" wrapping ErrTooFewVertices otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return invalidf(method, ErrTooFewVertices, "n=%d < min=%d", got, min)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability] and rejects NaN.
// Used by RandomSparse.
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return invalidf(method, ErrInvalidProbability, "p=%g not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}

	return nil
}
