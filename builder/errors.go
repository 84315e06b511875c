// SPDX-License-Identifier: MIT
// Package: resilience/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Every validation error also matches ErrInvalidParameter.
//   • Implementations attach context using `%w` via invalidf.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the umbrella class for every out-of-range or
// malformed generation parameter. Nothing is clamped: callers receive this
// error instead of a silently degraded graph.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* reject configuration */ }.
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrTooFewVertices indicates that a size parameter (n) is smaller than the
// minimum allowed for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1] or is NaN.
// Usage: if errors.Is(err, ErrInvalidProbability) { /* reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidWeightRange indicates a weight range with low ≤ 0, low ≥ high,
// or a non-finite bound.
var ErrInvalidWeightRange = errors.New("builder: invalid weight range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not complete, e.g. the
// core graph rejected an edge, or a nil constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")

// invalidf builds "<method>: <message>" wrapping both ErrInvalidParameter and
// the specific sentinel, so callers can branch on either.
//
// Complexity: O(len(format) + Σlen(args)).
func invalidf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w: %w", method, inner, ErrInvalidParameter, sentinel)
}
