package metrics

import (
	"errors"
	"fmt"
)

// Sentinel errors for metric computation.
var (
	// ErrEmptyInput is returned for an empty state vector.
	ErrEmptyInput = errors.New("metrics: empty input")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("metrics: graph is nil")

	// ErrDimensionMismatch is returned when a state vector's length differs
	// from the graph's vertex count.
	ErrDimensionMismatch = errors.New("metrics: state vector length does not match vertex count")
)

// AverageState returns the arithmetic mean of states.
func AverageState(states []float64) (float64, error) {
	if len(states) == 0 {
		return 0, fmt.Errorf("AverageState: %w", ErrEmptyInput)
	}

	return mean(states), nil
}

// StateVariance returns the population variance (1/N)·Σ(x−mean)² of states.
func StateVariance(states []float64) (float64, error) {
	if len(states) == 0 {
		return 0, fmt.Errorf("StateVariance: %w", ErrEmptyInput)
	}

	m := mean(states)
	var ss float64
	for _, x := range states {
		d := x - m
		ss += d * d
	}

	return ss / float64(len(states)), nil
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}
