// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: StateVector, sentinel errors and functional options of the
//       dynamics engine.

package dynamics

import (
	"errors"
	"fmt"
	"math"
)

// DefaultNoiseSigma is the standard deviation of the per-step Gaussian noise.
const DefaultNoiseSigma = 0.01

// Sentinel errors for the dynamics engine.
var (
	// ErrInvalidParameter reports an out-of-domain argument or option.
	ErrInvalidParameter = errors.New("dynamics: invalid parameter")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dynamics: graph is nil")

	// ErrDimensionMismatch is returned when a state vector's length differs
	// from the graph's vertex count.
	ErrDimensionMismatch = errors.New("dynamics: state vector length does not match vertex count")
)

// StateVector holds one real value per vertex index 0..N-1.
type StateVector []float64

// Clone returns an independent copy of s. A nil vector clones to an empty one.
func (s StateVector) Clone() StateVector {
	out := make(StateVector, len(s))
	copy(out, s)

	return out
}

// StepFunc observes the state vector after a completed step (1-based).
// The vector is freshly allocated for that step and may be retained.
type StepFunc func(step int, states StateVector) error

// Option configures UpdateStates and RunDynamics.
// An invalid value is recorded and surfaces as ErrInvalidParameter when the
// run starts.
type Option func(*Options)

// Options holds the knobs of a dynamics run.
type Options struct {
	// NoiseSigma is the standard deviation of the additive Gaussian noise.
	NoiseSigma float64

	// Activation is the bounded nonlinearity applied to each weighted sum.
	Activation func(float64) float64

	// OnStep, if set, is called after each completed step.
	OnStep StepFunc

	err error
}

// DefaultOptions returns σ = DefaultNoiseSigma, tanh activation and no hook.
func DefaultOptions() Options {
	return Options{
		NoiseSigma: DefaultNoiseSigma,
		Activation: math.Tanh,
	}
}

// WithNoise sets the noise standard deviation. σ = 0 disables noise.
// Negative or NaN values are rejected with ErrInvalidParameter.
func WithNoise(sigma float64) Option {
	return func(o *Options) {
		if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
			o.err = fmt.Errorf("WithNoise: sigma=%g must be finite and ≥ 0: %w", sigma, ErrInvalidParameter)
			return
		}
		o.NoiseSigma = sigma
	}
}

// WithActivation replaces the tanh nonlinearity.
// A nil function is rejected with ErrInvalidParameter.
func WithActivation(f func(float64) float64) Option {
	return func(o *Options) {
		if f == nil {
			o.err = fmt.Errorf("WithActivation: nil activation: %w", ErrInvalidParameter)
			return
		}
		o.Activation = f
	}
}

// WithOnStep registers a per-step hook; nil is ignored.
func WithOnStep(fn StepFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// resolve applies opts over the defaults and reports the last recorded option error.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
