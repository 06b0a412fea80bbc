// SPDX-License-Identifier: MIT
// Package higham: functional configuration for the nearest-correlation
// projection. This file defines:
//   - Option (functional options over internal state),
//   - documented defaults (constants, single source of truth),
//   - WithX constructors with strong validation (panic on nonsensical
//     values — misconfiguration is a programmer error, not runtime input).

package higham

import "math"

// Defaults — single source of truth for zero-configuration behavior.
const (
	// DefaultMaxIterations bounds the alternating-projections loop. The
	// projector must never spin indefinitely; 100 iterations is the proven
	// budget for correlation-sized problems.
	DefaultMaxIterations = 100

	// DefaultEigenFloor is the strictly positive floor applied to every
	// eigenvalue during the PSD-cone projection. Flooring at a small
	// positive epsilon (rather than clamping at zero) guarantees strict
	// positive-definiteness: a pure PSD projection can leave the matrix
	// singular and unusable for Cholesky.
	DefaultEigenFloor = 1e-10

	// DefaultConvergenceTol stops the loop early once the Frobenius
	// distance between consecutive constraint projections drops below it.
	DefaultConvergenceTol = 10 * DefaultEigenFloor
)

// options is the internal, immutable-after-gather configuration.
type options struct {
	maxIterations  int
	eigenFloor     float64
	convergenceTol float64
	solver         Eigensolver
}

// Option mutates the projector configuration at call time.
type Option func(*options)

// gatherOptions applies defaults first, then every caller Option in order.
func gatherOptions(opts []Option) options {
	o := options{
		maxIterations:  DefaultMaxIterations,
		eigenFloor:     DefaultEigenFloor,
		convergenceTol: DefaultConvergenceTol,
		solver:         NewJacobiSolver(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithMaxIterations overrides the iteration budget.
// Panics if k <= 0 (programmer error: the loop must be bounded).
func WithMaxIterations(k int) Option {
	if k <= 0 {
		panic("higham: WithMaxIterations requires k > 0")
	}

	return func(o *options) { o.maxIterations = k }
}

// WithEigenFloor overrides the eigenvalue floor.
// Panics unless f is finite and strictly positive — a zero or negative
// floor would silently re-admit singular outputs.
func WithEigenFloor(f float64) Option {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		panic("higham: WithEigenFloor requires a finite f > 0")
	}

	return func(o *options) { o.eigenFloor = f }
}

// WithConvergenceTol overrides the early-stop threshold.
// Panics unless t is finite and strictly positive.
func WithConvergenceTol(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
		panic("higham: WithConvergenceTol requires a finite t > 0")
	}

	return func(o *options) { o.convergenceTol = t }
}

// WithEigensolver injects the spectral capability used by the PSD-cone
// projection. Panics on nil.
func WithEigensolver(s Eigensolver) Option {
	if s == nil {
		panic("higham: WithEigensolver requires a non-nil solver")
	}

	return func(o *options) { o.solver = s }
}
