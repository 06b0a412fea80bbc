// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the facade — callers still match via errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, Mul where a.Cols != b.Rows, or a vector
	// whose length does not match the expected asset count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (boundary ingestion, tolerances, etc).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrEigenNoConvergence indicates that the Jacobi routine failed to push the
	// off-diagonal mass below tolerance within the sweep budget.
	ErrEigenNoConvergence = errors.New("matrix: eigen decomposition did not converge")

	// ErrNotPositiveDefinite is returned by Cholesky when a non-positive pivot
	// is encountered, i.e. the input is not numerically positive-definite.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive-definite")
)
