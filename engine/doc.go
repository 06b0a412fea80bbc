// SPDX-License-Identifier: MIT

// Package engine is the caller-facing boundary of the stressed-scenario
// pipeline: one Request in, one Result out, one fixed sequence of stages
// in between.
//
// What ComputeShock does:
//
//  1. Validates every buffer length against NumAssets — ALL offenders are
//     reported at once in a single *DimensionError, so a caller fixes
//     their marshaling in one round-trip instead of N.
//  2. Rejects non-finite values (NaN / ±Inf) in any buffer or scalar.
//  3. Promotes float32 inputs to float64, shifts drifts, scales
//     volatilities, crisis-blends the correlation matrix, repairs it into
//     a valid correlation matrix (package higham), rebuilds covariance
//     and Cholesky-factorizes it.
//  4. Demotes results back to float32 and flattens the factor row-major.
//
// Why float32 at the boundary and float64 inside: callers typically feed
// the factor straight into single-precision Monte Carlo kernels, but the
// alternating-projections repair accumulates tens of eigendecompositions —
// doing that arithmetic in float32 loses the positive-definiteness the
// pipeline exists to guarantee.
//
// The engine is stateless and pure: concurrent ComputeShock calls need no
// synchronization, and an error leaves no partial state behind.
//
// Errors: *DimensionError (shape), matrix.ErrNaNInf (numeric policy),
// matrix.ErrNotPositiveDefinite (factorization). All are errors.Is /
// errors.As matchable.
package engine
