// SPDX-License-Identifier: MIT

// Package scenario holds the market-model transforms around the projector:
// the element-wise drift and volatility adjusters, the crisis-correlation
// blender, the covariance rebuild and the opaque jump-diffusion scalars.
//
// Every function is pure and allocation-disciplined: inputs are never
// mutated, results are freshly allocated, identical inputs give identical
// outputs. Validation delegates to the matrix package's sentinels, so one
// errors.Is vocabulary covers the whole pipeline.
//
// Permissiveness is deliberate and documented:
//
//   - Blend does not clamp skew — values outside [0,1] are mathematically
//     valid extrapolation and pass straight through.
//   - RebuildCovariance does not check volatility signs; supplying strictly
//     positive volatilities is the caller's contract, and a violation
//     surfaces later as the factorizer's not-positive-definite error.
//
// The pipeline order is fixed by the engine package:
//
//	AdjustDrift → AdjustVol → Blend → higham.NearestCorrelation →
//	RebuildCovariance → matrix.Cholesky
package scenario
