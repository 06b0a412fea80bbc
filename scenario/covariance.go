// SPDX-License-Identifier: MIT

package scenario

import "github.com/katalvlaran/shockcov/matrix"

const opRebuild = "RebuildCovariance"

// RebuildCovariance rescales a corrected correlation matrix by the adjusted
// volatilities into a covariance matrix:
//
//	Σ = D·R·D, D = diag(vol)
//
// When R is positive-definite (higham.NearestCorrelation output) and every
// volatility is strictly positive, Σ inherits positive-definiteness by
// construction. Volatility signs are NOT validated here: a zero or negative
// entry is the caller's contract violation and will surface downstream as
// matrix.ErrNotPositiveDefinite from the factorizer.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch
// (non-square R or len(vol) != N).
// Complexity: Time O(n²), Space O(n²) — see matrix.MulDiag.
func RebuildCovariance(vol []float64, corr matrix.Matrix) (*matrix.Dense, error) {
	out, err := matrix.MulDiag(vol, corr)
	if err != nil {
		return nil, scenarioErrorf(opRebuild, err)
	}

	return out, nil
}
