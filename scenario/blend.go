// SPDX-License-Identifier: MIT

package scenario

import "github.com/katalvlaran/shockcov/matrix"

const opBlend = "Blend"

// Blend interpolates a baseline correlation matrix toward the fully
// correlated crisis matrix J (all entries 1):
//
//	blended = (1 − skew)·base + skew·J
//
// skew = 0 returns the baseline, skew = 1 returns J; values outside [0,1]
// extrapolate and are intentionally NOT clamped. The result is in general
// NOT a valid correlation matrix — that is the point: it is handed, as-is,
// to higham.NearestCorrelation for repair.
//
// Implementation:
//   - Stage 1: validate non-nil square input.
//   - Stage 2: single flat pass, out[idx] = (1−skew)·base[idx] + skew.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square).
// Complexity: Time O(n²), Space O(n²).
func Blend(base matrix.Matrix, skew float64) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(base); err != nil {
		return nil, scenarioErrorf(opBlend, err)
	}

	// (1−skew)·base, then shift every entry by skew·1. Two kernel passes
	// keep this on the shared, tested code paths.
	scaled, err := matrix.Scale(base, 1-skew)
	if err != nil {
		return nil, scenarioErrorf(opBlend, err)
	}

	n := scaled.Rows()
	shift := make([]float64, n*n)
	for idx := range shift { // flat fill, no per-cell bounds checks
		shift[idx] = skew
	}
	ones, err := matrix.NewDenseFromRowMajor(n, shift)
	if err != nil {
		return nil, scenarioErrorf(opBlend, err)
	}

	out, err := matrix.Add(scaled, ones)
	if err != nil {
		return nil, scenarioErrorf(opBlend, err)
	}

	return out, nil
}
