// SPDX-License-Identifier: MIT

package matrix

import "math"

// Cholesky factorizes a symmetric positive-definite matrix as Σ = L·Lᵀ and
// returns the lower-triangular factor L with exactly-zero strictly-upper
// entries.
//
// Implementation:
//   - Stage 1: validate a non-nil square input (symmetry is assumed per the
//     standard Cholesky contract: only the lower triangle is read).
//   - Stage 2: column-by-column Cholesky–Banachiewicz with a strict
//     positive-pivot guard: any diagonal term ≤ 0 aborts with
//     ErrNotPositiveDefinite before a sqrt of a non-positive value or a
//     division by zero can occur.
//
// Behavior highlights:
//   - Fixed i→j→k loop order; exactly one allocation (L); input untouched.
//   - L's strictly-upper entries stay at their zero initialization — callers
//     can rely on them being exactly 0.0, not merely small.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch (structure).
//   - ErrNotPositiveDefinite (non-positive pivot; the matrix is singular or
//     indefinite within floating precision).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Feed this with MulDiag(vol, corrected) output: when the correlation
//     factor comes from higham.NearestCorrelation and every volatility is
//     strictly positive, the pivot guard should never fire — it remains as
//     the defensive boundary for zero volatilities and projector edge cases.
func Cholesky(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	src, _ := asDense(m)
	n := src.r
	l := &Dense{r: n, c: n, data: make([]float64, n*n)}

	var (
		i, j, k          int
		sum, pivot, diag float64
		baseI, baseJ     int
	)
	for i = 0; i < n; i++ {
		baseI = i * n
		for j = 0; j <= i; j++ {
			baseJ = j * n
			sum = 0
			for k = 0; k < j; k++ {
				sum += l.data[baseI+k] * l.data[baseJ+k]
			}
			if i == j {
				// Diagonal entry: pivot must be strictly positive.
				diag = src.data[baseI+i] - sum
				if diag <= 0 || math.IsNaN(diag) {
					return nil, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
				}
				l.data[baseI+i] = math.Sqrt(diag)
			} else {
				pivot = l.data[baseJ+j]
				// pivot > 0 is guaranteed by the diagonal branch of row j.
				l.data[baseI+j] = (src.data[baseI+j] - sum) / pivot
			}
		}
	}

	return l, nil
}
