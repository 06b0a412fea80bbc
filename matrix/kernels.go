// SPDX-License-Identifier: MIT
// Package matrix: universal linear-algebra kernels.
//
// Purpose:
//   - Declare the canonical kernels used across the shockcov pipeline:
//     elementwise add/sub, scalar scaling, multiplication, transpose,
//     symmetrization, diagonal congruence (D·M·D) and Frobenius distance.
//   - All kernels perform strict fail-fast validation via the central
//     validators and return sentinels wrapped with an operation tag.
//
// Notes:
//   - Kernels never mutate their operands (SetUnitDiagonal is the sole,
//     documented in-place exception) and always allocate fresh results.
//   - Foreign Matrix implementations are materialized into a Dense once
//     (asDense) so every hot loop runs on a flat row-major slice with a
//     fixed, deterministic traversal order.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping; no magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opScale      = "Scale"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opSymmetrize = "Symmetrize"
	opMulDiag    = "MulDiag"
	opFrobenius  = "FrobeniusDistance"
	opUnitDiag   = "SetUnitDiagonal"
	opEigen      = "Eigen"
	opCholesky   = "Cholesky"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As keep matching. Call only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m as a *Dense without copying when it already is one,
// and materializes a Dense copy otherwise. The second return reports
// whether the caller owns the returned value (true when copied).
//
// Shape must be validated by the caller beforehand; At errors are therefore
// impossible and intentionally discarded.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, bool) {
	if d, ok := m.(*Dense); ok {
		return d, false
	}
	rows, cols := m.Rows(), m.Cols()
	d := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ { // fixed i→j order
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			d.data[i*cols+j] = v
		}
	}

	return d, true
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Shared core for Add/Sub: one validation, one allocation, one flat loop.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	// Validate shapes match.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	da, _ := asDense(a)
	db, _ := asDense(b)
	res := &Dense{r: da.r, c: da.c, data: make([]float64, len(da.data))}
	for idx := 0; idx < len(da.data); idx++ { // deterministic 0..n-1
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A − B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new Dense whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix; NaN/Inf in alpha propagate.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	dm, _ := asDense(m)
	res := &Dense{r: dm.r, c: dm.c, data: make([]float64, len(dm.data))}
	for idx := 0; idx < len(dm.data); idx++ {
		res.data[idx] = dm.data[idx] * alpha
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: validate non-nil operands and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j triple loop with row-major strides; zero A[i,k] entries
//     are skipped to avoid useless multiplies.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	da, _ := asDense(a)
	db, _ := asDense(b)
	aRows, aCols, bCols := da.r, da.c, db.c
	res := &Dense{r: aRows, c: bCols, data: make([]float64, aRows*bCols)}

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new Dense with rows and columns swapped (Mᵀ).
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	dm, _ := asDense(m)
	rows, cols := dm.r, dm.c
	res := &Dense{r: cols, c: rows, data: make([]float64, rows*cols)}
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			// data[i*cols + j] → res.data[j*rows + i]
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// Symmetrize returns (M + Mᵀ) / 2 for a square matrix.
// This is the canonical entry/exit step of the nearest-correlation
// projection: it maps any square matrix onto the symmetric subspace.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: Time O(n²), Space O(n²).
func Symmetrize(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}

	dm, _ := asDense(m)
	n := dm.r
	res := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = (dm.data[i*n+j] + dm.data[j*n+i]) * 0.5
		}
	}

	return res, nil
}

// SetUnitDiagonal forces every diagonal entry of a square matrix to 1.0,
// in place. This is the projection onto the unit-diagonal constraint set
// and the ONE mutating kernel in the package — callers rely on it inside
// the alternating-projections loop where a fresh allocation per iteration
// would only add GC pressure.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: Time O(n), Space O(1).
func SetUnitDiagonal(m Matrix) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return matrixErrorf(opUnitDiag, err)
	}

	if dm, ok := m.(*Dense); ok {
		n := dm.r
		for i := 0; i < n; i++ {
			dm.data[i*n+i] = 1.0
		}

		return nil
	}

	// Generic fallback via Set; shape already validated.
	n := m.Rows()
	for i := 0; i < n; i++ {
		if err := m.Set(i, i, 1.0); err != nil {
			return matrixErrorf(opUnitDiag, err)
		}
	}

	return nil
}

// MulDiag computes D·M·D where D = diag(d), without materializing D:
// out[i,j] = d[i] * m[i,j] * d[j].
//
// This is the covariance-rebuild kernel: with d the volatility vector and
// M a correlation matrix, the result is the covariance matrix Σ. The sign
// of d is intentionally not validated (caller contract).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square m or len(d) != n).
// Complexity: Time O(n²), Space O(n²) — three-matrix products would be O(n³).
func MulDiag(d []float64, m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opMulDiag, err)
	}
	if err := ValidateVecLen(d, m.Rows()); err != nil {
		return nil, matrixErrorf(opMulDiag, err)
	}

	dm, _ := asDense(m)
	n := dm.r
	res := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var (
		i, j, base int
		di         float64
	)
	for i = 0; i < n; i++ {
		base = i * n
		di = d[i]
		for j = 0; j < n; j++ {
			res.data[base+j] = di * dm.data[base+j] * d[j]
		}
	}

	return res, nil
}

// FrobeniusDistance returns ‖A − B‖_F, the square root of the sum of
// squared elementwise differences. Used as the convergence metric of the
// alternating-projections loop.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(1).
func FrobeniusDistance(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}

	da, _ := asDense(a)
	db, _ := asDense(b)
	var sum, diff float64
	for idx := 0; idx < len(da.data); idx++ { // fixed order for reproducible rounding
		diff = da.data[idx] - db.data[idx]
		sum += diff * diff
	}

	return math.Sqrt(sum), nil
}
