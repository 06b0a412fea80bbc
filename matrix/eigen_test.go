// SPDX-License-Identifier: MIT
// Unit tests for the Jacobi symmetric eigensolver.

package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shockcov/matrix"
)

const (
	eigenTol    = 1e-10
	eigenSweeps = 1000
)

// sortedCopy returns the eigenvalues in ascending order for comparisons;
// Eigen itself reports them in diagonal order.
func sortedCopy(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	sort.Float64s(out)

	return out
}

func TestEigenDiagonalMatrix(t *testing.T) {
	m := MustSquare(t, 3, []float64{
		3, 0, 0,
		0, 1, 0,
		0, 0, 2,
	})
	vals, vecs, err := matrix.Eigen(m, eigenTol, eigenSweeps)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, sortedCopy(vals))
	// Q must be orthogonal: QᵀQ = I.
	qt, err := matrix.Transpose(vecs)
	require.NoError(t, err)
	prod, err := matrix.Mul(qt, vecs)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, MustAt(t, prod, i, j), 1e-9)
		}
	}
}

func TestEigenKnown2x2(t *testing.T) {
	// [[2,1],[1,2]] has eigenvalues 1 and 3.
	m := MustSquare(t, 2, []float64{2, 1, 1, 2})
	vals, _, err := matrix.Eigen(m, eigenTol, eigenSweeps)
	require.NoError(t, err)
	got := sortedCopy(vals)
	require.InDelta(t, 1.0, got[0], 1e-9)
	require.InDelta(t, 3.0, got[1], 1e-9)
}

// TestEigenReconstruction checks A = V·diag(λ)·Vᵀ within tolerance.
func TestEigenReconstruction(t *testing.T) {
	m := MustSquare(t, 3, []float64{
		4, 1, -0.5,
		1, 3, 0.2,
		-0.5, 0.2, 2,
	})
	vals, vecs, err := matrix.Eigen(m, eigenTol, eigenSweeps)
	require.NoError(t, err)

	// Build diag(λ).
	lambda := MustDense(t, 3, 3)
	for i := 0; i < 3; i++ {
		MustSet(t, lambda, i, i, vals[i])
	}
	vl, err := matrix.Mul(vecs, lambda)
	require.NoError(t, err)
	vt, err := matrix.Transpose(vecs)
	require.NoError(t, err)
	rec, err := matrix.Mul(vl, vt)
	require.NoError(t, err)

	dist, err := matrix.FrobeniusDistance(m, rec)
	require.NoError(t, err)
	require.Less(t, dist, 1e-8, "V·diag(λ)·Vᵀ must reconstruct A")
}

func TestEigenInputGuards(t *testing.T) {
	// Asymmetric input is rejected, not repaired.
	asym := MustSquare(t, 2, []float64{1, 2, -2, 1})
	_, _, err := matrix.Eigen(asym, eigenTol, eigenSweeps)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, _, err = matrix.Eigen(nil, eigenTol, eigenSweeps)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, _, err = matrix.Eigen(MustDense(t, 2, 3), eigenTol, eigenSweeps)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// NaN tolerance violates the numeric policy.
	_, _, err = matrix.Eigen(MustSquare(t, 2, []float64{1, 0, 0, 1}), math.NaN(), eigenSweeps)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestEigenNoConvergenceBudget(t *testing.T) {
	// A single allowed rotation cannot diagonalize a dense 4×4 spectrum.
	m := MustSquare(t, 4, []float64{
		4, 1, 1, 1,
		1, 3, 1, 1,
		1, 1, 2, 1,
		1, 1, 1, 1,
	})
	_, _, err := matrix.Eigen(m, eigenTol, 1)
	require.ErrorIs(t, err, matrix.ErrEigenNoConvergence)
}
