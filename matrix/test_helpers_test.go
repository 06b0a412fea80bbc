// SPDX-License-Identifier: MIT
// Shared helpers for the matrix package tests. Kept in one place so every
// test file builds matrices and reads cells the same way.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/shockcov/matrix"
)

// MustDense allocates an r×c Dense or fails the test immediately.
func MustDense(t *testing.T, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}

	return m
}

// MustSquare builds an n×n Dense from a row-major literal or fails.
func MustSquare(t *testing.T, n int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRowMajor(n, data)
	if err != nil {
		t.Fatalf("NewDenseFromRowMajor(%d): %v", n, err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// hide wraps a Matrix to conceal the concrete *Dense type and force the
// materialization path inside kernels.
type hide struct{ matrix.Matrix }
