// SPDX-License-Identifier: MIT
// Runnable examples for the matrix package.

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/shockcov/matrix"
)

// ExampleMulDiag shows the covariance-rebuild kernel Σ = D·R·D
// with D the diagonal of a volatility vector.
func ExampleMulDiag() {
	r, _ := matrix.NewDenseFromRowMajor(2, []float64{
		1.0, 0.5,
		0.5, 1.0,
	})
	vol := []float64{0.2, 0.1}

	cov, _ := matrix.MulDiag(vol, r)
	fmt.Printf("var0=%.4f cov01=%.4f var1=%.4f\n",
		mustAt(cov, 0, 0), mustAt(cov, 0, 1), mustAt(cov, 1, 1))
	// Output: var0=0.0400 cov01=0.0100 var1=0.0100
}

// ExampleCholesky factorizes a small SPD covariance and verifies the
// strictly-upper triangle is exactly zero.
func ExampleCholesky() {
	sigma, _ := matrix.NewDenseFromRowMajor(2, []float64{
		0.04, 0.01,
		0.01, 0.01,
	})
	l, err := matrix.Cholesky(sigma)
	if err != nil {
		fmt.Println("factorization failed:", err)
		return
	}
	fmt.Printf("L00=%.2f L10=%.3f L01=%v\n",
		mustAt(l, 0, 0), mustAt(l, 1, 0), mustAt(l, 0, 1))
	// Output: L00=0.20 L10=0.050 L01=0
}

// mustAt is a tiny example helper; shape is known valid by construction.
func mustAt(m matrix.Matrix, i, j int) float64 {
	v, _ := m.At(i, j)

	return v
}
