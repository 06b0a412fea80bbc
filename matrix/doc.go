// SPDX-License-Identifier: MIT

// Package matrix provides the dense numerical kernels underneath the
// shockcov pipeline: row-major float64 storage with safe accessors,
// elementwise and multiplicative kernels, a Jacobi symmetric eigensolver
// and a Cholesky factorization.
//
// 🚀 Design contract
//
//   - No panics on user input: every public function validates through the
//     central validators (validators.go) and returns a package sentinel
//     (errors.go) matchable with errors.Is.
//   - Determinism: fixed loop orders everywhere, no map iteration, no
//     randomness — identical inputs produce bit-identical outputs.
//   - Immutability: kernels allocate fresh results and never touch their
//     operands. SetUnitDiagonal is the single documented in-place helper.
//
// ✨ Kernel map
//
//	Add / Sub / Scale      — elementwise algebra
//	Mul / Transpose        — classic O(n³) multiply, materialized transpose
//	Symmetrize             — (M+Mᵀ)/2, the symmetric-subspace projection
//	SetUnitDiagonal        — unit-diagonal constraint projection (in place)
//	MulDiag                — D·M·D in O(n²) without forming D
//	FrobeniusDistance      — ‖A−B‖_F convergence metric
//	Eigen                  — Jacobi rotations for symmetric spectra
//	Cholesky               — lower-triangular factor with positive-pivot guard
//
// Foreign Matrix implementations are accepted everywhere; they are
// materialized into a Dense once per call so the hot loops always run on a
// flat slice.
//
// See example_test.go for runnable snippets.
package matrix
