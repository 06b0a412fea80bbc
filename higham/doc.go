// SPDX-License-Identifier: MIT

// Package higham repairs broken correlation matrices: given any square
// matrix of symmetric intent, NearestCorrelation produces the closest
// (Frobenius-norm, approximately) matrix that is symmetric, strictly
// positive-definite and has a unit diagonal — a valid correlation matrix.
//
// 🚀 Why is this needed?
//
//	Crisis blending R' = (1−skew)·R + skew·J routinely leaves the blended
//	matrix indefinite (all pairwise correlations at 0.9 is already not PD
//	for N ≥ 3). Monte-Carlo machinery downstream needs a Cholesky factor,
//	and Cholesky needs strict positive-definiteness. This package closes
//	that gap.
//
// ✨ Algorithm (Higham 2002, alternating projections + Dykstra correction)
//
//  1. Symmetrize the input: Y = (M + Mᵀ)/2.
//  2. Keep a Dykstra correction term DS (starts at zero). Without it, naive
//     alternation between the PSD cone and the unit-diagonal set does not
//     converge to the nearest matrix; with it, it does.
//  3. Up to MaxIterations times: eigendecompose R = Y − DS, clamp every
//     eigenvalue below EigenFloor up to the floor (strict PD, never just
//     PSD), reconstruct, update DS, re-impose the unit diagonal, and stop
//     early once the Frobenius distance between consecutive constraint
//     projections falls below ConvergenceTol.
//  4. On exit: re-symmetrize, floor the spectrum once more, and rescale
//     D^{-1/2}·X·D^{-1/2} back to an exact unit diagonal. The in-loop
//     diagonal writes can leave a barely negative eigenvalue on a
//     converged run (the convergence tolerance is 10× the floor); the
//     final floor plus congruence rescale make the strict-PD guarantee
//     unconditional rather than tolerance-dependent.
//
// Termination is bounded: the loop never spins past MaxIterations, and a
// non-converged run still returns the best available iterate (the Report
// says how good it is). NearestCorrelation has no non-convergence error
// path on purpose.
//
// The spectral step is an injected capability: JacobiSolver (default,
// dependency-free, deterministic) or GonumSolver (gonum.org/v1/gonum/mat
// EigenSym) — or your own Eigensolver implementation.
//
// ⚙️ Usage:
//
//	fixed, rep, err := higham.NearestCorrelation(blended,
//	    higham.WithEigensolver(higham.NewGonumSolver()),
//	    higham.WithMaxIterations(50),
//	)
//
// Complexity: O(MaxIterations · n³), dominated by the eigendecompositions.
package higham
