// SPDX-License-Identifier: MIT

package higham

import "github.com/katalvlaran/shockcov/matrix"

// Eigensolver is the injected spectral capability of the projector: a full
// eigendecomposition of a symmetric matrix. Implementations must return
// eigenvalues aligned with the columns of vecs (A = V·diag(vals)·Vᵀ);
// ordering of the pairs is irrelevant to the projection.
//
// The projector treats any returned error as "this sweep's decomposition
// is unavailable" and stops with the previous best iterate — implementations
// should return an error rather than a partial result.
type Eigensolver interface {
	EigenSym(m *matrix.Dense) (vals []float64, vecs *matrix.Dense, err error)
}

// Jacobi solver tuning. The rotation budget scales with n² because one
// Jacobi rotation only zeroes a single off-diagonal pair.
const (
	// DefaultJacobiTol is the off-diagonal mass threshold for convergence.
	DefaultJacobiTol = 1e-10

	// DefaultJacobiRotationsPerCell multiplies n² into the rotation budget.
	DefaultJacobiRotationsPerCell = 30
)

// JacobiSolver is the default, dependency-free Eigensolver: classical
// Jacobi rotations with a deterministic pivot scan (matrix.Eigen).
type JacobiSolver struct {
	// Tol is the convergence threshold on the largest off-diagonal entry.
	Tol float64
	// RotationsPerCell scales the rotation budget: maxRotations = r·n².
	RotationsPerCell int
}

// NewJacobiSolver returns a JacobiSolver with the documented defaults.
func NewJacobiSolver() *JacobiSolver {
	return &JacobiSolver{
		Tol:              DefaultJacobiTol,
		RotationsPerCell: DefaultJacobiRotationsPerCell,
	}
}

// EigenSym implements Eigensolver.
//
// The input is symmetrized first: inside the alternating-projections loop
// the iterate is symmetric only up to floating drift, and matrix.Eigen
// validates symmetry strictly rather than repairing it.
//
// Complexity: O(budget · n²) with budget = RotationsPerCell · n².
func (s *JacobiSolver) EigenSym(m *matrix.Dense) ([]float64, *matrix.Dense, error) {
	sym, err := matrix.Symmetrize(m)
	if err != nil {
		return nil, nil, err
	}

	budget := s.RotationsPerCell * m.Rows() * m.Rows()

	return matrix.Eigen(sym, s.Tol, budget)
}
