// SPDX-License-Identifier: MIT

package matrix

import "math"

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// classical Jacobi rotations.
//
// Implementation:
//   - Stage 1: validate a symmetric square input within tol (not nil, square,
//     |A[i,j]−A[j,i]| ≤ tol), then clone it into a working Dense A and
//     initialize the accumulator Q to identity.
//   - Stage 2: repeatedly pick the pivot (p,q) with the largest |A[p,q]| in
//     fixed i→j scan order and apply one Jacobi rotation to A and Q, until
//     the largest off-diagonal magnitude drops below tol or maxIter sweeps
//     are exhausted.
//
// Behavior highlights:
//   - Deterministic pivot scan and update order → stable results across runs.
//   - A near-zero pivot (|A[p,q]| ≤ tol) is skipped as a no-op rotation to
//     avoid numerical blow-ups in θ.
//
// Inputs:
//   - m: symmetric matrix (within tol); n := m.Rows().
//   - tol: convergence threshold (typ. 1e-9..1e-12 for float64).
//   - maxIter: safety cap on rotations.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix), in the order
//     the diagonal carries them (NOT sorted).
//   - *Dense: Q whose columns are the matching eigenvectors.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch (structure), ErrAsymmetry (input),
//     ErrNaNInf (bad tol), ErrEigenNoConvergence (off-diagonal mass still
//     ≥ tol after maxIter rotations).
//
// Complexity:
//   - Time O(maxIter · n²) per pivot scan + O(n) per rotation, bounded by
//     O(maxIter · n²); Space O(n²).
//
// AI-Hints:
//   - Good defaults: tol ≈ 1e-10, maxIter ≈ 30·n² for n ≤ 128.
//   - Symmetrize upstream (see Symmetrize) if the input comes from
//     numerically noisy ops; this routine validates, it does not repair.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	// Validate: notNil, square, symmetric within tol.
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Working copy A (never mutate the input) and accumulator Q = I.
	n := m.Rows()
	src, _ := asDense(m)
	a := &Dense{r: n, c: n, data: make([]float64, n*n)}
	copy(a.data, src.data)
	q := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	var (
		iter, base         int     // iteration counter, row offset
		p, pivQ            int     // current pivot indices
		maxOff, off        float64 // running max |A[i,j]| and scan temporary
		app, aqq, apq      float64 // pivot-block entries
		aip, aiq, qip, qiq float64 // row temporaries for A and Q updates
		newIP, newIQ       float64 // rotated values
		theta, t, c, s     float64 // rotation parameters
	)
	for iter = 0; iter < maxIter; iter++ {
		// Find pivot (p,q) maximizing |A[p,q]| over the strict upper triangle.
		maxOff = 0
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[base+j])
				if off > maxOff {
					maxOff, p, pivQ = off, i, j
				}
			}
		}

		// Converged: every off-diagonal entry is below tol.
		if maxOff < tol {
			break
		}

		app = a.data[p*n+p]
		aqq = a.data[pivQ*n+pivQ]
		apq = a.data[p*n+pivQ]
		// Guard: a vanishing pivot would make θ explode; skip the rotation.
		if math.Abs(apq) <= tol {
			continue
		}

		// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1)); c = 1/√(1+t²); s = t·c.
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// Apply the rotation to A, keeping symmetry explicit.
		for i = 0; i < n; i++ {
			if i == p || i == pivQ {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+pivQ]
			newIP = c*aip - s*aiq
			newIQ = s*aip + c*aiq
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+pivQ], a.data[pivQ*n+i] = newIQ, newIQ
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[pivQ*n+pivQ] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+pivQ], a.data[pivQ*n+p] = 0, 0

		// Accumulate the rotation into Q.
		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qiq = q.data[i*n+pivQ]
			q.data[i*n+p] = c*qip - s*qiq
			q.data[i*n+pivQ] = s*qip + c*qiq
		}
	}

	// Final convergence check on the off-diagonal mass.
	maxOff = 0
	for i = 0; i < n; i++ {
		base = i * n
		for j = i + 1; j < n; j++ {
			off = math.Abs(a.data[base+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenNoConvergence)
	}

	// Eigenvalues live on the diagonal of the rotated A.
	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}
