// SPDX-License-Identifier: MIT

package higham

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shockcov/matrix"
)

// opNearest tags every wrapped error emitted by this file.
const opNearest = "NearestCorrelation"

// Report describes the quality of a projection run. It is diagnostic data,
// not an error channel: a non-converged run is a documented approximation,
// and the returned matrix is always usable.
type Report struct {
	// Iterations is the number of alternating-projection iterations executed.
	Iterations int
	// Converged is true when the loop stopped early because the Frobenius
	// delta between consecutive constraint projections fell below tolerance.
	Converged bool
	// LastDelta is the final Frobenius distance ‖Y − X‖_F observed.
	LastDelta float64
	// SolverErr records an eigensolver failure that cut the run short, if
	// any. The result is then the previous best iterate. Nil in the common
	// case.
	SolverErr error
}

// NearestCorrelation projects an arbitrary square matrix onto the set of
// valid correlation matrices: symmetric, unit diagonal, strictly
// positive-definite.
//
// Implementation:
//   - Stage 1: validate (non-nil, square) and symmetrize; DS := 0.
//   - Stage 2: up to MaxIterations times —
//     R = Y − DS;
//     eigendecompose R and clamp every eigenvalue below EigenFloor up to
//     the floor (projection onto the PSD cone, lifted to strict PD);
//     X = V·diag(λ⁺)·Vᵀ;
//     DS = X − R (Dykstra correction);
//     Y = X with the diagonal forced to 1 (unit-diagonal projection);
//     stop early when ‖Y − X‖_F < ConvergenceTol.
//   - Stage 3: final (Y+Yᵀ)/2, then one more eigenvalue floor — the loop's
//     unit-diagonal writes perturb the floored spectrum by up to the
//     convergence tolerance, an order of magnitude above the floor, so a
//     converged iterate can still carry a barely negative eigenvalue — and
//     a congruence rescale D^{-1/2}·X·D^{-1/2} that restores the unit
//     diagonal without changing eigenvalue signs.
//
// Behavior highlights:
//   - Bounded termination: never spins past MaxIterations; non-convergence
//     is NOT an error — the best available iterate is returned and Report
//     carries the quality (Iterations, Converged, LastDelta).
//   - An eigensolver failure mid-run stops the loop with the previous best
//     iterate (Report.SolverErr notes it); the projector itself never fails
//     on numeric grounds.
//   - The input does not need to be symmetric, PD, or unit-diagonal — that
//     is the whole point.
//
// Inputs:
//   - m: any square matrix of symmetric intent (e.g. a crisis-blended
//     correlation matrix).
//   - opts: WithMaxIterations, WithEigenFloor, WithConvergenceTol,
//     WithEigensolver.
//
// Returns:
//   - *matrix.Dense: symmetric, unit-diagonal, strictly PD result.
//   - Report: run diagnostics (see type docs).
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch for structural
//     misuse only. Never for convergence quality.
//
// Complexity:
//   - Time O(MaxIterations · n³) dominated by eigendecompositions;
//     Space O(n²).
//
// AI-Hints:
//   - Already-valid correlation matrices pass through in one iteration
//     (idempotence within tolerance) — no need to pre-check PD-ness.
//   - For N ≳ 100 inject GonumSolver; the default Jacobi solver favors
//     determinism and zero dependencies over speed.
func NearestCorrelation(m matrix.Matrix, opts ...Option) (*matrix.Dense, Report, error) {
	o := gatherOptions(opts)
	rep := Report{}

	// Stage 1: structural validation + symmetrization.
	y, err := matrix.Symmetrize(m)
	if err != nil {
		return nil, rep, fmt.Errorf("%s: %w", opNearest, err)
	}
	n := y.Rows()

	// Dykstra correction term, zero-initialized.
	ds, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, rep, fmt.Errorf("%s: %w", opNearest, err)
	}

	var (
		iter       int
		r, x       *matrix.Dense
		vals       []float64
		vecs       *matrix.Dense
		delta      float64
		solverErr  error
		kernelFail error
	)
	for iter = 0; iter < o.maxIterations; iter++ {
		// R = Y − DS.
		if r, kernelFail = matrix.Sub(y, ds); kernelFail != nil {
			return nil, rep, fmt.Errorf("%s: %w", opNearest, kernelFail)
		}

		// Projection onto the PSD cone, via the injected spectral capability.
		vals, vecs, solverErr = o.solver.EigenSym(r)
		if solverErr != nil {
			// Best-effort contract: keep the previous iterate, note the cut.
			rep.SolverErr = solverErr
			break
		}

		// Clamp eigenvalues below the floor UP to the floor — strict PD, no
		// zero eigenvalue survives.
		for k := 0; k < len(vals); k++ {
			if vals[k] < o.eigenFloor {
				vals[k] = o.eigenFloor
			}
		}

		// X = V·diag(λ⁺)·Vᵀ.
		if x, kernelFail = assemble(vals, vecs); kernelFail != nil {
			return nil, rep, fmt.Errorf("%s: %w", opNearest, kernelFail)
		}

		// Dykstra update: DS = X − R.
		if ds, kernelFail = matrix.Sub(x, r); kernelFail != nil {
			return nil, rep, fmt.Errorf("%s: %w", opNearest, kernelFail)
		}

		// Projection onto the unit-diagonal constraint set: Y = X, diag := 1.
		y = x.Clone().(*matrix.Dense)
		if kernelFail = matrix.SetUnitDiagonal(y); kernelFail != nil {
			return nil, rep, fmt.Errorf("%s: %w", opNearest, kernelFail)
		}

		rep.Iterations = iter + 1

		// Convergence check: ‖Y − X‖_F below tolerance ⇒ both constraint
		// sets agree and the alternation has settled.
		if delta, kernelFail = matrix.FrobeniusDistance(y, x); kernelFail != nil {
			return nil, rep, fmt.Errorf("%s: %w", opNearest, kernelFail)
		}
		rep.LastDelta = delta
		if delta < o.convergenceTol {
			rep.Converged = true
			break
		}
	}

	// Stage 3: finalization. The in-loop diagonal writes shift the floored
	// smallest eigenvalue by up to the convergence tolerance, so Y can sit
	// marginally outside the PD cone even after a converged run. One more
	// floor puts it back; the congruence rescale inside refloor brings the
	// diagonal home without touching eigenvalue signs.
	out, err := matrix.Symmetrize(y)
	if err != nil {
		return nil, rep, fmt.Errorf("%s: %w", opNearest, err)
	}
	if rep.SolverErr == nil {
		refloored, floorErr := refloor(out, o)
		if floorErr != nil {
			// Same best-effort contract as mid-loop: keep the iterate.
			rep.SolverErr = floorErr
		} else {
			out = refloored
		}
	}
	if err = matrix.SetUnitDiagonal(out); err != nil {
		return nil, rep, fmt.Errorf("%s: %w", opNearest, err)
	}

	return out, rep, nil
}

// assemble reconstructs V·diag(vals)·Vᵀ from an eigendecomposition.
func assemble(vals []float64, vecs *matrix.Dense) (*matrix.Dense, error) {
	n := vecs.Rows()
	diag, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for k := 0; k < n; k++ {
		if err = diag.Set(k, k, vals[k]); err != nil {
			return nil, err
		}
	}
	vd, err := matrix.Mul(vecs, diag)
	if err != nil {
		return nil, err
	}
	vt, err := matrix.Transpose(vecs)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(vd, vt)
}

// refloor projects m onto the strictly-PD cone one final time: clamp the
// spectrum to the floor, reconstruct, then rescale D^{-1/2}·X·D^{-1/2} with
// D = diag(X). The rescale restores a unit diagonal (up to one ulp, forced
// exact by the caller) and, being a congruence, cannot flip an eigenvalue
// sign — X is strictly PD by construction, so every diagonal entry is
// positive and the rescale is well defined.
func refloor(m *matrix.Dense, o options) (*matrix.Dense, error) {
	vals, vecs, err := o.solver.EigenSym(m)
	if err != nil {
		return nil, err
	}
	for k := 0; k < len(vals); k++ {
		if vals[k] < o.eigenFloor {
			vals[k] = o.eigenFloor
		}
	}
	x, err := assemble(vals, vecs)
	if err != nil {
		return nil, err
	}

	n := x.Rows()
	scale := make([]float64, n)
	var v float64
	for i := 0; i < n; i++ {
		if v, err = x.At(i, i); err != nil {
			return nil, err
		}
		scale[i] = 1 / math.Sqrt(v)
	}

	return matrix.MulDiag(scale, x)
}
