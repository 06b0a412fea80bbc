// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shockcov/higham"
	"github.com/katalvlaran/shockcov/matrix"
	"github.com/katalvlaran/shockcov/scenario"
)

const opCompute = "ComputeShock"

// Request carries one complete stress-scenario computation across the
// boundary. All numeric payloads are float32 (the caller-facing precision);
// the engine promotes them to float64 internally, because accumulating the
// projector's iterative floating-point work in single precision produces
// drift-induced positive-definiteness failures.
type Request struct {
	// NumAssets is N, the declared asset count every buffer is checked against.
	NumAssets int

	// BaseDrift, BaseVol, DriftShift and VolMultiplier must each hold
	// exactly N elements, index-aligned to the caller's asset ordering.
	BaseDrift     []float32
	BaseVol       []float32
	DriftShift    []float32
	VolMultiplier []float32

	// BaseCorrelation holds N² entries, row-major. It is NOT required to be
	// a valid correlation matrix — only the blended output is corrected.
	BaseCorrelation []float32

	// CorrelationSkew is the crisis-blend weight, expected in [0,1] but not
	// clamped (out-of-range values extrapolate; see scenario.Blend).
	CorrelationSkew float32

	// Jump holds the jump-diffusion scalars; validated finite, then passed
	// through untouched.
	Jump scenario.JumpParams
}

// Result packs the pipeline output back into boundary precision.
type Result struct {
	// AdjustedDrift and AdjustedVol hold N elements each.
	AdjustedDrift []float32
	AdjustedVol   []float32

	// CholeskyL is the lower-triangular factor, N² entries row-major;
	// strictly-upper entries are exactly zero.
	CholeskyL []float32

	// NumAssets echoes the validated asset count.
	NumAssets int

	// Jump echoes the jump-diffusion scalars, unchanged.
	Jump scenario.JumpParams

	// Projection reports the nearest-correlation run quality (iterations,
	// convergence, final delta). Diagnostic only.
	Projection higham.Report
}

// ComputeShock runs the full stressed-scenario pipeline:
//
//	validate → f32→f64 → AdjustDrift → AdjustVol → Blend →
//	NearestCorrelation → RebuildCovariance → Cholesky → pack
//
// Implementation:
//   - Stage 1: shape validation. Every buffer is checked against N before
//     any arithmetic; ALL offenders are collected into one *DimensionError.
//   - Stage 2: numeric policy. Every buffer entry and every scalar must be
//     finite (matrix.ErrNaNInf otherwise) — non-finite values poison every
//     downstream stage silently, so they are rejected loudly here.
//   - Stage 3: promote to float64 and sequence the five pipeline stages in
//     fixed order.
//   - Stage 4: demote results to float32; the factor is flattened row-major.
//
// Behavior highlights:
//   - Pure and deterministic: no retries (re-running unchanged input would
//     reproduce the same outcome), no partial state on error.
//   - Re-entrant: every call owns all of its data; concurrent callers need
//     no coordination.
//
// Errors:
//   - *DimensionError (matches matrix.ErrDimensionMismatch): some buffer
//     length disagrees with N. Raised before any computation.
//   - matrix.ErrNaNInf: a non-finite input value or scalar.
//   - matrix.ErrNotPositiveDefinite: the covariance could not be factorized
//     (e.g. a zero volatility) — rare by construction, surfaced verbatim.
//
// Complexity:
//   - O(MaxIterations · N³), dominated by the projector's repeated
//     eigendecompositions.
//
// AI-Hints:
//   - For wide portfolios pass engine.WithProjector(higham.WithEigensolver(
//     higham.NewGonumSolver())) to swap the spectral backend.
//   - The projector never fails on convergence grounds; inspect
//     Result.Projection if you care about approximation quality.
func ComputeShock(req Request, opts ...Option) (*Result, error) {
	o := gatherOptions(opts)

	// Stage 1: exhaustive shape validation, before any computation.
	if err := validateShapes(req); err != nil {
		return nil, err
	}

	// Stage 2: numeric policy — finite values only across the boundary.
	bd := toFloat64(req.BaseDrift)
	bv := toFloat64(req.BaseVol)
	bc := toFloat64(req.BaseCorrelation)
	dd := toFloat64(req.DriftShift)
	vm := toFloat64(req.VolMultiplier)
	for _, in := range [...]struct {
		name string
		vec  []float64
	}{
		{BufBaseDrift, bd},
		{BufBaseVol, bv},
		{BufBaseCorrelation, bc},
		{BufDriftShift, dd},
		{BufVolMultiplier, vm},
	} {
		if err := matrix.ValidateFiniteVec(in.vec); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", opCompute, in.name, err)
		}
	}
	skew := float64(req.CorrelationSkew)
	if math.IsNaN(skew) || math.IsInf(skew, 0) {
		return nil, fmt.Errorf("%s: correlation_skew: %w", opCompute, matrix.ErrNaNInf)
	}
	if err := req.Jump.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	// Stage 3: the pipeline, in fixed order.
	adjDrift, err := scenario.AdjustDrift(bd, dd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	adjVol, err := scenario.AdjustVol(bv, vm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	baseCorr, err := matrix.NewDenseFromRowMajor(req.NumAssets, bc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	blended, err := scenario.Blend(baseCorr, skew)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	corrected, report, err := higham.NearestCorrelation(blended, o.projector...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	cov, err := scenario.RebuildCovariance(adjVol, corrected)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	factor, err := matrix.Cholesky(cov)
	if err != nil {
		// The defensive boundary of the pipeline: reachable via zero
		// volatilities or projector edge cases, surfaced verbatim.
		return nil, fmt.Errorf("%s: factorize covariance: %w", opCompute, err)
	}

	// Stage 4: pack back to boundary precision.
	return &Result{
		AdjustedDrift: toFloat32(adjDrift),
		AdjustedVol:   toFloat32(adjVol),
		CholeskyL:     factor.RowMajor32(),
		NumAssets:     req.NumAssets,
		Jump:          req.Jump,
		Projection:    report,
	}, nil
}

// validateShapes checks every buffer length against the declared N and
// collects ALL mismatches (callers fix their marshaling in one pass).
func validateShapes(req Request) error {
	n := req.NumAssets
	if n <= 0 {
		return &DimensionError{
			NumAssets:  n,
			Mismatches: []BufferMismatch{{Buffer: BufNumAssets, Expected: 1, Actual: n}},
		}
	}

	var mismatches []BufferMismatch
	for _, b := range [...]struct {
		name     string
		expected int
		actual   int
	}{
		{BufBaseDrift, n, len(req.BaseDrift)},
		{BufBaseVol, n, len(req.BaseVol)},
		{BufBaseCorrelation, n * n, len(req.BaseCorrelation)},
		{BufDriftShift, n, len(req.DriftShift)},
		{BufVolMultiplier, n, len(req.VolMultiplier)},
	} {
		if b.actual != b.expected {
			mismatches = append(mismatches, BufferMismatch{
				Buffer:   b.name,
				Expected: b.expected,
				Actual:   b.actual,
			})
		}
	}
	if len(mismatches) > 0 {
		return &DimensionError{NumAssets: n, Mismatches: mismatches}
	}

	return nil
}

// toFloat64 promotes a boundary buffer to the internal precision.
func toFloat64(in []float32) []float64 {
	out := make([]float64, len(in))
	for i := range in {
		out[i] = float64(in[i])
	}

	return out
}

// toFloat32 demotes a result vector to the boundary precision.
func toFloat32(in []float64) []float32 {
	out := make([]float32, len(in))
	for i := range in {
		out[i] = float32(in[i])
	}

	return out
}
