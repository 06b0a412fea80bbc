// Package shockcov turns a baseline market model (drifts, volatilities,
// correlations) plus a set of user shocks into a numerically sound,
// Cholesky-factorized covariance — ready for Monte-Carlo simulation or
// GPU visualization.
//
// 🚀 What is shockcov?
//
//	A deterministic, stateless library that runs the classic six-stage
//	stressed-scenario pipeline:
//		• Drift adjustment: μ' = μ + Δμ
//		• Volatility adjustment: σ' = σ ⊙ m
//		• Crisis blending: R' = (1−skew)·R + skew·J
//		• Nearest-correlation projection (Higham's alternating projections
//		  with Dykstra correction) — repairs any blend into a symmetric,
//		  unit-diagonal, strictly positive-definite correlation matrix
//		• Covariance rebuild: Σ = D·R·D
//		• Cholesky factorization: Σ = L·Lᵀ
//
// ✨ Why choose shockcov?
//
//   - Adversarial-input safe – the projector provably terminates and always
//     emits a usable correlation matrix, even on non-convergence
//   - Deterministic – fixed loop orders, no global state, no randomness
//   - Re-entrant – every call owns its data; run scenarios in parallel
//   - Swappable spectral core – inject your own symmetric eigensolver
//     (a gonum-backed one ships in the box)
//
// Everything is organized under four subpackages:
//
//	matrix/   — dense row-major kernels: add/scale/mul, Jacobi eigen, Cholesky
//	higham/   — nearest-correlation projector with Dykstra correction
//	scenario/ — drift/vol adjusters, crisis blender, covariance builder
//	engine/   — the float32 boundary: validation, sequencing, packing
//
// Quick start:
//
//	res, err := engine.ComputeShock(engine.Request{
//	    NumAssets:       3,
//	    BaseDrift:       []float32{0.08, 0.03, 0.05},
//	    BaseVol:         []float32{0.18, 0.06, 0.22},
//	    BaseCorrelation: []float32{1, .2, .3, .2, 1, -.1, .3, -.1, 1},
//	    DriftShift:      []float32{-0.15, 0.05, -0.08},
//	    VolMultiplier:   []float32{3.0, 1.8, 2.5},
//	    CorrelationSkew: 0.85,
//	})
//
//	go get github.com/katalvlaran/shockcov
package shockcov
