// SPDX-License-Identifier: MIT

package engine_test

import (
	"fmt"

	"github.com/katalvlaran/shockcov/engine"
	"github.com/katalvlaran/shockcov/scenario"
)

// ExampleComputeShock runs a three-asset crisis scenario: heavy volatility
// multipliers plus a strong pull of all correlations toward one.
func ExampleComputeShock() {
	res, err := engine.ComputeShock(engine.Request{
		NumAssets: 3,
		BaseDrift: []float32{0.08, 0.03, 0.05},
		BaseVol:   []float32{0.18, 0.06, 0.22},
		BaseCorrelation: []float32{
			1.0, 0.2, 0.3,
			0.2, 1.0, -0.1,
			0.3, -0.1, 1.0,
		},
		DriftShift:      []float32{-0.15, 0.05, -0.08},
		VolMultiplier:   []float32{3.0, 1.8, 2.5},
		CorrelationSkew: 0.85,
		Jump:            scenario.JumpParams{Intensity: 2.0, Mean: -0.05, Vol: 0.10},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("drift: %.2f %.2f %.2f\n",
		res.AdjustedDrift[0], res.AdjustedDrift[1], res.AdjustedDrift[2])
	fmt.Printf("vol:   %.3f %.3f %.3f\n",
		res.AdjustedVol[0], res.AdjustedVol[1], res.AdjustedVol[2])
	upperZero := res.CholeskyL[1] == 0 && res.CholeskyL[2] == 0 && res.CholeskyL[5] == 0
	fmt.Println("lower-triangular:", upperZero)
	// Output:
	// drift: -0.07 0.08 -0.03
	// vol:   0.540 0.108 0.550
	// lower-triangular: true
}

// ExampleComputeShock_dimensionError shows that every malformed buffer is
// reported in a single error, before any computation runs.
func ExampleComputeShock_dimensionError() {
	_, err := engine.ComputeShock(engine.Request{
		NumAssets:       2,
		BaseDrift:       []float32{0.05}, // one short
		BaseVol:         []float32{0.2, 0.3},
		BaseCorrelation: []float32{1, 0.5, 0.5}, // 3 instead of 4
		DriftShift:      []float32{0, 0},
		VolMultiplier:   []float32{1, 1},
	})
	fmt.Println(err)
	// Output:
	// engine: dimension mismatch for N=2: base_drift expected 2 got 1; base_correlation expected 4 got 3
}
