// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"

	"github.com/katalvlaran/shockcov/matrix"
)

// Operation tags for unified error wrapping.
const (
	opAdjustDrift = "AdjustDrift"
	opAdjustVol   = "AdjustVol"
)

// scenarioErrorf wraps err with an operation tag, preserving errors.Is.
func scenarioErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// AdjustDrift applies a stress shift to baseline expected returns:
// out[i] = base[i] + delta[i].
//
// Both vectors must share one length; a fresh slice is returned and the
// inputs stay untouched.
//
// Errors: matrix.ErrNilMatrix (nil slice), matrix.ErrDimensionMismatch.
// Complexity: O(n).
func AdjustDrift(base, delta []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(base, len(base)); err != nil {
		return nil, scenarioErrorf(opAdjustDrift, err)
	}
	if err := matrix.ValidateVecLen(delta, len(base)); err != nil {
		return nil, scenarioErrorf(opAdjustDrift, err)
	}

	out := make([]float64, len(base))
	for i := 0; i < len(base); i++ { // independent per-index sums
		out[i] = base[i] + delta[i]
	}

	return out, nil
}

// AdjustVol applies stress multipliers to baseline volatilities:
// out[i] = base[i] * multiplier[i].
//
// Same contract as AdjustDrift: equal lengths, fresh result, no mutation.
// Multiplier signs are not validated (permissive caller contract).
//
// Errors: matrix.ErrNilMatrix (nil slice), matrix.ErrDimensionMismatch.
// Complexity: O(n).
func AdjustVol(base, multiplier []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(base, len(base)); err != nil {
		return nil, scenarioErrorf(opAdjustVol, err)
	}
	if err := matrix.ValidateVecLen(multiplier, len(base)); err != nil {
		return nil, scenarioErrorf(opAdjustVol, err)
	}

	out := make([]float64, len(base))
	for i := 0; i < len(base); i++ { // independent per-index products
		out[i] = base[i] * multiplier[i]
	}

	return out, nil
}
