// SPDX-License-Identifier: MIT

package scenario

import (
	"math"

	"github.com/katalvlaran/shockcov/matrix"
)

const opJumpValidate = "JumpParams.Validate"

// JumpParams carries the scalar jump-diffusion parameters of a stress
// scenario. The pipeline does not transform them — they ride through the
// engine untouched for downstream Monte-Carlo consumption — but they are
// validated to be finite at the boundary, because a NaN intensity silently
// poisons every simulated path that samples it.
type JumpParams struct {
	// Intensity is the Poisson jump arrival rate (λ), events per unit time.
	Intensity float32
	// Mean is the mean of the jump-size distribution.
	Mean float32
	// Vol is the volatility of the jump-size distribution.
	Vol float32
}

// Validate rejects NaN or ±Inf in any of the three scalars.
// Errors: matrix.ErrNaNInf. Complexity: O(1).
func (p JumpParams) Validate() error {
	for _, v := range [...]float64{float64(p.Intensity), float64(p.Mean), float64(p.Vol)} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return scenarioErrorf(opJumpValidate, matrix.ErrNaNInf)
		}
	}

	return nil
}
