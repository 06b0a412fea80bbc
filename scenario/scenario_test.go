// SPDX-License-Identifier: MIT
// Unit tests for the scenario transforms.

package scenario_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shockcov/matrix"
	"github.com/katalvlaran/shockcov/scenario"
)

const blendTol = 1e-10

func mustSquare(t *testing.T, n int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRowMajor(n, data)
	require.NoError(t, err)

	return m
}

func TestAdjustDriftPerIndexSums(t *testing.T) {
	base := []float64{0.08, 0.03, 0.05}
	delta := []float64{-0.15, 0.05, -0.08}

	out, err := scenario.AdjustDrift(base, delta)
	require.NoError(t, err)
	for i := range base {
		require.InDelta(t, base[i]+delta[i], out[i], blendTol, "index %d", i)
	}
	// Inputs untouched.
	require.Equal(t, []float64{0.08, 0.03, 0.05}, base)

	_, err = scenario.AdjustDrift(base, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = scenario.AdjustDrift(nil, delta)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAdjustVolPerIndexProducts(t *testing.T) {
	base := []float64{0.18, 0.06, 0.22}
	mult := []float64{3.0, 1.8, 2.5}

	out, err := scenario.AdjustVol(base, mult)
	require.NoError(t, err)
	require.InDelta(t, 0.54, out[0], blendTol)
	require.InDelta(t, 0.108, out[1], blendTol)
	require.InDelta(t, 0.55, out[2], blendTol)

	_, err = scenario.AdjustVol(base, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestBlendEndpoints(t *testing.T) {
	r := mustSquare(t, 3, []float64{
		1, 0.2, 0.3,
		0.2, 1, -0.1,
		0.3, -0.1, 1,
	})

	// skew = 0 → identity transform.
	same, err := scenario.Blend(r, 0)
	require.NoError(t, err)
	dist, err := matrix.FrobeniusDistance(r, same)
	require.NoError(t, err)
	require.Less(t, dist, blendTol)

	// skew = 1 → all-ones crisis matrix.
	ones, err := scenario.Blend(r, 1)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			v, atErr := ones.At(i, j)
			require.NoError(t, atErr)
			require.InDelta(t, 1.0, v, blendTol)
		}
	}
}

func TestBlendInterpolatesAndExtrapolates(t *testing.T) {
	r := mustSquare(t, 2, []float64{1, 0.2, 0.2, 1})

	mid, err := scenario.Blend(r, 0.85)
	require.NoError(t, err)
	v, err := mid.At(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.15*0.2+0.85, v, blendTol)
	d, err := mid.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 1.0, d, blendTol, "unit diagonal survives any skew")

	// Out-of-range skew is extrapolation, not an error.
	over, err := scenario.Blend(r, 1.5)
	require.NoError(t, err)
	v, err = over.At(0, 1)
	require.NoError(t, err)
	require.InDelta(t, -0.5*0.2+1.5, v, blendTol)

	_, err = scenario.Blend(nil, 0.5)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRebuildCovariance(t *testing.T) {
	r := mustSquare(t, 3, []float64{
		1, 0.2, 0.3,
		0.2, 1, -0.1,
		0.3, -0.1, 1,
	})
	vol := []float64{0.18, 0.06, 0.22}

	cov, err := scenario.RebuildCovariance(vol, r)
	require.NoError(t, err)

	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			rij, atErr := r.At(i, j)
			require.NoError(t, atErr)
			cij, atErr := cov.At(i, j)
			require.NoError(t, atErr)
			require.InDelta(t, vol[i]*rij*vol[j], cij, blendTol)
		}
	}

	_, err = scenario.RebuildCovariance([]float64{1, 2}, r)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestJumpParamsValidate(t *testing.T) {
	require.NoError(t, scenario.JumpParams{Intensity: 0.5, Mean: -0.1, Vol: 0.3}.Validate())
	require.NoError(t, scenario.JumpParams{}.Validate())

	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	require.ErrorIs(t, scenario.JumpParams{Intensity: nan}.Validate(), matrix.ErrNaNInf)
	require.ErrorIs(t, scenario.JumpParams{Mean: inf}.Validate(), matrix.ErrNaNInf)
	require.ErrorIs(t, scenario.JumpParams{Vol: -inf}.Validate(), matrix.ErrNaNInf)
}
