// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/shockcov/matrix"
)

// Boundary buffer names, used in DimensionError entries and error text.
// Fixed constants keep messages grep-able and tests exact.
const (
	BufNumAssets       = "num_assets"
	BufBaseDrift       = "base_drift"
	BufBaseVol         = "base_vol"
	BufBaseCorrelation = "base_correlation"
	BufDriftShift      = "drift_shift"
	BufVolMultiplier   = "vol_multiplier"
)

// BufferMismatch names one offending buffer with its expected and actual
// element counts.
type BufferMismatch struct {
	Buffer   string
	Expected int
	Actual   int
}

// DimensionError reports EVERY buffer whose length disagrees with the
// declared asset count — not just the first one — so a caller can fix all
// of its marshaling in one round trip. It is raised before any computation
// begins and never leaves partial state.
//
// errors.Is(err, matrix.ErrDimensionMismatch) matches it, keeping the
// single errors.Is vocabulary of the module.
type DimensionError struct {
	// NumAssets is the declared N the buffers were checked against.
	NumAssets int
	// Mismatches lists each offending buffer in declaration order.
	Mismatches []BufferMismatch
}

// Error lists every offender: "engine: dimension mismatch for N=3:
// base_correlation expected 9 got 8; vol_multiplier expected 3 got 0".
func (e *DimensionError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "engine: dimension mismatch for N=%d:", e.NumAssets)
	for i, m := range e.Mismatches {
		if i > 0 {
			sb.WriteString(";")
		}
		fmt.Fprintf(&sb, " %s expected %d got %d", m.Buffer, m.Expected, m.Actual)
	}

	return sb.String()
}

// Unwrap ties DimensionError into the module-wide sentinel vocabulary.
func (e *DimensionError) Unwrap() error { return matrix.ErrDimensionMismatch }
