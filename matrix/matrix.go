// SPDX-License-Identifier: MIT
// Package matrix — Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); RowMajor32: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// Matrix is the minimal read/write surface every kernel in this package
// accepts. *Dense is the canonical implementation; kernels that receive a
// foreign implementation materialize it into a Dense once and proceed on
// the flat buffer (see asDense in kernels.go).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At retrieves the element at (row, col) or ErrOutOfRange.
	At(row, col int) (float64, error)
	// Set assigns v at (row, col) or returns ErrOutOfRange.
	Set(row, col int, v float64) error
	// Clone returns a deep, independent copy.
	Clone() Matrix
}

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r, c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (> 0, enforced at construction)
	data []float64 // contiguous row-major storage, len == r*c
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows > 0 && cols > 0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled contiguous buffer.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape before allocation.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRowMajor builds an n×n Dense from a flat row-major buffer.
// The buffer is copied; the caller keeps ownership of data.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//   - ErrDimensionMismatch when len(data) != n*n.
//
// Complexity: Time O(n²), Space O(n²).
func NewDenseFromRowMajor(n int, data []float64) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != n*n {
		return nil, ErrDimensionMismatch
	}
	buf := make([]float64, n*n)
	copy(buf, data)

	return &Dense{r: n, c: n, data: buf}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col). Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Data returns a copy of the backing row-major buffer.
// The copy keeps callers from aliasing internal state.
// Complexity: O(r*c).
func (m *Dense) Data() []float64 {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return buf
}

// RowMajor32 flattens the matrix into a freshly allocated float32 slice in
// row-major order. This is the packing format consumed at the engine
// boundary (and by GPU uniform uploads downstream of it).
// Complexity: O(r*c).
func (m *Dense) RowMajor32() []float32 {
	out := make([]float32, len(m.data))
	for idx := 0; idx < len(m.data); idx++ { // deterministic 0..n-1
		out[idx] = float32(m.data[idx])
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Rows are printed top-down, values comma-separated.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(fmtSep)
			}
			fmt.Fprintf(&sb, "%.6g", m.data[i*m.c+j])
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}
