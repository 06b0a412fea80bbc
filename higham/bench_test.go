// SPDX-License-Identifier: MIT
// Benchmarks comparing the two spectral backends on realistic stress inputs.

package higham_test

import (
	"testing"

	"github.com/katalvlaran/shockcov/higham"
	"github.com/katalvlaran/shockcov/matrix"
)

// stressedEquicorrelation builds an n×n matrix with every off-diagonal at
// rho — the shape crisis blending produces at high skew.
func stressedEquicorrelation(n int, rho float64) *matrix.Dense {
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				data[i*n+j] = 1.0
			} else {
				data[i*n+j] = rho
			}
		}
	}
	m, err := matrix.NewDenseFromRowMajor(n, data)
	if err != nil {
		panic(err)
	}

	return m
}

func benchProject(b *testing.B, n int, opts ...higham.Option) {
	in := stressedEquicorrelation(n, 0.95)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := higham.NearestCorrelation(in, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNearestCorrelationJacobi16(b *testing.B) { benchProject(b, 16) }

func BenchmarkNearestCorrelationGonum16(b *testing.B) {
	benchProject(b, 16, higham.WithEigensolver(higham.NewGonumSolver()))
}

func BenchmarkNearestCorrelationGonum64(b *testing.B) {
	benchProject(b, 64, higham.WithEigensolver(higham.NewGonumSolver()))
}
