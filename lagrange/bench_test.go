// SPDX-License-Identifier: MIT

package lagrange_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/numericalc/lagrange"
	"github.com/katalvlaran/numericalc/matrix"
	"github.com/katalvlaran/numericalc/polynomial"
)

var (
	sinkBasis  []*polynomial.Polynomial[float64]
	sinkMatrix *matrix.Dense
)

// evenGrid returns n distinct, evenly spaced points in (-n, n).
func evenGrid(n int) []float64 {
	g := make([]float64, n)
	for i := range g {
		g[i] = float64(2*i - n + 1)
	}

	return g
}

func BenchmarkPolynomials(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{8, 32, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			grid := evenGrid(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				basis, err := lagrange.Polynomials(grid)
				if err != nil {
					b.Fatal(err)
				}
				sinkBasis = basis
			}
		})
	}
}

func BenchmarkPolynomialMatrix(b *testing.B) {
	b.ReportAllocs()
	grid := evenGrid(32)
	for i := 0; i < b.N; i++ {
		m, err := lagrange.PolynomialMatrix(grid)
		if err != nil {
			b.Fatal(err)
		}
		sinkMatrix = m
	}
}
