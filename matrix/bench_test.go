// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/numericalc/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkF float64
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, 1337)
			B := randDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkLU(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, u, err := matrix.LU(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = u
			}
		})
	}
}

func BenchmarkEuclideanNorm(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.EuclideanNorm(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = v
			}
		})
	}
}
