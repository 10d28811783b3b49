// SPDX-License-Identifier: MIT

package dft

import (
	"math"

	"github.com/katalvlaran/numericalc/polynomial"
	"golang.org/x/exp/constraints"
)

// Forward returns the DFT of p (angle sign +).
// Complexity: O(n²).
func Forward[C constraints.Complex](p *polynomial.Polynomial[C]) *polynomial.Polynomial[C] {
	return transform(p, false)
}

// Inverse returns the inverse DFT of p (angle sign -, scaled by 1/n).
// Inverse(Forward(p)) reproduces p within rounding.
// Complexity: O(n²).
func Inverse[C constraints.Complex](p *polynomial.Polynomial[C]) *polynomial.Polynomial[C] {
	return transform(p, true)
}

// transform is the shared kernel behind Forward and Inverse.
// Implementation:
//   - Stage 1: for each i, w = e^{±2πi·i/n}; wj starts at 1.
//   - Stage 2: y[i] = Σ_j p[j]·wj with wj *= w after each term.
//   - Stage 3: when inverse, divide every y[i] by n.
func transform[C constraints.Complex](p *polynomial.Polynomial[C], inverse bool) *polynomial.Polynomial[C] {
	n := p.Degree()
	src := p.Coefficients()
	y := make([]C, n)

	sign := 1.0
	if inverse {
		sign = -1.0
	}

	for i := 0; i < n; i++ {
		angle := sign * 2 * math.Pi * float64(i) / float64(n)
		w := C(complex(math.Cos(angle), math.Sin(angle)))
		wj := C(1)
		var acc C
		for j := 0; j < n; j++ {
			acc += src[j] * wj
			wj *= w
		}
		y[i] = acc
	}

	if inverse {
		scale := C(complex(float64(n), 0))
		for i := range y {
			y[i] /= scale
		}
	}

	return polynomial.FromCoefficients(y...)
}
