// SPDX-License-Identifier: MIT

package fft

import (
	"math"

	"github.com/katalvlaran/numericalc/polynomial"
	"golang.org/x/exp/constraints"
)

// Real is the set of real coefficient types accepted by Multiply.
type Real interface {
	constraints.Integer | constraints.Float
}

// Multiply returns p·q computed through the FFT.
// Implementation:
//   - Stage 1: lift both coefficient vectors to complex128 (imaginary part 0).
//   - Stage 2: zero-pad to the smallest power of two ≥ deg_p + deg_q − 1.
//   - Stage 3: Forward both, multiply pointwise, Inverse.
//   - Stage 4: keep the real part; round to nearest for integral T.
//
// Behavior highlights:
//   - Result size is deg_p + deg_q, the same as p.Mul(q); the top slot is 0.
//   - A zero-size operand yields an all-zero result of that size.
//   - Float results agree with p.Mul(q) within rounding, not bit-for-bit.
//   - Integral results are exact only while every product coefficient, and
//     every intermediate sum, stays within ±2^53. Beyond that, or when an
//     unsigned T would need a negative intermediate, use p.Mul(q).
//
// Complexity: Time O(n log n), Space O(n), n = padded size.
func Multiply[T Real](p, q *polynomial.Polynomial[T]) *polynomial.Polynomial[T] {
	a, b := lift(p.Coefficients()), lift(q.Coefficients())
	c := convolve(a, b)

	out := make([]T, len(a)+len(b))
	integral := T(1)/T(2) == 0
	for i := range out {
		if i >= len(c) {
			break
		}
		v := real(c[i])
		if integral {
			v = math.Round(v)
		}
		out[i] = T(v)
	}

	return polynomial.FromCoefficients(out...)
}

// MultiplyComplex is Multiply for complex coefficients; no part is discarded.
// Complexity: Time O(n log n), Space O(n).
func MultiplyComplex[C constraints.Complex](p, q *polynomial.Polynomial[C]) *polynomial.Polynomial[C] {
	a, b := p.Coefficients(), q.Coefficients()
	c := convolve(a, b)

	out := make([]C, len(a)+len(b))
	copy(out, c)

	return polynomial.FromCoefficients(out...)
}

// convolve returns the linear convolution of a and b (len(a)+len(b)-1
// entries) via padded transforms. Empty operands give nil.
func convolve[C constraints.Complex](a, b []C) []C {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	need := len(a) + len(b) - 1
	n := NextPowerOfTwo(need)

	fa := make([]C, n)
	fb := make([]C, n)
	copy(fa, a)
	copy(fb, b)

	transform(fa, false)
	transform(fb, false)
	for i := range fa {
		fa[i] *= fb[i]
	}
	transform(fa, true)

	return fa[:need]
}

// lift converts real coefficients to complex128.
func lift[T Real](src []T) []complex128 {
	out := make([]complex128, len(src))
	for i, v := range src {
		out[i] = complex(float64(v), 0)
	}

	return out
}
