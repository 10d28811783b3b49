// SPDX-License-Identifier: MIT

package fft

import (
	"math"
	"math/bits"

	"github.com/katalvlaran/numericalc/polynomial"
	"golang.org/x/exp/constraints"
)

// IsPowerOfTwo reports whether n is 1, 2, 4, 8, ...
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// Forward returns the FFT of p (angle sign +).
// Implementation:
//   - Stage 1: validate Degree() is a power of two; else ErrNotPowerOfTwo.
//   - Stage 2: run the shared radix-2 kernel on a copy of the coefficients.
//
// Errors:
//   - ErrNotPowerOfTwo (wrapped with the size).
//
// Complexity: Time O(n log n), Space O(n).
func Forward[C constraints.Complex](p *polynomial.Polynomial[C]) (*polynomial.Polynomial[C], error) {
	return run(p, false, opForward)
}

// Inverse returns the inverse FFT of p (angle sign -, scaled by 1/n).
// Inverse(Forward(p)) reproduces p within rounding.
//
// Errors:
//   - ErrNotPowerOfTwo (wrapped with the size).
//
// Complexity: Time O(n log n), Space O(n).
func Inverse[C constraints.Complex](p *polynomial.Polynomial[C]) (*polynomial.Polynomial[C], error) {
	return run(p, true, opInverse)
}

// run validates p and applies the kernel in the requested direction.
func run[C constraints.Complex](p *polynomial.Polynomial[C], inverse bool, op string) (*polynomial.Polynomial[C], error) {
	n := p.Degree()
	if !IsPowerOfTwo(n) {
		return nil, fftErrorf(op, n, ErrNotPowerOfTwo)
	}
	y := p.Coefficients() // kernel works in place on the copy
	transform(y, inverse)

	return polynomial.FromCoefficients(y...), nil
}

// transform is the in-place radix-2 kernel. len(y) must be a power of two.
// Implementation:
//   - Stage 1: bit-reversal permutation over log2(n) bits.
//   - Stage 2: butterfly stages with accumulated twiddles.
//   - Stage 3: divide by n when inverse.
func transform[C constraints.Complex](y []C, inverse bool) {
	n := len(y)
	bitReverse(y)

	sign := 1.0
	if inverse {
		sign = -1.0
	}

	for size := 2; size <= n; size <<= 1 {
		angle := sign * 2 * math.Pi / float64(size)
		w := C(complex(math.Cos(angle), math.Sin(angle)))
		half := size >> 1
		for i := 0; i < n; i += size {
			wj := C(1)
			for j := 0; j < half; j++ {
				s := y[i+j]
				l := y[i+j+half] * wj
				y[i+j] = s + l
				y[i+j+half] = s - l
				wj *= w
			}
		}
	}

	if inverse {
		scale := C(complex(float64(n), 0))
		for i := range y {
			y[i] /= scale
		}
	}
}

// bitReverse swaps y[i] with y[rev(i)], where rev reverses the low log2(n)
// bits of i. Each pair is swapped once (only when i < rev(i)).
func bitReverse[C constraints.Complex](y []C) {
	n := len(y)
	if n < 2 {
		return
	}
	shift := bits.UintSize - bits.TrailingZeros(uint(n))
	for i := 1; i < n; i++ {
		j := int(bits.Reverse(uint(i)) >> shift)
		if i < j {
			y[i], y[j] = y[j], y[i]
		}
	}
}
