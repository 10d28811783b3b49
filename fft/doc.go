// SPDX-License-Identifier: MIT

// Package fft implements the iterative radix-2 Fast Fourier Transform over
// complex-coefficient polynomials and FFT-based polynomial multiplication.
//
// 🚀 Pipeline
//
//  1. Bit-reversal permutation: y[i] ↔ y[rev(i)], swapped once when i < rev(i).
//  2. Butterfly stages for block size n = 2, 4, ..., deg with twiddle
//     w = e^{±2πi/n}:  s = y[i+j], l = y[i+j+n/2]·wj,
//     y[i+j] = s + l, y[i+j+n/2] = s − l, wj *= w.
//  3. Inverse only: divide every coefficient by deg.
//
// Forward and Inverse share that single routine; a boolean selects the sign
// of the angle and the final scaling. Both compute the same function as the
// naive dft package for power-of-two sizes.
//
// ✨ Multiplication
//
//	Multiply(p, q) zero-pads both operands to the smallest power of two
//	≥ deg_p + deg_q − 1, transforms, multiplies pointwise, inverts and keeps
//	the real part (rounded for integral coefficients). The result has the same
//	size as the direct product p.Mul(q) and agrees with it coefficient-wise
//	within rounding.
//
// Preconditions:
//
//	Forward/Inverse require Degree() ∈ {1, 2, 4, 8, ...}. Any other size,
//	including 0, returns ErrNotPowerOfTwo; inputs are never padded or
//	truncated silently.
//
// Complexity: Time O(n log n), Space O(n).
package fft
