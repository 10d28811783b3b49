// SPDX-License-Identifier: MIT

// Package dft computes the naive Discrete Fourier Transform of a
// complex-coefficient polynomial, and its inverse.
//
// What & Why:
//
//	Forward: y[i] = Σ_j p[j] · e^{+2πi·i·j/n}
//	Inverse: the same sum with the angle negated, then every y[i] /= n.
//
//	The transform works for every size n (no power-of-two constraint), which
//	makes it the reference against which package fft is checked.
//
// Implementation notes:
//   - One routine serves both directions; only the angle sign and the final
//     scaling differ.
//   - Per output index the twiddle is accumulated (wj *= w) instead of
//     calling sin/cos n times.
//
// Complexity: Time O(n²), Space O(n).
package dft
