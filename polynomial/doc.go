// SPDX-License-Identifier: MIT

// Package polynomial implements a dense coefficient-vector polynomial over
// integral, floating-point and complex scalars.
//
// 🚀 What is a Polynomial here?
//
//	Polynomial[T] stores coef[0..deg), where coef[i] multiplies x^i.
//	Degree() is the ALLOCATED coefficient count, not the mathematical degree:
//	arithmetic never trims trailing zeros. Only String/Format hide the
//	highest-index zero coefficients, for display.
//
// ✨ Key features:
//   - Horner evaluation (Eval), coefficient shift (Derivative) and the
//     calculus derivative (Differentiate)
//   - Neg/Add/Sub with max(m,n) sizing; Sub negates the right-hand tail
//   - O(m·n) Mul with accumulated convolution, size m+n
//   - Scale/Div by a scalar, Scale(s, p) for scalar-on-left
//   - Format with functional options (variable name, separator, comparator)
//
// Value semantics:
//
//	Every operation allocates a fresh result and never mutates its operands.
//	Distinct Polynomial values never share storage; Clone is a deep copy.
//	Set is the only in-place mutator.
//
// ⚙️ Usage:
//
//	p := polynomial.FromCoefficients(1.0, -1, 2, 3) // 1 - x + 2x^2 + 3x^3
//	p.Eval(2)                                        // 31
//	q := p.Mul(p.Derivative())
//	fmt.Println(q)
//
// For O(n log n) multiplication see package fft.
package polynomial
