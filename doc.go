// Package numericalc is a small numerical toolkit: polynomial arithmetic,
// discrete and fast Fourier transforms, FFT-based multiplication, Lagrange
// interpolation and dense matrix algebra, written once over generic scalar
// types.
//
// 🚀 What is inside?
//
//	compare/     epsilon-tolerant equality and ordering per numeric kind
//	polynomial/  coefficient-vector polynomials: eval, derivative, + − ×, format
//	dft/         naive O(n²) transform and inverse, any size
//	fft/         iterative radix-2 transform, inverse and O(n log n) multiply
//	lagrange/    nodal polynomial, synthetic division, basis, interpolation
//	matrix/      row-major Dense, Add/Sub/Mul/Transpose, LU, entry-wise norms
//
// Quick example:
//
//	p := polynomial.FromCoefficients(1.0, -1, 2, 3) // 1 − x + 2x² + 3x³
//	p.Eval(2)                                       // 31
//	q := fft.Multiply(p, p)                         // same as p.Mul(p)
//	basis, _ := lagrange.Polynomials([]float64{1, -2, 3})
//	_ = basis[0].Eval(1)                            // 1
//
// Every operation is a pure function over its inputs returning freshly
// allocated values; nothing is shared between calls.
package numericalc
