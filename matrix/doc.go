// SPDX-License-Identifier: MIT

// Package matrix provides a row-major float64 Dense matrix and the small set
// of kernels the numeric packages in this module build on.
//
// What & Why:
//
//	Lagrange interpolation packages its basis polynomials as the rows of a
//	matrix; the flat row-major buffer (index i*cols + j) is the contract.
//	Around that the package offers element-wise algebra, matrix product,
//	transpose, Doolittle LU without pivoting, and entry-wise norms.
//
// Error policy:
//
//	Public entry points never panic on user input. Shape, index and numeric
//	policy violations return package sentinels (ErrInvalidDimensions,
//	ErrOutOfRange, ErrDimensionMismatch, ErrNaNInf, ErrSingular, ...),
//	wrapped with an operation tag; match them with errors.Is.
//
// Configuration:
//
//	Constructors and EqualApprox accept functional options (WithEpsilon,
//	WithValidateNaNInf, WithNoValidateNaNInf). Defaults live in options.go.
//
// Complexity:
//
//	At/Set O(1); Add/Sub/Scale/Transpose/norms O(r*c); Mul O(r*n*c); LU O(n³).
package matrix
