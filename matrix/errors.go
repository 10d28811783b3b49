// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All algorithms return these sentinels (possibly wrapped with an operation
// tag) and tests check them via errors.Is. Panics are reserved for option
// constructors given nonsensical values.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or LU of a
	// non-square matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a zero pivot is met during LU
	// (non-pivoting scheme).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrLengthMismatch indicates that an initial flat buffer does not hold
	// exactly rows*cols values.
	ErrLengthMismatch = errors.New("matrix: data length does not match rows*cols")

	// ErrInvalidNorm indicates a norm exponent p < 1 or non-finite.
	ErrInvalidNorm = errors.New("matrix: norm exponent must be finite and >= 1")
)
