// SPDX-License-Identifier: MIT

package lagrange

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid is returned when the grid holds no points.
	ErrEmptyGrid = errors.New("lagrange: grid must not be empty")

	// ErrLengthMismatch is returned when grid and sample values differ in length.
	ErrLengthMismatch = errors.New("lagrange: grid and values differ in length")
)

// Operation tags used in error wrapping.
const (
	opNodal       = "Nodal"
	opPolynomials = "Polynomials"
	opMatrix      = "PolynomialMatrix"
	opInterpolate = "Interpolate"
)

func lagrangeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
