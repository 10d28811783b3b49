// SPDX-License-Identifier: MIT

package polynomial

import "errors"

var (
	// ErrNegativeDegree is returned when a constructor receives deg < 0.
	ErrNegativeDegree = errors.New("polynomial: degree must be >= 0")

	// ErrLengthMismatch is returned when an explicit degree disagrees with the
	// length of the supplied coefficient slice.
	ErrLengthMismatch = errors.New("polynomial: coefficient count does not match degree")
)
