// SPDX-License-Identifier: MIT

package fft

import (
	"errors"
	"fmt"
)

// ErrNotPowerOfTwo is returned when a transform input size is not a positive
// power of two.
var ErrNotPowerOfTwo = errors.New("fft: size must be a positive power of two")

// Operation tags used in error wrapping.
const (
	opForward = "Forward"
	opInverse = "Inverse"
)

// fftErrorf wraps err with the operation tag and the offending size.
func fftErrorf(op string, size int, err error) error {
	return fmt.Errorf("%s(size=%d): %w", op, size, err)
}
