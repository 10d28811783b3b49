// SPDX-License-Identifier: MIT

package compare

// Complex128 compares complex128 values componentwise with a float64 tolerance.
//
// Eq requires both parts to be Eq. Neq requires both parts to be Neq, so two
// values that differ only in their imaginary part are neither Eq nor Neq.
type Complex128 struct {
	part Floating[float64]
}

// NewComplex128 uses the float64 machine epsilon on each part.
func NewComplex128() Complex128 {
	return Complex128{part: NewFloating[float64]()}
}

// NewComplex128Tolerance uses eps on each part. Panics on negative or non-finite eps.
func NewComplex128Tolerance(eps float64) Complex128 {
	return Complex128{part: NewFloatingTolerance(eps)}
}

// Eq reports real and imaginary parts are both Eq.
func (c Complex128) Eq(a, b complex128) bool {
	return c.part.Eq(real(a), real(b)) && c.part.Eq(imag(a), imag(b))
}

// Neq reports real and imaginary parts are both Neq.
func (c Complex128) Neq(a, b complex128) bool {
	return c.part.Neq(real(a), real(b)) && c.part.Neq(imag(a), imag(b))
}

// Complex64 is the single-precision counterpart of Complex128.
type Complex64 struct {
	part Floating[float32]
}

// NewComplex64 uses the float32 machine epsilon on each part.
func NewComplex64() Complex64 {
	return Complex64{part: NewFloating[float32]()}
}

// NewComplex64Tolerance uses eps on each part. Panics on negative or non-finite eps.
func NewComplex64Tolerance(eps float32) Complex64 {
	return Complex64{part: NewFloatingTolerance(eps)}
}

// Eq reports real and imaginary parts are both Eq.
func (c Complex64) Eq(a, b complex64) bool {
	return c.part.Eq(real(a), real(b)) && c.part.Eq(imag(a), imag(b))
}

// Neq reports real and imaginary parts are both Neq.
func (c Complex64) Neq(a, b complex64) bool {
	return c.part.Neq(real(a), real(b)) && c.part.Neq(imag(a), imag(b))
}
