// SPDX-License-Identifier: MIT

package polynomial

// Eval evaluates p at x with Horner's scheme, walking coefficients from the
// highest index down: b = b*x + coef[i].
// A zero-size polynomial evaluates to the zero value of T.
// Complexity: Time O(deg), Space O(1).
func (p *Polynomial[T]) Eval(x T) T {
	var b T
	for i := len(p.coef) - 1; i >= 0; i-- {
		b = b*x + p.coef[i]
	}

	return b
}

// Derivative returns the coefficient shift of p: a polynomial of size deg-1
// with result[i] = coef[i+1]. No (i+1) scaling is applied; this is the setup
// step of synthetic division by (x - x0). Use Differentiate for d/dx.
// A zero-size polynomial yields a zero-size result.
// Complexity: O(deg).
func (p *Polynomial[T]) Derivative() *Polynomial[T] {
	if len(p.coef) == 0 {
		return newZero[T](0)
	}

	return FromCoefficients(p.coef[1:]...)
}

// Differentiate returns the calculus derivative of p, of size deg-1 with
// result[i] = (i+1)·coef[i+1].
// Complexity: O(deg).
func (p *Polynomial[T]) Differentiate() *Polynomial[T] {
	if len(p.coef) == 0 {
		return newZero[T](0)
	}
	d := newZero[T](len(p.coef) - 1)
	var k T // i+1, built by addition
	for i := range d.coef {
		k++
		d.coef[i] = k * p.coef[i+1]
	}

	return d
}
