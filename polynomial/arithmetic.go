// SPDX-License-Identifier: MIT

package polynomial

// Neg returns -p.
// Complexity: O(deg).
func (p *Polynomial[T]) Neg() *Polynomial[T] {
	r := newZero[T](len(p.coef))
	for i, c := range p.coef {
		r.coef[i] = -c
	}

	return r
}

// Add returns p + q. The result has max(deg_p, deg_q) coefficients; the
// missing tail of the shorter operand contributes zero. No trimming.
// Complexity: O(max(m, n)).
func (p *Polynomial[T]) Add(q *Polynomial[T]) *Polynomial[T] {
	r := newZero[T](max(len(p.coef), len(q.coef)))
	for i := range r.coef {
		switch {
		case i < len(p.coef) && i < len(q.coef):
			r.coef[i] = p.coef[i] + q.coef[i]
		case i < len(p.coef):
			r.coef[i] = p.coef[i]
		default:
			r.coef[i] = q.coef[i]
		}
	}

	return r
}

// Sub returns p - q with max(deg_p, deg_q) coefficients. Where only q has a
// coefficient the result holds -q[i]; where only p has one it is copied.
// Complexity: O(max(m, n)).
func (p *Polynomial[T]) Sub(q *Polynomial[T]) *Polynomial[T] {
	r := newZero[T](max(len(p.coef), len(q.coef)))
	for i := range r.coef {
		switch {
		case i < len(p.coef) && i < len(q.coef):
			r.coef[i] = p.coef[i] - q.coef[i]
		case i < len(p.coef):
			r.coef[i] = p.coef[i]
		default:
			r.coef[i] = -q.coef[i]
		}
	}

	return r
}

// Mul returns the product p·q by direct convolution.
// Implementation:
//   - Stage 1: allocate deg_p + deg_q zero coefficients.
//   - Stage 2: for every (i, j) accumulate r[i+j] += p[i]*q[j].
//
// Behavior highlights:
//   - Overlapping index contributions accumulate; nothing is overwritten.
//   - The result is one slot longer than the mathematical product needs; the
//     last coefficient stays zero. No trimming.
//
// Complexity: Time O(m·n), Space O(m+n). See fft.Multiply for O(n log n).
func (p *Polynomial[T]) Mul(q *Polynomial[T]) *Polynomial[T] {
	r := newZero[T](len(p.coef) + len(q.coef))
	for i, a := range p.coef {
		for j, b := range q.coef {
			r.coef[i+j] += a * b
		}
	}

	return r
}

// Scale returns s·p.
// Complexity: O(deg).
func (p *Polynomial[T]) Scale(s T) *Polynomial[T] {
	r := newZero[T](len(p.coef))
	for i, c := range p.coef {
		r.coef[i] = s * c
	}

	return r
}

// Div returns p/s coefficient-wise. Integral T truncates; s == 0 panics for
// integral T and yields ±Inf/NaN for floating T.
// Complexity: O(deg).
func (p *Polynomial[T]) Div(s T) *Polynomial[T] {
	r := newZero[T](len(p.coef))
	for i, c := range p.coef {
		r.coef[i] = c / s
	}

	return r
}

// Scale returns s·p; the scalar-on-left form of (*Polynomial).Scale.
func Scale[T Scalar](s T, p *Polynomial[T]) *Polynomial[T] {
	return p.Scale(s)
}
