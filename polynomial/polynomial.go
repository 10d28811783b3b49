// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"

	"github.com/katalvlaran/numericalc/compare"
	"golang.org/x/exp/constraints"
)

// Scalar is the set of coefficient types a Polynomial accepts. Every member
// supports +, -, *, / and unary minus, and its zero value is the additive identity.
type Scalar interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Polynomial is a dense polynomial with coefficients coef[i] of x^i.
// Invariant: len(coef) == Degree().
type Polynomial[T Scalar] struct {
	coef []T // owned storage, never shared with another Polynomial
}

// New returns a zero polynomial with deg coefficients.
// Implementation:
//   - Stage 1: reject deg < 0 with ErrNegativeDegree.
//   - Stage 2: allocate a zero-filled coefficient slice.
//
// Complexity: Time O(deg), Space O(deg).
func New[T Scalar](deg int) (*Polynomial[T], error) {
	if deg < 0 {
		return nil, fmt.Errorf("New(%d): %w", deg, ErrNegativeDegree)
	}

	return newZero[T](deg), nil
}

// FromCoefficients builds a polynomial whose degree is len(coefs).
// The slice is copied; later changes to coefs do not leak in.
// Complexity: O(len(coefs)).
func FromCoefficients[T Scalar](coefs ...T) *Polynomial[T] {
	p := newZero[T](len(coefs))
	copy(p.coef, coefs)

	return p
}

// NewWithCoefficients builds a polynomial of explicit degree deg from coefs.
// Implementation:
//   - Stage 1: reject deg < 0 (ErrNegativeDegree) and len(coefs) != deg (ErrLengthMismatch).
//   - Stage 2: copy coefs into owned storage.
//
// Complexity: O(deg).
func NewWithCoefficients[T Scalar](deg int, coefs []T) (*Polynomial[T], error) {
	if deg < 0 {
		return nil, fmt.Errorf("NewWithCoefficients(%d): %w", deg, ErrNegativeDegree)
	}
	if len(coefs) != deg {
		return nil, fmt.Errorf("NewWithCoefficients(%d, len=%d): %w", deg, len(coefs), ErrLengthMismatch)
	}

	return FromCoefficients(coefs...), nil
}

// newZero allocates deg zero coefficients; deg must already be validated.
func newZero[T Scalar](deg int) *Polynomial[T] {
	return &Polynomial[T]{coef: make([]T, deg)}
}

// Degree returns the allocated coefficient count.
func (p *Polynomial[T]) Degree() int { return len(p.coef) }

// At returns coefficient i. Panics when i is outside [0, Degree()).
func (p *Polynomial[T]) At(i int) T { return p.coef[i] }

// Set assigns coefficient i. Panics when i is outside [0, Degree()).
func (p *Polynomial[T]) Set(i int, v T) { p.coef[i] = v }

// Coefficients returns a copy of the coefficient vector, lowest power first.
func (p *Polynomial[T]) Coefficients() []T {
	out := make([]T, len(p.coef))
	copy(out, p.coef)

	return out
}

// Clone returns a deep copy of p.
func (p *Polynomial[T]) Clone() *Polynomial[T] {
	return FromCoefficients(p.coef...)
}

// Equal reports whether p and q have the same Degree and every coefficient
// pair is Eq under c. A nil c selects compare.Default[T]().
// Complexity: O(Degree()).
func (p *Polynomial[T]) Equal(q *Polynomial[T], c compare.Comparator[T]) bool {
	if len(p.coef) != len(q.coef) {
		return false
	}
	if c == nil {
		c = compare.Default[T]()
	}
	for i := range p.coef {
		if !c.Eq(p.coef[i], q.coef[i]) {
			return false
		}
	}

	return true
}
