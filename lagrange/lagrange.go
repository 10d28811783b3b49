// SPDX-License-Identifier: MIT

package lagrange

import (
	"github.com/katalvlaran/numericalc/matrix"
	"github.com/katalvlaran/numericalc/polynomial"
	"golang.org/x/exp/constraints"
)

// Field is the set of coefficient types the basis is built over; division
// must be exact-ish, so integers are excluded.
type Field interface {
	constraints.Float | constraints.Complex
}

// Nodal returns w(x) = (x − grid[0])(x − grid[1])…(x − grid[n−1]) with n+1
// coefficients (the leading one is 1).
// Implementation:
//   - Stage 1: seed w = x − grid[0].
//   - Stage 2: for each further point g = grid[i], set w[i+1] = 1 and sweep
//     downwards: w[k] = w[k−1] − g·w[k] for k = i..1, then w[0] = −g·w[0].
//
// Errors:
//   - ErrEmptyGrid.
//
// Complexity: Time O(n²), Space O(n).
func Nodal[T Field](grid []T) (*polynomial.Polynomial[T], error) {
	n := len(grid)
	if n == 0 {
		return nil, lagrangeErrorf(opNodal, ErrEmptyGrid)
	}

	w := make([]T, n+1)
	w[0] = -grid[0]
	w[1] = 1
	for i := 1; i < n; i++ {
		g := grid[i]
		w[i+1] = 1
		for k := i; k >= 1; k-- {
			w[k] = w[k-1] - g*w[k]
		}
		w[0] *= -g
	}

	return polynomial.FromCoefficients(w...), nil
}

// LongDivision returns the quotient of p(x) / (x − x0) by synthetic
// division; the remainder is discarded. The result has Degree() − 1
// coefficients (0 for a constant or empty p).
// Implementation:
//   - Stage 1: q = p.Derivative(), the coefficient shift q[k] = p[k+1].
//   - Stage 2: for k = 1..len(q)−1: q[len−1−k] += q[len−k]·x0, so every
//     entry accumulates the already-final entry above it.
//
// Complexity: Time O(n), Space O(n).
func LongDivision[T polynomial.Scalar](p *polynomial.Polynomial[T], x0 T) *polynomial.Polynomial[T] {
	q := p.Derivative()
	d := q.Degree()
	for k := 1; k < d; k++ {
		q.Set(d-1-k, q.At(d-1-k)+q.At(d-k)*x0)
	}

	return q
}

// Polynomials returns the basis l_0..l_{n−1} of grid, each with n
// coefficients.
// Implementation:
//   - Stage 1: w = Nodal(grid); dw = w.Differentiate() (calculus derivative,
//     computed once).
//   - Stage 2: l_i = LongDivision(w, grid[i]) / dw(grid[i]).
//
// Behavior highlights:
//   - n == 1 yields the single constant polynomial 1.
//   - Duplicate points produce NaN/±Inf coefficients (unchecked).
//
// Errors:
//   - ErrEmptyGrid.
//
// Complexity: Time O(n²), Space O(n²).
func Polynomials[T Field](grid []T) ([]*polynomial.Polynomial[T], error) {
	w, err := Nodal(grid)
	if err != nil {
		return nil, lagrangeErrorf(opPolynomials, err)
	}
	dw := w.Differentiate()

	basis := make([]*polynomial.Polynomial[T], len(grid))
	for i, x := range grid {
		basis[i] = LongDivision(w, x).Div(dw.Eval(x))
	}

	return basis, nil
}

// PolynomialMatrix returns the basis of grid as an n×n matrix whose row i
// holds the coefficients of l_i (column k is the x^k coefficient).
// Rows are written straight into the flat row-major buffer handed to
// matrix.NewDenseFrom. The numerics match Polynomials: a degenerate grid
// (duplicate points) yields NaN/Inf entries, and the returned matrix
// accepts non-finite values.
//
// Errors:
//   - ErrEmptyGrid.
//
// Complexity: Time O(n²), Space O(n²).
func PolynomialMatrix(grid []float64) (*matrix.Dense, error) {
	basis, err := Polynomials(grid)
	if err != nil {
		return nil, lagrangeErrorf(opMatrix, err)
	}

	n := len(grid)
	flat := make([]float64, 0, n*n)
	for _, l := range basis {
		flat = append(flat, l.Coefficients()...)
	}
	m, err := matrix.NewDenseFrom(n, n, flat, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, lagrangeErrorf(opMatrix, err)
	}

	return m, nil
}

// Interpolate returns the interpolating polynomial Σ values[i]·l_i, which
// passes through (grid[i], values[i]) and has len(grid) coefficients.
//
// Errors:
//   - ErrEmptyGrid, ErrLengthMismatch.
//
// Complexity: Time O(n²), Space O(n²).
func Interpolate[T Field](grid, values []T) (*polynomial.Polynomial[T], error) {
	if len(grid) != len(values) {
		return nil, lagrangeErrorf(opInterpolate, ErrLengthMismatch)
	}
	basis, err := Polynomials(grid)
	if err != nil {
		return nil, lagrangeErrorf(opInterpolate, err)
	}

	out, err := polynomial.New[T](len(grid))
	if err != nil {
		return nil, lagrangeErrorf(opInterpolate, err)
	}
	for i, l := range basis {
		out = out.Add(l.Scale(values[i]))
	}

	return out, nil
}
