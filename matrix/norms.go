// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Entry-wise matrix norms. Each norm treats the matrix as a flat vector
//     of r*c values; reductions are delegated to montanaflynn/stats.

package matrix

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

const (
	opMaxNorm   = "MaxNorm"
	opPNormPow  = "PNormPow"
	opPNorm     = "PNorm"
	opEuclidean = "EuclideanNorm"
)

// euclideanP is the exponent of the Euclidean (Frobenius) norm.
const euclideanP = 2.0

// MaxNorm returns max_{i,j} |a[i,j]|.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func MaxNorm(m Matrix) (float64, error) {
	abs, err := mapEntries(m, opMaxNorm, math.Abs)
	if err != nil {
		return 0, err
	}
	v, err := stats.Max(abs)
	if err != nil {
		return 0, matrixErrorf(opMaxNorm, err)
	}

	return v, nil
}

// PNormPow returns Σ_{i,j} |a[i,j]|^p, the p-th power of the p-norm.
// Implementation:
//   - Stage 1: validate p is finite and ≥ 1; else ErrInvalidNorm.
//   - Stage 2: map entries to |a|^p (exact products for p = 1, 2).
//   - Stage 3: stats.Sum over the mapped values.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidNorm.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func PNormPow(m Matrix, p float64) (float64, error) {
	return pNormPow(m, p, opPNormPow)
}

// PNorm returns (Σ |a[i,j]|^p)^{1/p}.
// Errors: ErrNilMatrix, ErrInvalidNorm.
// Complexity: O(r*c).
func PNorm(m Matrix, p float64) (float64, error) {
	s, err := pNormPow(m, p, opPNorm)
	if err != nil {
		return 0, err
	}

	return math.Pow(s, 1/p), nil
}

// EuclideanNormSqr returns Σ a[i,j]², equal to uᵀu for a column vector u.
// Complexity: O(r*c).
func EuclideanNormSqr(m Matrix) (float64, error) {
	return pNormPow(m, euclideanP, opEuclidean)
}

// EuclideanNorm returns sqrt(Σ a[i,j]²).
// Complexity: O(r*c).
func EuclideanNorm(m Matrix) (float64, error) {
	s, err := pNormPow(m, euclideanP, opEuclidean)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(s), nil
}

func pNormPow(m Matrix, p float64, tag string) (float64, error) {
	if isNonFinite(p) || p < 1 {
		return 0, matrixErrorf(tag, fmt.Errorf("p=%g: %w", p, ErrInvalidNorm))
	}
	var f func(float64) float64
	switch p {
	case 1:
		f = math.Abs
	case 2:
		f = func(v float64) float64 { return v * v }
	default:
		f = func(v float64) float64 { return math.Pow(math.Abs(v), p) }
	}
	powers, err := mapEntries(m, tag, f)
	if err != nil {
		return 0, err
	}
	s, err := stats.Sum(powers)
	if err != nil {
		return 0, matrixErrorf(tag, err)
	}

	return s, nil
}

// mapEntries returns f applied to every entry in row-major order.
func mapEntries(m Matrix, tag string, f func(float64) float64) (stats.Float64Data, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := make(stats.Float64Data, 0, m.Rows()*m.Cols())
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			out = append(out, f(v))
		}

		return out, nil
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(tag, err)
			}
			out = append(out, f(v))
		}
	}

	return out, nil
}
