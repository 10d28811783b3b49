// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparison (EqualApprox) with a Dense fast path and an
//     At-based fallback sharing one deterministic loop order.

package matrix

import "math"

const opEqualApprox = "EqualApprox"

// EqualApprox reports whether a and b have the same shape and
// |a[i,j] - b[i,j]| ≤ eps for every element, with eps from WithEpsilon
// (DefaultEpsilon otherwise).
// Implementation:
//   - Stage 1: validate presence; a shape mismatch is a plain false.
//   - Stage 2: flat scan on *Dense pairs, i→j At scan otherwise; early exit.
//
// Behavior highlights:
//   - NaN never compares close, not even to NaN.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func EqualApprox(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqualApprox, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqualApprox, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}
	eps := gatherOptions(opts...).eps

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !(math.Abs(da.data[idx]-db.data[idx]) <= eps) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opEqualApprox, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opEqualApprox, err)
			}
			if !(math.Abs(av-bv) <= eps) {
				return false, nil
			}
		}
	}

	return true, nil
}
