// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling, element-wise maps and the Doolittle LU factorisation.
// All functions validate fail-fast and return wrapped sentinels.
//
// Notes:
//   - Every kernel takes a flat-slice fast path when operands are *Dense and
//     falls back to At/Set with a fixed i→j order otherwise.
//   - Results are always freshly allocated Dense values; inputs are never mutated.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial sum value for accumulations.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opNegate    = "Negate"
	opInvert    = "InvertElements"
	opMap       = "Map"
	opLU        = "LU"
	opLUCompact = "LUCompact"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// policyOf returns the numeric policy carried by m (*Dense) or the default.
func policyOf(m Matrix) bool {
	if d, ok := m.(*Dense); ok {
		return d.validateNaNInf
	}

	return DefaultValidateNaNInf
}

// toDense returns an independent *Dense copy of any Matrix.
// Implementation:
//   - Stage 1: *Dense → Clone (single copy).
//   - Stage 2: otherwise allocate and read every element via At.
//
// Complexity: O(r*c).
func toDense(m Matrix, tag string) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opAdd/opSub).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Behavior highlights:
//   - Outer product u·vᵀ and inner product uᵀ·u (a 1×1 result, see Dense.Scalar)
//     fall out of the same kernel.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, map data[i*cols+j] → res[j*rows+i]; else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := toDense(m, opScale)
	if err != nil {
		return nil, err
	}
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// Negate returns -m.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Negate(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNegate, err)
	}
	res, err := toDense(m, opNegate)
	if err != nil {
		return nil, err
	}
	for idx := range res.data {
		res.data[idx] = -res.data[idx]
	}

	return res, nil
}

// InvertElements returns the element-wise reciprocal 1/m[i,j].
// Behavior highlights:
//   - The result inherits m's numeric policy. A zero entry maps to ±Inf,
//     which is rejected with ErrNaNInf while the finite-only policy is on;
//     build m with WithNoValidateNaNInf to keep the infinities.
//
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(r*c).
func InvertElements(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInvert, err)
	}
	res, err := toDense(m, opInvert)
	if err != nil {
		return nil, err
	}
	res.validateNaNInf = policyOf(m)
	if err = res.Apply(func(_, _ int, v float64) float64 { return 1.0 / v }); err != nil {
		return nil, matrixErrorf(opInvert, err)
	}

	return res, nil
}

// Map returns a new matrix with f(i, j, m[i,j]) at each position; m is not
// mutated. This is the non-destructive counterpart of Dense.Apply.
// Errors: ErrNilMatrix, ErrNaNInf (policy of m).
// Complexity: O(r*c).
func Map(m Matrix, f func(i, j int, v float64) float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	res, err := toDense(m, opMap)
	if err != nil {
		return nil, err
	}
	res.validateNaNInf = policyOf(m)
	if err = res.Apply(f); err != nil {
		return nil, matrixErrorf(opMap, err)
	}

	return res, nil
}

// LU performs Doolittle LU decomposition without pivoting: A = L·U with L
// unit lower-triangular and U upper-triangular.
// Implementation:
//   - Stage 1: validate non-nil and square; materialise A as *Dense.
//   - Stage 2: for each i compute U[i][j≥i], guard the pivot, then L[j>i][i].
//
// Behavior highlights:
//   - Deterministic; no row exchanges, so a zero leading minor fails even
//     when A itself is invertible.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular (zero pivot).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix) (Matrix, Matrix, error) {
	l, u, err := doolittle(m, opLU)
	if err != nil {
		return nil, nil, err
	}

	return l, u, nil
}

// LUCompact returns L and U packed into one n×n matrix: U on and above the
// diagonal, the strict lower part of L below it (L's unit diagonal implied).
// Errors: as LU.
// Complexity: Time O(n³), Space O(n²).
func LUCompact(m Matrix) (Matrix, error) {
	l, u, err := doolittle(m, opLUCompact)
	if err != nil {
		return nil, err
	}
	n := u.r
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			u.data[i*n+j] = l.data[i*n+j]
		}
	}

	return u, nil
}

// doolittle is the shared kernel behind LU and LUCompact.
func doolittle(m Matrix, tag string) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	a, err := toDense(m, tag)
	if err != nil {
		return nil, nil, err
	}

	n := a.r
	L, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}

	var i, j, k, baseI, baseJ int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		baseI = i * n
		// U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[baseI+k] * U.data[k*n+j]
			}
			U.data[baseI+j] = a.data[baseI+j] - sum
		}

		pivot = U.data[baseI+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(tag, fmt.Errorf("pivot %d: %w", i, ErrSingular))
		}

		// L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += L.data[baseJ+k] * U.data[k*n+i]
			}
			L.data[baseJ+i] = (a.data[baseJ+i] - sum) / pivot
		}
	}

	return L, U, nil
}
