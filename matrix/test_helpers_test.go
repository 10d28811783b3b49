// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small deterministic fixtures and a wrapper that forces the
//     At/Set fallback path in kernels.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numericalc/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// so kernels under test take the generic fallback path.
type hide struct{ matrix.Matrix }

// mustDense builds an r×c *Dense from row-major values or fails the test.
func mustDense(t testing.TB, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	if len(vals) == 0 {
		vals = make([]float64, r*c)
	}
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// randDense returns an n×n matrix with entries in [-1, 1) and a dominant
// diagonal, so LU without pivoting never meets a zero pivot.
func randDense(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n*n)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}
	for i := 0; i < n; i++ {
		vals[i*n+i] += float64(n)
	}

	return mustDense(t, n, n, vals...)
}

// requireClose asserts EqualApprox(a, b) under eps.
func requireClose(t *testing.T, want, got matrix.Matrix, eps float64) {
	t.Helper()
	ok, err := matrix.EqualApprox(want, got, matrix.WithEpsilon(eps))
	require.NoError(t, err)
	require.True(t, ok, "want:\n%v\ngot:\n%v", want, got)
}
