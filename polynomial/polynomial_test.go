// SPDX-License-Identifier: MIT

package polynomial_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/numericalc/compare"
	"github.com/katalvlaran/numericalc/polynomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// approx is the float tolerance used for coefficient comparisons in this file.
var approx = cmpopts.EquateApprox(0, 1e-12)

// TestNew_ZeroFilled checks size, zero fill and the negative-degree guard.
func TestNew_ZeroFilled(t *testing.T) {
	p, err := polynomial.New[float64](4)
	require.NoError(t, err)
	require.Equal(t, 4, p.Degree())
	require.Equal(t, []float64{0, 0, 0, 0}, p.Coefficients())

	_, err = polynomial.New[int](-1)
	require.ErrorIs(t, err, polynomial.ErrNegativeDegree)

	empty, err := polynomial.New[int](0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Degree())
}

// TestNewWithCoefficients_LengthChecked rejects slices that disagree with deg.
func TestNewWithCoefficients_LengthChecked(t *testing.T) {
	p, err := polynomial.NewWithCoefficients(3, []int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, p.Coefficients())

	_, err = polynomial.NewWithCoefficients(4, []int{1, 2, 3})
	require.ErrorIs(t, err, polynomial.ErrLengthMismatch)

	_, err = polynomial.NewWithCoefficients(-2, []int{})
	require.ErrorIs(t, err, polynomial.ErrNegativeDegree)
}

// TestOwnership verifies that constructors, Coefficients and Clone never alias.
func TestOwnership(t *testing.T) {
	src := []float64{1, 2, 3}
	p := polynomial.FromCoefficients(src...)
	src[0] = 100
	require.Equal(t, 1.0, p.At(0), "constructor must copy")

	out := p.Coefficients()
	out[1] = 100
	require.Equal(t, 2.0, p.At(1), "Coefficients must copy")

	c := p.Clone()
	c.Set(2, 100)
	require.Equal(t, 3.0, p.At(2), "Clone must be deep")
}

// TestAt_OutOfRangePanics documents fail-fast indexing.
func TestAt_OutOfRangePanics(t *testing.T) {
	p := polynomial.FromCoefficients(1, 2)
	assert.Panics(t, func() { p.At(2) })
	assert.Panics(t, func() { p.Set(-1, 0) })
}

// TestEval covers Horner evaluation including the zero-size case.
func TestEval(t *testing.T) {
	p := polynomial.FromCoefficients(1.0, -1, 2, 3) // 1 - x + 2x^2 + 3x^3
	require.Equal(t, 31.0, p.Eval(2))
	require.Equal(t, 1.0, p.Eval(0))

	pi := polynomial.FromCoefficients(0, -1, 2, 3)
	require.Equal(t, 30, pi.Eval(2))

	empty, _ := polynomial.New[float64](0)
	require.Equal(t, 0.0, empty.Eval(5))

	pc := polynomial.FromCoefficients[complex128](1, 0, 1) // 1 + x^2
	require.Equal(t, complex128(0), pc.Eval(1i))
}

// TestDerivative_Shift checks size n-1 and derivative[i] == p[i+1].
func TestDerivative_Shift(t *testing.T) {
	p := polynomial.FromCoefficients(4.0, 3, 2, 1)
	d := p.Derivative()
	require.Equal(t, p.Degree()-1, d.Degree())
	for i := 0; i < d.Degree(); i++ {
		require.Equal(t, p.At(i+1), d.At(i))
	}

	one := polynomial.FromCoefficients(7)
	require.Equal(t, 0, one.Derivative().Degree())

	empty, _ := polynomial.New[int](0)
	require.Equal(t, 0, empty.Derivative().Degree())
}

// TestDifferentiate checks the calculus derivative.
func TestDifferentiate(t *testing.T) {
	p := polynomial.FromCoefficients(1.0, -1, 2, 3) // 1 - x + 2x^2 + 3x^3
	require.Equal(t, []float64{-1, 4, 9}, p.Differentiate().Coefficients())

	pc := polynomial.FromCoefficients[complex128](0, 1i, 1)
	require.Equal(t, []complex128{1i, 2}, pc.Differentiate().Coefficients())
}

// TestNegAddSub covers size rules and the negated right-hand tail of Sub.
func TestNegAddSub(t *testing.T) {
	p := polynomial.FromCoefficients(1, 2)
	q := polynomial.FromCoefficients(10, 20, 30, 40)

	require.Equal(t, []int{-1, -2}, p.Neg().Coefficients())
	require.Equal(t, []int{11, 22, 30, 40}, p.Add(q).Coefficients())
	require.Equal(t, []int{11, 22, 30, 40}, q.Add(p).Coefficients())
	require.Equal(t, []int{-9, -18, -30, -40}, p.Sub(q).Coefficients())
	require.Equal(t, []int{9, 18, 30, 40}, q.Sub(p).Coefficients())

	// operands untouched
	require.Equal(t, []int{1, 2}, p.Coefficients())
	require.Equal(t, []int{10, 20, 30, 40}, q.Coefficients())
}

// TestMul_Accumulates checks that overlapping (i, j) contributions add up.
func TestMul_Accumulates(t *testing.T) {
	p := polynomial.FromCoefficients(1, 1) // 1 + x
	sq := p.Mul(p)                         // 1 + 2x + x^2, allocated size 4
	require.Equal(t, []int{1, 2, 1, 0}, sq.Coefficients())

	a := polynomial.FromCoefficients(1.0, -1, 2, 3)
	b := polynomial.FromCoefficients(0.5, 4)
	want := []float64{0.5, 3.5, -3, 9.5, 12, 0}
	if diff := cmp.Diff(want, a.Mul(b).Coefficients(), approx); diff != "" {
		t.Fatalf("Mul mismatch (-want +got):\n%s", diff)
	}

	empty, _ := polynomial.New[int](0)
	require.Equal(t, []int{0, 0}, empty.Mul(p).Coefficients())
}

// TestMul_EvalHomomorphism checks (p·q)(x) == p(x)·q(x) at a few points.
func TestMul_EvalHomomorphism(t *testing.T) {
	p := polynomial.FromCoefficients(2.0, 0, -1, 0.5)
	q := polynomial.FromCoefficients(-3.0, 1, 1)
	c := compare.NewFloatingTolerance(1e-9)
	for _, x := range []float64{-2, -0.5, 0, 1, 3} {
		require.True(t, c.Eq(p.Eval(x)*q.Eval(x), p.Mul(q).Eval(x)), "x=%v", x)
	}
}

// TestScaleDiv covers scalar multiply (both sides) and divide.
func TestScaleDiv(t *testing.T) {
	p := polynomial.FromCoefficients(1.0, -2, 4)
	require.Equal(t, []float64{3, -6, 12}, p.Scale(3).Coefficients())
	require.Equal(t, p.Scale(3).Coefficients(), polynomial.Scale(3, p).Coefficients())
	require.Equal(t, []float64{0.5, -1, 2}, p.Div(2).Coefficients())

	pi := polynomial.FromCoefficients(7, -7)
	require.Equal(t, []int{3, -3}, pi.Div(2).Coefficients(), "integral division truncates")
}

// TestEqual uses the default and an explicit comparator.
func TestEqual(t *testing.T) {
	a, b := 0.1, 0.2
	p := polynomial.FromCoefficients(a+b, 1)
	q := polynomial.FromCoefficients(0.3, 1)

	require.True(t, p.Equal(q, nil), "0.1+0.2 and 0.3 differ by less than machine epsilon")

	r := polynomial.FromCoefficients(0.3+1e-10, 1)
	require.False(t, p.Equal(r, nil))
	require.True(t, p.Equal(r, compare.NewFloatingTolerance(1e-9)))
	require.False(t, p.Equal(polynomial.FromCoefficients(0.3), nil), "different degree")
}
