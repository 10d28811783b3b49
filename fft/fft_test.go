// SPDX-License-Identifier: MIT

package fft_test

import (
	"testing"

	"github.com/katalvlaran/numericalc/compare"
	"github.com/katalvlaran/numericalc/dft"
	"github.com/katalvlaran/numericalc/fft"
	"github.com/katalvlaran/numericalc/polynomial"
	dspfft "github.com/mjibson/go-dsp/fft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tol is the componentwise tolerance for transform results.
var tol = compare.NewComplex128Tolerance(1e-9)

// samples returns a deterministic non-trivial complex sequence of length n.
func samples(n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(1.5*float64(i%4)-float64(i)/3, float64((i*7)%5)-2)
	}

	return out
}

// requireClose asserts coefficient-wise equality under tol.
func requireClose(t *testing.T, want, got []complex128) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.True(t, tol.Eq(want[i], got[i]), "index %d: want %v, got %v", i, want[i], got[i])
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for n, want := range map[int]bool{-4: false, 0: false, 1: true, 2: true, 3: false, 6: false, 64: true, 1 << 20: true} {
		assert.Equal(t, want, fft.IsPowerOfTwo(n), "n=%d", n)
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	for n, want := range map[int]int{-1: 1, 0: 1, 1: 1, 2: 2, 3: 4, 5: 8, 8: 8, 9: 16, 1000: 1024} {
		assert.Equal(t, want, fft.NextPowerOfTwo(n), "n=%d", n)
	}
}

// TestForward_RejectsNonPowerOfTwo covers the precondition, including size 0.
func TestForward_RejectsNonPowerOfTwo(t *testing.T) {
	for _, n := range []int{0, 3, 5, 6, 12} {
		p := polynomial.FromCoefficients(samples(n)...)

		y, err := fft.Forward(p)
		require.ErrorIs(t, err, fft.ErrNotPowerOfTwo, "n=%d", n)
		require.Nil(t, y)

		y, err = fft.Inverse(p)
		require.ErrorIs(t, err, fft.ErrNotPowerOfTwo, "n=%d", n)
		require.Nil(t, y)
	}
}

// TestMatchesDFT checks that the fast transform computes the same function
// as the naive one in both directions.
func TestMatchesDFT(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16, 64} {
		p := polynomial.FromCoefficients(samples(n)...)

		y, err := fft.Forward(p)
		require.NoError(t, err)
		requireClose(t, dft.Forward(p).Coefficients(), y.Coefficients())

		z, err := fft.Inverse(p)
		require.NoError(t, err)
		requireClose(t, dft.Inverse(p).Coefficients(), z.Coefficients())
	}
}

// TestAgainstGoDSP compares with go-dsp, whose forward sign is the opposite
// one: Forward = n·IFFT, Inverse = FFT/n.
func TestAgainstGoDSP(t *testing.T) {
	for _, n := range []int{2, 8, 32} {
		x := samples(n)
		p := polynomial.FromCoefficients(x...)
		scale := complex(float64(n), 0)

		ref := dspfft.IFFT(x)
		for i := range ref {
			ref[i] *= scale
		}
		y, err := fft.Forward(p)
		require.NoError(t, err)
		requireClose(t, ref, y.Coefficients())

		inv := dspfft.FFT(x)
		for i := range inv {
			inv[i] /= scale
		}
		z, err := fft.Inverse(p)
		require.NoError(t, err)
		requireClose(t, inv, z.Coefficients())
	}
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 4, 128} {
		p := polynomial.FromCoefficients(samples(n)...)
		y, err := fft.Forward(p)
		require.NoError(t, err)
		back, err := fft.Inverse(y)
		require.NoError(t, err)
		requireClose(t, p.Coefficients(), back.Coefficients())
	}
}

// TestForward_DoesNotMutate keeps the operand untouched by the in-place kernel.
func TestForward_DoesNotMutate(t *testing.T) {
	x := samples(8)
	p := polynomial.FromCoefficients(x...)
	_, err := fft.Forward(p)
	require.NoError(t, err)
	require.Equal(t, x, p.Coefficients())
}

func TestForward_Complex64(t *testing.T) {
	p := polynomial.FromCoefficients[complex64](1, 2, 3, 4)
	y, err := fft.Forward(p)
	require.NoError(t, err)
	c := compare.NewComplex64Tolerance(1e-4)
	require.True(t, c.Eq(10, y.At(0)))
	require.True(t, c.Eq(complex64(complex(-2, -2)), y.At(1)))
	require.True(t, c.Eq(-2, y.At(2)))
	require.True(t, c.Eq(complex64(complex(-2, 2)), y.At(3)))
}
