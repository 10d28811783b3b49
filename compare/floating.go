// SPDX-License-Identifier: MIT

package compare

import (
	"math"

	"golang.org/x/exp/constraints"
)

// panicEpsilonInvalid is raised by tolerance constructors on nonsensical input.
const panicEpsilonInvalid = "compare: epsilon must be finite and non-negative"

// Floating compares floating-point values within an absolute tolerance.
//
// Eq holds when |a-b| < Epsilon and Neq when |a-b| > Epsilon; a difference of
// exactly Epsilon satisfies neither. The zero value (Epsilon == 0) degrades to
// "never Eq, Neq whenever a != b".
type Floating[T constraints.Float] struct {
	Epsilon T // absolute tolerance, >= 0
}

// NewFloating returns a Floating comparator using the machine epsilon of T.
// Complexity: O(bits of mantissa) once, O(1) per comparison afterwards.
func NewFloating[T constraints.Float]() Floating[T] {
	return Floating[T]{Epsilon: MachineEpsilon[T]()}
}

// NewFloatingTolerance returns a Floating comparator with an explicit tolerance.
// Panics when eps is negative, NaN or infinite (programmer error).
func NewFloatingTolerance[T constraints.Float](eps T) Floating[T] {
	if !validEpsilon(float64(eps)) {
		panic(panicEpsilonInvalid)
	}

	return Floating[T]{Epsilon: eps}
}

// MachineEpsilon returns the gap between 1 and the next representable value
// of T: 2^-52 for float64, 2^-23 for float32.
// Implementation:
//   - Halve eps until 1 + eps/2 rounds back to 1; every step is rounded to T.
func MachineEpsilon[T constraints.Float]() T {
	one := T(1)
	eps := one
	for one+eps/2 > one {
		eps /= 2
	}

	return eps
}

// distance returns |a-b| without leaving T.
func distance[T constraints.Float](a, b T) T {
	d := a - b
	if d < 0 {
		d = -d
	}

	return d
}

// Eq reports |a-b| < Epsilon (strict).
func (f Floating[T]) Eq(a, b T) bool { return distance(a, b) < f.Epsilon }

// Neq reports |a-b| > Epsilon (strict).
func (f Floating[T]) Neq(a, b T) bool { return distance(a, b) > f.Epsilon }

// Lt reports a < b with a and b farther apart than Epsilon.
func (f Floating[T]) Lt(a, b T) bool { return a < b && f.Neq(a, b) }

// Gt reports a > b with a and b farther apart than Epsilon.
func (f Floating[T]) Gt(a, b T) bool { return a > b && f.Neq(a, b) }

// Lte reports a <= b or a ~ b.
func (f Floating[T]) Lte(a, b T) bool { return a <= b || f.Eq(a, b) }

// Gte reports a >= b or a ~ b.
func (f Floating[T]) Gte(a, b T) bool { return a >= b || f.Eq(a, b) }

func validEpsilon(eps float64) bool {
	return eps >= 0 && !math.IsInf(eps, 0) // NaN fails eps >= 0
}
