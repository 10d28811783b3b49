// SPDX-License-Identifier: MIT

package compare

import "cmp"

// Comparator decides equality of two values of type T.
type Comparator[T any] interface {
	// Eq reports whether a and b are considered equal.
	Eq(a, b T) bool

	// Neq reports whether a and b are considered different.
	// For tolerance-based implementations Neq is not guaranteed to be !Eq.
	Neq(a, b T) bool
}

// Ordering extends Comparator with tolerance-aware ordering.
type Ordering[T any] interface {
	Comparator[T]

	// Lt reports a < b (strictly, beyond tolerance).
	Lt(a, b T) bool
	// Gt reports a > b (strictly, beyond tolerance).
	Gt(a, b T) bool
	// Lte reports a <= b or a ~ b.
	Lte(a, b T) bool
	// Gte reports a >= b or a ~ b.
	Gte(a, b T) bool
}

// Compile-time conformance checks.
var (
	_ Ordering[int]          = Exact[int]{}
	_ Ordering[string]       = Exact[string]{}
	_ Ordering[float64]      = Floating[float64]{}
	_ Ordering[float32]      = Floating[float32]{}
	_ Comparator[*int]       = Identity[*int]{}
	_ Comparator[complex128] = Complex128{}
	_ Comparator[complex64]  = Complex64{}
)

// Default returns the comparator matching the category of T.
// Implementation:
//   - Stage 1: inspect the zero value of T once.
//   - Stage 2: float64/float32 → Floating with machine epsilon;
//     complex128/complex64 → componentwise Complex; anything else → Identity.
//
// Behavior highlights:
//   - The choice is made here, at construction; the returned comparator does
//     no further type dispatch.
//   - Named types (type Celsius float64) fall back to Identity, i.e. exact ==.
//     Build NewFloating explicitly for those.
//
// Complexity: O(1).
func Default[T comparable]() Comparator[T] {
	var zero T
	var c any
	switch any(zero).(type) {
	case float64:
		c = NewFloating[float64]()
	case float32:
		c = NewFloating[float32]()
	case complex128:
		c = NewComplex128()
	case complex64:
		c = NewComplex64()
	default:
		return Identity[T]{}
	}

	return c.(Comparator[T])
}

// DefaultOrdering returns the ordering comparator for T: Floating with machine
// epsilon for float64/float32, Exact otherwise.
// Complexity: O(1).
func DefaultOrdering[T cmp.Ordered]() Ordering[T] {
	var zero T
	var o any
	switch any(zero).(type) {
	case float64:
		o = NewFloating[float64]()
	case float32:
		o = NewFloating[float32]()
	default:
		return Exact[T]{}
	}

	return o.(Ordering[T])
}
