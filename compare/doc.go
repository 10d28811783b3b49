// SPDX-License-Identifier: MIT

// Package compare decides equality and ordering of scalar and complex values
// despite floating-point rounding.
//
// What & Why:
//
//	Polynomial trimming, transform round-trips and interpolation checks all
//	need a notion of "equal enough". This package provides one implementation
//	per numeric category behind a single Comparator interface:
//	  • Exact / Identity : integral, string and pointer-like values (==, <, ...)
//	  • Floating         : |a-b| < epsilon, machine epsilon by default
//	  • Complex64/128    : componentwise Floating on real and imaginary parts
//
// Boundary policy:
//
//	Floating equality is strict (|a-b| < eps) and inequality is strict on the
//	other side (|a-b| > eps). Two floats whose difference is exactly eps are
//	therefore neither Eq nor Neq. Callers that need a total split must use
//	!Eq rather than Neq.
//
// Ordering:
//
//	Lt/Gt on floats require Neq, so values within eps are never strictly
//	ordered; Lte/Gte accept Eq, so such values always compare true. Complex
//	values are unordered; only Eq and Neq exist.
//
// Selection:
//
//	Default[T] picks the implementation for T once, when the comparator is
//	built; the returned value carries no per-call type dispatch.
//
// Complexity: every operation is O(1) and allocation-free.
package compare
