// SPDX-License-Identifier: MIT

package compare

import "cmp"

// Exact compares integral and string values with the built-in operators.
type Exact[T cmp.Ordered] struct{}

func (Exact[T]) Eq(a, b T) bool  { return a == b }
func (Exact[T]) Neq(a, b T) bool { return a != b }
func (Exact[T]) Lt(a, b T) bool  { return a < b }
func (Exact[T]) Gt(a, b T) bool  { return a > b }
func (Exact[T]) Lte(a, b T) bool { return a <= b }
func (Exact[T]) Gte(a, b T) bool { return a >= b }

// Identity compares values that support only == (pointers, structs of
// comparable fields). No ordering is offered.
type Identity[T comparable] struct{}

func (Identity[T]) Eq(a, b T) bool  { return a == b }
func (Identity[T]) Neq(a, b T) bool { return a != b }
