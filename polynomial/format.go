// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/numericalc/compare"
)

// Formatting defaults.
const (
	// DefaultVariable is the indeterminate printed after each coefficient.
	DefaultVariable = "x"

	// DefaultSeparator joins consecutive non-zero terms.
	DefaultSeparator = " + "

	// zeroLiteral is printed for a polynomial without non-zero terms.
	zeroLiteral = "0"
)

const (
	panicVariableEmpty  = "polynomial: WithVariable: name must be non-empty"
	panicComparatorType = "polynomial: Format: WithComparator type argument does not match the polynomial"
)

// FormatOption configures Format. Options apply in order; last writer wins.
type FormatOption func(*formatOptions)

type formatOptions struct {
	variable  string
	separator string
	cmp       any // compare.Comparator[T], type-checked in Format
}

// WithVariable sets the indeterminate name (default "x"). Panics on "".
func WithVariable(name string) FormatOption {
	if name == "" {
		panic(panicVariableEmpty)
	}

	return func(o *formatOptions) { o.variable = name }
}

// WithSeparator sets the string placed between terms (default " + ").
func WithSeparator(sep string) FormatOption {
	return func(o *formatOptions) { o.separator = sep }
}

// WithComparator overrides the zero test used for trimming and skipping terms.
// Format panics when the comparator's type argument differs from the
// polynomial's coefficient type.
func WithComparator[T Scalar](c compare.Comparator[T]) FormatOption {
	return func(o *formatOptions) { o.cmp = c }
}

// Format renders p from the highest power down to the constant term.
// Implementation:
//   - Stage 1: resolve options and the zero comparator (compare.Default[T] unless overridden).
//   - Stage 2: trim highest-index coefficients that compare Eq to zero.
//   - Stage 3: emit each remaining non-zero term as c, c<var> or c<var>^k,
//     joined by the separator.
//
// Behavior highlights:
//   - Display only: p itself is never trimmed.
//   - No non-zero term renders as "0".
//   - Coefficients print with %v, so negatives appear as "+ -2x".
//   - Panics when WithComparator was instantiated for another scalar type.
//
// Complexity: O(deg).
func Format[T Scalar](p *Polynomial[T], opts ...FormatOption) string {
	o := formatOptions{variable: DefaultVariable, separator: DefaultSeparator}
	for _, set := range opts {
		set(&o)
	}
	c := compare.Default[T]()
	if o.cmp != nil {
		override, ok := o.cmp.(compare.Comparator[T])
		if !ok {
			panic(panicComparatorType)
		}
		c = override
	}

	var zero T
	top := len(p.coef) - 1
	for top >= 0 && c.Eq(p.coef[top], zero) {
		top--
	}
	if top < 0 {
		return zeroLiteral
	}

	var b strings.Builder
	first := true
	for i := top; i >= 0; i-- {
		if c.Eq(p.coef[i], zero) {
			continue
		}
		if !first {
			b.WriteString(o.separator)
		}
		first = false
		fmt.Fprintf(&b, "%v", p.coef[i])
		switch {
		case i == 1:
			b.WriteString(o.variable)
		case i > 1:
			b.WriteString(o.variable)
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(i))
		}
	}

	return b.String()
}

// String implements fmt.Stringer with the default format.
func (p *Polynomial[T]) String() string { return Format(p) }

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Polynomial[float64])(nil)
