// SPDX-License-Identifier: MIT

package polynomial_test

import (
	"fmt"

	"github.com/katalvlaran/numericalc/polynomial"
)

// ExamplePolynomial_Eval evaluates 1 - x + 2x^2 + 3x^3 at x = 2.
func ExamplePolynomial_Eval() {
	p := polynomial.FromCoefficients(1.0, -1, 2, 3)

	fmt.Println(p)
	fmt.Println(p.Eval(2))
	// Output:
	// 3x^3 + 2x^2 + -1x + 1
	// 31
}

// ExamplePolynomial_Mul multiplies (1 + x)(1 - x); the allocated size is m+n.
func ExamplePolynomial_Mul() {
	p := polynomial.FromCoefficients(1, 1)
	q := polynomial.FromCoefficients(1, -1)
	r := p.Mul(q)

	fmt.Println(r, r.Degree())
	// Output:
	// -1x^2 + 1 4
}
