// SPDX-License-Identifier: MIT

// Package lagrange builds the Lagrange basis polynomials of a grid.
//
// For pairwise distinct points x_0..x_{n-1} the basis l_0..l_{n-1} satisfies
// l_i(x_j) = δ_ij. The construction is O(n²):
//
//  1. Nodal polynomial w(x) = Π (x − x_k), grown one root at a time by a
//     single backward sweep over the coefficients.
//  2. The nodal derivative w' is formed once and shared by every basis
//     polynomial.
//  3. l_i = (w / (x − x_i)) / w'(x_i), where the quotient comes from
//     synthetic division (LongDivision); the remainder is dropped.
//
// PolynomialMatrix packages the same basis as the rows of a *matrix.Dense,
// and Interpolate combines it with sample values.
//
// Preconditions:
//
//	Grid points must be pairwise distinct. Duplicates make w'(x_i) zero and
//	the division yields NaN or ±Inf in both Polynomials and PolynomialMatrix;
//	this is not checked.
package lagrange
