// Package expansion generates exact Taylor-series rows for single terms of a
// discretization scheme.
//
// A Term (p, k) stands for u^(p) evaluated k grid steps away from the
// reference index, e.g. (0, 1) is u_{j+1} and (1, -1) is u'_{j-1}. Its value,
// multiplied by h^p and expanded around the reference index, is
//
//	h^p·u^(p)(x₀ + k·h) = Σ_i  k^i / i! · h^(i+p) u^(i+p)(x₀)
//
// so the coefficient of h^j u^(j) is k^(j−p)/(j−p)! for j ≥ p and 0 below p.
// A Row collects those coefficients for j = 0..depth as exact fractions:
//
//	Expand(Term{Derivative: 0, Offset: 1}, 4) → [1 1 1/2 1/6 1/24]
//	Expand(Term{Derivative: 1, Offset: -1}, 4) → [0 1 -1 1/2 -1/6]
//
// Rows never pass through floating point; conversion happens only when the
// caller asks for Row.Floats.
package expansion
