// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// DefaultEpsilon is the relative pivot tolerance used by LU/Solve: a pivot p
// is treated as zero when |p| <= eps·max|A|.
const DefaultEpsilon = 1e-12

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the relative pivot tolerance.
// Panics when eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// Epsilon returns the effective pivot tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// NewMatrixOptions resolves opts over the documented defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
