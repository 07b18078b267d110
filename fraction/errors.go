// SPDX-License-Identifier: MIT

package fraction

import "errors"

// Sentinel errors. Callers match them via errors.Is; wrapped forms keep the
// "fraction: ..." prefix visible in messages.
var (
	// ErrDivisionByZero is returned when a fraction would get a zero denominator,
	// either at construction or as the divisor of Div.
	ErrDivisionByZero = errors.New("fraction: division by zero")

	// ErrSyntax is returned by Parse on malformed input.
	ErrSyntax = errors.New("fraction: invalid syntax")

	// ErrNotFinite is returned by Approximate for NaN or ±Inf input.
	ErrNotFinite = errors.New("fraction: value is NaN or Inf")

	// ErrBadBound is returned by Approximate when maxDen < 1 or tol < 0.
	ErrBadBound = errors.New("fraction: invalid approximation bound")
)
