package expansion

import "errors"

var (
	// ErrInvalidTerm indicates a term with a negative derivative order.
	ErrInvalidTerm = errors.New("expansion: invalid term")

	// ErrInvalidDepth indicates a negative expansion depth.
	ErrInvalidDepth = errors.New("expansion: depth must be >= 0")
)
