// Package matrix provides the small dense linear-algebra kernel used to solve
// Taylor-table systems.
//
// The matrix package provides:
//
//   - Matrix, a bounds-checked interface over two-dimensional float64 arrays.
//   - Dense, its row-major implementation (empty 0×n and n×0 shapes allowed).
//   - MatVec and Leading for residuals and truncated sub-systems.
//   - LU with partial pivoting and Solve for square systems, reporting
//     ErrSingular when a pivot falls below eps·max|A|.
//
// All kernels are deterministic (fixed loop orders), never mutate their
// inputs, and return package sentinels that callers match with errors.Is.
package matrix
