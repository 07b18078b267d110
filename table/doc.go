// Package table is the Taylor-table derivation engine.
//
// 🚀 What is a Taylor table?
//
//	A scheme such as
//
//	  h·u'_j ≈ a·u_{j-1} + b·u_j + c·u_{j+1}
//
//	is analyzed by expanding every term around x_j in powers of h. Each term
//	becomes one row of exact coefficients (package expansion); the unknown
//	weights a, b, c must make the sum reproduce the target row as far as
//	possible. The first power of h where that fails is the truncation error.
//
// ✨ Pipeline:
//   - Build:    expand the target and every unknown term into a System.
//   - Solve:    truncate to the largest non-singular leading k×k block,
//     solve it (package matrix) and compute the residual A·x − b.
//   - Analyze:  find the leading nonzero residual (rounded to a fixed
//     number of decimals) and turn its power into an order.
//   - Derive:   run all three for a Mode: Stencil (order = power − P) or
//     Marching (local = power, global = power − 1).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/taylortable/table"
//
//	// 4th-order central first derivative.
//	d, err := table.DeriveStencil(1, 0, [][]int{{-2, -1, 0, 1, 2}}, 5)
//	if err != nil {
//	  // ErrUnsolvableSystem, ErrInvalidTerm, ...
//	}
//	fmt.Println(d.Order()) // 4
//
//	// Explicit Euler: u_{n+1} = a·u_n + h·b·u'_n.
//	m, _ := table.DeriveMarchingScheme(1, [][]int{{0}, {0}}, 5)
//	fmt.Println(m.LocalOrder(), m.GlobalOrder()) // 2 1
//
// Every call is a pure function of its inputs: no shared state, no caches,
// safe to run concurrently.
package table
