// Package taylortable derives finite-difference stencils and time-marching
// schemes from their Taylor tables, and reports how accurate they are.
//
// What it does
//
//	Given a target h^P·u^(P)_{j+K} and the structure of a scheme (which
//	function and derivative values it combines, at which grid offsets), the
//	engine expands every term in an exact Taylor series, solves for the
//	weights that match the target to the highest possible power of h, and
//	reads the leading truncation error off the residual.
//
// Under the hood, everything is organized under these subpackages:
//
//	fraction/    exact rationals over math/big, plus float → fraction approximation
//	expansion/   Term, Row and Expand: one exact Taylor row per term
//	matrix/      dense float64 kernel: MatVec, Leading block, pivoted LU, Solve
//	table/       Build, Solve (with truncation), Analyze and the Derive presets
//	render/      Taylor table, JSON and YAML output
//	cli/         cobra/viper command-line interface (cmd/taylortable)
//
// Quick example:
//
//	d, err := table.DeriveStencil(1, 0, [][]int{{-2, -1, 0, 1, 2}}, 6)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(d.Order()) // 4
//
// Conventions:
//
//   - Unknown groups are indexed by derivative order: groups[0] lists the
//     offsets of u, groups[1] those of u', and so on.
//   - Stencils lay groups out highest derivative first by default; marching
//     schemes keep the given order. table.WithBackwards overrides either.
//   - Errors are sentinels matched with errors.Is.
package taylortable
