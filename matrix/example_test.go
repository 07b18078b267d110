package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/taylortable/matrix"
)

// ExampleSolve shows row pivoting over a zero leading entry.
func ExampleSolve() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1},
		{2, 0},
	})
	x, err := matrix.Solve(a, []float64{3, 4})
	fmt.Println(x, err)
	// Output: [2 3] <nil>
}

// ExampleLeading solves only the top-left block of a wider system, the way
// truncated Taylor tables are handled.
func ExampleLeading() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{1, 1, 1},
		{-1, 0, 1},
		{0.5, 0, 0.5},
	})
	block, _ := matrix.Leading(a, 2, 2)
	x, _ := matrix.Solve(block, []float64{0, 1})
	fmt.Println(block.Rows(), block.Cols(), x)
	// Output: 2 2 [-1 1]
}
