package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lvbio/grid"
)

// ExampleLCS prints a longest common subsequence of two DNA strings.
func ExampleLCS() {
	fmt.Println(grid.LCS("AACCTTGG", "ACACTGTGA"))
	// Output:
	// AACTTG
}

// ExampleManhattanTourist walks a 2×2 grid.
func ExampleManhattanTourist() {
	down := [][]int{
		{1, 0, 2},
		{4, 6, 5},
	}
	right := [][]int{
		{3, 2},
		{3, 2},
		{0, 7},
	}
	best, err := grid.ManhattanTourist(down, right)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(best)
	// Output:
	// 17
}
