// File: example_test.go
package pipeloop_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve runs the whole pipeline on the layered loop, whose dead pipes
// must be ignored to find the eight enclosed cells.
func ExampleSolve() {
	grid := `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`
	res, err := pipeloop.Solve(grid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.FurthestDistance)
	fmt.Println(res.EnclosedCount)

	// Output:
	// 70
	// 8
}
