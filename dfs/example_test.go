package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/mazedfs/dfs"
	"github.com/katalvlaran/mazedfs/maze"
)

// ExampleSolve finds a route around the central wall of a 3×3 maze.
//
//	S..
//	.%.
//	..G
//
// Neighbors are pushed Up, Down, Left, Right, so Right is explored first.
func ExampleSolve() {
	g, err := maze.ParseString("3,3\nS..\n.%.\n..G\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start, err := maze.FindStart(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dfs.Solve(g, start)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if !res.Found {
		fmt.Println("Not found")
		return
	}
	fmt.Println("Find:", res.Path)
	fmt.Println("expanded:", res.Expanded)

	// Output:
	// Find: R,R,D,D
	// expanded: 4
}

// ExampleSolve_notFound shows that an unreachable goal is a result, not an error.
func ExampleSolve_notFound() {
	g, _ := maze.ParseString("1,3\nS%G\n")
	res, err := dfs.Solve(g, maze.Position{Row: 0, Col: 0})
	fmt.Println(res.Found, err)

	// Output:
	// false <nil>
}
