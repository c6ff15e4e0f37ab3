package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvcover/builder"
	"github.com/katalvlaran/lvcover/dfs"
)

// ExampleDFS prints the pre-order of a wheel walked from its hub.
func ExampleDFS() {
	g, _ := builder.BuildGraph(nil, builder.Wheel(5))

	res, _ := dfs.DFS(g, 4)
	fmt.Println(res.Order)
	// Output:
	// [4 0 1 2 3]
}

// ExampleHasCycle contrasts a tree with a cycle.
func ExampleHasCycle() {
	tree, _ := builder.BuildGraph(nil, builder.Star(5))
	ring, _ := builder.BuildGraph(nil, builder.Cycle(5))

	fmt.Println(dfs.HasCycle(tree), dfs.HasCycle(ring))
	fmt.Println(dfs.FindCycle(ring))
	// Output:
	// false true
	// [0 1 2 3 4 0]
}
