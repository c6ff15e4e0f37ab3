package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create three isolated nodes 0,1,2:
	g, _ := core.New(3)

	// 2) Connect 0 and 1 (symmetric):
	_ = g.AddEdge(0, 1)

	// 3) Inspect adjacency:
	for u := 0; u < g.Size(); u++ {
		nbrs, _ := g.AdjacentNodes(u)
		fmt.Println(u, nbrs)
	}

	// 4) Grow the graph and reject a self-loop:
	v := g.AddNode()
	err := g.AddEdge(v, v)
	fmt.Println("new node:", v, "loop rejected:", errors.Is(err, core.ErrInvalidArgument))

	// Output:
	// 0 [1]
	// 1 [0]
	// 2 []
	// new node: 3 loop rejected: true
}
