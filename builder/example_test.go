package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvcover/builder"
)

// ExampleRandomGraph builds a reproducible G(n, m) instance.
func ExampleRandomGraph() {
	g, err := builder.RandomGraph(6, 9, builder.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Size(), g.EdgeCount())
	// Output:
	// 6 9
}

// ExampleBuildGraph composes fixtures into a disjoint union.
func ExampleBuildGraph() {
	g, _ := builder.BuildGraph(nil, builder.Star(3), builder.Cycle(3))
	fmt.Println(g.Edges())
	// Output:
	// [0-1 0-2 3-4 3-5 4-5]
}
