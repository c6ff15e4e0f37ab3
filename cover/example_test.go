package cover_test

import (
	"fmt"

	"github.com/katalvlaran/lvcover/builder"
	"github.com/katalvlaran/lvcover/cover"
)

// ExampleMVC shows the exact cover and its complementary independent set.
func ExampleMVC() {
	g, _ := builder.BuildGraph(nil, builder.Path(4))

	fmt.Println("MVC:", cover.MVC(g))
	fmt.Println("MIS:", cover.MIS(g))
	// Output:
	// MVC: {0, 2}
	// MIS: {1, 3}
}

// ExampleApprox1 runs the greedy max-degree heuristic on a star.
func ExampleApprox1() {
	g, _ := builder.BuildGraph(nil, builder.Star(5))
	s := cover.Approx1(g)

	fmt.Println(s, cover.IsVertexCover(g, s))
	// Output:
	// {0} true
}
