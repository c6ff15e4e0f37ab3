// Package lvcover is a small laboratory for the vertex cover problem on
// undirected simple graphs: exact solutions by exhaustive search, three
// polynomial heuristics, and the experiments that compare them.
//
// What's inside
//
//	core/         — Graph over dense node indices 0..n-1 (adjacency lists, no loops, no parallel edges)
//	bfs/          — breadth-first search: Reachable, Path (shortest), Tree, IsConnected, Components
//	dfs/          — depth-first search: Reachable, Path, Tree, HasCycle, FindCycle
//	builder/      — RandomGraph G(n, m), fixtures (Complete, Path, Cycle, Star, Wheel, …), AllGraphs
//	cover/        — MVC, MIS, Approx1/2/3, IsVertexCover, IsIndependentSet, Ratio
//	converters/   — ToGonum / FromGonum adapters for gonum.org/v1/gonum/graph
//	experiment/   — connectivity, approximation, duality and worst-case studies
//	cmd/coverlab/ — CLI over the experiments
//
// Guarantees
//
//   - Deterministic: every random choice flows from an explicit seed or *rand.Rand.
//   - Fail fast: invalid indices and arguments are rejected before any mutation,
//     with sentinel errors matched by errors.Is.
//   - Honest complexity: MVC and MIS are O(2^n · E) and meant for n ≲ 20.
//
// Quick start
//
//	g, _ := builder.RandomGraph(10, 15, builder.WithSeed(1))
//	exact := cover.MVC(g)
//	greedy := cover.Approx1(g)
//	fmt.Println(cover.Ratio(greedy, exact))
package lvcover
