// Package cover computes vertex covers and independent sets of a core.Graph.
//
// Exact
//
//	MVC(g)  minimum vertex cover by enumerating all 2^n node subsets
//	MIS(g)  maximum independent set = V \ MVC(g)
//
// Heuristics (always a valid cover, not necessarily minimum)
//
//	Approx1(g)           greedy maximum degree, smallest index on ties
//	Approx2(g, opts...)  random uncovered edge → one random endpoint
//	Approx3(g, opts...)  random uncovered edge → both endpoints (≤ 2·|MVC|)
//
// Predicates and helpers
//
//	IsVertexCover(g, s), IsIndependentSet(g, s), Ratio(approx, exact)
//
// Results are Sets: sorted, duplicate-free []int of node indices. For any
// graph, len(MVC(g)) + len(MIS(g)) == g.Size(), because I is independent iff
// V \ I is a cover.
//
// Randomness is explicit: pass WithRand(r) or WithSeed(seed) to Approx2 and
// Approx3; without either, a fresh RNG seeded with DefaultSeed is used, so
// seeded and unseeded runs alike are reproducible.
//
// None of these functions mutate the graph or fail: they are total over
// well-formed graphs, and a nil graph is treated as empty.
package cover
