// Package builder constructs core.Graph instances: the random G(n, m)
// generator used by experiments, deterministic topology fixtures, and an
// exhaustive enumerator of all labelled graphs on a few nodes.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(opts, cons...):  run Constructors in order; each appends its
//     own block of nodes, so composition is a disjoint union.
//     – RandomGraph(n, m, opts...): create_random_graph(n, m).
//     – FromEdges(n, pairs):        explicit edge list.
//   - Constructors:
//     – Random(n, m)             G(n, m) by rejection sampling.
//     – Complete(n), Path(n), Cycle(n), Star(n), Wheel(n), CompleteBipartite(a, b),
//     Edges(n, pairs).
//   - Enumeration:
//     – AllGraphs(n, fn)         every labelled simple graph on n ≤ 7 nodes.
//   - Options:
//     – WithSeed(seed), WithRand(r): explicit randomness; DefaultSeed otherwise.
//     – WithExactEdges():            reject m > n(n-1)/2 instead of clamping.
//
// Guarantees:
//
//   - Fail fast: parameters are validated before any node is appended.
//   - Deterministic: same inputs, options and seed ⇒ identical graphs.
//   - Errors are sentinels (ErrInvalidArgument, ErrTooFewVertices,
//     ErrTooManyNodes, ErrConstructFailed) wrapped with method context;
//     ErrInvalidArgument also matches core.ErrInvalidArgument.
//
// Example:
//
//	g, err := builder.RandomGraph(8, 14, builder.WithSeed(42))
//	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Cycle(4))   // 7 nodes, 2 components
package builder
