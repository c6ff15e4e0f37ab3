// Package core provides the undirected simple Graph used by every other
// lvcover package.
//
// The Graph G = (V,E) is deliberately small and strict:
//
//   - Nodes are dense integer indices 0..n-1, appended one at a time and
//     never removed or reused.
//   - Adjacency is a slice of neighbor slices kept in insertion order:
//     adj[u] = [v1, v2, ...].
//   - Edges are undirected and symmetric: v ∈ adj[u] ⇔ u ∈ adj[v].
//   - No self-loops (AddEdge(v,v) → ErrInvalidArgument) and no parallel
//     edges (a repeated AddEdge is an idempotent no-op).
//
// Core Methods:
//
//	// Construction
//	New(n int) (*Graph, error)          // n isolated nodes, O(n)
//	AddNode() int                       // append node n, O(1) amortized
//	AddEdge(u, v int) error             // O(deg(u)) membership test + O(1) insert
//
//	// Query
//	Size() int                          // node count, O(1)
//	EdgeCount() int                     // edge count, O(1)
//	AreConnected(u, v int) (bool, error)// O(deg(u))
//	AdjacentNodes(u int) ([]int, error) // copy of adj[u], O(deg(u))
//	Degree(u int) (int, error)          // O(1)
//	Edges() []Edge                      // sorted (U,V), U<V, O(V+E·log E)
//	AdjacencyList() map[int][]int       // O(V+E)
//
//	// Snapshots
//	Clone() *Graph                      // deep copy, O(V+E)
//	Stats() *GraphStats                 // degree and density summary, O(V)
//
// Errors:
//
//	ErrOutOfRange       – node index outside [0, Size())
//	ErrInvalidArgument  – negative size, or a self-loop request
//	ErrLoopNotAllowed   – wrapped together with ErrInvalidArgument on AddEdge(v,v)
//
// Concurrency:
//
//	Graph carries no locks. A graph is owned by one caller for the duration
//	of a computation; concurrent mutation is not supported.
package core
