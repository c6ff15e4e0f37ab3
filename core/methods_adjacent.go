// File: methods_adjacent.go
// Role: Adjacency views.
//
// Determinism:
//   - AdjacentNodes and AdjacencyList preserve insertion order of neighbors.
//
// Ownership:
//   - Every returned slice is a fresh copy; callers cannot mutate g through it.
package core

// AdjacentNodes returns a copy of u's neighbor sequence in insertion order.
//
// Implementation:
//   - Stage 1: Validate u (ErrOutOfRange).
//   - Stage 2: Copy adj[u] into a new slice.
//
// Behavior highlights:
//   - Never returns nil for a valid node: an isolated node yields an empty slice.
//
// Errors:
//   - ErrOutOfRange: u is not a node of g.
//
// Complexity:
//   - Time O(deg(u)), Space O(deg(u)).
func (g *Graph) AdjacentNodes(u int) ([]int, error) {
	if err := g.checkNode("AdjacentNodes", u); err != nil {
		return nil, err
	}
	out := make([]int, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// AdjacencyList returns a map node → neighbors covering every node,
// including isolated ones (mapped to an empty slice).
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func (g *Graph) AdjacencyList() map[int][]int {
	out := make(map[int][]int, len(g.adj))
	for u, nbrs := range g.adj {
		cp := make([]int, len(nbrs))
		copy(cp, nbrs)
		out[u] = cp
	}

	return out
}

