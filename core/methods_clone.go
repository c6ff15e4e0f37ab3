// File: methods_clone.go
// Role: Deep copies of a graph.
//
// Determinism:
//   - Clone preserves node indices and per-node neighbor order exactly.
package core

// Clone returns a deep copy of g: same node count, same edges, same
// neighbor order. Mutating the clone never affects g.
//
// Complexity: O(V+E) time and space.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		adj:       make([][]int, len(g.adj)),
		edgeCount: g.edgeCount,
	}
	for u, nbrs := range g.adj {
		c.adj[u] = make([]int, len(nbrs))
		copy(c.adj[u], nbrs)
	}

	return c
}
