// File: methods_edges.go
// Role: Edge insertion & edge-level queries.
//
// Determinism:
//   - Edges() returns edges normalized (U<V) and sorted by (U,V).
//   - Neighbor order inside adj[u] is insertion order.
//
// Policy:
//   - Self-loops are rejected with ErrInvalidArgument (wrapping ErrLoopNotAllowed).
//   - Repeated AddEdge(u,v) or AddEdge(v,u) is a no-op (simple graph).
//   - Validation happens before any mutation (fail-fast, no half-inserted edge).
package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the undirected edge {u,v}.
//
// Implementation:
//   - Stage 1: Validate both endpoints (ErrOutOfRange) and reject u==v (ErrInvalidArgument).
//   - Stage 2: Membership test on adj[v]; if u is already there the edge exists → no-op.
//   - Stage 3: Append v to adj[u] and u to adj[v]; bump the edge counter.
//
// Behavior highlights:
//   - Idempotent under repeated identical (or mirrored) calls.
//   - Symmetry is preserved because both sides are appended together.
//
// Errors:
//   - ErrOutOfRange: u or v is not a node of g.
//   - ErrInvalidArgument + ErrLoopNotAllowed: u == v.
//
// Complexity:
//   - Time O(deg(v)) for the membership test, O(1) amortized insert.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkNode("AddEdge", u); err != nil {
		return err
	}
	if err := g.checkNode("AddEdge", v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w: %w", u, v, ErrInvalidArgument, ErrLoopNotAllowed)
	}

	// One side is enough: symmetry guarantees u ∈ adj[v] ⇔ v ∈ adj[u].
	if contains(g.adj[v], u) {
		return nil
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edgeCount++

	return nil
}

// AreConnected reports whether v appears in u's neighbor sequence.
//
// Errors:
//   - ErrOutOfRange: u or v is not a node of g.
//
// Complexity:
//   - Time O(deg(u)), Space O(1).
func (g *Graph) AreConnected(u, v int) (bool, error) {
	if err := g.checkNode("AreConnected", u); err != nil {
		return false, err
	}
	if err := g.checkNode("AreConnected", v); err != nil {
		return false, err
	}

	return contains(g.adj[u], v), nil
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Edges returns every edge once, normalized (U<V) and sorted by (U,V).
//
// Complexity:
//   - Time O(V + E·log E), Space O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// contains is a linear membership test over a neighbor slice.
func contains(nbrs []int, x int) bool {
	for _, y := range nbrs {
		if y == x {
			return true
		}
	}

	return false
}
