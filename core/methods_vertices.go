// File: methods_vertices.go
// Role: Node lifecycle & node-level queries.
//
// Determinism:
//   - Node indices are assigned densely in call order; AddNode always returns Size()-1.
//
// Lifecycle:
//   - Append-only. There is no RemoveNode; indices are never reused.
package core

import "fmt"

// AddNode appends one isolated node and returns its index.
//
// Implementation:
//   - Stage 1: The new index equals the current Size().
//   - Stage 2: Append an empty neighbor slice for it.
//
// Returns:
//   - int: index of the new node (== previous Size()).
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode() int {
	id := len(g.adj)
	g.adj = append(g.adj, []int{})

	return id
}

// Size returns the number of nodes.
// Complexity: O(1)
func (g *Graph) Size() int {
	return len(g.adj)
}

// HasNode reports whether u is a valid node index.
// Complexity: O(1)
func (g *Graph) HasNode(u int) bool {
	return u >= 0 && u < len(g.adj)
}

// Degree returns the number of neighbors of u.
//
// Errors:
//   - ErrOutOfRange: u is not a node of g.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Degree(u int) (int, error) {
	if err := g.checkNode("Degree", u); err != nil {
		return 0, err
	}

	return len(g.adj[u]), nil
}

// checkNode returns a wrapped ErrOutOfRange when u is not a node of g.
func (g *Graph) checkNode(method string, u int) error {
	if !g.HasNode(u) {
		return fmt.Errorf("%s: node %d not in [0,%d): %w", method, u, len(g.adj), ErrOutOfRange)
	}

	return nil
}
