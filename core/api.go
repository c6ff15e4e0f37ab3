// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only summaries.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

// GraphStats is a read-only snapshot of size and degree figures.
type GraphStats struct {
	// NodeCount is the number of nodes (n).
	NodeCount int

	// EdgeCount is the number of undirected edges (m).
	EdgeCount int

	// MaxEdges is n(n-1)/2, the edge count of the complete graph K_n.
	MaxEdges int

	// MinDegree and MaxDegree are 0 for an empty graph.
	MinDegree int
	MaxDegree int

	// Isolated counts nodes of degree 0.
	Isolated int

	// Density is m / MaxEdges, or 0 when MaxEdges == 0.
	Density float64
}

// MaxEdges returns n(n-1)/2, the number of unordered pairs of n nodes.
// Non-positive n yields 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func MaxEdges(n int) int {
	if n <= 1 {
		return 0
	}

	return n * (n - 1) / 2
}

// Stats produces a deterministic snapshot of node/edge counts and degree extremes.
//
// Implementation:
//   - Stage 1: Record counts and the complete-graph bound.
//   - Stage 2: Single pass over adjacency to find min/max degree and isolated nodes.
//   - Stage 3: Derive density.
//
// Returns:
//   - *GraphStats: immutable-by-convention summary.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	n := len(g.adj)
	stats := GraphStats{
		NodeCount: n,
		EdgeCount: g.edgeCount,
		MaxEdges:  MaxEdges(n),
	}

	for u, nbrs := range g.adj {
		d := len(nbrs)
		if u == 0 || d < stats.MinDegree {
			stats.MinDegree = d
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		if d == 0 {
			stats.Isolated++
		}
	}

	if stats.MaxEdges > 0 {
		stats.Density = float64(stats.EdgeCount) / float64(stats.MaxEdges)
	}

	return &stats
}
