// Package core defines the central Graph and Edge types, the sentinel
// errors shared across lvcover, and the New constructor.
//
// Errors:
//
//	ErrOutOfRange       - node index is outside [0, Size()).
//	ErrInvalidArgument  - argument is meaningless (negative size, self-loop).
//	ErrLoopNotAllowed   - self-loop attempted; always reported together with ErrInvalidArgument.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrOutOfRange indicates an operation referenced a node index outside [0, Size()).
	ErrOutOfRange = errors.New("core: node index out of range")

	// ErrInvalidArgument indicates a meaningless argument such as a negative node count.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrLoopNotAllowed indicates a self-loop was attempted; simple graphs forbid them.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an undirected edge between two distinct nodes.
//
// Edges returned by Graph are normalized so that U < V.
type Edge struct {
	// U is the smaller endpoint.
	U int

	// V is the larger endpoint.
	V int
}

// NewEdge returns the normalized edge {u,v} with U < V.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// String renders the edge as "u-v".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.U, e.V)
}

// Graph is an undirected simple graph over dense node indices 0..n-1.
//
// adj[u] holds the neighbors of u in insertion order.
// edgeCount is maintained on AddEdge so EdgeCount stays O(1).
type Graph struct {
	adj       [][]int
	edgeCount int
}

// New creates a Graph with n isolated nodes indexed 0..n-1.
// Returns ErrInvalidArgument if n is negative.
// Complexity: O(n)
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%d): negative node count: %w", n, ErrInvalidArgument)
	}
	g := &Graph{adj: make([][]int, n)}
	for i := range g.adj {
		g.adj[i] = []int{}
	}

	return g, nil
}
