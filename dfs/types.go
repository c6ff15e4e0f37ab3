// Package dfs defines types and options for depth-first search traversal,
// including pre-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, early exit, and basic diagnostics.
package dfs

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start (or target) index
	// is not a node of the graph. Always reported together with core.ErrOutOfRange.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation indicates a meaningless option value (e.g. a negative target).
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("dfs: no path")
)

// noTarget marks "explore everything" in DFSOptions.Target.
const noTarget = -1

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, full-graph mode, and diagnostics.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a node is popped and visited (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id int) error

	// MaxDepth, if non-negative, limits the DFS tree depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before it is pushed.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(id int) bool

	// FullTraversal, if true, restarts DFS from every unvisited node,
	// covering disconnected components (forest traversal). Default is false.
	FullTraversal bool

	// Target, if >= 0, stops the traversal as soon as that node is visited.
	Target int

	// SkippedNeighbors tracks how many neighbors were skipped
	// due to FilterNeighbor returning false. Useful for diagnostics.
	SkippedNeighbors int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - No pre-order hook
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
//   - No early-exit target
func DefaultOptions() DFSOptions {
	return DFSOptions{
		OnVisit:          nil,
		MaxDepth:         -1,
		FilterNeighbor:   nil,
		FullTraversal:    false,
		Target:           noTarget,
		SkippedNeighbors: 0,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited; negative means no limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbor indices.
// If fn(id) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(id int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// When set, DFS will restart from each unvisited node, covering disconnected components.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// WithTarget returns an Option that stops the traversal once target is visited.
// A negative target is an ErrOptionViolation.
func WithTarget(target int) Option {
	return func(o *DFSOptions) {
		if target < 0 {
			o.err = fmt.Errorf("%w: Target cannot be negative (%d)", ErrOptionViolation, target)
			return
		}
		o.Target = target
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// It reports visit order, tree depths, parent links, and visited flags,
// as well as diagnostics like SkippedNeighbors.
type DFSResult struct {
	// Order records nodes in the sequence they were visited (pre-order).
	Order []int

	// Depth maps each node to its depth in the DFS tree (#edges from its root).
	Depth map[int]int

	// Parent maps each node to the node from which it was reached.
	// Roots do not appear in this map.
	Parent map[int]int

	// Visited flags which nodes were reached during the traversal.
	Visited map[int]bool

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}

// PathTo reconstructs the tree path from dest's root to dest.
// Returns ErrNoPath if dest was not visited.
func (r *DFSResult) PathTo(dest int) ([]int, error) {
	if !r.Visited[dest] {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
