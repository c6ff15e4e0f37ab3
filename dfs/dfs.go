// Package dfs implements depth‑first search (single‑source and forest) on core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or full forest via WithFullTraversal
//   - Explicit LIFO stack: no recursion, neighbors pushed in reverse adjacency order
//     so the first-inserted neighbor is expanded first
//   - Hooks: OnVisit (pre‑order) with error abort
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Early exit via WithTarget
//
// Complexity:
//
//   - Time:   O(V + E), plus overhead of hooks and filters.
//   - Memory: O(V + E) for the stack (a node may be pushed once per incident edge).
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start (or target) is missing, with core.ErrOutOfRange.
//   - ErrOptionViolation        for meaningless option values.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// frame is one pending stack entry: node, the node that pushed it, and its tree depth.
type frame struct {
	id     int
	parent int
	depth  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
	done  bool        // target reached
}

// DFS performs depth‑first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from start.
// Returns DFSResult or error if aborted by a hook.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Single‑source mode: verify start; verify target when set
	if !dopts.FullTraversal {
		if err := checkNode(g, start); err != nil {
			return nil, err
		}
	}
	if dopts.Target != noTarget {
		if err := checkNode(g, dopts.Target); err != nil {
			return nil, err
		}
	}

	// 4. Initialize result with capacity hint
	n := g.Size()
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make(map[int]int, n),
		Parent:  make(map[int]int, n),
		Visited: make(map[int]bool, n),
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for v := 0; v < n && !walker.done; v++ {
			if !res.Visited[v] {
				if err := walker.traverse(v); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := walker.traverse(start); err != nil {
			return res, err
		}
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// checkNode maps an invalid index to ErrStartVertexNotFound + core.ErrOutOfRange.
func checkNode(g *core.Graph, id int) error {
	if !g.HasNode(id) {
		return fmt.Errorf("%w: node %d not in [0,%d): %w", ErrStartVertexNotFound, id, g.Size(), core.ErrOutOfRange)
	}
	return nil
}

// traverse runs one stack-driven DFS tree rooted at root.
func (w *dfsWalker) traverse(root int) error {
	stack := []frame{{id: root, parent: root, depth: 0}}

	for len(stack) > 0 && !w.done {
		// 1. Pop (LIFO)
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// 2. A node may sit on the stack several times; first pop wins
		if w.res.Visited[f.id] {
			continue
		}

		// 3. Depth limit: drop frames beyond the limit (they may be reached shallower later)
		if w.opts.MaxDepth >= 0 && f.depth > w.opts.MaxDepth {
			continue
		}

		// 4. Mark visited and record tree links
		w.res.Visited[f.id] = true
		w.res.Depth[f.id] = f.depth
		if f.parent != f.id {
			w.res.Parent[f.id] = f.parent
		}
		w.res.Order = append(w.res.Order, f.id)

		// 5. Pre‑order hook
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(f.id); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %d: %w", f.id, err)
			}
		}

		if f.id == w.opts.Target {
			w.done = true
			return nil
		}

		// 6. Push unvisited neighbors in reverse so adjacency order is preserved on pop
		nbs, err := w.graph.AdjacentNodes(f.id)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %d: %w", f.id, err)
		}
		for i := len(nbs) - 1; i >= 0; i-- {
			nid := nbs[i]
			if w.res.Visited[nid] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.opts.SkippedNeighbors++
				continue
			}
			stack = append(stack, frame{id: nid, parent: f.id, depth: f.depth + 1})
		}
	}

	return nil
}
