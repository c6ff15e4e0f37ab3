// Package dfs implements cycle detection for undirected core.Graphs.
//
// HasCycle/FindCycle run a recursive depth-first search that remembers the
// immediate parent of every node. Reaching an already-discovered node other
// than the parent is a back-edge and closes a cycle. The search restarts from
// every undiscovered node, so cycles in any connected component are found.
//
// Because core.Graph forbids parallel edges and self-loops, the parent check
// alone is enough to rule out trivial u–v–u "cycles".
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)   (recursion stack + state slice)
package dfs

import "github.com/katalvlaran/lvcover/core"

// Visitation state of a node during cycle detection.
const (
	White = iota // White: the node has not been discovered yet.
	Gray         // Gray: the node is on the recursion stack.
	Black        // Black: the node and all its descendants are fully explored.
)

// HasCycle reports whether g contains a cycle in any connected component.
// A nil graph is treated as acyclic.
func HasCycle(g *core.Graph) bool {
	return FindCycle(g) != nil
}

// FindCycle returns one cycle of g as a closed walk [v0 v1 … vk v0],
// or nil if g is acyclic (a forest). Roots are tried in ascending index order
// and neighbors in adjacency order, so the result is deterministic.
func FindCycle(g *core.Graph) []int {
	// 1) Nil graph is treated as cycle-free
	if g == nil {
		return nil
	}

	// 2) Prepare visitation state and the current DFS path (for reconstruction)
	n := g.Size()
	c := &cycleFinder{
		graph: g,
		state: make([]int, n),
		pos:   make([]int, n),
		path:  make([]int, 0, n),
	}

	// 3) Launch DFS from each undiscovered node
	for v := 0; v < n; v++ {
		if c.state[v] == White {
			if cyc := c.visit(v, v); cyc != nil {
				return cyc
			}
		}
	}

	return nil
}

// cycleFinder carries per-call mutable state; nothing is shared across calls.
type cycleFinder struct {
	graph *core.Graph
	state []int // White/Gray/Black per node
	pos   []int // index of a Gray node inside path
	path  []int // current recursion stack
}

// visit explores id, whose DFS parent is parent (parent == id for roots).
// It returns the first cycle found, or nil.
func (c *cycleFinder) visit(id, parent int) []int {
	c.state[id] = Gray
	c.pos[id] = len(c.path)
	c.path = append(c.path, id)

	nbrs, err := c.graph.AdjacentNodes(id)
	if err != nil {
		return nil
	}
	for _, nbr := range nbrs {
		switch {
		case nbr == parent:
			// tree edge back to the parent: not a cycle
			continue
		case c.state[nbr] == White:
			if cyc := c.visit(nbr, id); cyc != nil {
				return cyc
			}
		case c.state[nbr] == Gray:
			// back-edge to an ancestor closes the cycle path[pos(nbr)..] + nbr
			seg := c.path[c.pos[nbr]:]
			cyc := make([]int, 0, len(seg)+1)
			cyc = append(cyc, seg...)
			return append(cyc, nbr)
		}
	}

	c.path = c.path[:len(c.path)-1]
	c.state[id] = Black

	return nil
}
