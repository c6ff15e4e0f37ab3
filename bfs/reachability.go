package bfs

import (
	"errors"

	"github.com/katalvlaran/lvcover/core"
)

// Reachable reports whether dst can be reached from src.
// A node always reaches itself. The search stops at the first discovery of dst.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound (+core.ErrOutOfRange) for src or dst.
// Complexity: O(V+E) worst case.
func Reachable(g *core.Graph, src, dst int) (bool, error) {
	res, err := BFS(g, src, WithTarget(dst))
	if err != nil {
		return false, err
	}

	return res.Reached(dst), nil
}

// Path returns a shortest (fewest-edge) path src → … → dst.
//
//   - [src] when src == dst.
//   - an empty, non-nil slice when dst is unreachable.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound (+core.ErrOutOfRange) for src or dst.
// Complexity: O(V+E) worst case.
func Path(g *core.Graph, src, dst int) ([]int, error) {
	res, err := BFS(g, src, WithTarget(dst))
	if err != nil {
		return nil, err
	}
	path, err := res.PathTo(dst)
	if errors.Is(err, ErrNoPath) {
		return []int{}, nil
	}

	return path, err
}

// Tree runs a full BFS from src and returns the predecessor map:
// every discovered node except src maps to the node that discovered it.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound (+core.ErrOutOfRange).
// Complexity: O(V+E).
func Tree(g *core.Graph, src int) (map[int]int, error) {
	res, err := BFS(g, src)
	if err != nil {
		return nil, err
	}

	return res.Parent, nil
}

// IsConnected reports whether a single BFS from node 0 visits every node.
// Nil and empty graphs are vacuously connected.
// Complexity: O(V+E).
func IsConnected(g *core.Graph) bool {
	if g == nil || g.Size() == 0 {
		return true
	}
	res, err := BFS(g, 0)
	if err != nil {
		return false
	}

	return len(res.Order) == g.Size()
}

// Components returns the connected components of g. Each component is
// listed in BFS visit order from its smallest node; components are
// ordered by their smallest node.
// Complexity: O(V+E).
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	seen := make([]bool, g.Size())
	var comps [][]int
	for v := 0; v < g.Size(); v++ {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return comps
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		comps = append(comps, res.Order)
	}

	return comps
}
