package dfs

import (
	"errors"

	"github.com/katalvlaran/lvcover/core"
)

// Reachable reports whether dst can be reached from src using a LIFO frontier.
// A node always reaches itself.
func Reachable(g *core.Graph, src, dst int) (bool, error) {
	res, err := DFS(g, src, WithTarget(dst))
	if err != nil {
		return false, err
	}

	return res.Visited[dst], nil
}

// Path returns some path src → … → dst along the DFS tree. It is a valid
// walk over existing edges but not necessarily the shortest one.
//
//   - [src] when src == dst.
//   - an empty, non-nil slice when dst is unreachable.
func Path(g *core.Graph, src, dst int) ([]int, error) {
	res, err := DFS(g, src, WithTarget(dst))
	if err != nil {
		return nil, err
	}
	path, err := res.PathTo(dst)
	if errors.Is(err, ErrNoPath) {
		return []int{}, nil
	}

	return path, err
}

// Tree runs a full DFS from src and returns the predecessor map of the DFS tree.
func Tree(g *core.Graph, src int) (map[int]int, error) {
	res, err := DFS(g, src)
	if err != nil {
		return nil, err
	}

	return res.Parent, nil
}
