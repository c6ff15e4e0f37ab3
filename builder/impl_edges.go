// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_edges.go — implementation of Edges(n, pairs) constructor.
//
// Contract:
//   • n ≥ 0 (else ErrInvalidArgument).
//   • Every pair is validated against [0,n) and for u≠v BEFORE any node is
//     appended, so a bad pair leaves the graph untouched.
//   • Duplicate pairs are idempotent (core.AddEdge semantics).
//
// Complexity: O(n + Σ deg) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

const methodEdges = "Edges"

// Edges returns a Constructor that appends n nodes and the given edges,
// with pair indices relative to the appended block.
func Edges(n int, pairs [][2]int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < 0: %w", methodEdges, n, ErrInvalidArgument)
		}
		for _, p := range pairs {
			if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
				return fmt.Errorf("%s: pair %v not in [0,%d): %w", methodEdges, p, n, core.ErrOutOfRange)
			}
			if p[0] == p[1] {
				return fmt.Errorf("%s: pair %v: %w: %w", methodEdges, p, ErrInvalidArgument, core.ErrLoopNotAllowed)
			}
		}

		base := addBlock(g, n)
		for _, p := range pairs {
			if err := g.AddEdge(base+p[0], base+p[1]); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodEdges, base+p[0], base+p[1], err)
			}
		}

		return nil
	}
}
