// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Appends n nodes and emits each unordered pair {i,j} with i<j exactly once.
//
// Complexity:
//   • Time: O(n) nodes + O(n²) edges.
//   • Space: O(1) extra.
//
// Determinism:
//   • Pair order: lexicographic by (i,j), i<j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that appends the complete simple graph K_n.
// MVC(K_n) has n-1 nodes.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		base := addBlock(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(base+i, base+j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, base+i, base+j, err)
				}
			}
		}

		return nil
	}
}
