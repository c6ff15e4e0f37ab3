// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Appends n nodes and emits i–(i+1) for i = 0..n-2, in that order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that appends the simple path P_n.
// MVC(P_n) has ⌊n/2⌋ nodes.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		base := addBlock(g, n)
		for i := 0; i+1 < n; i++ {
			if err := g.AddEdge(base+i, base+i+1); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, base+i, base+i+1, err)
			}
		}

		return nil
	}
}
