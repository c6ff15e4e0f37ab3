// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices): shorter rings would need a loop or a parallel edge.
//   • Appends n nodes, emits the path 0–1–…–(n-1), then closes (n-1)–0.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that appends the simple cycle C_n.
// MVC(C_n) has ⌈n/2⌉ nodes.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		base := addBlock(g, n)
		for i := 0; i < n; i++ {
			u, v := base+i, base+(i+1)%n
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}
