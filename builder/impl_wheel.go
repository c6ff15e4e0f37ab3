// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub, i.e., a cycle of size (n-1) plus one center node.
//   • Therefore, n ≥ 4 (the outer ring must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Builds the outer ring with Cycle(n-1); the hub is the LAST appended node.
//   • Emits spokes hub–ring in increasing ring index.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that appends the wheel W_n.
// MVC(W_n) has 1 + ⌈(n-1)/2⌉ nodes.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		base := g.Size()
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		hub := g.AddNode()
		for i := 0; i < n-1; i++ {
			if err := g.AddEdge(hub, base+i); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodWheel, hub, base+i, err)
			}
		}

		return nil
	}
}
