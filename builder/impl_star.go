// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The first appended node is the center; the remaining n-1 are leaves.
//   • Spokes are emitted center–leaf in increasing leaf index.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that appends the star K_{1,n-1}.
// MVC(Star) is the center alone.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		center := addBlock(g, n)
		for i := 1; i < n; i++ {
			if err := g.AddEdge(center, center+i); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodStar, center, center+i, err)
			}
		}

		return nil
	}
}
