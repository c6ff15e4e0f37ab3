// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Appends the left part (n1 nodes) first, then the right part (n2 nodes).
//   • Emits every left–right pair, left index major.
//
// Complexity: O(n1+n2) nodes + O(n1·n2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

const (
	methodBipartite   = "CompleteBipartite"
	minPartitionNodes = 1
)

// CompleteBipartite returns a Constructor that appends K_{n1,n2}.
// By König's theorem MVC(K_{n1,n2}) has min(n1,n2) nodes.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n1 < minPartitionNodes || n2 < minPartitionNodes {
			return fmt.Errorf("%s: n1=%d, n2=%d, each must be ≥ %d: %w",
				methodBipartite, n1, n2, minPartitionNodes, ErrTooFewVertices)
		}

		left := addBlock(g, n1)
		right := addBlock(g, n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := g.AddEdge(left+i, right+j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodBipartite, left+i, right+j, err)
				}
			}
		}

		return nil
	}
}
