// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// enumerate.go — exhaustive enumeration of labelled simple graphs.
//
// Model:
//   - The N = n(n-1)/2 unordered pairs (i,j), i<j, are listed in lexicographic
//     order; bit k of a mask selects pair k. Masks 0..2^N-1 cover every
//     labelled simple graph on n nodes exactly once.
//
// Contract:
//   - 0 ≤ n ≤ MaxEnumerationNodes (else ErrInvalidArgument / ErrTooManyNodes).
//   - fn receives a fresh graph per mask; it may keep or mutate it.
//   - fn returning false stops the enumeration early.
//
// Complexity:
//   - Time O(2^N · N), Space O(N) besides the graphs handed to fn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

const methodAllGraphs = "AllGraphs"

// MaxEnumerationNodes caps AllGraphs: n=7 already yields 2^21 graphs.
const MaxEnumerationNodes = 7

// AllGraphs calls fn once for every labelled simple graph on n nodes,
// in increasing mask order (mask 0 = edgeless, last mask = K_n).
// It returns the number of graphs handed to fn.
func AllGraphs(n int, fn func(g *core.Graph) bool) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%s: n=%d < 0: %w", methodAllGraphs, n, ErrInvalidArgument)
	}
	if n > MaxEnumerationNodes {
		return 0, fmt.Errorf("%s: n=%d > %d: %w", methodAllGraphs, n, MaxEnumerationNodes, ErrTooManyNodes)
	}

	pairs := make([]core.Edge, 0, core.MaxEdges(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, core.Edge{U: i, V: j})
		}
	}

	total := uint64(1) << uint(len(pairs))
	count := 0
	for mask := uint64(0); mask < total; mask++ {
		g, err := core.New(n)
		if err != nil {
			return count, fmt.Errorf("%s: %w", methodAllGraphs, err)
		}
		for k, e := range pairs {
			if mask&(1<<uint(k)) == 0 {
				continue
			}
			if err = g.AddEdge(e.U, e.V); err != nil {
				return count, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodAllGraphs, e.U, e.V, err)
			}
		}
		count++
		if !fn(g) {
			break
		}
	}

	return count, nil
}
