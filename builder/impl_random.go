// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_random.go - implementation of the Random(n, m) constructor.
//
// Canonical model:
//   - G(n, m): a graph on n nodes with exactly m edges, uniform over all
//     edge subsets of that size.
//   - Rejection sampling: draw two node indices uniformly, reject u==v and
//     pairs already chosen, insert otherwise, until m edges are placed.
//
// Contract:
//   - n ≥ 0 and m ≥ 0 (else ErrInvalidArgument).
//   - m > n(n-1)/2 is clamped to n(n-1)/2, or rejected with ErrInvalidArgument
//     under WithExactEdges().
//   - Validation precedes any mutation.
//
// Complexity:
//   - Expected O(n + m·N/(N-m)) draws with N = n(n-1)/2; rejection rises
//     sharply as m → N. Intended for small graphs.
//   - Space: O(m) for the chosen-pair set.
//
// Determinism:
//   - Deterministic for a fixed seed: the draw sequence depends only on cfg.rng.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

const methodRandom = "Random"

// Random returns a Constructor that appends an n-node G(n, m) block.
func Random(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if n < 0 {
			return fmt.Errorf("%s: n=%d < 0: %w", methodRandom, n, ErrInvalidArgument)
		}
		if m < 0 {
			return fmt.Errorf("%s: m=%d < 0: %w", methodRandom, m, ErrInvalidArgument)
		}
		limit := core.MaxEdges(n)
		if m > limit {
			if cfg.exactEdges {
				return fmt.Errorf("%s: m=%d > n(n-1)/2=%d: %w", methodRandom, m, limit, ErrInvalidArgument)
			}
			m = limit
		}

		// 2) Append the node block.
		base := addBlock(g, n)

		// 3) Rejection-sample unordered pairs until m distinct edges are placed.
		chosen := make(map[core.Edge]struct{}, m)
		for len(chosen) < m {
			u := cfg.rng.Intn(n)
			v := cfg.rng.Intn(n)
			if u == v {
				continue
			}
			e := core.NewEdge(u, v)
			if _, dup := chosen[e]; dup {
				continue
			}
			chosen[e] = struct{}{}
			if err := g.AddEdge(base+e.U, base+e.V); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandom, base+e.U, base+e.V, err)
			}
		}

		return nil
	}
}
