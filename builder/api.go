// SPDX-License-Identifier: MIT
// Package: lvcover/builder
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Every constructor APPENDS its own block of fresh nodes (base = g.Size() at entry),
//     so composing constructors yields a disjoint union.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// Constructor applies a graph mutation using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before adding any node (fail fast).
//   - Add their nodes with g.AddNode and only connect nodes they added.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partially built graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.New(0)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// RandomGraph is create_random_graph(n, m): an n-node graph with exactly
// min(m, n(n-1)/2) distinct edges drawn uniformly without replacement.
// See Random for the sampling contract and errors.
func RandomGraph(n, m int, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(opts, Random(n, m))
}

// FromEdges builds an n-node graph with the given edges.
// Errors: ErrInvalidArgument for n < 0, core.ErrOutOfRange for endpoints
// outside [0,n), core.ErrInvalidArgument for self-loops.
func FromEdges(n int, edges [][2]int) (*core.Graph, error) {
	return BuildGraph(nil, Edges(n, edges))
}

// addBlock appends n fresh nodes to g and returns the index of the first one.
func addBlock(g *core.Graph, n int) int {
	base := g.Size()
	for i := 0; i < n; i++ {
		g.AddNode()
	}

	return base
}
