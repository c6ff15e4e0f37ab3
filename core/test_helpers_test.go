// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvcover/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep tests stdlib-only (no third-party assertion frameworks).

package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvcover/core"
)

// Common node counts used across core tests (avoid magic numbers in test bodies).
const (
	N0 = 0
	N1 = 1
	N3 = 3
	N4 = 4
	N5 = 5
)

// MustNew returns core.New(n) or fails the test immediately.
func MustNew(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := core.New(n)
	if err != nil {
		t.Fatalf("core.New(%d): unexpected error: %v", n, err)
	}

	return g
}

// MustAddEdges inserts every pair in edges or fails the test.
func MustAddEdges(t *testing.T, g *core.Graph, edges ...[2]int) {
	t.Helper()
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): unexpected error: %v", e[0], e[1], err)
		}
	}
}

// MustAdjacent returns g.AdjacentNodes(u) or fails the test.
func MustAdjacent(t *testing.T, g *core.Graph, u int) []int {
	t.Helper()
	nbrs, err := g.AdjacentNodes(u)
	if err != nil {
		t.Fatalf("AdjacentNodes(%d): unexpected error: %v", u, err)
	}

	return nbrs
}

// MustErrorIs fails the test unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want error %v, got %v", target, err)
	}
}

// MustEqualInts fails the test unless got and want are element-wise equal.
func MustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// AssertSymmetric checks the edge-symmetry and no-loop invariants for every node.
func AssertSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	for u := 0; u < g.Size(); u++ {
		for _, v := range MustAdjacent(t, g, u) {
			if v == u {
				t.Fatalf("self-loop at %d", u)
			}
			ok, err := g.AreConnected(v, u)
			if err != nil || !ok {
				t.Fatalf("asymmetric edge %d-%d (err=%v)", u, v, err)
			}
		}
	}
}
