// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in append-only node lifecycle and idempotent edge insertion.
//   - Validate OutOfRange / InvalidArgument enforcement before any mutation.

package core_test

import (
	"testing"

	"github.com/katalvlaran/lvcover/core"
)

// TestNew_Sizes verifies New(n) for zero, positive and negative n.
func TestNew_Sizes(t *testing.T) {
	g := MustNew(t, N0)
	if g.Size() != 0 || g.EdgeCount() != 0 {
		t.Fatalf("New(0): Size=%d EdgeCount=%d; want 0,0", g.Size(), g.EdgeCount())
	}

	g = MustNew(t, N3)
	if g.Size() != N3 {
		t.Fatalf("Size() = %d; want %d", g.Size(), N3)
	}
	for u := 0; u < N3; u++ {
		MustEqualInts(t, MustAdjacent(t, g, u), []int{})
	}

	_, err := core.New(-1)
	MustErrorIs(t, err, core.ErrInvalidArgument)
}

// TestGraph_ThreeNodeScenario is the canonical create(3); add_edge(0,1) scenario.
func TestGraph_ThreeNodeScenario(t *testing.T) {
	g := MustNew(t, N3)
	MustAddEdges(t, g, [2]int{0, 1})

	MustEqualInts(t, MustAdjacent(t, g, 0), []int{1})
	MustEqualInts(t, MustAdjacent(t, g, 1), []int{0})
	MustEqualInts(t, MustAdjacent(t, g, 2), []int{})
	if g.Size() != N3 {
		t.Fatalf("Size() = %d; want 3", g.Size())
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d; want 1", g.EdgeCount())
	}
}

// TestAddNode_AppendOnly verifies AddNode returns the previous Size and the node is isolated.
func TestAddNode_AppendOnly(t *testing.T) {
	g := MustNew(t, N1)
	for want := 1; want < N5; want++ {
		if got := g.AddNode(); got != want {
			t.Fatalf("AddNode() = %d; want %d", got, want)
		}
	}
	if g.Size() != N5 {
		t.Fatalf("Size() = %d; want %d", g.Size(), N5)
	}
	MustAddEdges(t, g, [2]int{0, 4})
	MustEqualInts(t, MustAdjacent(t, g, 4), []int{0})
}

// TestAddEdge_Idempotent verifies repeated and mirrored insertions are no-ops.
func TestAddEdge_Idempotent(t *testing.T) {
	once := MustNew(t, N3)
	MustAddEdges(t, once, [2]int{0, 1})

	twice := MustNew(t, N3)
	MustAddEdges(t, twice, [2]int{0, 1}, [2]int{0, 1}, [2]int{1, 0})

	if once.EdgeCount() != twice.EdgeCount() {
		t.Fatalf("EdgeCount once=%d twice=%d", once.EdgeCount(), twice.EdgeCount())
	}
	for u := 0; u < N3; u++ {
		MustEqualInts(t, MustAdjacent(t, twice, u), MustAdjacent(t, once, u))
	}
	AssertSymmetric(t, twice)
}

// TestAddEdge_Errors verifies fail-fast validation leaves the graph untouched.
func TestAddEdge_Errors(t *testing.T) {
	g := MustNew(t, N3)

	MustErrorIs(t, g.AddEdge(0, 3), core.ErrOutOfRange)
	MustErrorIs(t, g.AddEdge(-1, 0), core.ErrOutOfRange)

	err := g.AddEdge(1, 1)
	MustErrorIs(t, err, core.ErrInvalidArgument)
	MustErrorIs(t, err, core.ErrLoopNotAllowed)

	if g.EdgeCount() != 0 {
		t.Fatalf("EdgeCount() = %d after rejected inserts; want 0", g.EdgeCount())
	}
	for u := 0; u < N3; u++ {
		MustEqualInts(t, MustAdjacent(t, g, u), []int{})
	}
}

// TestQueries_OutOfRange verifies every indexed query rejects bad indices.
func TestQueries_OutOfRange(t *testing.T) {
	g := MustNew(t, N3)

	_, err := g.AdjacentNodes(N3)
	MustErrorIs(t, err, core.ErrOutOfRange)

	_, err = g.AreConnected(0, 7)
	MustErrorIs(t, err, core.ErrOutOfRange)

	_, err = g.Degree(-2)
	MustErrorIs(t, err, core.ErrOutOfRange)

	if g.HasNode(N3) || !g.HasNode(0) {
		t.Fatalf("HasNode boundaries wrong")
	}
}

// TestAreConnected_Symmetric checks both directions of an inserted edge.
func TestAreConnected_Symmetric(t *testing.T) {
	g := MustNew(t, N4)
	MustAddEdges(t, g, [2]int{2, 3})

	for _, pair := range [][2]int{{2, 3}, {3, 2}} {
		ok, err := g.AreConnected(pair[0], pair[1])
		if err != nil || !ok {
			t.Fatalf("AreConnected(%d,%d) = %v,%v; want true,nil", pair[0], pair[1], ok, err)
		}
	}
	ok, err := g.AreConnected(0, 3)
	if err != nil || ok {
		t.Fatalf("AreConnected(0,3) = %v,%v; want false,nil", ok, err)
	}
}

// TestEdges_SortedNormalized verifies Edges() ordering and normalization.
func TestEdges_SortedNormalized(t *testing.T) {
	g := MustNew(t, N4)
	MustAddEdges(t, g, [2]int{3, 1}, [2]int{2, 0}, [2]int{1, 0})

	got := g.Edges()
	want := []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 3}}
	if len(got) != len(want) {
		t.Fatalf("Edges() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Edges()[%d] = %v; want %v", i, got[i], want[i])
		}
	}
	if core.NewEdge(5, 2) != (core.Edge{U: 2, V: 5}) {
		t.Fatalf("NewEdge did not normalize")
	}
	if s := core.NewEdge(5, 2).String(); s != "2-5" {
		t.Fatalf("Edge.String() = %q; want 2-5", s)
	}
}

// TestAdjacentNodes_IsCopy verifies callers cannot mutate the graph through returned slices.
func TestAdjacentNodes_IsCopy(t *testing.T) {
	g := MustNew(t, N3)
	MustAddEdges(t, g, [2]int{0, 1}, [2]int{0, 2})

	nbrs := MustAdjacent(t, g, 0)
	nbrs[0] = 99
	MustEqualInts(t, MustAdjacent(t, g, 0), []int{1, 2})

	list := g.AdjacencyList()
	list[0][0] = 99
	MustEqualInts(t, MustAdjacent(t, g, 0), []int{1, 2})
	if len(list) != N3 {
		t.Fatalf("AdjacencyList has %d keys; want %d", len(list), N3)
	}
}

// TestClone_Independent verifies Clone is a deep copy.
func TestClone_Independent(t *testing.T) {
	g := MustNew(t, N3)
	MustAddEdges(t, g, [2]int{0, 1})

	c := g.Clone()
	MustAddEdges(t, c, [2]int{1, 2})
	c.AddNode()

	if g.EdgeCount() != 1 || g.Size() != N3 {
		t.Fatalf("source mutated by clone: Size=%d EdgeCount=%d", g.Size(), g.EdgeCount())
	}
	if c.EdgeCount() != 2 || c.Size() != N4 {
		t.Fatalf("clone: Size=%d EdgeCount=%d; want 4,2", c.Size(), c.EdgeCount())
	}
	AssertSymmetric(t, c)
}

// TestStats_Summary checks degree extremes, isolated count and density.
func TestStats_Summary(t *testing.T) {
	g := MustNew(t, N4)
	MustAddEdges(t, g, [2]int{0, 1}, [2]int{0, 2})

	s := g.Stats()
	if s.NodeCount != N4 || s.EdgeCount != 2 || s.MaxEdges != 6 {
		t.Fatalf("counts = %+v", s)
	}
	if s.MinDegree != 0 || s.MaxDegree != 2 || s.Isolated != 1 {
		t.Fatalf("degrees = %+v", s)
	}
	if s.Density != 2.0/6.0 {
		t.Fatalf("Density = %v; want %v", s.Density, 2.0/6.0)
	}

	empty := MustNew(t, N0).Stats()
	if empty.Density != 0 || empty.MaxEdges != 0 {
		t.Fatalf("empty stats = %+v", empty)
	}
	if core.MaxEdges(-3) != 0 || core.MaxEdges(5) != 10 {
		t.Fatalf("MaxEdges boundaries wrong")
	}
}
