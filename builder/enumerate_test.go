package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvcover/builder"
	"github.com/katalvlaran/lvcover/core"
)

// TestAllGraphs_Count checks that exactly 2^(n(n-1)/2) graphs are produced.
func TestAllGraphs_Count(t *testing.T) {
	for n := 0; n <= 5; n++ {
		edgeTotal := 0
		count, err := builder.AllGraphs(n, func(g *core.Graph) bool {
			if g.Size() != n {
				t.Fatalf("Size = %d; want %d", g.Size(), n)
			}
			edgeTotal += g.EdgeCount()
			return true
		})
		if err != nil {
			t.Fatal(err)
		}
		want := 1 << core.MaxEdges(n)
		if count != want {
			t.Errorf("n=%d: count = %d; want %d", n, count, want)
		}
		// Every pair is present in exactly half of all graphs.
		if wantE := core.MaxEdges(n) * want / 2; edgeTotal != wantE {
			t.Errorf("n=%d: total edges = %d; want %d", n, edgeTotal, wantE)
		}
	}
}

// TestAllGraphs_EarlyStop verifies that fn returning false stops the walk.
func TestAllGraphs_EarlyStop(t *testing.T) {
	count, err := builder.AllGraphs(4, func(g *core.Graph) bool { return g.EdgeCount() < 2 })
	if err != nil {
		t.Fatal(err)
	}
	// masks 0 (0 edges), 1 (1), 2 (1), 3 (2 edges → stop)
	if count != 4 {
		t.Errorf("count = %d; want 4", count)
	}
}

// TestAllGraphs_Bounds checks the size guards.
func TestAllGraphs_Bounds(t *testing.T) {
	noop := func(*core.Graph) bool { return true }
	if _, err := builder.AllGraphs(builder.MaxEnumerationNodes+1, noop); !errors.Is(err, builder.ErrTooManyNodes) {
		t.Errorf("want ErrTooManyNodes, got %v", err)
	}
	if _, err := builder.AllGraphs(-1, noop); !errors.Is(err, builder.ErrInvalidArgument) {
		t.Errorf("want ErrInvalidArgument, got %v", err)
	}
}
