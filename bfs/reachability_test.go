package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvcover/bfs"
	"github.com/katalvlaran/lvcover/builder"
	"github.com/katalvlaran/lvcover/core"
)

// TestReachable covers same-component, cross-component and self queries.
func TestReachable(t *testing.T) {
	g := mustGraph(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{3, 4})
	cases := []struct {
		src, dst int
		want     bool
	}{
		{0, 2, true},
		{2, 0, true},
		{0, 3, false},
		{4, 3, true},
		{1, 1, true}, // a node always reaches itself
	}
	for _, tc := range cases {
		got, err := bfs.Reachable(g, tc.src, tc.dst)
		if err != nil {
			t.Fatalf("Reachable(%d,%d): %v", tc.src, tc.dst, err)
		}
		if got != tc.want {
			t.Errorf("Reachable(%d,%d) = %v; want %v", tc.src, tc.dst, got, tc.want)
		}
	}
	if _, err := bfs.Reachable(g, 0, 7); !errors.Is(err, core.ErrOutOfRange) {
		t.Errorf("out-of-range dst: want ErrOutOfRange, got %v", err)
	}
}

// TestPath checks shortest paths, the trivial path and the unreachable case.
func TestPath(t *testing.T) {
	// Route 0-1-2-3-6 (4 hops) competes with 0-4-5-6 (3 hops).
	g := mustGraph(t, 8,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 6},
		[2]int{0, 4}, [2]int{4, 5}, [2]int{5, 6},
	)
	p, err := bfs.Path(g, 0, 6)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 4, 5, 6}; !reflect.DeepEqual(p, want) {
		t.Errorf("Path(0,6) = %v; want %v", p, want)
	}

	if p, _ = bfs.Path(g, 3, 3); !reflect.DeepEqual(p, []int{3}) {
		t.Errorf("Path(3,3) = %v; want [3]", p)
	}

	p, err = bfs.Path(g, 0, 7)
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || len(p) != 0 {
		t.Errorf("Path(0,7) = %#v; want empty non-nil", p)
	}
}

// TestTree checks the predecessor map of a full BFS.
func TestTree(t *testing.T) {
	g, _ := builder.BuildGraph(nil, builder.Star(4), builder.Path(2))
	tree, err := bfs.Tree(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := map[int]int{0: 1, 2: 0, 3: 0}
	if !reflect.DeepEqual(tree, want) {
		t.Errorf("Tree(1) = %v; want %v", tree, want)
	}
	if _, err = bfs.Tree(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
}

// TestIsConnected covers the edge cases around empty, edgeless and complete graphs.
func TestIsConnected(t *testing.T) {
	empty, _ := core.New(0)
	single, _ := core.New(1)
	edgeless, _ := builder.RandomGraph(4, 0)
	complete, _ := builder.BuildGraph(nil, builder.Complete(5))
	split, _ := builder.BuildGraph(nil, builder.Path(2), builder.Path(2))

	cases := []struct {
		name string
		g    *core.Graph
		want bool
	}{
		{"nil", nil, true},
		{"empty", empty, true},
		{"single", single, true},
		{"edgeless", edgeless, false},
		{"complete", complete, true},
		{"split", split, false},
	}
	for _, tc := range cases {
		if got := bfs.IsConnected(tc.g); got != tc.want {
			t.Errorf("%s: IsConnected = %v; want %v", tc.name, got, tc.want)
		}
	}
}

// TestComponents checks grouping and ordering.
func TestComponents(t *testing.T) {
	g := mustGraph(t, 6, [2]int{4, 0}, [2]int{2, 3}, [2]int{3, 5})
	want := [][]int{{0, 4}, {1}, {2, 3, 5}}
	if got := bfs.Components(g); !reflect.DeepEqual(got, want) {
		t.Errorf("Components = %v; want %v", got, want)
	}
	if bfs.Components(nil) != nil {
		t.Error("Components(nil) must be nil")
	}
}
