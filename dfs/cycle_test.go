package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvcover/bfs"
	"github.com/katalvlaran/lvcover/builder"
	"github.com/katalvlaran/lvcover/converters"
	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/dfs"
)

func TestHasCycle_Fixtures(t *testing.T) {
	cases := []struct {
		name string
		cons []builder.Constructor
		want bool
	}{
		{"triangle", []builder.Constructor{builder.Cycle(3)}, true},
		{"path", []builder.Constructor{builder.Path(5)}, false},
		{"star", []builder.Constructor{builder.Star(6)}, false},
		{"K4", []builder.Constructor{builder.Complete(4)}, true},
		{"forest", []builder.Constructor{builder.Path(3), builder.Star(4)}, false},
		{"cycle in second component", []builder.Constructor{builder.Path(3), builder.Cycle(4)}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.cons...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, dfs.HasCycle(g))
		})
	}
}

func TestHasCycle_Trivial(t *testing.T) {
	assert.False(t, dfs.HasCycle(nil))
	empty, err := core.New(0)
	require.NoError(t, err)
	assert.False(t, dfs.HasCycle(empty))
	single := mustGraph(t, 2, [2]int{0, 1})
	assert.False(t, dfs.HasCycle(single), "a single edge is not a cycle")
}

func TestFindCycle_Triangle(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 0}, dfs.FindCycle(g))
}

// assertClosedWalk checks that cyc is a simple cycle of g.
func assertClosedWalk(t *testing.T, g *core.Graph, cyc []int) {
	t.Helper()
	require.GreaterOrEqual(t, len(cyc), 4)
	assert.Equal(t, cyc[0], cyc[len(cyc)-1])
	seen := map[int]bool{}
	for i := 1; i < len(cyc); i++ {
		ok, err := g.AreConnected(cyc[i-1], cyc[i])
		require.NoError(t, err)
		assert.True(t, ok, "%d-%d is not an edge", cyc[i-1], cyc[i])
		assert.False(t, seen[cyc[i]], "node %d repeated", cyc[i])
		seen[cyc[i]] = true
	}
}

// TestHasCycle_AgreesWithGonum cross-checks random graphs against gonum's
// cycle basis and against the forest identity E = V - components.
func TestHasCycle_AgreesWithGonum(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		g, err := builder.RandomGraph(8, int(seed%10), builder.WithSeed(seed))
		require.NoError(t, err)

		want := len(topo.UndirectedCyclesIn(converters.ToGonum(g))) > 0
		assert.Equal(t, want, dfs.HasCycle(g), "seed %d", seed)

		isForest := g.EdgeCount() == g.Size()-len(bfs.Components(g))
		assert.Equal(t, !isForest, dfs.HasCycle(g), "seed %d", seed)

		if cyc := dfs.FindCycle(g); cyc != nil {
			assertClosedWalk(t, g, cyc)
		}
	}
}
