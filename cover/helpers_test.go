package cover_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/builder"
	"github.com/katalvlaran/lvcover/core"
)

// mustBuild runs BuildGraph with a fixed seed and fails the test on error.
func mustBuild(t testing.TB, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, cons...)
	require.NoError(t, err)

	return g
}

// mustEdges builds an n-node graph from explicit pairs.
func mustEdges(t testing.TB, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	g, err := builder.FromEdges(n, pairs)
	require.NoError(t, err)

	return g
}
