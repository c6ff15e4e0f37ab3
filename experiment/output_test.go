package experiment_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/experiment"
)

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	rows := []experiment.ConnectivityRow{{Edges: 0, Probability: 0}, {Edges: 25, Probability: 0.5}}
	require.NoError(t, experiment.WriteTable(&buf, experiment.ConnectivityHeader, rows))

	want := "edges  p_connected\n" +
		"0      0.00\n" +
		"25     0.50\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteLaTeX(t *testing.T) {
	var buf bytes.Buffer
	rows := []experiment.RatioRow{{Edges: 3, Approx1: 1, Approx2: 1.25, Approx3: 1.5}}
	require.NoError(t, experiment.WriteLaTeX(&buf, rows))
	assert.Equal(t, "3 & 1.000 & 1.250 & 1.500 \\\\\n", buf.String())

	buf.Reset()
	dual := []experiment.DualityRow{{Edges: 2, MVC: 1.5, MIS: 6.5, Sum: 8}}
	require.NoError(t, experiment.WriteLaTeX(&buf, dual))
	assert.Equal(t, "2 & 1.50 & 6.50 & 8.00 \\\\\n", buf.String())
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	rep := &experiment.WorstCaseReport{
		Nodes: 3, Graphs: 8, Ratios: []float64{1, 1, 2}, Worst: 2, Mean: 4.0 / 3, Optimal: 2,
		WorstEdges: []core.Edge{{U: 0, V: 1}},
	}
	require.NoError(t, experiment.WriteSummary(&buf, rep))
	assert.Contains(t, buf.String(), "worst ratio: 2.00\n")
	assert.Contains(t, buf.String(), "tested: 3\n")
	assert.Contains(t, buf.String(), "worst graph: [0-1]\n")
}
