package experiment

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvcover/core"
)

// Row is one line of a result table.
type Row interface {
	// Cells returns the formatted column values.
	Cells() []string
}

// Column headers for WriteTable.
var (
	ConnectivityHeader = []string{"edges", "p_connected"}
	RatioHeader        = []string{"edges", "approx1", "approx2", "approx3"}
	NodeRatioHeader    = []string{"nodes", "approx1", "approx2", "approx3"}
	DualityHeader      = []string{"edges", "mvc", "mis", "sum"}
)

// ConnectivityRow is the fraction of connected samples at one edge count.
type ConnectivityRow struct {
	Edges       int
	Probability float64
}

func (r ConnectivityRow) Cells() []string {
	return []string{strconv.Itoa(r.Edges), fmt.Sprintf("%.2f", r.Probability)}
}

// RatioRow holds mean |approx_i| / |MVC| at one edge count.
// Samples counts the graphs with a non-empty MVC that entered the means.
type RatioRow struct {
	Edges   int
	Approx1 float64
	Approx2 float64
	Approx3 float64
	Samples int
}

func (r RatioRow) Cells() []string {
	return []string{strconv.Itoa(r.Edges), ratio(r.Approx1), ratio(r.Approx2), ratio(r.Approx3)}
}

// NodeRatioRow is a RatioRow keyed by node count instead of edge count.
type NodeRatioRow struct {
	Nodes   int
	Approx1 float64
	Approx2 float64
	Approx3 float64
	Samples int
}

func (r NodeRatioRow) Cells() []string {
	return []string{strconv.Itoa(r.Nodes), ratio(r.Approx1), ratio(r.Approx2), ratio(r.Approx3)}
}

// DualityRow holds mean |MVC|, mean |MIS| and the mean of their sum.
type DualityRow struct {
	Edges int
	MVC   float64
	MIS   float64
	Sum   float64
}

func (r DualityRow) Cells() []string {
	return []string{
		strconv.Itoa(r.Edges),
		fmt.Sprintf("%.2f", r.MVC),
		fmt.Sprintf("%.2f", r.MIS),
		fmt.Sprintf("%.2f", r.Sum),
	}
}

// WorstCaseReport summarises an exhaustive approx1 run.
type WorstCaseReport struct {
	Nodes   int
	Graphs  int       // labelled graphs enumerated
	Ratios  []float64 // one per graph with non-empty MVC, in mask order
	Worst   float64
	Mean    float64
	Optimal int // graphs where approx1 was exact

	// WorstEdges is the first graph reaching Worst; nil when Worst == 1.
	WorstEdges []core.Edge
}

func ratio(x float64) string { return fmt.Sprintf("%.3f", x) }
