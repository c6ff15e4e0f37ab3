package experiment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvcover/bfs"
	"github.com/katalvlaran/lvcover/builder"
	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/cover"
)

// ErrDualityViolated is returned when |MVC| + |MIS| != n for some sample.
var ErrDualityViolated = errors.New("experiment: |MVC| + |MIS| != n")

// sampler owns the shared RNG of one run.
type sampler struct {
	rng *rand.Rand
}

func newSampler(seed int64) *sampler {
	return &sampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *sampler) graph(n, m int) (*core.Graph, error) {
	return builder.RandomGraph(n, m, builder.WithRand(s.rng))
}

// Connectivity estimates P(G(n, m) is connected) for every edge count in cfg.
func Connectivity(ctx context.Context, cfg Config) ([]ConnectivityRow, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Connectivity: %w", err)
	}
	log := cfg.logger()
	s := newSampler(cfg.Seed)

	edges := cfg.EdgeCounts()
	rows := make([]ConnectivityRow, 0, len(edges))
	for _, m := range edges {
		connected := 0
		for run := 0; run < cfg.Runs; run++ {
			if err := ctx.Err(); err != nil {
				return rows, err
			}
			g, err := s.graph(cfg.Nodes, m)
			if err != nil {
				return rows, fmt.Errorf("Connectivity: m=%d: %w", m, err)
			}
			if bfs.IsConnected(g) {
				connected++
			}
		}
		row := ConnectivityRow{Edges: m, Probability: float64(connected) / float64(cfg.Runs)}
		log.Debug("connectivity", "nodes", cfg.Nodes, "edges", m, "p", row.Probability)
		rows = append(rows, row)
	}

	return rows, nil
}

// ratioSample accumulates per-heuristic ratios for one cell of a sweep.
type ratioSample struct {
	a1, a2, a3 []float64
}

// add runs the three heuristics on g. Graphs with an empty MVC are skipped.
func (r *ratioSample) add(g *core.Graph, rng *rand.Rand) {
	exact := cover.MVC(g)
	if exact.Len() == 0 {
		return
	}
	r.a1 = append(r.a1, cover.Ratio(cover.Approx1(g), exact))
	r.a2 = append(r.a2, cover.Ratio(cover.Approx2(g, cover.WithRand(rng)), exact))
	r.a3 = append(r.a3, cover.Ratio(cover.Approx3(g, cover.WithRand(rng)), exact))
}

// mean is stat.Mean with 0 for no samples.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	return stat.Mean(xs, nil)
}

// Approximations measures the mean approximation ratio of each heuristic
// per edge count. Samples whose MVC is empty do not enter the means; a cell
// with no samples reports 0.
func Approximations(ctx context.Context, cfg Config) ([]RatioRow, error) {
	if err := cfg.validateExact(cfg.Nodes); err != nil {
		return nil, fmt.Errorf("Approximations: %w", err)
	}
	log := cfg.logger()
	s := newSampler(cfg.Seed)

	edges := cfg.EdgeCounts()
	rows := make([]RatioRow, 0, len(edges))
	for _, m := range edges {
		var acc ratioSample
		for run := 0; run < cfg.Runs; run++ {
			if err := ctx.Err(); err != nil {
				return rows, err
			}
			g, err := s.graph(cfg.Nodes, m)
			if err != nil {
				return rows, fmt.Errorf("Approximations: m=%d: %w", m, err)
			}
			acc.add(g, s.rng)
		}
		row := RatioRow{
			Edges:   m,
			Approx1: mean(acc.a1),
			Approx2: mean(acc.a2),
			Approx3: mean(acc.a3),
			Samples: len(acc.a1),
		}
		log.Debug("approximations", "edges", m, "approx1", row.Approx1, "approx2", row.Approx2, "approx3", row.Approx3)
		rows = append(rows, row)
	}

	return rows, nil
}

// NodeSweep measures the same ratios as Approximations for each node count
// in cfg.NodeCounts, at 50% density (m = ⌊n(n-1)/4⌋), drawing cfg.NodeRuns
// graphs per node count.
func NodeSweep(ctx context.Context, cfg Config) ([]NodeRatioRow, error) {
	if err := cfg.validateExact(cfg.NodeCounts...); err != nil {
		return nil, fmt.Errorf("NodeSweep: %w", err)
	}
	log := cfg.logger()
	s := newSampler(cfg.Seed)

	rows := make([]NodeRatioRow, 0, len(cfg.NodeCounts))
	for _, n := range cfg.NodeCounts {
		m := core.MaxEdges(n) / 2
		var acc ratioSample
		for run := 0; run < cfg.nodeRuns(); run++ {
			if err := ctx.Err(); err != nil {
				return rows, err
			}
			g, err := s.graph(n, m)
			if err != nil {
				return rows, fmt.Errorf("NodeSweep: n=%d: %w", n, err)
			}
			acc.add(g, s.rng)
		}
		row := NodeRatioRow{
			Nodes:   n,
			Approx1: mean(acc.a1),
			Approx2: mean(acc.a2),
			Approx3: mean(acc.a3),
			Samples: len(acc.a1),
		}
		log.Debug("node sweep", "nodes", n, "edges", m, "samples", row.Samples)
		rows = append(rows, row)
	}

	return rows, nil
}

// Duality averages |MVC| and |MIS| per edge count and checks, on every
// sample, that they add up to the node count.
func Duality(ctx context.Context, cfg Config) ([]DualityRow, error) {
	if err := cfg.validateExact(cfg.Nodes); err != nil {
		return nil, fmt.Errorf("Duality: %w", err)
	}
	log := cfg.logger()
	s := newSampler(cfg.Seed)

	edges := cfg.EdgeCounts()
	rows := make([]DualityRow, 0, len(edges))
	for _, m := range edges {
		mvcSizes := make([]float64, 0, cfg.Runs)
		misSizes := make([]float64, 0, cfg.Runs)
		for run := 0; run < cfg.Runs; run++ {
			if err := ctx.Err(); err != nil {
				return rows, err
			}
			g, err := s.graph(cfg.Nodes, m)
			if err != nil {
				return rows, fmt.Errorf("Duality: m=%d: %w", m, err)
			}
			mvc, mis := cover.MVC(g).Len(), cover.MIS(g).Len()
			if mvc+mis != g.Size() {
				return rows, fmt.Errorf("Duality: m=%d: MVC=%d MIS=%d n=%d: %w", m, mvc, mis, g.Size(), ErrDualityViolated)
			}
			mvcSizes = append(mvcSizes, float64(mvc))
			misSizes = append(misSizes, float64(mis))
		}
		row := DualityRow{Edges: m, MVC: mean(mvcSizes), MIS: mean(misSizes)}
		row.Sum = row.MVC + row.MIS
		log.Debug("duality", "edges", m, "mvc", row.MVC, "mis", row.MIS)
		rows = append(rows, row)
	}

	return rows, nil
}

// WorstCase runs approx1 against MVC on every labelled graph with n nodes
// (n ≤ builder.MaxEnumerationNodes) and reports the ratio distribution.
// The worst ratio starts at 1, so WorstEdges stays nil unless approx1 is
// strictly suboptimal somewhere.
func WorstCase(ctx context.Context, n int) (*WorstCaseReport, error) {
	rep := &WorstCaseReport{Nodes: n, Worst: 1}

	var ctxErr error
	count, err := builder.AllGraphs(n, func(g *core.Graph) bool {
		if ctxErr = ctx.Err(); ctxErr != nil {
			return false
		}
		exact := cover.MVC(g)
		if exact.Len() == 0 {
			return true
		}
		r := cover.Ratio(cover.Approx1(g), exact)
		rep.Ratios = append(rep.Ratios, r)
		if r > rep.Worst {
			rep.Worst = r
			rep.WorstEdges = g.Edges()
		}

		return true
	})
	if err != nil {
		return nil, fmt.Errorf("WorstCase: %w", err)
	}
	if ctxErr != nil {
		return nil, ctxErr
	}
	rep.Graphs = count
	if len(rep.Ratios) > 0 {
		rep.Mean = stat.Mean(rep.Ratios, nil)
		rep.Optimal = floats.Count(func(r float64) bool { return r == 1 }, rep.Ratios)
	}

	return rep, nil
}
