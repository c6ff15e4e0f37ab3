package experiment

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvcover/core"
)

// ErrInvalidConfig is returned when a Config cannot describe a run.
var ErrInvalidConfig = errors.New("experiment: invalid config")

// MaxExactNodes bounds the node count of every driver that solves MVC
// exactly (Approximations, NodeSweep, Duality). One exact solve costs
// O(2^n · E) and cannot be interrupted mid-sample.
const MaxExactNodes = 20

// Config parameterises the sampling drivers. Field tags match the YAML
// experiment files read by coverlab.
type Config struct {
	// Nodes per random graph.
	Nodes int `yaml:"nodes"`

	// Runs is the number of random graphs drawn per edge count.
	Runs int `yaml:"runs"`

	// Seed feeds the single RNG shared by the generator and the heuristics.
	Seed int64 `yaml:"seed"`

	// Edge counts swept: EdgeStart, EdgeStart+EdgeStep, … ≤ EdgeStop.
	// EdgeStop < 0 means n(n-1)/2.
	EdgeStart int `yaml:"edge_start"`
	EdgeStop  int `yaml:"edge_stop"`
	EdgeStep  int `yaml:"edge_step"`

	// NodeCounts is the sweep used by NodeSweep.
	NodeCounts []int `yaml:"node_counts"`

	// NodeRuns is the number of graphs drawn per node count in NodeSweep.
	// Zero means Runs.
	NodeRuns int `yaml:"node_runs"`

	// Logger receives progress records; nil discards them.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultConnectivityConfig: 100 nodes, m = 0..500 step 25, 100 runs.
func DefaultConnectivityConfig() Config {
	return Config{Nodes: 100, Runs: 100, Seed: 1, EdgeStart: 0, EdgeStop: 500, EdgeStep: 25}
}

// DefaultApproxConfig: 8 nodes, m = 1..28 step 2, 1000 runs;
// node sweep 6, 8, 10 with 500 runs each.
func DefaultApproxConfig() Config {
	return Config{
		Nodes: 8, Runs: 1000, Seed: 1,
		EdgeStart: 1, EdgeStop: -1, EdgeStep: 2,
		NodeCounts: []int{6, 8, 10}, NodeRuns: 500,
	}
}

// DefaultDualityConfig: 8 nodes, m = 0..28 step 2, 100 runs.
func DefaultDualityConfig() Config {
	return Config{Nodes: 8, Runs: 100, Seed: 1, EdgeStart: 0, EdgeStop: -1, EdgeStep: 2}
}

// Validate reports the first meaningless field.
func (c Config) Validate() error {
	switch {
	case c.Nodes < 0:
		return fmt.Errorf("%w: nodes=%d < 0", ErrInvalidConfig, c.Nodes)
	case c.Runs <= 0:
		return fmt.Errorf("%w: runs=%d ≤ 0", ErrInvalidConfig, c.Runs)
	case c.EdgeStart < 0:
		return fmt.Errorf("%w: edge_start=%d < 0", ErrInvalidConfig, c.EdgeStart)
	case c.EdgeStep <= 0:
		return fmt.Errorf("%w: edge_step=%d ≤ 0", ErrInvalidConfig, c.EdgeStep)
	case c.NodeRuns < 0:
		return fmt.Errorf("%w: node_runs=%d < 0", ErrInvalidConfig, c.NodeRuns)
	}
	for _, n := range c.NodeCounts {
		if n < 0 {
			return fmt.Errorf("%w: node_counts contains %d", ErrInvalidConfig, n)
		}
	}

	return nil
}

// validateExact runs Validate and rejects node counts above MaxExactNodes.
func (c Config) validateExact(nodes ...int) error {
	if err := c.Validate(); err != nil {
		return err
	}
	for _, n := range nodes {
		if n > MaxExactNodes {
			return fmt.Errorf("%w: nodes=%d > %d for exact cover", ErrInvalidConfig, n, MaxExactNodes)
		}
	}

	return nil
}

// nodeRuns is NodeRuns, or Runs when unset.
func (c Config) nodeRuns() int {
	if c.NodeRuns == 0 {
		return c.Runs
	}

	return c.NodeRuns
}

// EdgeCounts expands the edge sweep for c.Nodes. Counts above n(n-1)/2 are
// dropped, since the generator would clamp them to the complete graph.
func (c Config) EdgeCounts() []int {
	stop := c.EdgeStop
	if limit := core.MaxEdges(c.Nodes); stop < 0 || stop > limit {
		stop = limit
	}
	var out []int
	for m := c.EdgeStart; m <= stop; m += c.EdgeStep {
		out = append(out, m)
	}

	return out
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return c.Logger
}
