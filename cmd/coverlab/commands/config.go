package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcover/experiment"
)

// sweepFlags are the per-command sampling flags.
type sweepFlags struct {
	nodes, runs               int
	seed                      int64
	edgeStart, edgeStop, step int
	nodeCounts                []int
	nodeRuns                  int
}

// bind registers the sweep flags on cmd with defaults taken from def.
func (f *sweepFlags) bind(cmd *cobra.Command, def experiment.Config) {
	fs := cmd.Flags()
	fs.IntVarP(&f.nodes, "nodes", "n", def.Nodes, "nodes per graph")
	fs.IntVarP(&f.runs, "runs", "r", def.Runs, "graphs sampled per data point")
	fs.Int64Var(&f.seed, "seed", def.Seed, "RNG seed")
	fs.IntVar(&f.edgeStart, "edge-start", def.EdgeStart, "first edge count")
	fs.IntVar(&f.edgeStop, "edge-stop", def.EdgeStop, "last edge count (-1: n(n-1)/2)")
	fs.IntVar(&f.step, "edge-step", def.EdgeStep, "edge count increment")
	fs.IntSliceVar(&f.nodeCounts, "node-counts", def.NodeCounts, "node counts for the density sweep")
	fs.IntVar(&f.nodeRuns, "node-runs", def.NodeRuns, "graphs sampled per node count (0: --runs)")
}

// resolve builds the run config: defaults, then the YAML file, then any
// flag the user set explicitly.
func (f *sweepFlags) resolve(cmd *cobra.Command, configFile string, def experiment.Config) (experiment.Config, error) {
	cfg := def
	if configFile != "" {
		if err := loadConfig(configFile, &cfg); err != nil {
			return cfg, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("nodes") {
		cfg.Nodes = f.nodes
	}
	if fs.Changed("runs") {
		cfg.Runs = f.runs
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("edge-start") {
		cfg.EdgeStart = f.edgeStart
	}
	if fs.Changed("edge-stop") {
		cfg.EdgeStop = f.edgeStop
	}
	if fs.Changed("edge-step") {
		cfg.EdgeStep = f.step
	}
	if fs.Changed("node-counts") {
		cfg.NodeCounts = f.nodeCounts
	}
	if fs.Changed("node-runs") {
		cfg.NodeRuns = f.nodeRuns
	}
	cfg.Logger = slog.Default()

	return cfg, cfg.Validate()
}

// loadConfig overlays the YAML file at path onto cfg.
func loadConfig(path string, cfg *experiment.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	return nil
}
