package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	verbose    bool
	latex      bool
	configFile string
}

// newRootCmd builds a fresh command tree. Flag state lives in the returned
// commands, so two trees never share values.
func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "coverlab",
		Short: "Vertex cover experiments on small random graphs",
		Long: `coverlab - experiments around minimum vertex cover, maximum
independent set and three vertex cover heuristics.

Each experiment reads its parameters from flags, optionally seeded from a
YAML file given with --config. Flags that are set explicitly win over the file.
Experiments that solve the exact cover accept at most 20 nodes.

Example config (approx.yaml):
  nodes: 8
  runs: 1000
  seed: 7
  edge_start: 1
  edge_step: 2
  node_counts: [6, 8, 10]
  node_runs: 500

Examples:
  coverlab connectivity --nodes 100 --runs 100
  coverlab approx --config approx.yaml --latex
  coverlab worstcase --nodes 5`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug-level progress on stderr")
	root.PersistentFlags().BoolVar(&opts.latex, "latex", false, "print rows as LaTeX tabular lines")
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "f", "", "YAML experiment file")

	root.AddCommand(
		newConnectivityCmd(opts),
		newApproxCmd(opts),
		newDualityCmd(opts),
		newWorstCaseCmd(),
	)

	return root
}

// Execute runs the root command. An interrupt cancels the running experiment.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}
