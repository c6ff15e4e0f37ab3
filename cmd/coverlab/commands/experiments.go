package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcover/experiment"
)

func newConnectivityCmd(opts *options) *cobra.Command {
	var flags sweepFlags
	cmd := &cobra.Command{
		Use:   "connectivity",
		Short: "Probability that a random G(n, m) is connected",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd, opts.configFile, experiment.DefaultConnectivityConfig())
			if err != nil {
				return err
			}
			start := time.Now()
			rows, err := experiment.Connectivity(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			slog.Info("connectivity finished", "nodes", cfg.Nodes, "points", len(rows), "elapsed", time.Since(start))

			return printRows(cmd, opts, experiment.ConnectivityHeader, rows)
		},
	}
	flags.bind(cmd, experiment.DefaultConnectivityConfig())

	return cmd
}

func newApproxCmd(opts *options) *cobra.Command {
	var flags sweepFlags
	cmd := &cobra.Command{
		Use:   "approx",
		Short: "Mean approximation ratio of approx1/2/3 against the exact cover",
		Long: `Mean |approx_i| / |MVC| per edge count on random graphs, followed by
the same ratios at 50% density for every --node-counts entry.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd, opts.configFile, experiment.DefaultApproxConfig())
			if err != nil {
				return err
			}
			start := time.Now()
			rows, err := experiment.Approximations(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			slog.Info("approximations finished", "nodes", cfg.Nodes, "points", len(rows), "elapsed", time.Since(start))
			if err = printRows(cmd, opts, experiment.RatioHeader, rows); err != nil {
				return err
			}
			if len(cfg.NodeCounts) == 0 {
				return nil
			}

			sweep, err := experiment.NodeSweep(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if _, err = fmt.Fprintln(cmd.OutOrStdout()); err != nil {
				return err
			}
			return printRows(cmd, opts, experiment.NodeRatioHeader, sweep)
		},
	}
	flags.bind(cmd, experiment.DefaultApproxConfig())

	return cmd
}

func newDualityCmd(opts *options) *cobra.Command {
	var flags sweepFlags
	cmd := &cobra.Command{
		Use:   "duality",
		Short: "Check |MVC| + |MIS| = n on random graphs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd, opts.configFile, experiment.DefaultDualityConfig())
			if err != nil {
				return err
			}
			rows, err := experiment.Duality(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			slog.Info("duality holds", "nodes", cfg.Nodes, "points", len(rows), "runs", cfg.Runs)

			return printRows(cmd, opts, experiment.DualityHeader, rows)
		},
	}
	flags.bind(cmd, experiment.DefaultDualityConfig())

	return cmd
}

func newWorstCaseCmd() *cobra.Command {
	var nodes int
	cmd := &cobra.Command{
		Use:   "worstcase",
		Short: "Exhaustive approx1 / MVC ratio over every labelled graph on n nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			rep, err := experiment.WorstCase(cmd.Context(), nodes)
			if err != nil {
				return err
			}
			slog.Info("worst case finished", "nodes", rep.Nodes, "graphs", rep.Graphs, "elapsed", time.Since(start))

			return experiment.WriteSummary(cmd.OutOrStdout(), rep)
		},
	}
	cmd.Flags().IntVarP(&nodes, "nodes", "n", 5, "nodes per graph (at most 7)")

	return cmd
}

// printRows writes rows to the command's output as a table or LaTeX lines.
func printRows[R experiment.Row](cmd *cobra.Command, opts *options, header []string, rows []R) error {
	if opts.latex {
		return experiment.WriteLaTeX(cmd.OutOrStdout(), rows)
	}

	return experiment.WriteTable(cmd.OutOrStdout(), header, rows)
}
