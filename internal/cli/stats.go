package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vvka-141/dirtree/internal/metrics"
	"github.com/vvka-141/dirtree/pkg/dirtree"
)

var statsFlags = newTreeFlags()

var statsCmd = &cobra.Command{
	Use:   "stats <root>",
	Short: "Walk a tree and print walk metrics in Prometheus text format",
	Long: `Walk the tree once through the metrics collector and print the resulting
counters: entries visited by kind, bytes visited, walks by outcome and the
walk duration histogram.

Example:
  dirtree stats . --exclude '.git/**' --prune`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	addTreeFlags(statsCmd, &statsFlags)
}

func runStats(cmd *cobra.Command, args []string) error {
	logger, flush, err := newLogger()
	if err != nil {
		return err
	}
	defer flush()

	tree, _, err := buildTree(args[0], statsFlags, logger)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	if err := collector.Walk(dirtree.VisitorFuncs{}, tree.Visit); err != nil {
		return err
	}
	return metrics.WriteText(cmd.OutOrStdout(), reg)
}
