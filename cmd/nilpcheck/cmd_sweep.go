// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jordan/sweep"
)

var (
	sweepConfigPath string
	sweepMinN       int
	sweepMaxN       int
	sweepWorkers    int
	sweepFailFast   bool
	sweepTrace      bool
)

// =============================================================================
// SWEEP COMMAND - exhaustive round-trip verification
// =============================================================================

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Round-trip every (n, r, λ) in a range of sizes",
	Long: `Builds the completion of every partition λ of n with at most r parts,
for every 1 ≤ r < n and min-n ≤ n ≤ max-n, and checks that its Jordan type
is λ. Flags override values read from --config.`,
	Example: "  nilpcheck sweep --max-n 12 --workers 8",
	Args:    cobra.NoArgs,
	RunE:    runSweep,
}

func init() {
	defaults := sweep.DefaultConfig()
	sweepCmd.Flags().StringVar(&sweepConfigPath, "config", "", "YAML config file")
	sweepCmd.Flags().IntVar(&sweepMinN, "min-n", defaults.MinN, "Smallest matrix size")
	sweepCmd.Flags().IntVar(&sweepMaxN, "max-n", defaults.MaxN, "Largest matrix size")
	sweepCmd.Flags().IntVar(&sweepWorkers, "workers", defaults.Workers, "Concurrent (n, r) jobs")
	sweepCmd.Flags().BoolVar(&sweepFailFast, "fail-fast", defaults.FailFast, "Stop on the first failure")
	sweepCmd.Flags().BoolVar(&sweepTrace, "trace", false, "Log every splice at debug level")
}

// sweepConfig merges --config with explicitly set flags.
func sweepConfig(cmd *cobra.Command) (sweep.Config, error) {
	cfg := sweep.DefaultConfig()
	if sweepConfigPath != "" {
		var err error
		if cfg, err = sweep.LoadConfig(sweepConfigPath); err != nil {
			return sweep.Config{}, err
		}
	}
	flags := cmd.Flags()
	if sweepConfigPath == "" || flags.Changed("min-n") {
		cfg.MinN = sweepMinN
	}
	if sweepConfigPath == "" || flags.Changed("max-n") {
		cfg.MaxN = sweepMaxN
	}
	if sweepConfigPath == "" || flags.Changed("workers") {
		cfg.Workers = sweepWorkers
	}
	if sweepConfigPath == "" || flags.Changed("fail-fast") {
		cfg.FailFast = sweepFailFast
	}
	if sweepConfigPath == "" || flags.Changed("trace") {
		cfg.TraceSplices = sweepTrace
	}

	return cfg, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := sweepConfig(cmd)
	if err != nil {
		return err
	}

	rep, err := sweep.Run(cmd.Context(), cfg, logger)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s: %d triples, %d splices in %s\n", rep.RunID, rep.Checked, rep.Splices, rep.Elapsed)
	labels := make([]string, 0, len(rep.Cases))
	for k := range rep.Cases {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	for _, k := range labels {
		fmt.Fprintf(out, "  %-12s %d\n", k, rep.Cases[k])
	}
	for _, f := range rep.Failures {
		fmt.Fprintf(out, "FAIL n=%d r=%d %v: got %v %s\n", f.N, f.R, f.Partition, f.Got, f.Err)
	}

	return err
}
