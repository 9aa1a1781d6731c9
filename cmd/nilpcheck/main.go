// SPDX-License-Identifier: MIT

// Package main implements nilpcheck, a small CLI around the completion and
// jordan packages: build completions, conjugate partitions, replay the
// documented examples and run exhaustive round-trip sweeps.
//
// Usage:
//
//	nilpcheck complete 5 2 4 1
//	nilpcheck conjugate 5 4 4 2 1 1
//	nilpcheck selftest
//	nilpcheck sweep --max-n 12 --workers 8
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nilpcheck",
	Short: "Explicit upper nilpotent completions and Jordan-type checks",
	Long: `nilpcheck builds matrices N_r + X (X strictly upper triangular) that are
nilpotent of a prescribed Jordan type, and verifies them by recovering the
type from exact matrix-power ranks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return nil // injected (tests)
		}
		config := zap.NewProductionConfig()
		if verbose {
			config = zap.NewDevelopmentConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging")

	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(conjugateCmd)
	rootCmd.AddCommand(selftestCmd)
	rootCmd.AddCommand(sweepCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
