// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/jordan/partition"
	"github.com/katalvlaran/jordan/sweep"
)

// errSelftest is returned when any documented example fails.
var errSelftest = errors.New("selftest failed")

// selftestCase is one documented (n, r, λ) example.
type selftestCase struct {
	n, r int
	p    partition.Partition
}

// selftestCases covers every splice case at least once.
var selftestCases = []selftestCase{
	{5, 2, partition.Partition{3, 2}},
	{5, 2, partition.Partition{4, 1}},
	{5, 2, partition.Partition{5}},
	{10, 4, partition.Partition{4, 4, 1, 1}},
	{6, 3, partition.Partition{5, 1}},
	{9, 3, partition.Partition{4, 4, 1}},
	{6, 4, partition.Partition{3, 3}},
	{5, 4, partition.Partition{3, 2}},
	{6, 3, partition.Partition{3, 3}},
	{4, 3, partition.Partition{4}},
	{6, 5, partition.Partition{3, 3}},
	{9, 4, partition.Partition{4, 4, 1}},
}

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Round-trip the documented examples",
	Args:  cobra.NoArgs,
	RunE:  runSelftest,
}

func runSelftest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, tc := range selftestCases {
		got, err := sweep.Check(tc.n, tc.r, tc.p)
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(out, "FAIL n=%d r=%d %v: %v\n", tc.n, tc.r, tc.p, err)
		case !got.Equal(tc.p):
			failed++
			fmt.Fprintf(out, "FAIL n=%d r=%d %v: got %v\n", tc.n, tc.r, tc.p, got)
		default:
			fmt.Fprintf(out, "ok   n=%d r=%d %v\n", tc.n, tc.r, tc.p)
		}
	}
	logger.Info("selftest finished",
		zap.Int("cases", len(selftestCases)),
		zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%d of %d cases: %w", failed, len(selftestCases), errSelftest)
	}

	return nil
}
