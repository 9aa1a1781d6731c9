// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/jordan/completion"
	"github.com/katalvlaran/jordan/jordan"
	"github.com/katalvlaran/jordan/matrix"
)

// defaultCompleteMaxN bounds the dense n×n allocation made by complete.
const defaultCompleteMaxN = 1024

var (
	completeVerify bool
	completeMaxN   int

	errTooLarge    = errors.New("matrix size exceeds --max-n")
	errIndexPowers = errors.New("powers disagree with the nilpotency index")
)

// =============================================================================
// COMPLETE COMMAND - print N_r + X of a given Jordan type
// =============================================================================

var completeCmd = &cobra.Command{
	Use:   "complete N R PART...",
	Short: "Print an upper nilpotent completion of type PART...",
	Long: `Prints the n×n matrix N_r + X whose Jordan type is the given partition.
Parts must be non-increasing, positive, sum to N, and number at most R.
N may not exceed --max-n, since the matrix is printed densely.
With --verify the recovered type and index are printed, and X^index = 0
with X^(index-1) ≠ 0 is confirmed by exact powers.`,
	Example: "  nilpcheck complete 5 2 4 1",
	Args:    cobra.MinimumNArgs(3),
	RunE:    runComplete,
}

func init() {
	completeCmd.Flags().BoolVar(&completeVerify, "verify", false, "Recover and print the Jordan type of the result")
	completeCmd.Flags().IntVar(&completeMaxN, "max-n", defaultCompleteMaxN, "Refuse N above this bound")
}

func runComplete(cmd *cobra.Command, args []string) error {
	nr, err := parseInts(args[:2])
	if err != nil {
		return err
	}
	p, err := parsePartition(args[2:])
	if err != nil {
		return err
	}

	n, r := nr[0], nr[1]
	if n > completeMaxN {
		return fmt.Errorf("n=%d, max %d: %w", n, completeMaxN, errTooLarge)
	}
	gamma, err := completion.Complete(n, r, p, completion.WithOnSplice(func(s completion.Splice) {
		logger.Debug("splice",
			zap.Stringer("case", s.Case),
			zap.Int("row", s.Row),
			zap.Int("col", s.Col))
	}))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, gamma)
	if completeVerify {
		typ, err := jordan.Type(gamma)
		if err != nil {
			return err
		}
		idx, err := jordan.Index(gamma)
		if err != nil {
			return err
		}
		if err = checkIndexPowers(gamma, idx); err != nil {
			return err
		}
		fmt.Fprintf(out, "type: %v\nindex: %d\n", typ, idx)
	}

	return nil
}

// checkIndexPowers confirms that idx is the least k with gamma^k = 0.
func checkIndexPowers(gamma *matrix.Dense, idx int) error {
	below, err := matrix.Power(gamma, idx-1)
	if err != nil {
		return err
	}
	if below.IsZero() {
		return fmt.Errorf("power %d vanishes: %w", idx-1, errIndexPowers)
	}
	if err = below.MulBy(gamma); err != nil {
		return err
	}
	if !below.IsZero() {
		return fmt.Errorf("power %d is non-zero: %w", idx, errIndexPowers)
	}
	logger.Debug("index confirmed by powers", zap.Int("index", idx))

	return nil
}
