// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jordan/partition"
)

var conjugateCmd = &cobra.Command{
	Use:     "conjugate PART...",
	Short:   "Print the conjugate of a partition",
	Example: "  nilpcheck conjugate 5 4 4 2 1 1",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parsePartition(args)
		if err != nil {
			return err
		}
		if err = p.Validate(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), partition.Conjugate(p))

		return nil
	},
}
