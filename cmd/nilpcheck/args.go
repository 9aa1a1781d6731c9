// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/jordan/partition"
)

// parseInts converts CLI arguments into ints, naming the first bad one.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q) is not an integer", i+1, a)
		}
		out[i] = v
	}

	return out, nil
}

// parsePartition parses the parts of a partition.
func parsePartition(args []string) (partition.Partition, error) {
	parts, err := parseInts(args)
	if err != nil {
		return nil, err
	}

	return partition.Partition(parts), nil
}
