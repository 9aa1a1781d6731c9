// SPDX-License-Identifier: MIT
// Package: jordan
//
// jordan.go: nullity sequence and Jordan type of nilpotent matrices.
//
// Contract:
//   - Input must be a non-nil square *matrix.Dense; it is never mutated.
//   - One accumulator (the running power) is allocated and multiplied in place;
//     it holds math/big entries, so no input is rejected for its magnitude.
//
// Complexity:
//   - At most n multiplications and n+1 exact ranks: O(n⁴) big-integer work
//     in the worst case, far less for sparse 0/1 inputs.

package jordan

import (
	"fmt"

	"github.com/katalvlaran/jordan/matrix"
	"github.com/katalvlaran/jordan/partition"
)

const (
	opType            = "Type"
	opNullitySequence = "NullitySequence"
)

// NullitySequence returns the nullity increments of x:
// [nullity(X), nullity(X²)−nullity(X), ...], stopping at the first power
// whose nullity reaches n. The sequence is non-increasing and sums to n.
// MAIN DESCRIPTION:
//   - Powers are built by iterative right multiplication of a single
//     matrix.BigDense accumulator; the loop stops at power n at the latest.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (wrapped).
//   - *DomainError (matches ErrNotNilpotent) when X^n ≠ 0.
func NullitySequence(x *matrix.Dense) ([]int, error) {
	if err := matrix.ValidateSquareNonNil(x); err != nil {
		return nil, fmt.Errorf("%s: %w", opNullitySequence, err)
	}
	n := x.Rows()

	acc, err := matrix.Lift(x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNullitySequence, err)
	}
	prev := acc.Nullity()
	increments := []int{prev}

	var cur int
	power := 1
	for power <= n && prev < n {
		power++
		if err = acc.MulBy(x); err != nil {
			return nil, fmt.Errorf("%s: power %d: %w", opNullitySequence, power, err)
		}
		cur = acc.Nullity()
		increments = append(increments, cur-prev)
		prev = cur
	}
	if power > n {
		return nil, &DomainError{Matrix: x.Clone().(*matrix.Dense)}
	}

	return increments, nil
}

// Type returns the Jordan type of the nilpotent matrix x: its block sizes in
// non-increasing order, summing to the size of x.
//
// Example:
//
//	Type(5×5 zero matrix) == [1, 1, 1, 1, 1]
//
// Errors:
//   - as NullitySequence; the DomainError is returned unwrapped so callers
//     can errors.As it directly.
func Type(x *matrix.Dense) (partition.Partition, error) {
	inc, err := NullitySequence(x)
	if err != nil {
		return nil, err
	}

	return partition.Conjugate(inc), nil
}
