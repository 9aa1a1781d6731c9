// SPDX-License-Identifier: MIT
// Package: partition
//
// partition.go: the Partition type and its contract checks.
//
// Contract:
//   - Parts are positive and non-increasing.
//   - ValidateFor additionally pins the sum and bounds the number of parts.
//
// Complexity:
//   - All checks are a single O(len(p)) pass with no allocation.

package partition

import (
	"fmt"
	"strconv"
	"strings"
)

// Partition is a non-increasing sequence of positive integers.
type Partition []int

// Sum returns the integer being partitioned.
func (p Partition) Sum() int {
	s := 0
	for _, v := range p {
		s += v
	}

	return s
}

// Len returns the number of parts.
func (p Partition) Len() int { return len(p) }

// Clone returns an independent copy; nil stays nil.
func (p Partition) Clone() Partition {
	if p == nil {
		return nil
	}
	out := make(Partition, len(p))
	copy(out, p)

	return out
}

// Equal reports part-by-part equality. Nil and empty partitions are equal.
func (p Partition) Equal(q Partition) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// String renders the partition as "[5, 4, 4, 2, 1, 1]".
func (p Partition) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')

	return b.String()
}

// Validate checks the shape contract: at least one part, non-increasing, and
// a positive last (smallest) part. Violations are reported in that order.
//
// Errors:
//   - ErrEmpty, ErrNotDecreasing, ErrNonPositive (wrapped with the offending index).
func (p Partition) Validate() error {
	if len(p) == 0 {
		return ErrEmpty
	}
	for i := 0; i+1 < len(p); i++ {
		if p[i] < p[i+1] {
			return fmt.Errorf("part %d (%d) < part %d (%d): %w", i, p[i], i+1, p[i+1], ErrNotDecreasing)
		}
	}
	if last := p[len(p)-1]; last <= 0 {
		return fmt.Errorf("smallest part %d: %w", last, ErrNonPositive)
	}

	return nil
}

// ValidateFor checks that p is a partition of n with at most maxParts parts.
// The check order is: sum, emptiness, monotonicity, positivity, part count,
// so an empty partition of a positive n reports ErrSumMismatch.
//
// Errors:
//   - ErrSumMismatch, ErrEmpty, ErrNotDecreasing, ErrNonPositive, ErrTooManyParts.
func (p Partition) ValidateFor(n, maxParts int) error {
	if s := p.Sum(); s != n {
		return fmt.Errorf("sum %d, want %d: %w", s, n, ErrSumMismatch)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if len(p) > maxParts {
		return fmt.Errorf("%d parts, at most %d allowed: %w", len(p), maxParts, ErrTooManyParts)
	}

	return nil
}
