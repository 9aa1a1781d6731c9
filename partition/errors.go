// SPDX-License-Identifier: MIT
// Package: partition
//
// errors.go: sentinel errors for the partition package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` (index, value, expected sum).

package partition

import "errors"

// ErrEmpty indicates a partition with no parts where at least one is required.
var ErrEmpty = errors.New("partition: no parts")

// ErrNotDecreasing indicates that some part is larger than its predecessor.
var ErrNotDecreasing = errors.New("partition: parts must be non-increasing")

// ErrNonPositive indicates that the smallest part is zero or negative.
var ErrNonPositive = errors.New("partition: parts must be positive")

// ErrSumMismatch indicates that the parts do not add up to the expected n.
var ErrSumMismatch = errors.New("partition: parts do not sum to n")

// ErrTooManyParts indicates more parts than the caller permits.
var ErrTooManyParts = errors.New("partition: too many parts")
