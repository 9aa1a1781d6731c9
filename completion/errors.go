// SPDX-License-Identifier: MIT
// Package: completion
//
// errors.go: sentinel errors for the completion package.
//
// Error policy:
//   • Every rejected input matches ErrInvalidInput via errors.Is.
//   • The concrete cause is wrapped alongside (ErrRankOutOfRange or one of the
//     partition.Err* sentinels), so callers can branch on either level.
//   • Internal invariant failures panic (see invariantf); they are never
//     returned as errors because valid input cannot trigger them.

package completion

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every validation failure of Complete/Decompose.
var ErrInvalidInput = errors.New("completion: invalid input")

// ErrRankOutOfRange indicates that n ≤ 1 or r is outside [1, n).
var ErrRankOutOfRange = errors.New("completion: require 1 <= r < n")

// invalidInputf wraps cause so that both ErrInvalidInput and cause match errors.Is.
func invalidInputf(method string, cause error) error {
	return fmt.Errorf("%s: %w: %w", method, ErrInvalidInput, cause)
}

// invariantf aborts on a broken splice invariant (programmer error, never user input).
func invariantf(format string, args ...any) {
	panic(fmt.Sprintf("completion: invariant violated: "+format, args...))
}
