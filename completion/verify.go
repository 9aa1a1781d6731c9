// SPDX-License-Identifier: MIT
// Package: completion
//
// verify.go: structural check of a completion's shape.

package completion

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/jordan/matrix"
)

// ErrShape indicates a matrix that is not of the form N_r + (strictly upper triangular).
var ErrShape = errors.New("completion: not of the form N_r + strictly upper triangular")

// VerifyShape checks that m is square, has ones on the r-th subdiagonal and
// zeros everywhere else on or below the main diagonal.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare (wrapped).
//   - ErrShape wrapped with the first offending coordinate (row-major order).
//
// Complexity: O(n²).
func VerifyShape(m *matrix.Dense, r int) error {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return fmt.Errorf("VerifyShape: %w", err)
	}
	var bad error
	m.Do(func(i, j int, v int64) bool {
		if i < j {
			return true // strictly upper part is free
		}
		want := int64(0)
		if i-j == r {
			want = 1
		}
		if v != want {
			bad = fmt.Errorf("VerifyShape: entry (%d,%d) = %d, want %d: %w", i, j, v, want, ErrShape)
			return false
		}
		return true
	})

	return bad
}
