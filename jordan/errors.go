// SPDX-License-Identifier: MIT
// Package: jordan
//
// errors.go: sentinel errors and the DomainError type.

package jordan

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/jordan/matrix"
)

// ErrNotNilpotent is matched (errors.Is) by every *DomainError.
var ErrNotNilpotent = errors.New("jordan: matrix is not nilpotent")

// DomainError reports a matrix outside the verifier's domain.
// Matrix is an independent copy of the offending input.
type DomainError struct {
	Matrix *matrix.Dense
}

// Error renders the offending matrix below the message.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%v:\n%s", ErrNotNilpotent, e.Matrix)
}

// Unwrap exposes ErrNotNilpotent to errors.Is.
func (e *DomainError) Unwrap() error { return ErrNotNilpotent }
