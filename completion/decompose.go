// SPDX-License-Identifier: MIT
// Package: completion
//
// decompose.go: classify the parts of λ against ⌊n/r⌋ and ⌈n/r⌉.
//
// Contract:
//   - 1 < n, 1 ≤ r < n, λ a partition of n with at most r parts.
//   - Pure function of (n, r, λ); λ is never mutated.
//
// Complexity:
//   - Time O(r), Space O(r).

package completion

import (
	"fmt"

	"github.com/katalvlaran/jordan/partition"
)

const methodDecompose = "Decompose"

// Decompose validates (n, r, λ) and returns the splicer's initial state.
// MAIN DESCRIPTION:
//   - Parts > ⌈n/r⌉ go to Tall, parts < ⌊n/r⌋ go to Short; parts equal to
//     ⌊n/r⌋ or (when r ∤ n) ⌊n/r⌋+1 are only counted.
//   - N_r already provides r − n mod r columns of height ⌊n/r⌋ and n mod r of
//     height ⌈n/r⌉. Counted parts beyond those supplies are appended to Short
//     (floor) or Tall (ceiling) so the splicer builds them explicitly.
//   - Stock = min(FloorParts, r − n mod r): the floor columns already matching
//     a part are skipped; Cion = Stock + 1.
//
// Errors:
//   - ErrInvalidInput wrapping ErrRankOutOfRange or a partition sentinel.
func Decompose(n, r int, p partition.Partition) (Decomposition, error) {
	if err := validateInput(methodDecompose, n, r, p); err != nil {
		return Decomposition{}, err
	}

	return decompose(n, r, p), nil
}

// validateInput runs every precondition eagerly, before any allocation of the result.
func validateInput(method string, n, r int, p partition.Partition) error {
	if n <= 1 || r < 1 || r >= n {
		return invalidInputf(method, fmt.Errorf("n=%d r=%d: %w", n, r, ErrRankOutOfRange))
	}
	if err := p.ValidateFor(n, r); err != nil {
		return invalidInputf(method, err)
	}

	return nil
}

// decompose assumes validated input.
func decompose(n, r int, p partition.Partition) Decomposition {
	floor, rem := n/r, n%r
	ceiling := floor
	if rem != 0 {
		ceiling++
	}
	d := Decomposition{N: n, R: r, Floor: floor, Ceiling: ceiling}

	for _, part := range p {
		switch {
		case part > ceiling:
			d.Tall = append(d.Tall, part)
		case part == floor:
			d.FloorParts++
		case rem != 0 && part == floor+1:
			d.CeilingParts++
		case part < floor:
			d.Short = append(d.Short, part)
		}
	}

	shortCols := r - rem // columns of height floor in N_r
	for k := d.FloorParts - shortCols; k > 0; k-- {
		d.Short = append(d.Short, floor)
	}
	for k := d.CeilingParts - rem; k > 0; k-- {
		d.Tall = append(d.Tall, floor+1)
	}

	d.Stock = min(d.FloorParts, shortCols)
	d.Cion = d.Stock + 1

	return d
}
