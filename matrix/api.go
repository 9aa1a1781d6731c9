// SPDX-License-Identifier: MIT
// Package matrix: public constructors and facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common matrices.
//   - Avoid any logic duplication: facades delegate to the canonical kernels.
//
// AI-Hints:
//   - NewShift(n, r) is the base N_r used by nilpotent completions.
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// NewShift returns N_r: the n×n matrix with ones exactly on the r-th
// subdiagonal (entries (row, col) with row − col == r) and zeros elsewhere.
// N_r maps basis vector e_c to e_{c+r}, so its Jordan type has n mod r parts
// of size ⌈n/r⌉ and r − n mod r parts of size ⌊n/r⌋.
//
// Errors:
//   - ErrInvalidDimensions when n ≤ 0 or r is outside [0, n).
//
// Complexity: O(n^2) zeroing + O(n−r) writes.
func NewShift(n, r int) (*Dense, error) {
	if r < 0 || r >= n {
		return nil, matrixErrorf(opShift, ErrInvalidDimensions)
	}
	s, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opShift, err)
	}
	for col := 0; col+r < n; col++ {
		s.data[(col+r)*n+col] = 1
	}

	return s, nil
}
