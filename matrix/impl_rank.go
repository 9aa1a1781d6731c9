// SPDX-License-Identifier: MIT
// Package matrix - exact rank of integer matrices.
//
// Purpose:
//   - Compute rank without floating point: fraction-free Gaussian elimination
//     (Bareiss) over math/big so that intermediate minors never overflow.
//
// Determinism:
//   - Pivot choice is the first non-zero entry at or below the current row in
//     the current column; loops are fixed i→j.
//
// Complexity quicksheet:
//   - Rank / Nullity: O(min(r,c)·r·c) big-integer operations.

package matrix

import "math/big"

// Rank returns the exact rank of m over the rationals.
// MAIN DESCRIPTION:
//   - Bareiss elimination: after step k every active entry equals a (k+1)×(k+1)
//     minor of m, so the division by the previous pivot is always exact.
//
// Implementation:
//   - Stage 1: ValidateNotNil; Lift entries into a BigDense, copied into rows.
//   - Stage 2: for each column, find a pivot row; skip the column when none.
//   - Stage 3: a[i][j] = (p·a[i][j] − a[i][col]·a[piv][j]) / prev for rows below.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(min(r,c)·r·c) big.Int ops, Space O(r·c).
//
// AI-Hints:
//   - Zero rows short-circuit cheaply; shift-like 0/1 matrices reduce in near-linear time per column.
func Rank(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	b, err := Lift(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return b.Rank(), nil
}

// bareissRank eliminates a in place and returns its rank.
func bareissRank(a [][]*big.Int, rows, cols int) int {
	var (
		rank       int
		prev       = big.NewInt(1)
		left, rght big.Int
	)
	for col := 0; col < cols && rank < rows; col++ {
		// Stage 2: pivot search.
		piv := -1
		for i := rank; i < rows; i++ {
			if a[i][col].Sign() != 0 {
				piv = i
				break
			}
		}
		if piv < 0 {
			continue // column is dependent on the pivots so far
		}
		a[rank], a[piv] = a[piv], a[rank]

		// Stage 3: fraction-free elimination below the pivot.
		p := a[rank][col]
		for i := rank + 1; i < rows; i++ {
			f := a[i][col]
			for j := col + 1; j < cols; j++ {
				left.Mul(p, a[i][j])
				rght.Mul(f, a[rank][j])
				a[i][j].Sub(&left, &rght)
				a[i][j].Quo(a[i][j], prev)
			}
			f.SetInt64(0)
		}
		prev = p
		rank++
	}

	return rank
}

// Nullity returns Cols(m) − Rank(m) (rank–nullity theorem).
// Errors: ErrNilMatrix.
func Nullity(m Matrix) (int, error) {
	rk, err := Rank(m)
	if err != nil {
		return 0, matrixErrorf(opNullity, err)
	}

	return m.Cols() - rk, nil
}
