// SPDX-License-Identifier: MIT
// Package matrix provides exact products and powers of integer matrices.
//
// Purpose:
//   - Keep running products (X, X², X³, ...) in BigDense, a row-major buffer
//     of math/big integers, so entries may grow without bound while the
//     right factor stays a compact int64 *Dense.
//
// Notes:
//   - Nothing in this file can overflow; errors are shape and nil violations only.
//   - All kernels use central validators and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opLift     = "Lift"
	opMulBy    = "MulBy"
	opPower    = "Power"
	opIdentity = "Identity"
	opShift    = "Shift"
	opRank     = "Rank"
	opNullity  = "Nullity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addChecked returns x+y and false when the sum leaves the int64 range.
func addChecked(x, y int64) (int64, bool) {
	s := x + y
	if (x > 0 && y > 0 && s < 0) || (x < 0 && y < 0 && s >= 0) {
		return 0, false
	}

	return s, true
}

// BigDense is a row-major matrix of arbitrary-precision integers.
//   - r,c hold dimensions; data has length r*c (offset = i*c + j).
//   - Every cell is a distinct *big.Int owned by the matrix.
type BigDense struct {
	r, c int
	data []*big.Int
}

// Lift copies m into a fresh *BigDense.
//
// Errors:
//   - ErrNilMatrix (nil or typed-nil input).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Lift(m Matrix) (*BigDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opLift, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := &BigDense{r: rows, c: cols, data: make([]*big.Int, rows*cols)}
	d, isDense := m.(*Dense)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var v int64
			if isDense {
				v = d.data[i*cols+j]
			} else {
				var err error
				if v, err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opLift, err)
				}
			}
			out.data[i*cols+j] = big.NewInt(v)
		}
	}

	return out, nil
}

// Rows returns the row count.
func (b *BigDense) Rows() int { return b.r }

// Cols returns the column count.
func (b *BigDense) Cols() int { return b.c }

// At returns a copy of the entry at (row, col) or ErrOutOfRange.
func (b *BigDense) At(row, col int) (*big.Int, error) {
	if row < 0 || row >= b.r || col < 0 || col >= b.c {
		return nil, fmt.Errorf("BigDense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return new(big.Int).Set(b.data[row*b.c+col]), nil
}

// IsZero reports whether every entry is zero.
func (b *BigDense) IsZero() bool {
	for _, v := range b.data {
		if v.Sign() != 0 {
			return false
		}
	}

	return true
}

// Rank returns the exact rank of b; b itself is not modified.
func (b *BigDense) Rank() int {
	rows := make([][]*big.Int, b.r)
	for i := range rows {
		rows[i] = make([]*big.Int, b.c)
		for j := range rows[i] {
			rows[i][j] = new(big.Int).Set(b.data[i*b.c+j])
		}
	}

	return bareissRank(rows, b.r, b.c)
}

// Nullity returns Cols − Rank.
func (b *BigDense) Nullity() int { return b.c - b.Rank() }

// String renders rows like Dense.String.
func (b *BigDense) String() string {
	var sb strings.Builder
	for i := 0; i < b.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < b.c; j++ {
			sb.WriteString(b.data[i*b.c+j].String())
			if j+1 < b.c {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// MulBy replaces b with b × x in place (right multiplication by an int64 matrix).
// MAIN DESCRIPTION:
//   - Accumulator for power sequences X, X², X³, ...: the accumulator grows
//     in precision while x stays compact.
//
// Implementation:
//   - Stage 1: validate shapes; x must be square with x.Rows == b.Cols.
//   - Stage 2: for each row i accumulate row_i(b) × x into one scratch row of
//     big.Int, skipping zero entries of b and of x, then swap it in.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch. On error b is unchanged.
//
// Complexity:
//   - Time O(r*n*n) big.Int ops (far less on sparse 0/1 inputs), Space O(n) scratch.
func (b *BigDense) MulBy(x *Dense) error {
	if b == nil || x == nil {
		return matrixErrorf(opMulBy, ErrNilMatrix)
	}
	if b.c != x.r || x.r != x.c {
		return matrixErrorf(opMulBy, ErrDimensionMismatch)
	}
	n := x.c
	scratch := make([]*big.Int, n)
	var term big.Int
	for i := 0; i < b.r; i++ {
		for j := range scratch {
			scratch[j] = new(big.Int)
		}
		row := b.data[i*b.c : (i+1)*b.c]
		for k, bv := range row {
			if bv.Sign() == 0 {
				continue // skip zero for performance
			}
			for j, xv := range x.data[k*n : (k+1)*n] {
				if xv == 0 {
					continue
				}
				term.SetInt64(xv)
				term.Mul(&term, bv)
				scratch[j].Add(scratch[j], &term)
			}
		}
		copy(row, scratch)
	}

	return nil
}

// Power returns m^k exactly. k == 0 yields the identity.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNegativeExponent.
//
// Complexity:
//   - Time O(k*n³) worst case; zero-skips make nilpotent 0/1 inputs far cheaper.
//
// AI-Hints:
//   - Power(X, k).IsZero() checks a claimed nilpotency index without any
//     risk of int64 overflow.
func Power(m *Dense, k int) (*BigDense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if k < 0 {
		return nil, matrixErrorf(opPower, ErrNegativeExponent)
	}
	id, err := NewIdentity(m.r)
	if err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	acc, err := Lift(id)
	if err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	for p := 1; p <= k; p++ {
		if err = acc.MulBy(m); err != nil {
			return nil, matrixErrorf(opPower, fmt.Errorf("k=%d: %w", p, err))
		}
	}

	return acc, nil
}
