// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the exact big-integer kernels.
package matrix_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jordan/matrix"
)

// bigRows renders b as decimal strings, row by row, for literal comparisons.
func bigRows(t *testing.T, b *matrix.BigDense) [][]string {
	t.Helper()
	out := make([][]string, b.Rows())
	for i := range out {
		out[i] = make([]string, b.Cols())
		for j := range out[i] {
			v, err := b.At(i, j)
			require.NoError(t, err)
			out[i][j] = v.String()
		}
	}

	return out
}

// TestLift_DenseAndFallback copies entries on both code paths.
func TestLift_DenseAndFallback(t *testing.T) {
	a := mustRows(t, [][]int64{{1, -2, 0}, {0, math.MaxInt64, 3}})
	want := [][]string{{"1", "-2", "0"}, {"0", "9223372036854775807", "3"}}

	b, err := matrix.Lift(a) // *Dense fast path
	require.NoError(t, err)
	require.Equal(t, want, bigRows(t, b))

	b, err = matrix.Lift(hide{a}) // At-based fallback
	require.NoError(t, err)
	require.Equal(t, want, bigRows(t, b))

	var typedNil *matrix.Dense
	_, err = matrix.Lift(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestBigDense_At returns copies and bounds-checks.
func TestBigDense_At(t *testing.T) {
	b, err := matrix.Lift(mustRows(t, [][]int64{{7}}))
	require.NoError(t, err)

	v, err := b.At(0, 0)
	require.NoError(t, err)
	v.SetInt64(99) // mutating the copy leaves b untouched
	again, _ := b.At(0, 0)
	require.Equal(t, int64(7), again.Int64())

	_, err = b.At(1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestMulBy_Product compares against a hand-computed product.
func TestMulBy_Product(t *testing.T) {
	acc, err := matrix.Lift(mustRows(t, [][]int64{{1, 2, 0}, {0, -1, 3}}))
	require.NoError(t, err)
	x := mustRows(t, [][]int64{{2, 1, 0}, {0, 4, 0}, {5, -2, 1}})

	require.NoError(t, acc.MulBy(x))
	require.Equal(t, [][]string{{"2", "9", "0"}, {"15", "-10", "3"}}, bigRows(t, acc))
	require.Equal(t, "[2, 9, 0]\n[15, -10, 3]\n", acc.String())
}

// TestMulBy_BeyondInt64 keeps exact values once entries leave the int64 range.
func TestMulBy_BeyondInt64(t *testing.T) {
	x := mustRows(t, [][]int64{{math.MaxInt64, 1}, {1, 1}})
	acc, err := matrix.Lift(x)
	require.NoError(t, err)
	require.NoError(t, acc.MulBy(x))

	m := big.NewInt(math.MaxInt64)
	want := new(big.Int).Mul(m, m)
	want.Add(want, big.NewInt(1)) // MaxInt64² + 1
	got, err := acc.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, want.Cmp(got), "got %s", got)
}

func TestMulBy_Errors(t *testing.T) {
	acc, err := matrix.Lift(mustRows(t, [][]int64{{1, 2, 3}}))
	require.NoError(t, err)
	var nilDense *matrix.Dense

	require.ErrorIs(t, acc.MulBy(nilDense), matrix.ErrNilMatrix)
	require.ErrorIs(t, acc.MulBy(mustRows(t, [][]int64{{1}})), matrix.ErrDimensionMismatch)
	// right factor must be square
	require.ErrorIs(t, acc.MulBy(mustRows(t, [][]int64{{1}, {2}, {3}})), matrix.ErrDimensionMismatch)
	require.Equal(t, "[1, 2, 3]\n", acc.String()) // unchanged on error
}

// TestPower_ShiftIsNilpotent: N_r^k is N_{kr}, and vanishes once kr ≥ n.
func TestPower_ShiftIsNilpotent(t *testing.T) {
	n1 := mustShift(t, 5, 1)

	p0, err := matrix.Power(n1, 0)
	require.NoError(t, err)
	id, _ := matrix.NewIdentity(5)
	idBig, _ := matrix.Lift(id)
	require.Equal(t, bigRows(t, idBig), bigRows(t, p0))

	p3, err := matrix.Power(n1, 3)
	require.NoError(t, err)
	n3, _ := matrix.Lift(mustShift(t, 5, 3))
	require.Equal(t, bigRows(t, n3), bigRows(t, p3))

	p5, err := matrix.Power(n1, 5)
	require.NoError(t, err)
	require.True(t, p5.IsZero())
}

// TestPower_NoOverflow: 2^100 is exact.
func TestPower_NoOverflow(t *testing.T) {
	p, err := matrix.Power(mustRows(t, [][]int64{{2}}), 100)
	require.NoError(t, err)
	v, _ := p.At(0, 0)
	require.Equal(t, new(big.Int).Lsh(big.NewInt(1), 100).String(), v.String())
}

func TestPower_Errors(t *testing.T) {
	_, err := matrix.Power(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Power(mustRows(t, [][]int64{{1, 2}}), 2)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Power(mustShift(t, 3, 1), -1)
	require.ErrorIs(t, err, matrix.ErrNegativeExponent)
}
