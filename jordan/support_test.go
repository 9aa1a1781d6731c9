// SPDX-License-Identifier: MIT
// Package jordan_test contains unit tests for the support-digraph index.
package jordan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jordan/jordan"
	"github.com/katalvlaran/jordan/matrix"
)

// TestIndex_MatchesNullitySequence on block-diagonal and shift matrices.
func TestIndex_MatchesNullitySequence(t *testing.T) {
	cases := []*matrix.Dense{
		blockDiag(t, 1, 1, 1),
		blockDiag(t, 2, 3),
		blockDiag(t, 1, 4, 1, 2),
	}
	for n := 2; n <= 7; n++ {
		for r := 1; r < n; r++ {
			s, err := matrix.NewShift(n, r)
			require.NoError(t, err)
			cases = append(cases, s)
		}
	}
	for _, m := range cases {
		seq, err := jordan.NullitySequence(m)
		require.NoError(t, err)
		idx, err := jordan.Index(m)
		require.NoError(t, err)
		require.Equalf(t, len(seq), idx, "matrix:\n%s", m)
	}
}

// TestIndex_Multiplicity ignores entry sizes; only the support matters.
func TestIndex_Multiplicity(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]int64{
		{0, 5, 2},
		{0, 0, 7},
		{0, 0, 0},
	})
	require.NoError(t, err)
	idx, err := jordan.Index(m)
	require.NoError(t, err)
	require.Equal(t, 3, idx)
}

func TestIndex_Errors(t *testing.T) {
	cyc, err := matrix.NewDenseFromRows([][]int64{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	})
	require.NoError(t, err)
	_, err = jordan.Index(cyc)
	require.ErrorIs(t, err, jordan.ErrNotNilpotent)

	loop, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	_, err = jordan.Index(loop)
	require.ErrorIs(t, err, jordan.ErrNotNilpotent)

	neg, err := matrix.NewDenseFromRows([][]int64{{0, -1}, {0, 0}})
	require.NoError(t, err)
	_, err = jordan.Index(neg)
	require.ErrorIs(t, err, jordan.ErrNegativeEntry)

	_, err = jordan.Index(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
