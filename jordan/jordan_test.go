// SPDX-License-Identifier: MIT
// Package jordan_test contains unit tests for NullitySequence and Type.
package jordan_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jordan/jordan"
	"github.com/katalvlaran/jordan/matrix"
	"github.com/katalvlaran/jordan/partition"
)

// blockDiag returns the direct sum of nilpotent Jordan blocks of the given
// sizes, each with ones on its first superdiagonal.
func blockDiag(t *testing.T, sizes ...int) *matrix.Dense {
	t.Helper()
	n := 0
	for _, s := range sizes {
		n += s
	}
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	off := 0
	for _, s := range sizes {
		for k := 0; k+1 < s; k++ {
			require.NoError(t, m.Set(off+k, off+k+1, 1))
		}
		off += s
	}

	return m
}

// TestType_Zero: the zero matrix is n blocks of size 1.
func TestType_Zero(t *testing.T) {
	z, err := matrix.NewZeros(5, 5)
	require.NoError(t, err)

	typ, err := jordan.Type(z)
	require.NoError(t, err)
	require.Equal(t, partition.Partition{1, 1, 1, 1, 1}, typ)

	seq, err := jordan.NullitySequence(z)
	require.NoError(t, err)
	require.Equal(t, []int{5}, seq)
}

// TestType_Blocks recovers the block sizes, whatever their order on the diagonal.
func TestType_Blocks(t *testing.T) {
	tests := []struct {
		blocks []int
		want   partition.Partition
		seq    []int
	}{
		{[]int{2}, partition.Partition{2}, []int{1, 1}},
		{[]int{2, 3}, partition.Partition{3, 2}, []int{2, 2, 1}},
		{[]int{5}, partition.Partition{5}, []int{1, 1, 1, 1, 1}},
		{[]int{1, 4, 1, 2}, partition.Partition{4, 2, 1, 1}, []int{4, 2, 1, 1}},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.blocks), func(t *testing.T) {
			m := blockDiag(t, tc.blocks...)

			seq, err := jordan.NullitySequence(m)
			require.NoError(t, err)
			require.Equal(t, tc.seq, seq)

			typ, err := jordan.Type(m)
			require.NoError(t, err)
			require.Equal(t, tc.want, typ)
		})
	}
}

// TestType_Shift: N_r has ⌈n/r⌉ blocks n mod r times and ⌊n/r⌋ otherwise.
func TestType_Shift(t *testing.T) {
	s, err := matrix.NewShift(7, 3)
	require.NoError(t, err)
	typ, err := jordan.Type(s)
	require.NoError(t, err)
	require.Equal(t, partition.Partition{3, 2, 2}, typ)
}

// TestType_NotNilpotent returns a DomainError holding a copy of the input.
func TestType_NotNilpotent(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	_, err = jordan.Type(id)
	require.ErrorIs(t, err, jordan.ErrNotNilpotent)

	var de *jordan.DomainError
	require.True(t, errors.As(err, &de))
	require.True(t, de.Matrix.Equal(id))
	require.NotSame(t, id, de.Matrix)
	require.Contains(t, de.Error(), "[1, 0, 0]")

	// Nilpotent except for one diagonal entry.
	m := blockDiag(t, 3)
	require.NoError(t, m.Set(2, 2, 1))
	_, err = jordan.NullitySequence(m)
	require.ErrorIs(t, err, jordan.ErrNotNilpotent)
}

// TestType_LargeEntriesNotNilpotent: a huge diagonal entry is still reported
// as not nilpotent, never as an arithmetic failure.
func TestType_LargeEntriesNotNilpotent(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1<<40))

	_, err = jordan.Type(m)
	require.ErrorIs(t, err, jordan.ErrNotNilpotent)
	var de *jordan.DomainError
	require.True(t, errors.As(err, &de))
	require.True(t, de.Matrix.Equal(m))
}

// TestType_AllOnesStrictlyUpper: powers of the 70×70 strictly upper all-ones
// matrix hold binomial coefficients well past int64, yet it is one block.
func TestType_AllOnesStrictlyUpper(t *testing.T) {
	const n = 70
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, m.Set(i, j, 1))
		}
	}

	seq, err := jordan.NullitySequence(m)
	require.NoError(t, err)
	require.Len(t, seq, n)

	typ, err := jordan.Type(m)
	require.NoError(t, err)
	require.Equal(t, partition.Partition{n}, typ)

	idx, err := jordan.Index(m)
	require.NoError(t, err)
	require.Equal(t, n, idx)
}

// TestType_InputErrors covers nil and rectangular matrices.
func TestType_InputErrors(t *testing.T) {
	_, err := jordan.Type(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = jordan.Type(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestType_DoesNotMutate leaves the input untouched.
func TestType_DoesNotMutate(t *testing.T) {
	m := blockDiag(t, 3, 1)
	before := m.Rows2D()
	_, err := jordan.Type(m)
	require.NoError(t, err)
	require.Equal(t, before, m.Rows2D())
}

func ExampleType() {
	// A single 3×3 Jordan block.
	m, _ := matrix.NewDenseFromRows([][]int64{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	})
	typ, _ := jordan.Type(m)
	fmt.Println(typ)
	// Output: [3]
}
