// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for the kernels.
//   • Force the interface (non-*Dense) code paths via hide.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jordan/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic fallback loops.
type hide struct{ matrix.Matrix }

// Clone keeps the wrapper so clones stay on the fallback path too.
func (h hide) Clone() matrix.Matrix { return hide{h.Matrix.Clone()} }

// mustRows builds a *Dense from a row literal or fails the test.
func mustRows(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// mustShift builds N_r of size n or fails the test.
func mustShift(t *testing.T, n, r int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewShift(n, r)
	require.NoError(t, err)

	return m
}
