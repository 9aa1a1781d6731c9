// SPDX-License-Identifier: MIT
// Package: completion
//
// columns.go: geometry of the chains ("columns") of N_r.
//
// N_r maps e_c to e_{c+r}, so the chains start at c = 0..r-1. Columns are
// numbered with the r − n mod r short chains (starting at n mod r, ...,
// r − 1) first, followed by the n mod r tall chains (starting at 0, ...,
// n mod r − 1). The m-th vertex from the top of a chain starting at c is
// c + (m−1)·r.

package completion

// columns binds n and r once per construction.
type columns struct {
	r         int
	floor     int // height of short columns
	ceiling   int // height of tall columns
	rem       int // n mod r
	shortCols int // r − n mod r
}

func newColumns(n, r int) columns {
	c := columns{r: r, floor: n / r, rem: n % r, shortCols: r - n%r}
	c.ceiling = c.floor
	if c.rem != 0 {
		c.ceiling++
	}

	return c
}

// height returns the length of column i. Indices past the last column report
// the tall height; the splicer only peeks at them in comparisons.
func (c columns) height(i int) int {
	if i < c.shortCols {
		return c.floor
	}

	return c.ceiling
}

// ordinal returns the zero-based basis index of the m-th vertex (1-based)
// from the top of column i.
func (c columns) ordinal(i, m int) int {
	if i < c.shortCols {
		return c.rem + i + (m-1)*c.r
	}

	return i - c.shortCols + (m-1)*c.r
}
