// SPDX-License-Identifier: MIT
// Package: jordan
//
// support.go: nilpotency index from the support digraph.
//
// For a non-negative matrix X, (X^k)[i][j] > 0 exactly when the digraph with
// an edge i→j for every X[i][j] ≠ 0 has a walk of length k from i to j. So X
// is nilpotent iff that digraph is acyclic, and its index (least k with
// X^k = 0) is the number of vertices on a longest path. No rank is computed.
//
// Complexity:
//   - Time O(n²) to read the support + O(V + E) depth-first search.
//   - Memory O(n + E).

package jordan

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/jordan/matrix"
)

const opIndex = "Index"

// ErrNegativeEntry indicates a matrix the support argument does not apply to.
var ErrNegativeEntry = errors.New("jordan: support analysis requires non-negative entries")

// Visitation states of the depth-first search.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored; depth is final
)

// supportWalker holds the state of one depth-first traversal.
type supportWalker struct {
	adj   [][]int // adj[i] lists j with X[i][j] ≠ 0, ascending
	state []int
	depth []int // vertices on the longest path starting at i
}

// Index returns the nilpotency index of the non-negative square matrix x.
// It agrees with len(NullitySequence(x)) and with the largest Jordan block,
// which makes it an independent cross-check of Type.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (wrapped).
//   - ErrNegativeEntry when some entry is < 0.
//   - *DomainError (matches ErrNotNilpotent) when the support has a cycle.
func Index(x *matrix.Dense) (int, error) {
	if err := matrix.ValidateSquareNonNil(x); err != nil {
		return 0, fmt.Errorf("%s: %w", opIndex, err)
	}
	n := x.Rows()

	w := &supportWalker{
		adj:   make([][]int, n),
		state: make([]int, n),
		depth: make([]int, n),
	}
	var bad error
	x.Do(func(i, j int, v int64) bool {
		switch {
		case v < 0:
			bad = fmt.Errorf("%s: entry (%d,%d) = %d: %w", opIndex, i, j, v, ErrNegativeEntry)
			return false
		case v > 0:
			w.adj[i] = append(w.adj[i], j)
		}
		return true
	})
	if bad != nil {
		return 0, bad
	}

	index := 0
	for v := 0; v < n; v++ {
		if w.state[v] == white && !w.visit(v) {
			return 0, &DomainError{Matrix: x.Clone().(*matrix.Dense)}
		}
		index = max(index, w.depth[v])
	}

	return index, nil
}

// visit explores id and reports false on a back edge (cycle).
func (w *supportWalker) visit(id int) bool {
	w.state[id] = gray
	best := 0
	for _, next := range w.adj[id] {
		switch w.state[next] {
		case gray:
			return false
		case white:
			if !w.visit(next) {
				return false
			}
		}
		best = max(best, w.depth[next])
	}
	w.state[id] = black
	w.depth[id] = best + 1

	return true
}
