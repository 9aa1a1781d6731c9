// SPDX-License-Identifier: MIT
// Package: completion
//
// splice.go: Complete: the chain splicer (Loop 1, Loop 2 and the Little Loop).
//
// Contract:
//   - Inputs are validated eagerly; nothing is allocated for invalid input.
//   - The result is a fresh n×n matrix: N_r plus one entry per splice, each
//     strictly above the diagonal.
//   - Both work queues are fully drained; underflow panics (invariant bug).
//
// Complexity:
//   - Time O(n²) for the allocation + O(r) splice steps.
//   - Space O(n²) for the result, O(r) for the queues.
//
// Determinism:
//   - Case dispatch is a single comparison chain per iteration; equality
//     branches are tested in the fixed order documented on each loop.

package completion

import (
	"fmt"

	"github.com/katalvlaran/jordan/matrix"
	"github.com/katalvlaran/jordan/partition"
)

const methodComplete = "Complete"

// splicer is the explicit two-cursor state threaded through both loops.
type splicer struct {
	cols     columns
	gamma    *matrix.Dense
	tall     queue
	short    queue
	onSplice func(Splice)

	stock       int // column being extended
	cion        int // next unconsumed column; never decreases
	stockHeight int // current length of the stock chain
	stockTop    int // basis index of the stock chain's top vertex
}

// Complete returns an upper nilpotent completion N_r + X of Jordan type p.
// MAIN DESCRIPTION:
//   - Validate (n, r, p), decompose p into the tall/short queues, start from
//     N_r and splice columns until every part is realized.
//
// Behavior highlights:
//   - Complete(5, 2, [3, 2]) returns N_2 unchanged: N_r already has the
//     "staircase" type whenever p equals it.
//   - Every emitted entry is reported to WithOnSplice observers.
//
// Errors:
//   - ErrInvalidInput (wrapping ErrRankOutOfRange, partition.ErrSumMismatch,
//     partition.ErrNotDecreasing, partition.ErrNonPositive,
//     partition.ErrTooManyParts or partition.ErrEmpty).
//
// Complexity:
//   - Time O(n² + r), Space O(n²).
//
// AI-Hints:
//   - Verify results with jordan.Type; the pair forms a round trip.
func Complete(n, r int, p partition.Partition, opts ...Option) (*matrix.Dense, error) {
	if err := validateInput(methodComplete, n, r, p); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}

	gamma, err := matrix.NewShift(n, r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}

	d := decompose(n, r, p)
	s := &splicer{
		cols:     newColumns(n, r),
		gamma:    gamma,
		tall:     newQueue("tall", d.Tall),
		short:    newQueue("short", d.Short),
		onSplice: o.OnSplice,
		stock:    d.Stock,
		cion:     d.Cion,
	}
	s.resetStock()
	s.loopShort()
	s.loopTall()

	return s.gamma, nil
}

// resetStock makes column s.stock the whole stock chain.
func (s *splicer) resetStock() {
	s.stockHeight = s.cols.height(s.stock)
	s.stockTop = s.cols.ordinal(s.stock, 1)
}

// link adds gamma[row][col] += 1: basis vector col additionally maps onto row.
func (s *splicer) link(c Case, row, col int) {
	if row >= col {
		invariantf("case %s emitted (%d,%d) on or below the diagonal", c, row, col)
	}
	if err := s.gamma.AddAt(row, col, 1); err != nil {
		invariantf("case %s: %v", c, err)
	}
	s.onSplice(Splice{
		Case:        c,
		Row:         row,
		Col:         col,
		Stock:       s.stock,
		Cion:        s.cion,
		StockHeight: s.stockHeight,
		StockTop:    s.stockTop,
	})
}

// graft hangs the vertex onto the top of the stock chain.
// An empty stock (height 0, left behind by a 2b double entry through a
// height-1 column) has no top: nothing is emitted and the grafted column
// simply becomes the stock.
func (s *splicer) graft(c Case, vertex int) {
	if s.stockHeight == 0 {
		return
	}
	s.link(c, s.stockTop, vertex)
}

// loopShort drains the short queue (Loop 1).
//
// With residual = tall[0] − stockHeight and deficit = height(cion) − short[0]:
//
//	1a  residual == deficit+1 and column cion+1 is taller than cion
//	1b  residual >  deficit
//	1c  residual == deficit
//	1d  residual <  deficit
func (s *splicer) loopShort() {
	h, ord := s.cols.height, s.cols.ordinal
	for !s.short.empty() {
		residual := s.tall.front() - s.stockHeight
		deficit := h(s.cion) - s.short.front()

		switch {
		case residual == deficit+1 && h(s.cion) < h(s.cion+1):
			next := s.cion + 1
			s.graft(Case1a, ord(next, h(next)-s.short.pop()))
			s.tall.pop()
			s.stock, s.cion = s.cion, s.cion+2
			s.resetStock()

		case residual > deficit:
			m := h(s.cion) - s.short.pop()
			s.graft(Case1b, ord(s.cion, m))
			s.stockTop = ord(s.cion, 1)
			s.stockHeight += m
			s.cion++

		case residual == deficit:
			s.graft(Case1c, ord(s.cion, h(s.cion)-s.short.pop()))
			s.tall.pop()
			s.stock, s.cion = s.cion+1, s.cion+2
			s.resetStock()

		default:
			m := s.tall.pop() - s.stockHeight
			s.graft(Case1d, ord(s.cion, m))
			s.stock = s.cion
			s.stockTop = ord(s.cion, m+1)
			s.stockHeight = h(s.cion) - m
			s.cion = s.stock + 1
		}
	}
}

// loopTall drains the remaining tall targets (Loop 2).
//
// The Little Loop folds whole columns while the residual exceeds ⌈n/r⌉.
// Then, with residual = tall[0] − stockHeight:
//
//	2a/2b  residual >  height(cion)  (2a when column cion+1 is tall, else 2b)
//	2c     residual == height(cion)
//	2d     residual <  height(cion)
func (s *splicer) loopTall() {
	h, ord := s.cols.height, s.cols.ordinal
	for !s.tall.empty() {
		for s.tall.front()-s.stockHeight > s.cols.ceiling {
			s.graft(CaseLittleLoop, ord(s.cion, h(s.cion)))
			s.stockTop = ord(s.cion, 1)
			s.stockHeight += h(s.cion)
			s.cion++
		}

		residual := s.tall.front() - s.stockHeight
		switch {
		case residual > h(s.cion):
			next := s.cion + 1
			if h(next) == s.cols.ceiling {
				s.graft(Case2a, ord(next, h(next)))
				s.stock, s.cion = s.cion, s.cion+2
				s.resetStock()
			} else {
				// Double entry: fold column cion whole, then hang column
				// cion+1 below its top so the stock continues from vertex 2.
				s.graft(Case2b, ord(s.cion, h(s.cion)))
				s.link(Case2b, ord(s.cion, 1), ord(next, 1))
				s.stockTop = ord(next, 2)
				s.stock, s.cion = next, s.cion+2
				s.stockHeight = h(s.stock) - 1
			}

		case residual == h(s.cion):
			s.graft(Case2c, ord(s.cion, h(s.cion)))
			s.stock, s.cion = s.cion+1, s.cion+2
			s.resetStock()

		default:
			m := residual
			s.graft(Case2d, ord(s.cion, m))
			s.stockTop = ord(s.cion, m+1)
			s.stock, s.cion = s.cion, s.cion+1
			s.stockHeight = h(s.stock) - m
		}
		s.tall.pop()
	}
}
