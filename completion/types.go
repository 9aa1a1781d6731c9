// SPDX-License-Identifier: MIT
// Package: completion
//
// types.go: public value types: Decomposition, Case, Splice.

package completion

// Decomposition is the initial state produced by Decompose.
//
// Tall holds the parts larger than Ceiling followed by any surplus copies of
// Ceiling; Short holds the parts smaller than Floor followed by any surplus
// copies of Floor. Stock and Cion are the starting column pointers.
type Decomposition struct {
	N, R    int // matrix size and shift
	Floor   int // ⌊n/r⌋, height of the short columns
	Ceiling int // ⌈n/r⌉, height of the tall columns

	Tall  []int // pending tall targets, consumed from the front
	Short []int // pending short targets, consumed from the front

	FloorParts   int // parts equal to Floor
	CeilingParts int // parts equal to Floor+1 (only when r ∤ n)

	Stock int // column currently being extended
	Cion  int // next unconsumed column (Stock+1)
}

// Case labels the branch of the splicer that emitted an entry.
type Case uint8

// Splice cases. Case1* fire while short targets remain; the rest close out tall targets.
const (
	Case1a         Case = iota + 1 // short fold routed through the taller column cion+1
	Case1b                         // partial fold of column cion, stock stays open
	Case1c                         // exact fold of column cion, tall target closes
	Case1d                         // tall target closes inside column cion; remainder becomes stock
	CaseLittleLoop                 // whole column cion folded into stock
	Case2a                         // overshoot resolved by folding full-height column cion+1
	Case2b                         // overshoot resolved by the double entry through cion+1
	Case2c                         // exact whole-column close
	Case2d                         // tall target closes inside column cion; remainder becomes stock
)

var caseNames = [...]string{
	Case1a:         "1a",
	Case1b:         "1b",
	Case1c:         "1c",
	Case1d:         "1d",
	CaseLittleLoop: "little-loop",
	Case2a:         "2a",
	Case2b:         "2b",
	Case2c:         "2c",
	Case2d:         "2d",
}

// String returns the short case label ("1a", "little-loop", ...).
func (c Case) String() string {
	if int(c) < len(caseNames) && caseNames[c] != "" {
		return caseNames[c]
	}

	return "unknown"
}

// Splice describes one emitted off-diagonal entry: gamma[Row][Col] += 1.
// Grafts onto an empty stock emit nothing and are not reported.
// Stock, Cion, StockHeight and StockTop are the splicer state at the moment
// of emission (before the step updates them).
type Splice struct {
	Case        Case
	Row, Col    int // zero-based; Row < Col always
	Stock, Cion int
	StockHeight int
	StockTop    int
}
