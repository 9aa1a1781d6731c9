// Package completion builds explicit upper nilpotent completions.
//
// Given n > 1, 1 ≤ r < n and a partition λ of n with at most r parts,
// Complete returns an n×n integer matrix N_r + X where
//
//   - N_r has ones exactly on the r-th subdiagonal,
//   - X is a strictly upper-triangular 0/1 matrix,
//   - N_r + X is nilpotent of Jordan type λ.
//
// The construction follows Algorithm 1 of N. Livesay, D. S. Sage and
// B. Nguyen, "Explicit constructions of connections on the projective line
// with a maximally ramified irregular singularity" (2023). Viewed columnwise,
// N_r splits into r chains ("columns"): r − n mod r of height ⌊n/r⌋ followed
// by n mod r of height ⌈n/r⌉. Decompose sorts the parts of λ into the "tall"
// and "short" work queues; the splicer then grafts columns onto the current
// "stock" chain, one off-diagonal entry at a time, until every part of λ is
// realized. Each splice is reported to an optional observer (WithOnSplice).
//
// Complexity:
//
//	O(n²) to allocate the result plus O(r) splice steps.
package completion
