// Package matrix offers a dense, exact integer matrix for nilpotency work.
//
// The matrix package provides:
//
//   - Dense: row-major int64 storage with bounds-checked At/Set.
//   - Shift constructors (NewShift) for the r-th subdiagonal matrix N_r.
//   - BigDense: math/big accumulator for exact products and powers
//     (MulBy, Power), so power sequences never overflow.
//   - Exact Rank / Nullity via fraction-free (Bareiss) elimination over math/big.
//   - Central validators (ValidateNotNil, ValidateSquare, ...) returning
//     package sentinels.
//
// Every kernel is deterministic and allocation-bounded; no floating point is
// involved, so ranks of integer matrices are exact regardless of size.
//
// See the examples in this package and in completion/jordan for usage patterns.
package matrix
