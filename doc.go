// Package jordan is a toolkit for explicit upper nilpotent completions:
// integer matrices N_r + X, with X strictly upper triangular, that are
// nilpotent of a prescribed Jordan type.
//
// 🚀 What is in the box?
//
//	• matrix/     - exact int64 Dense matrices, N_r, products, powers, exact rank
//	• partition/  - integer partitions: validation, conjugation, enumeration
//	• completion/ - Decompose and Complete: the chain splicer that builds N_r + X
//	• jordan/     - Jordan type of a nilpotent matrix from nullities of its powers
//	• sweep/      - concurrent, exhaustive round-trip verification with YAML config
//	• cmd/nilpcheck - CLI: complete, conjugate, selftest, sweep
//
// ✨ Guarantees
//
//   - Exact arithmetic only: ranks via fraction-free elimination over math/big,
//     products with int64 overflow detection.
//   - Deterministic: fixed loop orders, no map iteration in any kernel.
//   - Sentinel errors everywhere; match them with errors.Is.
//
// Quick example:
//
//	gamma, _ := completion.Complete(5, 2, partition.Partition{4, 1})
//	typ, _ := jordan.Type(gamma) // [4, 1]
//
//	go install github.com/katalvlaran/jordan/cmd/nilpcheck@latest
package jordan
