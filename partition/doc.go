// Package partition models integer partitions and their conjugates.
//
// A Partition is a non-increasing sequence of positive integers; its sum n
// is the integer being partitioned. The package provides:
//
//   - Validate / ValidateFor: contract checks returning package sentinels.
//   - Conjugate: the transpose of the Young diagram (an involution).
//   - Enumerate: every partition of n with a bounded number of parts, in
//     reverse lexicographic order, for exhaustive verification sweeps.
//
// Determinism:
//
//	All functions are pure; outputs are freshly allocated and never alias inputs.
package partition
