// SPDX-License-Identifier: MIT
// Package: partition
//
// enumerate.go: exhaustive generation of partitions.
//
// Contract:
//   - n ≥ 1 and maxParts ≥ 1; otherwise nothing is produced.
//   - Partitions are produced in reverse lexicographic order: [n] first,
//     then [n-1, 1], ..., ending with the partition using the most parts.
//
// Determinism:
//   - Fixed recursion order; no maps.

package partition

// Each calls fn for every partition of n with at most maxParts parts, in
// reverse lexicographic order, and stops early when fn returns false.
// The slice passed to fn is reused between calls; Clone it to retain it.
//
// Complexity:
//   - Time O(p(n)·n) for p(n) partitions, Space O(n) for the working buffer.
func Each(n, maxParts int, fn func(Partition) bool) {
	if n < 1 || maxParts < 1 {
		return
	}
	buf := make(Partition, 0, n)
	eachRec(buf, n, n, maxParts, fn)
}

// eachRec extends prefix with parts ≤ largest summing to remaining, using at most slots parts.
func eachRec(prefix Partition, remaining, largest, slots int, fn func(Partition) bool) bool {
	if remaining == 0 {
		return fn(prefix)
	}
	if slots == 0 || largest*slots < remaining {
		return true // cannot be completed; prune
	}
	top := largest
	if remaining < top {
		top = remaining
	}
	for part := top; part >= 1; part-- {
		if !eachRec(append(prefix, part), remaining-part, part, slots-1, fn) {
			return false
		}
	}

	return true
}

// Enumerate returns every partition of n with at most maxParts parts, in
// reverse lexicographic order. Each returned partition is independent.
func Enumerate(n, maxParts int) []Partition {
	var out []Partition
	Each(n, maxParts, func(p Partition) bool {
		out = append(out, p.Clone())
		return true
	})

	return out
}
