// SPDX-License-Identifier: MIT
// Package: partition
//
// conjugate.go: conjugate (dual) partition.
//
// The conjugate λ' of λ has λ'_k = #{i : λ_i ≥ k}; it is the transpose of
// the Young diagram. Conjugation is an involution and preserves the sum.

package partition

// Conjugate returns the conjugate of p.
// MAIN DESCRIPTION:
//   - Scan equal-valued runs from the tail. The run ending at the last part
//     contributes len(p) copies of the smallest value; every boundary between
//     a run starting at index i+1 and a larger value p[i] contributes
//     (i+1) copies of p[i] − p[i+1].
//
// Behavior highlights:
//   - Input must already satisfy Validate; the function does not re-check.
//   - Empty input yields an empty (non-nil) partition.
//
// Complexity:
//   - Time O(len(p) + sum(p)), Space O(p[0]) for the result.
//
// Example:
//
//	Conjugate([5,4,4,2,1,1]) == [6,4,3,3,1]
func Conjugate(p Partition) Partition {
	if len(p) == 0 {
		return Partition{}
	}
	out := make(Partition, 0, p[0])
	last := len(p) - 1

	// The smallest part is covered by every row.
	out = appendCopies(out, len(p), p[last])

	// Walk run boundaries towards the head.
	i := last
	for i >= 0 {
		j := i - 1
		for j >= 0 && p[j] == p[i] {
			j--
		}
		if j >= 0 {
			out = appendCopies(out, j+1, p[j]-p[i])
		}
		i = j
	}

	return out
}

// appendCopies appends count copies of v.
func appendCopies(dst Partition, v, count int) Partition {
	for k := 0; k < count; k++ {
		dst = append(dst, v)
	}

	return dst
}
