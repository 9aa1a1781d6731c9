// Package jordan recovers the Jordan type of a nilpotent integer matrix.
//
// For a nilpotent X of order k, the nullity increments
//
//	d_1 = nullity(X), d_j = nullity(X^j) − nullity(X^{j−1}),  j = 2..k
//
// form a partition whose conjugate is the multiset of Jordan block sizes
// (the "type" of X). Ranks are exact (see matrix.Rank), so the answer never
// depends on floating-point tolerances.
//
// A matrix whose n-th power is non-zero is not nilpotent; Type reports it
// with a *DomainError that carries a copy of the matrix.
package jordan
