// Package pairing implements the streaming multiset-pairing enumerator
// of spec §4.3: given two integer vectors with equal sums, it produces
// every non-negative integer matrix with those row and column sums, one
// at a time, advancing in place rather than materializing the whole
// sequence. It is the engine behind maximize's line-product operation.
package pairing
