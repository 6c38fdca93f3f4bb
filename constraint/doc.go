// Package constraint implements Constraint, a set of Lines sharing a
// declared degree, together with parsing, normalization and the
// maximality invariant of spec §3.
package constraint
