// Package graph is the root of a round-elimination library: given a
// problem described by an active and a passive constraint, its
// subpackages compute speedup and inverse-speedup rounds, simplify the
// results, and test zero-round solvability. The root package declares
// no API of its own; the work lives in these subpackages:
//
//	label, group, part, line, constraint, problem — the problem model and its text format
//	pairing, diagram, clique, flow, core          — combinatorial building blocks
//	algorithms                                    — maximize, speedup, inverse speedup, simplification passes, triviality, fixpoint
//	engine                                        — lower-bound, upper-bound and fixpoint entry points for a driver
//	progress, invariant                           — progress reporting and internal invariant checks
package graph
