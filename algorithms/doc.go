// Package algorithms implements the transformations of the
// round-elimination technique over problem.Problem and
// constraint.Constraint values: maximize (§4.4), speedup and its
// inverse (§4.6), the discard_useless/harden_keep/merge_equivalent_labels
// simplification passes (§4.7), triviality and coloring-solvability
// (§4.8), and the fixpoint relaxation (§4.9).
//
// Every exported entry point takes an Options value carrying the
// ambient concerns of spec §5: a cancellable context, a pool-size
// bound for parallel fan-outs, and a progress.Sink.
package algorithms
