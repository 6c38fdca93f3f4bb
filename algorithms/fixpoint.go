package algorithms

import "github.com/olidennis/round-eliminator-sub001/problem"

// Fixpoint repeatedly applies one speedup step followed by
// discard_useless simplification (spec §4.9), used to extract
// lower-bound witnesses: it stops either when a round's label count
// stabilizes, or when a round would make the problem trivial, in
// which case the previous, still-non-trivial iterate is returned.
func Fixpoint(seed problem.Problem, opts Options) (problem.Problem, error) {
	opts = opts.normalize()

	current := seed
	prevLabelCount := -1
	for {
		select {
		case <-opts.Ctx.Done():
			return problem.Problem{}, ErrCancelled
		default:
		}

		sped, err := Speedup(current, opts)
		if err != nil {
			return problem.Problem{}, err
		}
		simplified, err := DiscardUseless(sped, true, opts)
		if err != nil {
			return problem.Problem{}, err
		}

		if Triviality(simplified) {
			return current, nil
		}

		labelCount := simplified.Active.LabelsAppearing().Len()
		opts.Progress.Notify("fixpoint", labelCount, labelCount)
		if labelCount == prevLabelCount {
			return simplified, nil
		}
		prevLabelCount = labelCount
		current = simplified
	}
}
