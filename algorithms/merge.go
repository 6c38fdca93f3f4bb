package algorithms

import (
	"sort"

	"github.com/olidennis/round-eliminator-sub001/diagram"
	"github.com/olidennis/round-eliminator-sub001/group"
	"github.com/olidennis/round-eliminator-sub001/label"
	"github.com/olidennis/round-eliminator-sub001/problem"
)

// MergeEquivalentLabels collapses every strongly-connected component
// of p's label diagram (labels mutually substitutable for each other)
// into one representative, grounded on the original engine's
// merge_equivalent_labels and this module's own diagram.ComputeDirect.
//
// The diagram is computed over the passive side, matching
// DiscardUseless's convention. Surviving representatives are renamed
// densely from 0 and given fresh alphabetic names.
func MergeEquivalentLabels(p problem.Problem, opts Options) (problem.Problem, error) {
	opts = opts.normalize()

	labels := p.Active.LabelsAppearing().Union(p.Passive.LabelsAppearing()).Labels()
	ind := diagram.ComputeIndirect(p.Passive, labels)
	dir := diagram.ComputeDirect(ind)
	opts.Progress.Notify("merge: diagram", 1, 1)

	reps := make([]label.Label, 0, len(dir.Classes))
	for _, c := range dir.Classes {
		reps = append(reps, c.Representative)
	}
	sort.Slice(reps, func(i, j int) bool { return reps[i] < reps[j] })

	remap := make(map[label.Label]label.Label, len(reps))
	for i, r := range reps {
		remap[r] = label.Label(i)
	}

	collapse := func(g group.Group) group.Group {
		seen := map[label.Label]bool{}
		var out []label.Label
		for _, l := range g.Labels() {
			nl := remap[dir.RepresentativeOf(l)]
			if !seen[nl] {
				seen[nl] = true
				out = append(out, nl)
			}
		}
		return group.New(out)
	}

	newActive := p.Active.Edited(collapse)
	newPassive := p.Passive.Edited(collapse)
	opts.Progress.Notify("merge: relabel", 1, 1)

	dense := make([]label.Label, len(reps))
	for i := range reps {
		dense[i] = label.Label(i)
	}
	table := label.AssignAlphabetic(dense)

	return problem.New(newActive, newPassive, table), nil
}
