package algorithms

import (
	"github.com/olidennis/round-eliminator-sub001/constraint"
	"github.com/olidennis/round-eliminator-sub001/group"
	"github.com/olidennis/round-eliminator-sub001/invariant"
	"github.com/olidennis/round-eliminator-sub001/label"
	"github.com/olidennis/round-eliminator-sub001/line"
	"github.com/olidennis/round-eliminator-sub001/part"
	"github.com/olidennis/round-eliminator-sub001/problem"
)

// HardenRemove drops a single label from p, keeping every other label
// (the original engine's harden_remove).
func HardenRemove(p problem.Problem, l label.Label, addPredecessors bool) problem.Problem {
	keep := map[label.Label]bool{}
	for _, lbl := range p.Active.LabelsAppearing().Union(p.Passive.LabelsAppearing()).Labels() {
		if lbl != l {
			keep[lbl] = true
		}
	}
	return HardenKeep(p, keep, addPredecessors)
}

// HardenKeep restricts p to the labels in keep (spec §4.7): every
// group is intersected with keep, any line left with an empty part is
// dropped entirely, and keep itself shrinks to the active/passive
// label intersection, repeating until it stabilizes.
//
// When addPredecessors is set, every active group is first widened to
// include every predecessor of its own labels under p's already
// computed indirect diagram (harden_keep's add_predecessors branch) —
// callers must have a diagram cached, since harden itself does not
// compute one.
func HardenKeep(p problem.Problem, keep map[label.Label]bool, addPredecessors bool) problem.Problem {
	keepSet := make(map[label.Label]bool, len(keep))
	for l, ok := range keep {
		if ok {
			keepSet[l] = true
		}
	}

	newPassive := p.Passive
	newActive := p.Active
	if addPredecessors {
		ind, ok := p.Caches().DiagramIndirect.Get()
		if !ok {
			panic(invariant.New("algorithms.HardenKeep", "addPredecessors requires a computed diagram"))
		}
		newActive = p.Active.Edited(func(g group.Group) group.Group {
			seen := map[label.Label]bool{}
			var out []label.Label
			for _, l := range g.Labels() {
				for _, y := range ind.Labels() {
					if ind.Leq(y, l) && !seen[y] {
						seen[y] = true
						out = append(out, y)
					}
				}
			}
			return group.New(out)
		})
	}

	for {
		newActive = hardenConstraint(newActive, keepSet)
		newPassive = hardenConstraint(newPassive, keepSet)

		appearingActive := newActive.LabelsAppearing()
		appearingPassive := newPassive.LabelsAppearing()
		newKeep := map[label.Label]bool{}
		for _, l := range appearingActive.Labels() {
			if appearingPassive.Contains(l) {
				newKeep[l] = true
			}
		}
		stable := sameKeepSet(newKeep, keepSet)
		keepSet = newKeep
		if stable {
			break
		}
	}

	out := problem.New(newActive, newPassive, p.Labels)
	if ind, ok := p.Caches().DiagramIndirectOld.Get(); ok {
		out.Caches().DiagramIndirectOld.Set(ind)
	}
	return out
}

func sameKeepSet(a, b map[label.Label]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for l := range a {
		if !b[l] {
			return false
		}
	}
	return true
}

// hardenConstraint intersects every group of c with keep, dropping
// any line that ends up with an empty part rather than shrinking the
// line's degree.
func hardenConstraint(c constraint.Constraint, keep map[label.Label]bool) constraint.Constraint {
	kept := make([]line.Line, 0, len(c.Lines))
	for _, l := range c.Lines {
		parts := make([]part.Part, len(l.Parts))
		ok := true
		for i, p := range l.Parts {
			var out []label.Label
			for _, lbl := range p.Group.Labels() {
				if keep[lbl] {
					out = append(out, lbl)
				}
			}
			if len(out) == 0 {
				ok = false
				break
			}
			parts[i] = part.New(group.New(out), p.Type)
		}
		if ok {
			kept = append(kept, line.New(parts))
		}
	}
	if len(kept) == 0 {
		return constraint.Constraint{Degree: c.Degree}
	}
	nc, err := constraint.New(kept)
	if err != nil {
		panic(invariant.New("algorithms.hardenConstraint", "produced an invalid constraint: "+err.Error()))
	}
	return nc
}
