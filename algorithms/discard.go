package algorithms

import (
	"github.com/olidennis/round-eliminator-sub001/constraint"
	"github.com/olidennis/round-eliminator-sub001/diagram"
	"github.com/olidennis/round-eliminator-sub001/group"
	"github.com/olidennis/round-eliminator-sub001/label"
	"github.com/olidennis/round-eliminator-sub001/problem"
)

// DiscardUseless repeatedly shrinks p (spec §4.7) until a full round
// changes nothing: it recomputes the label diagram over the passive
// side, weakens active lines along it, drops non-maximal lines on
// both sides, then restricts to labels appearing on both sides.
//
// Zero-round solvability and coloring solvability are preserved;
// maximality of a side already maximized before the call is not
// guaranteed to survive (non-maximal lines may reappear), matching
// the original engine's discard_useless_stuff.
func DiscardUseless(p problem.Problem, recomputeFullDiagram bool, opts Options) (problem.Problem, error) {
	opts = opts.normalize()
	_ = recomputeFullDiagram // both modes compute the same diagram here; see DESIGN.md

	current := p
	for {
		select {
		case <-opts.Ctx.Done():
			return problem.Problem{}, ErrCancelled
		default:
		}

		before := current

		labels := current.Active.LabelsAppearing().Union(current.Passive.LabelsAppearing()).Labels()
		ind := diagram.ComputeIndirect(current.Passive, labels)
		opts.Progress.Notify("discard: recompute diagram", 1, 1)

		newActive := removeWeakActiveLines(current.Active, ind)
		newActive = newActive.DiscardNonMaximalLines()
		newPassive := current.Passive.DiscardNonMaximalLines()
		opts.Progress.Notify("discard: non-maximal", 1, 1)

		next := current.WithConstraints(newActive, newPassive)
		next.Caches().DiagramIndirect.Set(ind)

		next = discardLabelsUsedOnAtMostOneSide(next)
		next = discardUnusedLabelsFromInternal(next)
		opts.Progress.Notify("discard: labels", 1, 1)

		current = next
		if problemEqual(current, before) {
			break
		}
	}

	return current, nil
}

// removeWeakActiveLines shrinks every active group to the labels that
// have no strictly-better replacement within the same group under
// ind, then discards lines made non-maximal by treating "every label
// has a successor in the other group" as the superset relation,
// grounded on remove_weak_active_lines.
func removeWeakActiveLines(active constraint.Constraint, ind diagram.Indirect) constraint.Constraint {
	shrunk := active.Edited(func(g group.Group) group.Group {
		return g.Filter(func(l label.Label) bool {
			for _, other := range g.Labels() {
				if other != l && !ind.Leq(other, l) && ind.Leq(l, other) {
					return false
				}
			}
			return true
		})
	})
	return shrunk.DiscardNonMaximalWith(weakSuperset(ind))
}

// weakSuperset is the custom group-compatibility predicate passed to
// discard_non_maximal_lines_with_custom_supersets: h1 stands in for
// h2 if every label of h2 has an equal or strictly-better (per ind)
// counterpart in h1.
func weakSuperset(ind diagram.Indirect) func(h1, h2 group.Group) bool {
	return func(h1, h2 group.Group) bool {
		for _, x := range h2.Labels() {
			ok := false
			for _, y := range h1.Labels() {
				if x == y || (ind.Leq(x, y) && !ind.Leq(y, x)) {
					ok = true
					break
				}
			}
			if !ok {
				return false
			}
		}
		return true
	}
}

// discardLabelsUsedOnAtMostOneSide restricts p to the labels appearing
// in both its active and passive configurations, via HardenKeep
// without predecessor widening.
func discardLabelsUsedOnAtMostOneSide(p problem.Problem) problem.Problem {
	active := p.Active.LabelsAppearing()
	passive := p.Passive.LabelsAppearing()
	keep := map[label.Label]bool{}
	for _, l := range active.Labels() {
		if passive.Contains(l) {
			keep[l] = true
		}
	}
	hardened := HardenKeep(p, keep, false)
	if ind, ok := p.Caches().DiagramIndirect.Get(); ok {
		hardened.Caches().DiagramIndirect.Set(ind)
	}
	return hardened
}

// discardUnusedLabelsFromInternal drops the trivial/coloring caches,
// since label pruning invalidates them (discard_unused_labels_from_
// internal_stuff's table-pruning has no counterpart here: label.Table
// is rebuilt wholesale by problem.New rather than mutated in place).
func discardUnusedLabelsFromInternal(p problem.Problem) problem.Problem {
	p.Caches().TrivialSets.Reset()
	p.Caches().ColoringSets.Reset()
	return p
}

// problemEqual reports whether two problems have identical active and
// passive constraints, the discard loop's termination check.
func problemEqual(a, b problem.Problem) bool {
	return constraintEqual(a.Active, b.Active) && constraintEqual(a.Passive, b.Passive)
}

func constraintEqual(a, b constraint.Constraint) bool {
	if len(a.Lines) != len(b.Lines) {
		return false
	}
	for i := range a.Lines {
		if !a.Lines[i].Equal(b.Lines[i]) {
			return false
		}
	}
	return true
}
