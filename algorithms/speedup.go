package algorithms

import (
	"fmt"
	"sort"

	"github.com/olidennis/round-eliminator-sub001/constraint"
	"github.com/olidennis/round-eliminator-sub001/group"
	"github.com/olidennis/round-eliminator-sub001/label"
	"github.com/olidennis/round-eliminator-sub001/problem"
)

// Speedup applies the round-elimination functor (spec §4.6) to p,
// producing a problem solvable one round earlier:
//
//  1. A' is p.Passive maximized.
//  2. Every distinct group appearing in A' becomes a new label; the
//     mapping new->old is recorded.
//  3. A' is re-expressed over the new labels: each group becomes the
//     singleton {new_label(g)}.
//  4. B' is built from p.Active (the original active side) by
//     replacing every group with the set of new labels whose
//     old-label-set intersects it.
//  5. New labels are assigned alphabetic names.
//  6. The result's caches are reset except for diagram_indirect_old,
//     populated from p's indirect diagram if it was already computed.
func Speedup(p problem.Problem, opts Options) (problem.Problem, error) {
	opts = opts.normalize()

	maximizedPassive, err := Maximize(p.Passive, opts)
	if err != nil {
		return problem.Problem{}, err
	}

	groups := distinctGroups(maximizedPassive)
	newTable, newToOld, oldToNewByOld := assignNewLabels(groups)

	activePrime := maximizedPassive.Edited(func(g group.Group) group.Group {
		return group.Single(newToOld.lookup(g))
	})
	activePrime = activePrime.MarkMaximized()

	passivePrime := p.Active.Edited(func(g group.Group) group.Group {
		var out []label.Label
		for _, old := range g.Labels() {
			out = append(out, oldToNewByOld[old]...)
		}
		return group.New(out)
	})

	out := problem.New(activePrime, passivePrime, newTable)
	if ind, ok := p.Caches().DiagramIndirect.Get(); ok {
		out.Caches().DiagramIndirectOld.Set(ind)
	}
	out.Caches().NewToOld.Set(newToOld.asMap())
	reverse := make(map[label.Label]group.Group, len(oldToNewByOld))
	for old, news := range oldToNewByOld {
		reverse[old] = group.New(news)
	}
	out.Caches().OldToNew.Set(reverse)

	return out, nil
}

// distinctGroups collects every distinct group appearing in c's
// lines, sorted by the reverse of each group's label vector (the
// original engine's `sorted_by_key(rev)`, which this mirrors so that
// freshly-minted label indices come out in the same order).
func distinctGroups(c constraint.Constraint) []group.Group {
	seen := map[string]bool{}
	var groups []group.Group
	for _, l := range c.Lines {
		for _, g := range l.Groups() {
			k := groupKeyOf(g)
			if !seen[k] {
				seen[k] = true
				groups = append(groups, g)
			}
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		return reversedLess(groups[i].Labels(), groups[j].Labels())
	})
	return groups
}

func groupKeyOf(g group.Group) string {
	return fmt.Sprintf("%v", g.Labels())
}

func reversedLess(a, b []label.Label) bool {
	for i, j := len(a)-1, len(b)-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
		if a[i] != b[j] {
			return a[i] < b[j]
		}
	}
	return len(a) < len(b)
}

// newLabelAssignment tracks the new-label <-> old-group-set mapping
// built while minting new labels for a speedup step.
type newLabelAssignment struct {
	byGroupKey map[string]label.Label
	groups     map[label.Label]group.Group
}

func (a newLabelAssignment) lookup(g group.Group) label.Label {
	return a.byGroupKey[groupKeyOf(g)]
}

func (a newLabelAssignment) asMap() map[label.Label]group.Group {
	out := make(map[label.Label]group.Group, len(a.groups))
	for l, g := range a.groups {
		out[l] = g
	}
	return out
}

// assignNewLabels mints one fresh label per distinct group, assigns
// alphabetic names (spec §4.6 step 5), and returns both the new
// mapping and, for each old label, the set of new labels whose
// backing group contains it (used to build B').
func assignNewLabels(groups []group.Group) (*label.Table, newLabelAssignment, map[label.Label][]label.Label) {
	assignment := newLabelAssignment{
		byGroupKey: make(map[string]label.Label, len(groups)),
		groups:     make(map[label.Label]group.Group, len(groups)),
	}
	labels := make([]label.Label, len(groups))
	for i := range groups {
		labels[i] = label.Label(i)
	}
	t := label.AssignAlphabetic(labels)

	oldToNew := map[label.Label][]label.Label{}
	for i, g := range groups {
		l := label.Label(i)
		assignment.byGroupKey[groupKeyOf(g)] = l
		assignment.groups[l] = g
		for _, old := range g.Labels() {
			oldToNew[old] = append(oldToNew[old], l)
		}
	}
	return t, assignment, oldToNew
}
