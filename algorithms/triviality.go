package algorithms

import (
	"github.com/olidennis/round-eliminator-sub001/constraint"
	"github.com/olidennis/round-eliminator-sub001/group"
	"github.com/olidennis/round-eliminator-sub001/line"
	"github.com/olidennis/round-eliminator-sub001/part"
	"github.com/olidennis/round-eliminator-sub001/problem"
)

// Triviality reports whether p is solvable in zero rounds (spec
// §4.8): some active choice's label set, repeated across every
// passive port, already satisfies the passive constraint. A passive
// side with a Star degree is tested with a single port, since "every
// port" has no fixed count in that case.
func Triviality(p problem.Problem) bool {
	degree := p.Passive.Degree.N
	if p.Passive.Degree.Star || degree < 1 {
		degree = 1
	}
	for _, s := range minimalSets(p.Active) {
		parts := make([]part.Part, degree)
		for i := range parts {
			parts[i] = part.New(s, group.One)
		}
		if p.Passive.Includes(line.New(parts)) {
			return true
		}
	}
	return false
}

// minimalSets collects, over every concrete choice of every line of
// c, the set of labels the choice uses (line.LineSet), then keeps
// only the sets that are not a strict superset of another such set —
// the ≤-minimal antichain the original engine's
// minimal_sets_of_all_choices computes incrementally; this computes
// the same final antichain directly by pairwise comparison, since the
// candidate counts involved stay small.
func minimalSets(c constraint.Constraint) []group.Group {
	seen := map[string]bool{}
	var all []group.Group
	for _, l := range c.Lines {
		for _, choice := range l.AllChoices() {
			s := choice.LineSet()
			k := groupKeyOf(s)
			if !seen[k] {
				seen[k] = true
				all = append(all, s)
			}
		}
	}

	var result []group.Group
	for i, s := range all {
		minimal := true
		for j, other := range all {
			if i == j {
				continue
			}
			if s.IsSuperset(other) && !other.IsSuperset(s) {
				minimal = false
				break
			}
		}
		if minimal {
			result = append(result, s)
		}
	}
	return result
}
