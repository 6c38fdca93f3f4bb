package algorithms

import (
	"errors"
	"sort"

	"github.com/olidennis/round-eliminator-sub001/constraint"
	"github.com/olidennis/round-eliminator-sub001/diagram"
	"github.com/olidennis/round-eliminator-sub001/group"
	"github.com/olidennis/round-eliminator-sub001/label"
	"github.com/olidennis/round-eliminator-sub001/problem"
)

var errNoOldLabelMapping = errors.New("algorithms: speedup result missing its old-label mapping")

// CriticalRelax widens p's passive groups along the labels
// critical_sets found to be non-essential, grounded on the original
// engine's critical_relax and used to extract lower-bound witnesses
// (spec §4.9).
func CriticalRelax(p problem.Problem, zero int, colors, colorsPassive *int, opts Options) (problem.Problem, error) {
	opts = opts.normalize()
	_, _, newPassive, err := criticalSets(p, zero, colors, colorsPassive, opts)
	if err != nil {
		return problem.Problem{}, err
	}
	return p.WithConstraints(p.Active, newPassive), nil
}

// CriticalHarden speeds p up once, then restricts the new active
// labels to those whose originating old-label set was either already
// irreducible or identified as critical, grounded on critical_harden.
func CriticalHarden(p problem.Problem, zero int, colors, colorsPassive *int, addPredecessors bool, opts Options) (problem.Problem, error) {
	opts = opts.normalize()
	original, critical, _, err := criticalSets(p, zero, colors, colorsPassive, opts)
	if err != nil {
		return problem.Problem{}, err
	}

	sped, err := Speedup(p, opts)
	if err != nil {
		return problem.Problem{}, err
	}

	oldSetOf, ok := sped.Caches().NewToOld.Get()
	if !ok {
		return problem.Problem{}, errNoOldLabelMapping
	}

	keep := map[label.Label]bool{}
	for newLabel, oldSet := range oldSetOf {
		if groupSetContains(original, oldSet) || groupSetContains(critical, oldSet) {
			keep[newLabel] = true
		}
	}

	labels := sped.Active.LabelsAppearing().Union(sped.Passive.LabelsAppearing()).Labels()
	ind := diagram.ComputeIndirect(sped.Passive, labels)
	sped.Caches().DiagramIndirect.Set(ind)

	return HardenKeep(sped, keep, addPredecessors), nil
}

// criticalSets computes, for p's maximized passive side, which of its
// groups already equal their own replacement ("original"), which
// cannot be replaced by a wider group without making the problem
// zero-round solvable ("critical"), and the passive constraint with
// every replaceable group widened to its replacement.
//
// Ported from critical_sets: for each group g of the maximized
// passive side, the candidate replacement is the smallest (by label
// count) successor-closure, under p's indirect diagram, that is a
// superset of g; groups are then tried for replacement largest-first,
// backing off by halves whenever replacing the current batch would
// make the problem trivial (optionally after up to zero further
// speedup/triviality checks, alternating the colors/colors_passive
// budgets), and batches that cannot be replaced even alone are
// recorded as critical.
func criticalSets(p problem.Problem, zero int, colors, colorsPassive *int, opts Options) ([]group.Group, []group.Group, constraint.Constraint, error) {
	labels := p.Active.LabelsAppearing().Union(p.Passive.LabelsAppearing()).Labels()
	ind := diagram.ComputeIndirect(p.Passive, labels)
	allLabels := group.New(labels)

	current, err := Maximize(p.Passive, opts)
	if err != nil {
		return nil, nil, constraint.Constraint{}, err
	}

	type mapping struct {
		old group.Group
		new group.Group
	}

	groups := distinctGroups(current)
	gmap := make([]mapping, 0, len(groups))
	for _, g := range groups {
		bestLen := -1
		var best group.Group
		for _, l := range labels {
			succ := successorSet(ind, l, labels)
			if succ.IsSuperset(g) && (bestLen == -1 || succ.Len() < bestLen) {
				bestLen = succ.Len()
				best = succ
			}
		}
		if bestLen == -1 {
			gmap = append(gmap, mapping{old: g, new: allLabels})
		} else {
			gmap = append(gmap, mapping{old: g, new: best})
		}
	}

	var original []group.Group
	for _, m := range gmap {
		if m.old.Equal(m.new) {
			original = append(original, m.old)
		}
	}

	sort.SliceStable(gmap, func(i, j int) bool { return gmap[i].old.Len() > gmap[j].old.Len() })

	var critical []group.Group
	i := 0
	for i != len(gmap) {
		size := len(gmap) - i
		replaced := false
		for size >= 1 {
			temp := current.Edited(func(g group.Group) group.Group {
				for j := i; j < i+size; j++ {
					if g.Equal(gmap[j].old) {
						return gmap[j].new
					}
				}
				return g
			})

			candidate := p.WithConstraints(p.Active, temp)
			trivial, err := isTrivialGivenInput(candidate, colors, opts)
			if err != nil {
				return nil, nil, constraint.Constraint{}, err
			}

			zerocheck := candidate
			c1, c2 := colors, colorsPassive
			if !trivial {
				for z := 0; z < zero; z++ {
					zerocheck, err = Speedup(zerocheck, opts)
					if err != nil {
						return nil, nil, constraint.Constraint{}, err
					}
					c1, c2 = c2, c1
					trivial, err = isTrivialGivenInput(zerocheck, c1, opts)
					if err != nil {
						return nil, nil, constraint.Constraint{}, err
					}
					if trivial {
						break
					}
				}
			}

			if !trivial {
				current = temp
				i += size
				replaced = true
				break
			}
			size /= 2
		}
		if !replaced {
			critical = append(critical, gmap[i].old)
			i++
		}
	}

	return original, critical, current, nil
}

// isTrivialGivenInput reports whether p is 0-round solvable outright,
// or solvable with at most colors independent colors when colors is
// non-nil, grounded on is_trivial_given_input.
func isTrivialGivenInput(p problem.Problem, colors *int, opts Options) (bool, error) {
	if Triviality(p) {
		return true, nil
	}
	if colors != nil {
		sets, err := ColoringSolvability(p, opts)
		if err != nil {
			return false, err
		}
		if len(sets) >= *colors {
			return true, nil
		}
	}
	return false, nil
}

// successorSet returns the set of labels b (drawn from labels) with
// l <= b under ind.
func successorSet(ind diagram.Indirect, l label.Label, labels []label.Label) group.Group {
	var out []label.Label
	for _, b := range labels {
		if ind.Leq(l, b) {
			out = append(out, b)
		}
	}
	return group.New(out)
}

func groupSetContains(set []group.Group, g group.Group) bool {
	for _, s := range set {
		if s.Equal(g) {
			return true
		}
	}
	return false
}
