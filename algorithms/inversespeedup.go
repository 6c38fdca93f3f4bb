package algorithms

import (
	"fmt"

	"github.com/olidennis/round-eliminator-sub001/constraint"
	"github.com/olidennis/round-eliminator-sub001/group"
	"github.com/olidennis/round-eliminator-sub001/label"
	"github.com/olidennis/round-eliminator-sub001/line"
	"github.com/olidennis/round-eliminator-sub001/part"
	"github.com/olidennis/round-eliminator-sub001/problem"
)

// InverseSpeedup runs the round-elimination functor in reverse: given
// a problem solvable in T-1 rounds, it produces one solvable in T
// rounds, grounded on the original engine's inverse_speedup.
//
// Every distinct permutation of every concrete choice of p.Active
// becomes one passive line, with every part renamed to a fresh label
// (every part of every emitted line gets its own new label, so no new
// label is shared between two positions or two lines, even when they
// hold the same old label). The new active side is p.Passive
// re-expressed over the union of new labels behind each old label.
func InverseSpeedup(p problem.Problem) (problem.Problem, error) {
	oldToNew := map[label.Label][]label.Label{}
	seen := map[string]bool{}
	nextLabel := label.Label(0)

	var passiveLines []line.Line
	for _, choice := range p.Active.AllChoices() {
		for _, perm := range permutations(choice.Parts) {
			key := partsKey(perm)
			if seen[key] {
				continue
			}
			seen[key] = true

			renamed := make([]part.Part, len(perm))
			for i, pt := range perm {
				old := pt.Group.First()
				nl := nextLabel
				nextLabel++
				oldToNew[old] = append(oldToNew[old], nl)
				renamed[i] = part.New(group.Single(nl), pt.Type)
			}
			passiveLines = append(passiveLines, line.New(renamed))
		}
	}

	passive, err := constraint.New(passiveLines)
	if err != nil {
		return problem.Problem{}, err
	}

	active := p.Passive.Edited(func(g group.Group) group.Group {
		var out []label.Label
		for _, old := range g.Labels() {
			out = append(out, oldToNew[old]...)
		}
		return group.New(out)
	})

	labels := make([]label.Label, 0, nextLabel)
	for i := label.Label(0); i < nextLabel; i++ {
		labels = append(labels, i)
	}
	table := label.AssignAlphabetic(labels)

	out := problem.New(active, passive, table)
	if ind, ok := p.Caches().DiagramIndirect.Get(); ok {
		out.Caches().DiagramIndirectOld.Set(ind)
	}
	reverse := make(map[label.Label]group.Group, len(oldToNew))
	for old, news := range oldToNew {
		reverse[old] = group.New(news)
	}
	out.Caches().OldToNew.Set(reverse)

	return out, nil
}

// permutations returns every distinct ordering of parts (Heap's
// algorithm over a copy of the slice), mirroring the original
// engine's use of a generic permutation iterator over a line's parts.
func permutations(parts []part.Part) [][]part.Part {
	n := len(parts)
	if n == 0 {
		return [][]part.Part{nil}
	}
	work := append([]part.Part(nil), parts...)
	var out [][]part.Part
	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			out = append(out, append([]part.Part(nil), work...))
			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				work[i], work[k-1] = work[k-1], work[i]
			} else {
				work[0], work[k-1] = work[k-1], work[0]
			}
		}
	}
	generate(n)
	return out
}

func partsKey(parts []part.Part) string {
	key := ""
	for i, p := range parts {
		if i > 0 {
			key += "|"
		}
		key += fmt.Sprintf("%v:%s", p.Group.Labels(), p.Type.String())
	}
	return key
}
