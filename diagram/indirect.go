package diagram

import (
	"github.com/olidennis/round-eliminator-sub001/constraint"
	"github.com/olidennis/round-eliminator-sub001/group"
	"github.com/olidennis/round-eliminator-sub001/label"
	"github.com/olidennis/round-eliminator-sub001/line"
	"github.com/olidennis/round-eliminator-sub001/part"
)

// Indirect is the transitive closure of the induced order on labels:
// Leq(a, b) means replacing any occurrence of a with b yields a line
// still implied by the constraint it was computed from. It is
// reflexive and transitive.
type Indirect struct {
	labels []label.Label
	leq    map[label.Label]map[label.Label]bool
}

// Leq reports whether a ≤ b in the diagram.
func (d Indirect) Leq(a, b label.Label) bool {
	row, ok := d.leq[a]
	if !ok {
		return a == b
	}
	return row[b]
}

// Labels returns the labels this diagram was computed over.
func (d Indirect) Labels() []label.Label {
	return d.labels
}

// ComputeIndirect builds the indirect diagram over c's labels.
//
// For each ordered pair (a, b), a ≤ b iff for every line of c that
// contains a in some part's group G, substituting G with G ∪ {b}
// still yields a line c includes (§4.2). The raw pairwise relation is
// then closed under transitivity (Floyd-Warshall on booleans, since
// label counts are small).
func ComputeIndirect(c constraint.Constraint, labels []label.Label) Indirect {
	leq := make(map[label.Label]map[label.Label]bool, len(labels))
	for _, a := range labels {
		leq[a] = make(map[label.Label]bool, len(labels))
	}

	for _, a := range labels {
		for _, b := range labels {
			leq[a][b] = a == b || substitutionHolds(c, a, b)
		}
	}

	// Stage: close under transitivity.
	for _, k := range labels {
		for _, i := range labels {
			if !leq[i][k] {
				continue
			}
			for _, j := range labels {
				if leq[k][j] {
					leq[i][j] = true
				}
			}
		}
	}

	return Indirect{labels: append([]label.Label(nil), labels...), leq: leq}
}

// substitutionHolds reports whether replacing a with b in every
// occurrence across c's lines preserves membership in c.
func substitutionHolds(c constraint.Constraint, a, b label.Label) bool {
	for _, l := range c.Lines {
		for i, p := range l.Parts {
			if !p.Group.Contains(a) {
				continue
			}
			widened := group.New(append(append([]label.Label(nil), p.Group.Labels()...), b))
			edited := make([]part.Part, len(l.Parts))
			copy(edited, l.Parts)
			edited[i] = part.New(widened, p.Type)
			candidate := line.New(edited)
			if !c.Includes(candidate) {
				return false
			}
		}
	}
	return true
}
