package line

import (
	"sort"
	"strings"

	"github.com/olidennis/round-eliminator-sub001/group"
	"github.com/olidennis/round-eliminator-sub001/invariant"
	"github.com/olidennis/round-eliminator-sub001/label"
	"github.com/olidennis/round-eliminator-sub001/part"
)

// Line is a normalized multiset of incidences: an ordered list of
// Parts, sorted by group and with adjacent equal-group parts merged.
type Line struct {
	Parts []part.Part
}

// New builds a Line from a (possibly unnormalized) slice of parts and
// normalizes it in place.
func New(parts []part.Part) Line {
	l := Line{Parts: append([]part.Part(nil), parts...)}
	l.Normalize()
	return l
}

// Normalize sorts parts by group and merges adjacent parts that share
// a group: two Many parts sum their counts; a Star absorbs any Many of
// the same group (the line's degree over that group becomes
// unbounded, represented by keeping only the Star part).
func (l *Line) Normalize() {
	sort.SliceStable(l.Parts, func(i, j int) bool {
		return l.Parts[i].Group.Less(l.Parts[j].Group)
	})

	out := l.Parts[:0]
	for _, p := range l.Parts {
		if len(out) > 0 && out[len(out)-1].Group.Equal(p.Group) {
			last := out[len(out)-1]
			if last.Type.IsStar() || p.Type.IsStar() {
				out[len(out)-1] = part.New(last.Group, group.Star)
			} else {
				out[len(out)-1] = part.New(last.Group, group.Many(last.Type.Value()+p.Type.Value()))
			}
			continue
		}
		out = append(out, p)
	}
	l.Parts = out
}

// HasStar reports whether any part of l has a Star multiplicity.
func (l Line) HasStar() bool {
	for _, p := range l.Parts {
		if p.Type.IsStar() {
			return true
		}
	}
	return false
}

// DegreeWithoutStar returns the sum of the Many multiplicities,
// ignoring any Star part.
func (l Line) DegreeWithoutStar() int {
	sum := 0
	for _, p := range l.Parts {
		if !p.Type.IsStar() {
			sum += p.Type.Value()
		}
	}
	return sum
}

// Degree describes the declared degree of a line or constraint: a
// finite count, or "has a Star" (an unbounded/wildcard degree).
type Degree struct {
	N    int
	Star bool
}

// Finite builds a finite Degree.
func Finite(n int) Degree { return Degree{N: n} }

// Infinite is the Star-carrying Degree.
var Infinite = Degree{Star: true}

// Equal reports structural Degree equality.
func (d Degree) Equal(other Degree) bool {
	return d.Star == other.Star && (d.Star || d.N == other.N)
}

// Degree returns l's declared degree.
func (l Line) Degree() Degree {
	if l.HasStar() {
		return Infinite
	}
	return Finite(l.DegreeWithoutStar())
}

// Equal reports whether l and other have the same normal form. Every
// Line in existence is already normalized by construction, so this is
// a plain structural comparison.
func (l Line) Equal(other Line) bool {
	if len(l.Parts) != len(other.Parts) {
		return false
	}
	for i := range l.Parts {
		if !l.Parts[i].Equal(other.Parts[i]) {
			return false
		}
	}
	return true
}

// Groups returns the groups of each part of l, in line order.
func (l Line) Groups() []group.Group {
	out := make([]group.Group, len(l.Parts))
	for i, p := range l.Parts {
		out[i] = p.Group
	}
	return out
}

// Edited returns a copy of l with f applied to every part's group;
// parts whose group becomes empty are dropped, then the result is
// renormalized, mirroring the original engine's `edited` helper.
func (l Line) Edited(f func(group.Group) group.Group) Line {
	out := make([]part.Part, 0, len(l.Parts))
	for _, p := range l.Parts {
		np := p.Edited(f)
		if !np.Group.IsEmpty() {
			out = append(out, np)
		}
	}
	return New(out)
}

// LineSet returns the set of labels appearing in l. It is only valid
// when every part's group is a singleton (true of lines produced by
// AllChoices); calling it otherwise is an invariant violation.
func (l Line) LineSet() group.Group {
	var labels []label.Label
	seen := map[label.Label]struct{}{}
	for _, p := range l.Parts {
		if p.Group.Len() != 1 {
			panic(invariant.New("Line.LineSet", "called on a line whose groups are not all singletons"))
		}
		lbl := p.Group.First()
		if _, ok := seen[lbl]; !ok {
			seen[lbl] = struct{}{}
			labels = append(labels, lbl)
		}
	}
	return group.New(labels)
}

// String renders l using t for label names, e.g. "AB(foo)C^3 D".
func (l Line) String(t *label.Table) string {
	parts := make([]string, len(l.Parts))
	for i, p := range l.Parts {
		parts[i] = p.String(t)
	}
	return strings.Join(parts, " ")
}
