package constraint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olidennis/round-eliminator-sub001/group"
	"github.com/olidennis/round-eliminator-sub001/label"
	"github.com/olidennis/round-eliminator-sub001/line"
)

// Constraint is a set of lines all sharing one declared degree (lines
// carrying a Star are exempt from the check, since their degree is
// unbounded), plus a flag recording whether the set has been closed
// under subsumption by Maximize.
type Constraint struct {
	Lines       []line.Line
	Degree      line.Degree
	IsMaximized bool
}

// New builds a Constraint from lines, deduplicating and verifying that
// every finite-degree line agrees on the declared degree.
func New(lines []line.Line) (Constraint, error) {
	if len(lines) == 0 {
		return Constraint{}, ErrEmptyConstraint
	}

	degree, ok := commonDegree(lines)
	if !ok {
		return Constraint{}, fmt.Errorf("%w", ErrMismatchedDegree)
	}

	dedup := dedupe(lines)
	sortLines(dedup)

	return Constraint{Lines: dedup, Degree: degree}, nil
}

// commonDegree returns the single finite degree shared by every
// finite-degree line, or Infinite if every line has a Star.
func commonDegree(lines []line.Line) (line.Degree, bool) {
	found := false
	var d line.Degree
	for _, l := range lines {
		ld := l.Degree()
		if ld.Star {
			continue
		}
		if !found {
			d, found = ld, true
			continue
		}
		if !d.Equal(ld) {
			return line.Degree{}, false
		}
	}
	if !found {
		return line.Infinite, true
	}
	return d, true
}

func dedupe(lines []line.Line) []line.Line {
	out := make([]line.Line, 0, len(lines))
	for _, l := range lines {
		dup := false
		for _, o := range out {
			if l.Equal(o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, l)
		}
	}
	return out
}

func sortLines(lines []line.Line) {
	sort.SliceStable(lines, func(i, j int) bool {
		return lineKey(lines[i]) < lineKey(lines[j])
	})
}

// lineKey renders a canonical, label-table-independent ordering key
// for a normalized line, used only to give Constraint.Lines a
// deterministic order (the set itself carries no ordering semantics).
func lineKey(l line.Line) string {
	var b strings.Builder
	for i, p := range l.Parts {
		if i > 0 {
			b.WriteByte('|')
		}
		fmt.Fprintf(&b, "%v:%s", p.Group.Labels(), p.Type.String())
	}
	return b.String()
}

// MarkMaximized records that c has been closed under Maximize.
func (c Constraint) MarkMaximized() Constraint {
	c.IsMaximized = true
	return c
}

// LabelsAppearing returns the set of labels used anywhere in c.
func (c Constraint) LabelsAppearing() group.Group {
	var labels []label.Label
	seen := map[label.Label]struct{}{}
	for _, l := range c.Lines {
		for _, g := range l.Groups() {
			for _, lbl := range g.Labels() {
				if _, ok := seen[lbl]; !ok {
					seen[lbl] = struct{}{}
					labels = append(labels, lbl)
				}
			}
		}
	}
	return group.New(labels)
}

// Edited returns a copy of c with f applied to every line's groups,
// dropping lines that become empty and renormalizing the rest. The
// IsMaximized flag is not preserved, since editing labels can break
// the maximality invariant.
func (c Constraint) Edited(f func(group.Group) group.Group) Constraint {
	out := make([]line.Line, 0, len(c.Lines))
	for _, l := range c.Lines {
		edited := l.Edited(f)
		if len(edited.Parts) > 0 {
			out = append(out, edited)
		}
	}
	nc, err := New(out)
	if err != nil {
		// editing a well-formed constraint's labels cannot change any
		// line's part count or multiplicities, only group contents, so
		// degree agreement is preserved.
		panic(fmt.Sprintf("constraint: Edited produced an invalid constraint: %v", err))
	}
	return nc
}

// DiscardNonMaximalLines drops every line that is subsumed by another
// distinct line of c (per line.Includes), keeping only the maximal
// ones. It does not change IsMaximized.
func (c Constraint) DiscardNonMaximalLines() Constraint {
	return c.DiscardNonMaximalWith(group.Group.IsSuperset)
}

// DiscardNonMaximalWith is DiscardNonMaximalLines generalized over the
// group-compatibility predicate, so discard_useless (spec §4.7) can
// pass the diagram's ≤ relation instead of plain superset.
func (c Constraint) DiscardNonMaximalWith(superset func(a, b group.Group) bool) Constraint {
	keep := make([]line.Line, 0, len(c.Lines))
	for i, l := range c.Lines {
		subsumed := false
		for j, other := range c.Lines {
			if i == j {
				continue
			}
			oIncl := other.IncludesWith(l, superset)
			lIncl := l.IncludesWith(other, superset)
			if oIncl && !lIncl {
				subsumed = true
				break
			}
			if oIncl && lIncl && j < i {
				// equal-strength duplicate; keep the earlier one only.
				subsumed = true
				break
			}
		}
		if !subsumed {
			keep = append(keep, l)
		}
	}
	c.Lines = keep
	return c
}

// AllChoices returns every line obtainable by choosing one label from
// each non-Star part's group, across every line of c, used by
// inverse_speedup to enumerate every concrete active choice.
func (c Constraint) AllChoices() []line.Line {
	var out []line.Line
	for _, l := range c.Lines {
		out = append(out, l.AllChoices()...)
	}
	return out
}

// Includes reports whether every tuple of labels satisfying l is
// already covered by some line of c, i.e. some line of c includes l.
func (c Constraint) Includes(l line.Line) bool {
	return c.IncludesWith(l, group.Group.IsSuperset)
}

// IncludesWith is Includes generalized over the group-compatibility
// predicate.
func (c Constraint) IncludesWith(l line.Line, superset func(a, b group.Group) bool) bool {
	for _, cl := range c.Lines {
		if cl.IncludesWith(l, superset) {
			return true
		}
	}
	return false
}

// String renders c as one line per Constraint.Lines entry, using t for
// label names. A nil t renders raw label indices.
func (c Constraint) String(t *label.Table) string {
	lines := make([]string, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = l.String(t)
	}
	return strings.Join(lines, "\n")
}
