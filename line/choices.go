package line

import (
	"fmt"
	"strings"

	"github.com/olidennis/round-eliminator-sub001/group"
	"github.com/olidennis/round-eliminator-sub001/label"
	"github.com/olidennis/round-eliminator-sub001/part"
)

// AllChoices expands l into the set of fully-resolved lines obtained
// by picking, independently for every non-Star part, one label out of
// that part's group. A Star part is left untouched, since it has no
// finite set of choices. Duplicate resulting lines (after
// normalization) are collapsed, matching the set semantics of the
// original engine's choice enumeration used by the triviality and
// coloring-solvability reductions.
func (l Line) AllChoices() []Line {
	seen := map[string]struct{}{}
	var out []Line

	chosen := make([]label.Label, len(l.Parts))
	var rec func(i int)
	rec = func(i int) {
		if i == len(l.Parts) {
			parts := make([]part.Part, len(l.Parts))
			for j, p := range l.Parts {
				if p.Type.IsStar() {
					parts[j] = p
				} else {
					parts[j] = part.New(group.Single(chosen[j]), p.Type)
				}
			}
			cand := New(parts)
			key := lineKey(cand)
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				out = append(out, cand)
			}
			return
		}
		p := l.Parts[i]
		if p.Type.IsStar() {
			rec(i + 1)
			return
		}
		for _, lbl := range p.Group.Labels() {
			chosen[i] = lbl
			rec(i + 1)
		}
	}
	rec(0)
	return out
}

// lineKey renders a canonical, label-table-independent key for a
// normalized line, used to deduplicate without needing name lookups.
func lineKey(l Line) string {
	var b strings.Builder
	for i, p := range l.Parts {
		if i > 0 {
			b.WriteByte('|')
		}
		fmt.Fprintf(&b, "%v:%s", p.Group.Labels(), p.Type.String())
	}
	return b.String()
}
