package group

import (
	"sort"
	"strings"

	"github.com/olidennis/round-eliminator-sub001/label"
)

// Group is a sorted, duplicate-free set of labels. The zero value is
// the empty group.
type Group struct {
	labels []label.Label
}

// New builds a Group from an arbitrary slice of labels, sorting and
// deduplicating as needed. The input slice is not retained.
func New(labels []label.Label) Group {
	cp := append([]label.Label(nil), labels...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:0]
	for i, l := range cp {
		if i == 0 || l != out[len(out)-1] {
			out = append(out, l)
		}
	}
	return Group{labels: out}
}

// Single returns the singleton group {l}.
func Single(l label.Label) Group {
	return Group{labels: []label.Label{l}}
}

// FromSet builds a Group from a set of labels.
func FromSet(set map[label.Label]struct{}) Group {
	out := make([]label.Label, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	return New(out)
}

// AsSet returns the group's labels as a Go set.
func (g Group) AsSet() map[label.Label]struct{} {
	out := make(map[label.Label]struct{}, len(g.labels))
	for _, l := range g.labels {
		out[l] = struct{}{}
	}
	return out
}

// Labels returns the sorted labels backing the group. The caller must
// not mutate the returned slice.
func (g Group) Labels() []label.Label {
	return g.labels
}

// Len returns the number of distinct labels in the group.
func (g Group) Len() int {
	return len(g.labels)
}

// IsEmpty reports whether the group has no labels.
func (g Group) IsEmpty() bool {
	return len(g.labels) == 0
}

// First returns the smallest label in the group. It panics on an
// empty group; callers are expected to check Len/IsEmpty first, as
// this is only ever called on groups known by construction to be
// non-empty (e.g. the singleton groups produced during speedup).
func (g Group) First() label.Label {
	return g.labels[0]
}

// Contains reports whether l is a member of g.
func (g Group) Contains(l label.Label) bool {
	i := sort.Search(len(g.labels), func(i int) bool { return g.labels[i] >= l })
	return i < len(g.labels) && g.labels[i] == l
}

// Equal reports whether g and other contain exactly the same labels.
func (g Group) Equal(other Group) bool {
	if len(g.labels) != len(other.labels) {
		return false
	}
	for i := range g.labels {
		if g.labels[i] != other.labels[i] {
			return false
		}
	}
	return true
}

// Less provides a total order over groups (lexicographic on the sorted
// label vector), used to canonicalize part order inside a line.
func (g Group) Less(other Group) bool {
	for i := 0; i < len(g.labels) && i < len(other.labels); i++ {
		if g.labels[i] != other.labels[i] {
			return g.labels[i] < other.labels[i]
		}
	}
	return len(g.labels) < len(other.labels)
}

// Union returns the set union of g and other.
func (g Group) Union(other Group) Group {
	out := make([]label.Label, 0, len(g.labels)+len(other.labels))
	out = append(out, g.labels...)
	out = append(out, other.labels...)
	return New(out)
}

// Intersect returns the set intersection of g and other. Both inputs
// must already be sorted (true of every Group in existence), so this
// runs in O(|g|+|other|) via a merge rather than building a hash set.
func (g Group) Intersect(other Group) Group {
	var out []label.Label
	i, j := 0, 0
	for i < len(g.labels) && j < len(other.labels) {
		switch {
		case g.labels[i] < other.labels[j]:
			i++
		case g.labels[i] > other.labels[j]:
			j++
		default:
			out = append(out, g.labels[i])
			i++
			j++
		}
	}
	return Group{labels: out}
}

// IsSuperset reports whether every label in other is also in g.
func (g Group) IsSuperset(other Group) bool {
	if other.Len() > g.Len() {
		return false
	}
	i := 0
	for _, l := range other.labels {
		for i < len(g.labels) && g.labels[i] < l {
			i++
		}
		if i >= len(g.labels) || g.labels[i] != l {
			return false
		}
	}
	return true
}

// Filter returns the subgroup of labels satisfying keep.
func (g Group) Filter(keep func(label.Label) bool) Group {
	out := make([]label.Label, 0, len(g.labels))
	for _, l := range g.labels {
		if keep(l) {
			out = append(out, l)
		}
	}
	return Group{labels: out}
}

// Map applies f to every label and rebuilds a normalized Group from
// the results (which may collide, so this may shrink the group).
func Map(g Group, f func(label.Label) label.Label) Group {
	out := make([]label.Label, len(g.Labels()))
	for i, l := range g.Labels() {
		out[i] = f(l)
	}
	return New(out)
}

// String renders g using t for label names, e.g. "AB(foo)".
func (g Group) String(t *label.Table) string {
	var b strings.Builder
	for _, l := range g.labels {
		b.WriteString(t.Name(l))
	}
	return b.String()
}
