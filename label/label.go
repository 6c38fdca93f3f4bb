package label

import (
	"fmt"
	"sort"
)

// Label is a small integer identifier. It is widened to uint16 (the
// original round-elimination engine used a single byte) because a
// problem that has gone through several speedup rounds can legitimately
// exceed 256 distinct labels.
type Label uint16

// Table is the bidirectional name<->label mapping shared across a
// problem's active and passive constraints, so that the same textual
// name always maps to the same Label.
type Table struct {
	byName  map[string]Label
	byLabel map[Label]string
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{
		byName:  make(map[string]Label),
		byLabel: make(map[Label]string),
	}
}

// LabelFor returns the Label for name, allocating a fresh one (the next
// unused ordinal) the first time name is seen.
func (t *Table) LabelFor(name string) Label {
	if l, ok := t.byName[name]; ok {
		return l
	}
	l := Label(len(t.byName))
	t.byName[name] = l
	t.byLabel[l] = name
	return l
}

// Name returns the human-readable name for l, or its numeric form if l
// was never registered.
func (t *Table) Name(l Label) string {
	if n, ok := t.byLabel[l]; ok {
		return n
	}
	return fmt.Sprintf("(%d)", l)
}

// Len returns the number of distinct labels registered in the table.
func (t *Table) Len() int {
	return len(t.byName)
}

// Labels returns every registered label in ascending order.
func (t *Table) Labels() []Label {
	out := make([]Label, 0, len(t.byLabel))
	for l := range t.byLabel {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Pairs returns the (label, name) pairs sorted by label, matching the
// textual form of the original `mapping_label_text` field.
func (t *Table) Pairs() []Pair {
	labels := t.Labels()
	out := make([]Pair, len(labels))
	for i, l := range labels {
		out[i] = Pair{Label: l, Name: t.byLabel[l]}
	}
	return out
}

// Pair is one (Label, Name) entry of a Table snapshot.
type Pair struct {
	Label Label
	Name  string
}

// FromPairs rebuilds a Table from a snapshot produced by Pairs. It is
// used when assigning fresh alphabetic names after a speedup step.
func FromPairs(pairs []Pair) *Table {
	t := NewTable()
	for _, p := range pairs {
		t.byName[p.Name] = p.Label
		t.byLabel[p.Label] = p.Name
	}
	return t
}

// AssignAlphabetic renames every label in labels (assumed already
// sorted ascending and dense from 0) to A-Z, a-z, 0-9 and then
// "(n)" for the rest, the scheme the original engine uses after each
// speedup so that freshly minted labels stay human-readable.
func AssignAlphabetic(labels []Label) *Table {
	t := NewTable()
	for _, l := range labels {
		t.byLabel[l] = alphabeticName(l, len(labels))
		t.byName[t.byLabel[l]] = l
	}
	return t
}

func alphabeticName(l Label, total int) string {
	if int(l) >= 62 {
		return fmt.Sprintf("(%d)", l)
	}
	i := int(l)
	switch {
	case i < 26:
		return string(rune('A' + i))
	case i < 52:
		return string(rune('a' + i - 26))
	default:
		return string(rune('0' + i - 52))
	}
}
