package part

import (
	"github.com/olidennis/round-eliminator-sub001/group"
	"github.com/olidennis/round-eliminator-sub001/label"
)

// Part is one (label-set, multiplicity) element of a Line.
type Part struct {
	Group group.Group
	Type  group.Type
}

// New builds a Part from a group and a multiplicity.
func New(g group.Group, t group.Type) Part {
	return Part{Group: g, Type: t}
}

// Equal reports structural equality.
func (p Part) Equal(other Part) bool {
	return p.Group.Equal(other.Group) && p.Type.Equal(other.Type)
}

// Edited returns a copy of p with f applied to its group. If f shrinks
// the group to empty, the caller is responsible for discarding the
// resulting Part (see line.Edited), mirroring the original engine's
// `edited` helper, which drops lines containing an empty-group part.
func (p Part) Edited(f func(group.Group) group.Group) Part {
	return Part{Group: f(p.Group), Type: p.Type}
}

// String renders p using t for label names, e.g. "AB(foo)C^3".
func (p Part) String(t *label.Table) string {
	return p.Group.String(t) + p.Type.String()
}
