package problem

import (
	"github.com/olidennis/round-eliminator-sub001/constraint"
	"github.com/olidennis/round-eliminator-sub001/label"
)

// Problem is an active/passive constraint pair over a shared label
// table, plus a side table of derived caches. Every transformation in
// this module returns a new Problem value; a Problem's caches are
// never shared with the Problem it was derived from.
type Problem struct {
	Active  constraint.Constraint
	Passive constraint.Constraint
	Labels  *label.Table

	caches *Caches
}

// New builds a Problem with a fresh, empty cache side table.
func New(active, passive constraint.Constraint, labels *label.Table) Problem {
	return Problem{Active: active, Passive: passive, Labels: labels, caches: &Caches{}}
}

// Caches returns p's cache side table.
func (p Problem) Caches() *Caches {
	return p.caches
}

// ResetCaches clears every cache except DiagramIndirectOld, as
// required after any mutation to Active or Passive.
func (p Problem) ResetCaches() {
	p.caches.ResetAll()
}

// WithConstraints returns a copy of p with new active/passive
// constraints and a fresh cache side table (mutating the constraints
// always invalidates every derived view).
func (p Problem) WithConstraints(active, passive constraint.Constraint) Problem {
	return New(active, passive, p.Labels)
}

// String renders p in the textual format of spec §6: active block,
// one blank line, passive block.
func (p Problem) String() string {
	return p.Active.String(p.Labels) + "\n\n" + p.Passive.String(p.Labels)
}
