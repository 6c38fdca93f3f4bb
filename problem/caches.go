package problem

import (
	"github.com/olidennis/round-eliminator-sub001/diagram"
	"github.com/olidennis/round-eliminator-sub001/group"
	"github.com/olidennis/round-eliminator-sub001/label"
)

// Caches is a Problem's side table of derived, optionally-computed
// views. It never refers back to the Problem that produced it; a
// Problem only ever points forward to its own *Caches.
type Caches struct {
	DiagramIndirect Cache[diagram.Indirect]
	DiagramDirect   Cache[diagram.Direct]

	// DiagramIndirectOld carries the previous problem's indirect
	// diagram across one speedup step (§4.6 step 6); it is the one
	// field ResetAll does not touch, since Speedup populates it
	// explicitly from the pre-speedup problem.
	DiagramIndirectOld Cache[diagram.Indirect]

	TrivialSets  Cache[[]group.Group]
	ColoringSets Cache[[]group.Group]

	// NewToOld maps a label of the post-speedup problem to the group
	// of pre-speedup labels it was derived from.
	NewToOld Cache[map[label.Label]group.Group]
	// OldToNew maps a pre-speedup label to the group of post-speedup
	// labels whose backing set contains it.
	OldToNew Cache[map[label.Label]group.Group]
}

// ResetAll clears every cache except DiagramIndirectOld.
func (c *Caches) ResetAll() {
	c.DiagramIndirect.Reset()
	c.DiagramDirect.Reset()
	c.TrivialSets.Reset()
	c.ColoringSets.Reset()
	c.NewToOld.Reset()
	c.OldToNew.Reset()
}
