package line

import (
	"fmt"

	"github.com/olidennis/round-eliminator-sub001/core"
	"github.com/olidennis/round-eliminator-sub001/flow"
	"github.com/olidennis/round-eliminator-sub001/group"
	"github.com/olidennis/round-eliminator-sub001/invariant"
)

// Includes reports whether every incidence pattern compatible with
// other is also compatible with l: l "includes" other, the
// line-inclusion (subsumption) test of spec §4.2, using plain group
// superset as the compatibility predicate.
func (l Line) Includes(other Line) bool {
	return l.IncludesWith(other, group.Group.IsSuperset)
}

// IncludesWith is Includes generalized over the predicate deciding
// whether an l-part may host an other-part: superset(a, b) should
// report whether group b may be matched against group a. Passing
// group.Group.IsSuperset recovers Includes; simplification passes
// substitute the diagram's ≤ relation to ask "is every incidence
// satisfying other also satisfied once group a is read as its diagram
// successors" (spec §4.7).
//
// The test is reduced to a maximum bipartite flow problem: a source
// feeds l's parts up to their multiplicity, each l-part feeds every
// other-part that superset accepts, and other's parts drain into a
// sink up to their multiplicity. l includes other iff some flow
// saturates every sink edge, i.e. the max flow equals other's finite
// degree. A Star part supplies or demands an amount large enough to
// never be the bottleneck in this graph.
func (l Line) IncludesWith(other Line, superset func(a, b group.Group) bool) bool {
	if len(other.Parts) == 0 {
		return true
	}
	if len(l.Parts) == 0 {
		return false
	}
	if other.HasStar() && !l.HasStar() {
		// an unbounded demand can only be met by an unbounded supply.
		return false
	}

	inf := int64(l.DegreeWithoutStar()+other.DegreeWithoutStar()) + 1

	const source, sink = "s", "t"
	g, err := core.NewBipartitePlusFlow(source, sink)
	if err != nil {
		panic(invariant.New("Line.Includes", err.Error()))
	}

	l1 := func(i int) string { return fmt.Sprintf("a%d", i) }
	l2 := func(j int) string { return fmt.Sprintf("b%d", j) }

	for i, p := range l.Parts {
		cap := inf
		if !p.Type.IsStar() {
			cap = int64(p.Type.Value())
		}
		if _, err := g.AddEdge(source, l1(i), cap); err != nil {
			panic(invariant.New("Line.Includes", err.Error()))
		}
	}

	demand := int64(0)
	for j, p := range other.Parts {
		cap := inf
		if !p.Type.IsStar() {
			cap = int64(p.Type.Value())
			demand += cap
		}
		if _, err := g.AddEdge(l2(j), sink, cap); err != nil {
			panic(invariant.New("Line.Includes", err.Error()))
		}
	}

	for i, pi := range l.Parts {
		for j, pj := range other.Parts {
			if superset(pi.Group, pj.Group) {
				if _, err := g.AddEdge(l1(i), l2(j), inf); err != nil {
					panic(invariant.New("Line.Includes", err.Error()))
				}
			}
		}
	}

	maxFlow, _, err := flow.Dinic(g, source, sink, flow.DefaultOptions())
	if err != nil {
		panic(invariant.New("Line.Includes", err.Error()))
	}
	return int64(maxFlow) >= demand
}
