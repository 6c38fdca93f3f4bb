package diagram

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/olidennis/round-eliminator-sub001/label"
)

// Class is one strongly-connected-component of the indirect diagram:
// a set of labels that are mutually ≤ each other, collapsed to a
// single representative in the direct diagram.
type Class struct {
	Representative label.Label
	Members        []label.Label
}

// Direct is the Hasse reduction of Indirect after collapsing each
// strongly-connected component to its representative.
type Direct struct {
	Classes []Class
	repOf   map[label.Label]label.Label
	edges   map[label.Label]map[label.Label]bool // representative -> representative, transitively reduced
}

// RepresentativeOf returns the class representative a label was
// collapsed into.
func (d Direct) RepresentativeOf(l label.Label) label.Label {
	return d.repOf[l]
}

// Less reports whether there is a direct (Hasse) edge from a's class
// to b's class.
func (d Direct) Less(a, b label.Label) bool {
	ra, rb := d.repOf[a], d.repOf[b]
	return d.edges[ra] != nil && d.edges[ra][rb]
}

// ComputeDirect collapses ind's strongly-connected components (via
// Tarjan's algorithm over the ≤ relation treated as a directed graph)
// and computes the transitive reduction of the quotient order.
func ComputeDirect(ind Indirect) Direct {
	idOf := make(map[label.Label]int64, len(ind.labels))
	labelOf := make(map[int64]label.Label, len(ind.labels))
	g := simple.NewDirectedGraph()
	for i, l := range ind.labels {
		id := int64(i)
		idOf[l] = id
		labelOf[id] = l
		g.AddNode(simple.Node(id))
	}
	for _, a := range ind.labels {
		for _, b := range ind.labels {
			if a != b && ind.Leq(a, b) {
				g.SetEdge(simple.Edge{F: simple.Node(idOf[a]), T: simple.Node(idOf[b])})
			}
		}
	}

	sccs := topo.TarjanSCC(g)

	repOf := make(map[label.Label]label.Label, len(ind.labels))
	var classes []Class
	for _, scc := range sccs {
		members := make([]label.Label, len(scc))
		for i, n := range scc {
			members[i] = labelOf[n.ID()]
		}
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		rep := members[0]
		for _, m := range members {
			repOf[m] = rep
		}
		classes = append(classes, Class{Representative: rep, Members: members})
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].Representative < classes[j].Representative })

	// quotient reachability between class representatives
	reach := make(map[label.Label]map[label.Label]bool, len(classes))
	for _, ci := range classes {
		reach[ci.Representative] = make(map[label.Label]bool, len(classes))
		for _, cj := range classes {
			if ci.Representative == cj.Representative {
				continue
			}
			if ind.Leq(ci.Representative, cj.Representative) {
				reach[ci.Representative][cj.Representative] = true
			}
		}
	}

	// Hasse reduction: drop edges i->j implied by i->k->j for some k.
	edges := make(map[label.Label]map[label.Label]bool, len(classes))
	for _, ci := range classes {
		edges[ci.Representative] = make(map[label.Label]bool, len(classes))
		for b, direct := range reach[ci.Representative] {
			if !direct {
				continue
			}
			implied := false
			for c := range reach[ci.Representative] {
				if c == b {
					continue
				}
				if reach[c][b] {
					implied = true
					break
				}
			}
			if !implied {
				edges[ci.Representative][b] = true
			}
		}
	}

	return Direct{Classes: classes, repOf: repOf, edges: edges}
}

var _ graph.Directed = (*simple.DirectedGraph)(nil)
