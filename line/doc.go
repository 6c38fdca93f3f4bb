// Package line implements Line, an ordered-then-normalized list of
// Parts interpreted as a multiset of incidences, together with the
// line-inclusion (subsumption) test of spec §4.2, reduced to maximum
// bipartite flow and delegated to the flow package.
package line
