// Package diagram computes the partial order over labels induced by
// constraint subsumption (spec §4.5): the indirect diagram (transitive
// closure of a ≤ b meaning "replacing a with b preserves every line"),
// and the direct diagram (its strongly-connected-component collapse
// followed by Hasse reduction).
package diagram
