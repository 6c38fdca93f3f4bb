// Package clique finds maximum cliques over the compatibility graphs
// built while computing coloring solvability (spec §4.8): a plain
// graph variant for passive degree 2, ported from the original
// engine's Cliquer-derived branch-and-bound, and a combinatorial
// hypergraph variant for higher passive degree.
package clique
