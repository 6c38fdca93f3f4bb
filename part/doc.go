// Package part implements Part, a (Group, GroupType) pair, and its
// textual parser. "ABC^3" parses to three incidences each of which may
// take any label in {A,B,C}.
package part
