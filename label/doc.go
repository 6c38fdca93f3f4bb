// Package label defines Label, the small integer identifier every
// other package in this module builds on, and Table, the bidirectional
// mapping between a Label and its human-readable name.
//
// Labels carry no intrinsic meaning. A problem with several hundred
// distinct labels (the result of a handful of speedup rounds) is
// still small by the standards of a general graph-algorithms library,
// which is why Label is a plain fixed-width integer rather than an
// interned string or a pointer.
package label
