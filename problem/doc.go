// Package problem implements Problem, the active/passive constraint
// pair of spec §3, together with its textual format (§6) and its
// cache side-table (§4.10, §9 "Cyclic caches on a value"): a Problem
// holds only source data, and every derived view lives in a separate
// Caches object with explicit Absent/Computed state per field.
package problem
