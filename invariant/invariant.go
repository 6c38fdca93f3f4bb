// Package invariant defines the single panic value every package in
// this module uses for internal-invariant violations (spec §7, class
// 2): recomputing an already-computed cache, calling Value() on a
// Star GroupType, calling LineSet on a non-singleton line, and a few
// further precondition checks (group.Many, pairing.New, line
// inclusion, hardening). Maximize drops a product candidate whose
// intersection is empty, so it never panics on an empty-group part.
//
// These are bugs, not recoverable errors, so they panic rather than
// return an error value — but they panic with a typed, inspectable
// value rather than a bare string, so a top-level driver (out of
// scope for this module) can recover(), log structurally, and convert
// to its own failure representation instead of crashing the process.
package invariant

import "fmt"

// Violation is raised by a panic() when the core detects that a
// precondition documented as a hard invariant has been broken by the
// caller or by a logic error inside the core itself.
type Violation struct {
	// Where names the function or method that detected the violation.
	Where string
	// What describes the broken invariant.
	What string
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: invariant violated: %s", v.Where, v.What)
}

// New constructs a Violation. It does not panic; callers do
// `panic(invariant.New(...))` at the call site so the panic location
// in a stack trace points at the actual violation, not at a shared
// helper.
func New(where, what string) Violation {
	return Violation{Where: where, What: what}
}
