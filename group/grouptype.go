package group

import (
	"fmt"

	"github.com/olidennis/round-eliminator-sub001/invariant"
)

// Type is the multiplicity attached to a Group inside a Part: either a
// fixed repetition count (Many) or an unbounded wildcard (Star).
//
// Modeled as a struct with a boolean discriminant rather than an
// interface, following the teacher pack's preference for plain
// configuration structs over boxed dispatch in hot paths
// (flow.FlowOptions): GroupType is compared and copied constantly
// inside the flow-graph construction of line inclusion, and an
// interface value would cost an allocation there.
type Type struct {
	star bool
	n    int
}

// One is the multiplicity of a plain, unrepeated part.
var One = Type{n: 1}

// Star is the wildcard "arbitrarily many" multiplicity.
var Star = Type{star: true}

// Many returns the multiplicity "repeated n times". n must be >= 1.
func Many(n int) Type {
	if n < 1 {
		panic(invariant.New("group.Many", fmt.Sprintf("n must be >= 1, got %d", n)))
	}
	return Type{n: n}
}

// IsStar reports whether t is the Star wildcard.
func (t Type) IsStar() bool {
	return t.star
}

// Value returns the repetition count for a Many multiplicity. Calling
// it on Star is an invariant violation: Star has no well-defined
// finite value, and every caller is expected to check IsStar first.
func (t Type) Value() int {
	if t.star {
		panic(invariant.New("GroupType.Value", "called on Star"))
	}
	return t.n
}

// String renders t the way the textual format expects it: "" for One,
// "^n" for Many(n), "*" for Star.
func (t Type) String() string {
	switch {
	case t.star:
		return "*"
	case t.n == 1:
		return ""
	default:
		return fmt.Sprintf("^%d", t.n)
	}
}

// Equal reports structural equality between two GroupTypes.
func (t Type) Equal(other Type) bool {
	return t.star == other.star && (t.star || t.n == other.n)
}
