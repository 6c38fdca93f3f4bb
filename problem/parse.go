package problem

import (
	"fmt"
	"strings"

	"github.com/olidennis/round-eliminator-sub001/constraint"
	"github.com/olidennis/round-eliminator-sub001/label"
)

// FromString parses the two-block textual format of spec §6: an
// active constraint, one blank line, a passive constraint. Both
// blocks share a freshly-created label table, so the same token
// resolves to the same label on either side.
func FromString(s string) (Problem, error) {
	blocks := strings.SplitN(s, "\n\n", 2)
	if len(blocks) != 2 {
		return Problem{}, fmt.Errorf("problem: expected two blocks separated by a blank line")
	}
	return FromStringActivePassive(blocks[0], blocks[1])
}

// FromStringActivePassive parses active and passive independently
// against a shared, freshly-created label table.
func FromStringActivePassive(active, passive string) (Problem, error) {
	t := label.FromPairs(nil)
	a, err := constraint.Parse(active, t)
	if err != nil {
		return Problem{}, fmt.Errorf("problem: active: %w", err)
	}
	p, err := constraint.Parse(passive, t)
	if err != nil {
		return Problem{}, fmt.Errorf("problem: passive: %w", err)
	}
	return New(a, p, t), nil
}
