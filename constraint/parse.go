package constraint

import (
	"fmt"
	"strings"

	"github.com/olidennis/round-eliminator-sub001/label"
	"github.com/olidennis/round-eliminator-sub001/line"
	"github.com/olidennis/round-eliminator-sub001/part"
)

// Parse reads one constraint: newline-separated lines, each a
// whitespace-separated sequence of parts (see part.Parse). Labels
// encountered are registered in t, so active and passive constraints
// parsed against the same table share label identities.
func Parse(s string, t *label.Table) (Constraint, error) {
	var lines []line.Line
	for _, raw := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		var parts []part.Part
		for _, tok := range strings.Fields(raw) {
			p, err := part.Parse(tok, t)
			if err != nil {
				return Constraint{}, fmt.Errorf("constraint: %w", err)
			}
			parts = append(parts, p)
		}
		lines = append(lines, line.New(parts))
	}
	return New(lines)
}
