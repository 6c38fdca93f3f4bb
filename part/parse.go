package part

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olidennis/round-eliminator-sub001/group"
	"github.com/olidennis/round-eliminator-sub001/label"
)

// Parse reads one part: a sequence of single-character or
// parenthesized-multi-character label tokens, optionally followed by
// "^n" or "*". Labels are registered in t, so the same name always
// resolves to the same label.Label across a whole problem.
//
// Stage 1 (scan): walk the runes in a two-state machine (outside vs.
// inside a parenthesized name), collecting group members.
// Stage 2 (multiplicity): consume an optional "^n" or "*" suffix.
// Stage 3 (validate): reject anything left over after a '*' or "^n",
// and an unterminated '('.
func Parse(s string, t *label.Table) (Part, error) {
	const (
		stateOut = iota
		stateIn
	)

	runes := []rune(s)
	state := stateOut
	var current strings.Builder
	var labels []label.Label
	gtype := group.One

	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case state == stateOut && c == '(':
			current.WriteRune('(')
			state = stateIn
			i++
		case state == stateOut && c == ')':
			return Part{}, fmt.Errorf("part: %w", ErrUnmatchedParen)
		case state == stateIn && (c == '(' || c == '^' || c == '*'):
			return Part{}, fmt.Errorf("part %q: %w", s, ErrReservedChar)
		case state == stateIn && c == ')':
			if current.Len() == 1 {
				return Part{}, fmt.Errorf("part %q: %w", s, ErrEmptyLabel)
			}
			current.WriteRune(')')
			labels = append(labels, t.LabelFor(current.String()))
			current.Reset()
			state = stateOut
			i++
		case state == stateOut && c == '*':
			gtype = group.Star
			i++
			if i < len(runes) {
				return Part{}, fmt.Errorf("part %q: %w", s, ErrTrailingAfterStar)
			}
		case state == stateOut && c == '^':
			i++
			start := i
			for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
				i++
			}
			if start == i {
				return Part{}, fmt.Errorf("part %q: %w", s, ErrInvalidExponent)
			}
			n, err := strconv.Atoi(string(runes[start:i]))
			if err != nil {
				return Part{}, fmt.Errorf("part %q: %w: %v", s, ErrInvalidExponent, err)
			}
			if n < 1 {
				return Part{}, fmt.Errorf("part %q: %w", s, ErrInvalidExponent)
			}
			gtype = group.Many(n)
			if i < len(runes) {
				return Part{}, fmt.Errorf("part %q: %w", s, ErrTrailingAfterStar)
			}
		case state == stateOut:
			labels = append(labels, t.LabelFor(string(c)))
			i++
		default: // state == stateIn, plain character
			current.WriteRune(c)
			i++
		}
	}

	if state == stateIn {
		return Part{}, fmt.Errorf("part %q: %w", s, ErrMissingCloseParen)
	}

	return Part{Group: group.New(labels), Type: gtype}, nil
}
