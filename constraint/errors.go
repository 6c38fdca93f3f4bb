package constraint

import "errors"

// Sentinel user errors. New and Parse return these either bare or
// wrapped, so callers should branch with errors.Is.
var (
	// ErrMismatchedDegree is returned when a constraint's lines don't
	// share a single finite declared degree.
	ErrMismatchedDegree = errors.New("constraint: lines have mismatched degrees")
	// ErrEmptyConstraint is returned for a constraint with no lines.
	ErrEmptyConstraint = errors.New("constraint: no lines")
)
