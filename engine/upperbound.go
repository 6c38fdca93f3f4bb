package engine

import (
	"github.com/olidennis/round-eliminator-sub001/algorithms"
	"github.com/olidennis/round-eliminator-sub001/problem"
)

// UpperBoundStep applies one round of inverse-speedup, the dual
// operation a driver uses to walk an upper-bound search backward one
// round at a time.
func UpperBoundStep(p problem.Problem) (problem.Problem, error) {
	return algorithms.InverseSpeedup(p)
}
