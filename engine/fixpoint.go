package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/olidennis/round-eliminator-sub001/algorithms"
	"github.com/olidennis/round-eliminator-sub001/problem"
)

// Fixpoint runs algorithms.Fixpoint under opts, the pipeline a driver
// uses to extract the deepest lower-bound witness reachable from seed
// without manual round-by-round stepping.
func Fixpoint(seed problem.Problem, opts Options) (problem.Problem, error) {
	log := logrus.WithField("run_id", opts.RunID)
	log.Debug("engine: fixpoint started")
	out, err := algorithms.Fixpoint(seed, opts.toAlgorithms())
	if err != nil {
		log.WithError(err).Debug("engine: fixpoint failed")
		return out, err
	}
	log.Debug("engine: fixpoint converged")
	return out, nil
}
