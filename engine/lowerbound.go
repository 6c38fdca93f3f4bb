package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/olidennis/round-eliminator-sub001/algorithms"
	"github.com/olidennis/round-eliminator-sub001/problem"
)

// LowerBound iterates one speedup-then-simplify round at a time,
// mirroring the interactive lower-bound search a driver would perform
// by repeatedly asking for "the next round". It stops early, before
// rounds is exhausted, the moment a round's result is zero-round
// solvable, since no further round can say anything new about the
// lower bound. The returned slice always starts with p itself, so its
// length is the number of rounds actually produced plus one.
func LowerBound(p problem.Problem, rounds int, opts Options) ([]problem.Problem, error) {
	aopts := opts.toAlgorithms()
	log := logrus.WithField("run_id", opts.RunID)

	chain := []problem.Problem{p}
	current := p
	for i := 0; i < rounds; i++ {
		sped, err := algorithms.Speedup(current, aopts)
		if err != nil {
			return nil, err
		}
		simplified, err := algorithms.DiscardUseless(sped, true, aopts)
		if err != nil {
			return nil, err
		}

		chain = append(chain, simplified)
		current = simplified
		log.WithField("round", i+1).Debug("engine: lower-bound round produced")
		if algorithms.Triviality(simplified) {
			log.WithField("round", i+1).Debug("engine: lower-bound stopped, round is trivial")
			break
		}
	}
	return chain, nil
}
