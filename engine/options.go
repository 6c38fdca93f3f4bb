// Package engine composes the algorithms package into the two
// pipelines an interactive driver needs: stepping a lower-bound
// search forward round by round, and taking a single upper-bound
// step. It is a thin façade — it holds no state of its own beyond the
// options value a caller threads through it.
package engine

import (
	"context"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/olidennis/round-eliminator-sub001/algorithms"
	"github.com/olidennis/round-eliminator-sub001/progress"
)

// PoolSizeEnv is the environment variable example drivers read the
// worker pool size from.
const PoolSizeEnv = "POUND_ELIM_POOL_SIZE"

// Options carries the same cancellation/progress/pool-size knobs as
// algorithms.Options; engine never reads globals itself; drivers build
// one value and thread it down explicitly. RunID is attached as the
// run_id field to the log lines LowerBound and Fixpoint write; it is
// not passed on to algorithms.Options, so progress notifications do
// not carry it. UpperBoundStep delegates straight to
// algorithms.InverseSpeedup, which takes no Options, so it carries no
// RunID.
type Options struct {
	Ctx      context.Context
	PoolSize int
	Progress progress.Sink
	RunID    uuid.UUID
}

// toAlgorithms converts to algorithms.Options; every algorithms entry
// point normalizes its Options on entry, so no defaulting happens
// here.
func (o Options) toAlgorithms() algorithms.Options {
	return algorithms.Options{Ctx: o.Ctx, PoolSize: o.PoolSize, Progress: o.Progress}
}

// LoadOptions builds an Options from the process environment,
// loading a .env file first (if present) via godotenv. PoolSize comes
// from POUND_ELIM_POOL_SIZE; an unset or unparseable value leaves
// PoolSize at 0, which algorithms.Options.normalize treats as
// runtime.GOMAXPROCS(0). Intended for use by example drivers, not by
// the core itself.
func LoadOptions(sink progress.Sink) Options {
	_ = godotenv.Load()

	opts := Options{Ctx: context.Background(), Progress: sink, RunID: uuid.New()}
	if raw, ok := os.LookupEnv(PoolSizeEnv); ok {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			opts.PoolSize = n
		}
	}
	return opts
}
