package algorithms

import (
	"context"
	"errors"
	"runtime"

	"github.com/olidennis/round-eliminator-sub001/progress"
)

// ErrCancelled is returned (never panicked) when a caller-supplied
// context is done mid-operation. Spec §7 distinguishes cancellation
// from an invariant violation: it is an expected, clean abort, not a
// bug, so it is a sentinel error rather than a panic.
var ErrCancelled = errors.New("algorithms: cancelled")

// Options configures the parallel fan-outs and progress reporting of
// spec §5: only pure, read-only work is ever parallelized, and a
// single logical collector (here, the caller of Notify) owns result
// aggregation.
type Options struct {
	// Ctx carries cancellation; a nil Ctx behaves as
	// context.Background().
	Ctx context.Context
	// PoolSize bounds worker concurrency. 0 defaults to
	// runtime.GOMAXPROCS(0); 1 forces sequential execution, matching
	// spec §5's "1 forces sequential".
	PoolSize int
	// Progress receives Notify calls during long-running fan-outs. A
	// nil Progress is treated as progress.Null{}.
	Progress progress.Sink
}

func (o Options) normalize() Options {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.PoolSize <= 0 {
		o.PoolSize = runtime.GOMAXPROCS(0)
	}
	if o.Progress == nil {
		o.Progress = progress.Null{}
	}
	return o
}

// DefaultOptions returns a non-cancellable configuration with a pool
// size of runtime.GOMAXPROCS(0) and a null progress sink, suitable for
// tests and one-off calls.
func DefaultOptions() Options {
	return Options{}.normalize()
}
