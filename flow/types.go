package flow

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = fmt.Errorf("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = fmt.Errorf("sink vertex not found")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %g", e.From, e.To, e.Cap)
}

// FlowOptions configures all max-flow algorithms.
//   - Ctx: cancellation/deadline for Dinic, checked between augmentations
//     (FordFulkerson and EdmondsKarp take their context as a parameter).
//   - Epsilon: treat capacities ≤ Epsilon as zero (default 1e-9).
//   - Logger: when non-nil, each augmentation is logged at Debug level
//     (the line-inclusion caller, line.IncludesWith, runs this once
//     per candidate pair during Maximize/DiscardUseless fan-outs, so a
//     nil Logger — the default — keeps the hot path silent).
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Ctx                  context.Context
	Epsilon              float64
	Logger               *logrus.Logger
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults: a background
// context, Epsilon = 1e-9, no logging, no forced level rebuild.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:     context.Background(),
		Epsilon: 1e-9,
	}
}

// normalize fills in zero-value fields so callers may pass a bare
// FlowOptions{} and still get a working context and epsilon.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-9
	}
}
