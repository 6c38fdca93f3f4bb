package flow

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/olidennis/round-eliminator-sub001/core"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - maxFlow: total flow value
//   - residual: residual-capacity graph after flow
//   - err: non-nil on missing vertices, negative capacities, or ctx cancellation.
//
// Options (nil uses defaults):
//   - Epsilon: capacities ≤ Epsilon treated as zero (default 1e-9)
//   - Logger:  when set, each augmentation is logged at Debug level
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts *FlowOptions,
) (maxFlow float64, residual *core.Graph, err error) {
	// 1) Set epsilon
	eps := 1e-9
	if opts != nil && opts.Epsilon > 0 {
		eps = opts.Epsilon
	}

	// 2) Validate presence of source/sink
	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}

	// 3) Build the residual capacity map via the shared builder (sums
	// parallel edges, drops capacities ≤ eps), plus a reverse slot for
	// every forward edge so augmenting can always push flow back.
	capMap, err := buildCapMap(g, FlowOptions{Ctx: ctx, Epsilon: eps})
	if err != nil {
		return 0, nil, err
	}
	for u, nbrs := range capMap {
		for v := range nbrs {
			if _, ok := capMap[v]; !ok {
				capMap[v] = make(map[string]float64)
			}
			if _, ok := capMap[v][u]; !ok {
				capMap[v][u] = 0
			}
		}
	}

	// 4) Main loop: find BFS augmenting paths until none remain
	for {
		path, bottle := bfsAugmentingPath(ctx, capMap, source, sink, eps)
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}
		if len(path) == 0 || bottle <= eps {
			break
		}
		if opts != nil && opts.Logger != nil {
			opts.Logger.WithFields(logrus.Fields{
				"source": source,
				"sink":   sink,
				"path":   path,
				"flow":   bottle,
			}).Debug("edmonds-karp: augmenting path")
		}
		maxFlow += bottle

		// 5) Augment along the path
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			capMap[u][v] = math.Max(0, capMap[u][v]-bottle)
			capMap[v][u] += bottle
		}
	}

	// 6) Build residual core.Graph for return, inheriting g's flags.
	residual, err = buildCoreResidualFromCapMap(capMap, g, FlowOptions{Epsilon: eps})
	if err != nil {
		return maxFlow, nil, err
	}
	return maxFlow, residual, nil
}

// bfsAugmentingPath finds the shortest (fewest-edges) path in the
// residual capacity map from source→sink with positive capacity >
// eps, and returns that path plus its bottleneck capacity. Returns
// nil if no path found.
func bfsAugmentingPath(
	ctx context.Context,
	capMap map[string]map[string]float64,
	source, sink string,
	eps float64,
) ([]string, float64) {
	// parent[v] = predecessor of v on the path
	parent := make(map[string]string, len(capMap))
	// bottle[v] = bottleneck capacity from source→v
	bottle := map[string]float64{source: math.Inf(1)}
	visited := map[string]bool{source: true}

	queue := []string{source}
	for len(queue) > 0 {
		// context cancellation check
		select {
		case <-ctx.Done():
			return nil, 0
		default:
		}
		u := queue[0]
		queue = queue[1:]
		for v, capUV := range capMap[u] {
			if visited[v] || capUV <= eps {
				continue
			}
			visited[v] = true
			parent[v] = u
			bottle[v] = math.Min(bottle[u], capUV)
			if v == sink {
				// reconstruct path
				path := []string{sink}
				for cur := sink; cur != source; {
					p := parent[cur]
					path = append([]string{p}, path...)
					cur = p
				}
				return path, bottle[sink]
			}
			queue = append(queue, v)
		}
	}
	return nil, 0
}
