package algorithms

import (
	"sort"

	"github.com/olidennis/round-eliminator-sub001/clique"
	"github.com/olidennis/round-eliminator-sub001/group"
	"github.com/olidennis/round-eliminator-sub001/line"
	"github.com/olidennis/round-eliminator-sub001/part"
	"github.com/olidennis/round-eliminator-sub001/problem"
)

// ColoringSolvability computes the coloring sets of p (spec §4.8): the
// largest family of minimal active label-sets that are pairwise (or,
// for higher passive degree, combination-wise) compatible under the
// passive constraint, reduced to maximum clique. A nil, nil result
// means no such family exists.
//
// Degree-2 passive sides use the plain graph reduction (clique.Graph,
// grounded on compute_coloring_solvability); any other finite degree
// uses the combinatorial hypergraph reduction
// (compute_hypergraph_coloring_solvability).
func ColoringSolvability(p problem.Problem, opts Options) ([]group.Group, error) {
	opts = opts.normalize()
	if !p.Passive.Degree.Star && p.Passive.Degree.N == 2 {
		return coloringSolvabilityGraph(p, opts)
	}
	return coloringSolvabilityHypergraph(p, opts)
}

func coloringSolvabilityGraph(p problem.Problem, opts Options) ([]group.Group, error) {
	sets := minimalSets(p.Active)
	n := len(sets)
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			select {
			case <-opts.Ctx.Done():
				return nil, ErrCancelled
			default:
			}
			candidate := line.New([]part.Part{part.New(sets[i], group.One), part.New(sets[j], group.One)})
			if p.Passive.Includes(candidate) {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
			opts.Progress.Notify("coloring graph", n*i+j, n*n)
		}
	}

	hasEdge := false
	for _, a := range adj {
		if len(a) > 0 {
			hasEdge = true
			break
		}
	}
	if !hasEdge {
		return nil, nil
	}

	g := clique.FromAdj(adj)
	opts.Progress.Notify("clique", 1, 1)
	best := g.MaxClique()
	out := make([]group.Group, len(best))
	for i, idx := range best {
		out[i] = sets[idx]
	}
	sortGroups(out)
	return out, nil
}

func coloringSolvabilityHypergraph(p problem.Problem, opts Options) ([]group.Group, error) {
	maximizedPassive, err := Maximize(p.Passive, opts)
	if err != nil {
		return nil, err
	}

	degree := maximizedPassive.Degree.N
	if maximizedPassive.Degree.Star || degree < 2 {
		degree = 2
	}

	base := minimalSets(p.Active)
	type indexedSet struct {
		idx int
		set group.Group
	}
	var sets []indexedSet
	next := 0
	for _, s := range base {
		for r := 0; r < degree-1; r++ {
			sets = append(sets, indexedSet{next, s})
			next++
		}
	}

	var hyperedges [][]int
	for _, combo := range indexCombinations(len(sets), degree) {
		select {
		case <-opts.Ctx.Done():
			return nil, ErrCancelled
		default:
		}
		parts := make([]part.Part, len(combo))
		idxs := make([]int, len(combo))
		for i, c := range combo {
			parts[i] = part.New(sets[c].set, group.One)
			idxs[i] = sets[c].idx
		}
		if maximizedPassive.Includes(line.New(parts)) {
			hyperedges = append(hyperedges, idxs)
		}
	}
	if len(hyperedges) == 0 {
		return nil, nil
	}

	indexToSet := make(map[int]group.Group, len(sets))
	for _, s := range sets {
		indexToSet[s.idx] = s.set
	}

	g := clique.FromHyperedges(hyperedges)
	opts.Progress.Notify("clique", 1, 1)
	best := g.MaxClique()
	out := make([]group.Group, len(best))
	for i, idx := range best {
		out[i] = indexToSet[idx]
	}
	sortGroups(out)
	return out, nil
}

// indexCombinations returns every size-k subset of {0, ..., n-1}.
func indexCombinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	if k == 0 {
		return [][]int{{}}
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	var out [][]int
	for {
		combo := append([]int(nil), idx...)
		out = append(out, combo)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}

func sortGroups(gs []group.Group) {
	sort.Slice(gs, func(i, j int) bool { return gs[i].Less(gs[j]) })
}
