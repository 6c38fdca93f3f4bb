package clique

// Graph is an undirected graph over node indices 0..n-1, ported from
// the Cliquer branch-and-bound algorithm the original engine vendors
// for coloring-solvability's compatibility graph.
type Graph struct {
	n   int
	adj [][]int
	m   [][]bool
}

// FromAdj builds a Graph from an adjacency list; adj is assumed to
// already contain both directions of every edge.
func FromAdj(adj [][]int) *Graph {
	n := len(adj)
	m := make([][]bool, n)
	for i := range m {
		m[i] = make([]bool, n)
	}
	for a, vs := range adj {
		for _, b := range vs {
			if a != b {
				m[a][b] = true
				m[b][a] = true
			}
		}
	}
	return &Graph{n: n, adj: adj, m: m}
}

// MaxClique returns the node indices of a maximum clique.
func (g *Graph) MaxClique() []int {
	n := g.n
	c := make([]int, n)
	v := g.ordering()
	max := 0
	var candidates, best []int

	for i := n - 1; i >= 0; i-- {
		vi := v[i]
		u := make([]int, 0, n-i)
		for _, x := range v[i:] {
			if g.m[vi][x] {
				u = append(u, x)
			}
		}
		found := false
		candidates = append(candidates, vi)
		g.cliqueRec(u, 1, c, &max, &found, &candidates, &best)
		candidates = candidates[:len(candidates)-1]
		c[vi] = max
	}
	return best
}

func (g *Graph) cliqueRec(u []int, size int, c []int, max *int, found *bool, candidates, best *[]int) {
	if len(u) == 0 && size > *max {
		*max = size
		*found = true
		*best = append([]int(nil), (*candidates)...)
	}
	for len(u) > 0 {
		if size+len(u) <= *max {
			return
		}
		vi := u[0]
		if size+c[vi] <= *max {
			return
		}
		u = u[1:]
		newu := make([]int, 0, len(u))
		for _, x := range u {
			if g.m[vi][x] {
				newu = append(newu, x)
			}
		}
		*candidates = append(*candidates, vi)
		g.cliqueRec(newu, size+1, c, max, found, candidates, best)
		*candidates = (*candidates)[:len(*candidates)-1]
		if *found {
			return
		}
	}
}

// ordering returns a greedy-coloring-derived vertex ordering used to
// seed the branch-and-bound's upper bound.
func (g *Graph) ordering() []int {
	n := g.n
	order := make([]int, 0, n)
	remaining := make([]bool, n)
	for i := range remaining {
		remaining[i] = true
	}
	degrees := make([]int, n)
	for i, v := range g.adj {
		degrees[i] = len(v)
	}

	anyRemaining := func() bool {
		for _, r := range remaining {
			if r {
				return true
			}
		}
		return false
	}

	for anyRemaining() {
		active := append([]bool(nil), remaining...)
		for {
			maxIdx, maxDeg, found := -1, -1, false
			for i, a := range active {
				if a && degrees[i] > maxDeg {
					maxIdx, maxDeg, found = i, degrees[i], true
				}
			}
			if !found {
				break
			}
			for _, x := range g.adj[maxIdx] {
				if active[x] {
					active[x] = false
					degrees[x]--
				}
			}
			order = append(order, maxIdx)
			active[maxIdx] = false
			remaining[maxIdx] = false
		}
	}
	return order
}
