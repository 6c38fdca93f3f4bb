package algorithms

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/olidennis/round-eliminator-sub001/constraint"
	"github.com/olidennis/round-eliminator-sub001/group"
	"github.com/olidennis/round-eliminator-sub001/line"
	"github.com/olidennis/round-eliminator-sub001/pairing"
	"github.com/olidennis/round-eliminator-sub001/part"
)

// Maximize closes c under its implications (spec §4.4): repeatedly
// forms the "product" of every unordered pair of lines (including a
// line paired with itself) via a multiset pairing of their
// multiplicities, intersects matched groups, and adds any resulting
// line not already present. Iterates to a fixed point, discarding
// non-maximal lines after every round, and marks the result
// maximized.
//
// Pairwise products within one round are independent and read-only,
// so they are fanned out across a semaphore-bounded worker pool (spec
// §5); a single goroutine (this one) owns merging results into the
// next round's line set, matching "the collector is the sole mutator
// of shared state during the fan-out."
func Maximize(c constraint.Constraint, opts Options) (constraint.Constraint, error) {
	opts = opts.normalize()

	current := c
	for {
		select {
		case <-opts.Ctx.Done():
			return constraint.Constraint{}, ErrCancelled
		default:
		}

		pairs := unorderedPairsWithSelf(len(current.Lines))
		results := make([][]line.Line, len(pairs))

		g, gctx := errgroup.WithContext(opts.Ctx)
		sem := semaphore.NewWeighted(int64(opts.PoolSize))
		for idx, pr := range pairs {
			idx, pr := idx, pr
			g.Go(func() error {
				if err := sem.Acquire(gctx, 1); err != nil {
					return ErrCancelled
				}
				defer sem.Release(1)
				select {
				case <-gctx.Done():
					return ErrCancelled
				default:
				}
				results[idx] = product(current.Lines[pr[0]], current.Lines[pr[1]])
				opts.Progress.Notify("maximize", idx+1, len(pairs))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			if errors.Is(err, ErrCancelled) {
				return constraint.Constraint{}, ErrCancelled
			}
			return constraint.Constraint{}, err
		}

		seen := make(map[string]struct{}, len(current.Lines))
		merged := append([]line.Line(nil), current.Lines...)
		for _, l := range merged {
			seen[lineKey(l)] = struct{}{}
		}
		added := false
		for _, rs := range results {
			for _, l := range rs {
				k := lineKey(l)
				if _, ok := seen[k]; ok {
					continue
				}
				seen[k] = struct{}{}
				merged = append(merged, l)
				added = true
			}
		}
		if !added {
			break
		}

		nc, err := constraint.New(merged)
		if err != nil {
			return constraint.Constraint{}, err
		}
		current = nc.DiscardNonMaximalLines()
	}

	return current.MarkMaximized(), nil
}

// unorderedPairsWithSelf returns every (i, j) with i <= j < n.
func unorderedPairsWithSelf(n int) [][2]int {
	var out [][2]int
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out = append(out, [2]int{i, j})
		}
	}
	return out
}

// product enumerates every line obtainable by pairing l1's
// multiplicities against l2's (§4.3) and intersecting matched groups.
// A pairing cell whose matched groups have an empty intersection
// discards that whole candidate line, per spec §4.4; it never reaches
// line.New with an empty-group part.
func product(l1, l2 line.Line) []line.Line {
	total := productTotal(l1, l2)
	v1 := productVector(l1, total)
	v2 := productVector(l2, total)

	p := pairing.New(v1, v2)
	var out []line.Line
	for {
		if parts := productParts(l1, l2, p.Current()); parts != nil {
			out = append(out, line.New(parts))
		}
		if !p.Advance() {
			break
		}
	}
	return out
}

// productTotal picks the finite degree the pairing is built over: the
// degree of whichever line has no Star (lines sharing a constraint
// already agree on that degree), or the larger of the two
// without-Star degrees when both carry a Star.
func productTotal(l1, l2 line.Line) int {
	switch {
	case !l1.HasStar():
		return l1.DegreeWithoutStar()
	case !l2.HasStar():
		return l2.DegreeWithoutStar()
	default:
		a, b := l1.DegreeWithoutStar(), l2.DegreeWithoutStar()
		if a > b {
			return a
		}
		return b
	}
}

// productVector turns l's parts into the multiplicity vector pairing
// needs: a Star part supplies whatever is left of total after every
// other part's multiplicity is accounted for.
func productVector(l line.Line, total int) []int {
	v := make([]int, len(l.Parts))
	for i, p := range l.Parts {
		if p.Type.IsStar() {
			v[i] = total - l.DegreeWithoutStar()
		} else {
			v[i] = p.Type.Value()
		}
	}
	return v
}

func productParts(l1, l2 line.Line, matrix [][]int) []part.Part {
	var out []part.Part
	for i, row := range matrix {
		for j, n := range row {
			if n == 0 {
				continue
			}
			inter := l1.Parts[i].Group.Intersect(l2.Parts[j].Group)
			if inter.IsEmpty() {
				return nil
			}
			out = append(out, part.New(inter, group.Many(n)))
		}
	}
	return out
}

// lineKey is a canonical, label-table-independent key used to
// deduplicate lines across maximize rounds without ever rendering
// through a (possibly nil) label.Table, mirroring
// constraint.lineKey's private ordering key.
func lineKey(l line.Line) string {
	var b strings.Builder
	for i, p := range l.Parts {
		if i > 0 {
			b.WriteByte('|')
		}
		fmt.Fprintf(&b, "%v:%s", p.Group.Labels(), p.Type.String())
	}
	return b.String()
}
