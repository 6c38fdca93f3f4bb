package pairing

import "github.com/olidennis/round-eliminator-sub001/invariant"

// Pairings enumerates, one at a time, every matrix of non-negative
// integers whose row sums equal v1 and column sums equal v2. It
// composes one comb per row: row i is bounded by whatever column
// budget remains after rows 0..i-1 have been placed. Advancing walks
// backward from the last row, advances the first row whose comb still
// has a next vector, and re-initializes every row after it to a fresh
// greedy fill under the resulting column budget.
type Pairings struct {
	v1, v2 []int
	rows   []*comb
	matrix [][]int
	first  bool
}

// New builds a Pairings positioned at its first matrix (greedy fill,
// row by row, of the remaining column budget). Panics if the vectors'
// sums disagree, since every call site constructs v1/v2 from a line's
// own multiplicities and a mismatch is a caller bug, not bad input.
func New(v1, v2 []int) *Pairings {
	sum1, sum2 := 0, 0
	for _, x := range v1 {
		sum1 += x
	}
	for _, x := range v2 {
		sum2 += x
	}
	if sum1 != sum2 {
		panic(invariant.New("pairing.New", "sum(v1) != sum(v2)"))
	}

	p := &Pairings{
		v1:     append([]int(nil), v1...),
		v2:     append([]int(nil), v2...),
		rows:   make([]*comb, len(v1)),
		matrix: make([][]int, len(v1)),
		first:  true,
	}
	p.recomputeFrom(0)
	return p
}

// recomputeFrom rebuilds rows[start:] as fresh greedy fills, given the
// column budget left over after rows 0..start-1's current values.
func (p *Pairings) recomputeFrom(start int) {
	remaining := append([]int(nil), p.v2...)
	for k := 0; k < start; k++ {
		for j, v := range p.matrix[k] {
			remaining[j] -= v
		}
	}
	for k := start; k < len(p.v1); k++ {
		p.rows[k] = newComb(p.v1[k], append([]int(nil), remaining...))
		p.matrix[k] = p.rows[k].current()
		for j, v := range p.matrix[k] {
			remaining[j] -= v
		}
	}
}

// Current returns the matrix Pairings is positioned at, as one slice
// per row. The returned slices are owned by Pairings and must not be
// retained past the next Advance call.
func (p *Pairings) Current() [][]int {
	return p.matrix
}

// Advance moves to the next matrix in the sequence, reporting false
// once every matrix with the given margins has been produced.
func (p *Pairings) Advance() bool {
	if p.first {
		p.first = false
		return true
	}
	for i := len(p.rows) - 1; i >= 0; i-- {
		if p.rows[i].advance() {
			p.matrix[i] = p.rows[i].current()
			p.recomputeFrom(i + 1)
			return true
		}
	}
	return false
}
