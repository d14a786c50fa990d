// Package grid owns the Sudoku board's state: cell values, per-cell
// candidate bitsets, and per-row/column/block availability tables.
package grid

import "math/bits"

// Cell is a single board entry. Value 0 means empty; a nonzero value
// means candidates is empty and candidateCount is 0.
type Cell struct {
	value          int
	candidates     uint64
	candidateCount int
}

// HasValue reports whether the cell has been committed.
func (c Cell) HasValue() bool { return c.value != 0 }

// Value returns the committed value, or 0 if the cell is empty.
func (c Cell) Value() int { return c.value }

// HasCandidate reports whether v is still a candidate for this cell.
func (c Cell) HasCandidate(v int) bool {
	return c.candidates&(1<<uint(v)) != 0
}

// CandidateCount returns the cached cardinality of the candidate set.
func (c Cell) CandidateCount() int { return c.candidateCount }

// FirstCandidate returns the smallest candidate value. Only valid when
// CandidateCount() >= 1.
func (c Cell) FirstCandidate() int {
	return bits.TrailingZeros64(c.candidates)
}

// KthCandidate returns the k-th candidate (1-indexed) in ascending
// order. Used by naked pair, which only calls it on a cell known to
// hold exactly two candidates.
func (c Cell) KthCandidate(k int) int {
	mask := c.candidates
	for {
		v := bits.TrailingZeros64(mask)
		k--
		if k == 0 {
			return v
		}
		mask &^= 1 << uint(v)
	}
}

// candidateValues returns every candidate value in ascending order.
// Unexported: used internally by techniques that need to enumerate a
// small candidate set rather than look up specific ranks.
func (c Cell) candidateValues() []int {
	vals := make([]int, 0, c.candidateCount)
	mask := c.candidates
	for mask != 0 {
		v := bits.TrailingZeros64(mask)
		vals = append(vals, v)
		mask &^= 1 << uint(v)
	}
	return vals
}

// CandidateValues exposes candidateValues for callers outside the
// package (hidden single, hidden pair, tests).
func (c Cell) CandidateValues() []int { return c.candidateValues() }
