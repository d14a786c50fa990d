// Package search implements the backtracking completeness guarantee:
// a minimum-remaining-values depth-first search over whatever cells
// the fixpoint driver could not resolve deterministically.
package search

import "github.com/5cover/Sudoku-Solver/internal/grid"

// SearchGrid is the one-way phase boundary into backtracking: once a
// propagated Grid hands off here, candidate consistency is no longer a
// required invariant, so this handle deliberately exposes only value
// and availability operations — never a cell's candidate set.
// Converting a *grid.Grid into a SearchGrid is explicit and, by
// contract, the caller must not run any further technique against the
// underlying grid afterward.
type SearchGrid struct {
	g *grid.Grid
}

// New wraps g for backtracking. Callers must have already driven g to
// fixpoint; New does not check this, since enforcing it would require
// exactly the candidate-state read propagation techniques promise never
// to need again.
func New(g *grid.Grid) *SearchGrid {
	return &SearchGrid{g: g}
}

// S returns the grid side length.
func (sg *SearchGrid) S() int { return sg.g.S() }

// Possible reports whether v can be placed at (r, c) per the
// availability tables only.
func (sg *SearchGrid) Possible(r, c, v int) bool { return sg.g.Possible(r, c, v) }

// MarkValueFree commits (free=false) or undoes (free=true) a tentative
// placement's effect on the availability tables, without touching
// candidate state.
func (sg *SearchGrid) MarkValueFree(r, c, v int, free bool) { sg.g.MarkValueFree(r, c, v, free) }

// SetValue writes the final committed value for (r, c).
func (sg *SearchGrid) SetValue(r, c, v int) { sg.g.SetValue(r, c, v) }
