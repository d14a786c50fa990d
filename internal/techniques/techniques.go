// Package techniques implements the deterministic constraint-propagation
// techniques: naked single, hidden single, naked pair, hidden pair, and
// X-wing, plus the fixpoint driver that iterates them to quiescence.
package techniques

import "github.com/5cover/Sudoku-Solver/internal/grid"

// Technique targets a single cell and reports whether it made progress
// (eliminated a candidate or committed a value).
type Technique func(g *grid.Grid, r, c int) bool

// Techniques is the per-cell technique dispatch table, applied in this
// order for every empty cell by PerformSimpleTechniques. X-wing is not
// part of this table: it is grid-global, not cell-targeted.
var Techniques = []Technique{
	NakedSingle,
	HiddenSingle,
	NakedPair,
	HiddenPair,
}

// PerformSimpleTechniques iterates the technique table over every cell
// in row-major order. For each still-empty cell it applies the table in
// order, short-circuiting to the next cell as soon as the cell acquires
// a value. It returns whether any technique made progress during this
// pass.
func PerformSimpleTechniques(g *grid.Grid) bool {
	progress := false
	s := g.S()
	for r := 0; r < s; r++ {
		for c := 0; c < s; c++ {
			if g.Cell(r, c).HasValue() {
				continue
			}
			for _, t := range Techniques {
				if t(g, r, c) {
					progress = true
				}
				if g.Cell(r, c).HasValue() {
					break
				}
			}
		}
	}
	return progress
}
