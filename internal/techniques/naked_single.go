package techniques

import "github.com/5cover/Sudoku-Solver/internal/grid"

// NakedSingle commits the cell at (r, c) if it has exactly one
// remaining candidate, then propagates that value's elimination to its
// row, column, and block. The elimination calls cover (r, c) itself,
// which is how the cell actually gets committed — RemoveCandidate
// commits any cell it reduces to a single candidate, and this cell
// already is one. Any other cell thereby reduced to a single candidate
// cascades into a commit of its own; this is intended.
func NakedSingle(g *grid.Grid, r, c int) bool {
	cell := g.Cell(r, c)
	if cell.HasValue() || cell.CandidateCount() != 1 {
		return false
	}
	v := cell.FirstCandidate()

	progress := false
	if g.RemoveCandidateFromRow(r, v) {
		progress = true
	}
	if g.RemoveCandidateFromColumn(c, v) {
		progress = true
	}
	if g.RemoveCandidateFromBlock(r, c, v) {
		progress = true
	}
	return progress
}
