package techniques

import "github.com/5cover/Sudoku-Solver/internal/grid"

// NakedPair triggers when (r, c) has exactly two candidates. It looks
// within the cell's block (only — the source restricts naked pair to
// the block group, and that scope is preserved here) for exactly one
// other cell sharing the identical two-candidate set. When found, both
// candidates are removed from every other cell in the block.
func NakedPair(g *grid.Grid, r, c int) bool {
	cell := g.Cell(r, c)
	if cell.HasValue() || cell.CandidateCount() != 2 {
		return false
	}
	v1, v2 := cell.KthCandidate(1), cell.KthCandidate(2)

	block := g.BlockCells(r, c)
	var partner grid.Pos
	partners := 0
	for _, p := range block {
		if p[0] == r && p[1] == c {
			continue
		}
		pc := g.Cell(p[0], p[1])
		if pc.HasValue() || pc.CandidateCount() != 2 {
			continue
		}
		if pc.HasCandidate(v1) && pc.HasCandidate(v2) {
			partner = p
			partners++
		}
	}
	if partners != 1 {
		return false
	}

	progress := false
	for _, p := range block {
		if p == (grid.Pos{r, c}) || p == partner {
			continue
		}
		if g.RemoveCandidate(p[0], p[1], v1) {
			progress = true
		}
		if g.RemoveCandidate(p[0], p[1], v2) {
			progress = true
		}
	}
	return progress
}
