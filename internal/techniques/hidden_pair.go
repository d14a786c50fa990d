package techniques

import "github.com/5cover/Sudoku-Solver/internal/grid"

// HiddenPair triggers when (r, c) has two or more candidates. For each
// of the three groups containing it (block, row, column — unlike
// NakedPair, hidden pair is not restricted to the block), it enumerates
// candidate pairs drawn from the target cell and checks whether the
// pair is hidden: confined to exactly two cells in the group (one being
// the target) with no other cell in the group touching either value.
// When valid and at least one of the two cells carries extra
// candidates, both cells are restricted down to just the pair.
func HiddenPair(g *grid.Grid, r, c int) bool {
	cell := g.Cell(r, c)
	if cell.HasValue() || cell.CandidateCount() < 2 {
		return false
	}
	progress := false
	if hiddenPairInGroup(g, g.BlockCells(r, c), r, c) {
		progress = true
	}
	if hiddenPairInGroup(g, g.RowCells(r), r, c) {
		progress = true
	}
	if hiddenPairInGroup(g, g.ColumnCells(c), r, c) {
		progress = true
	}
	return progress
}

func hiddenPairInGroup(g *grid.Grid, cells []grid.Pos, r, c int) bool {
	targetCands := g.Cell(r, c).CandidateValues()
	progress := false

	for i := 0; i < len(targetCands); i++ {
		for j := i + 1; j < len(targetCands); j++ {
			v1, v2 := targetCands[i], targetCands[j]
			if applyHiddenPairCandidate(g, cells, v1, v2) {
				progress = true
			}
		}
	}
	return progress
}

// applyHiddenPairCandidate checks pair (v1, v2) against one group and
// applies the elimination if it is a valid hidden pair there.
func applyHiddenPairCandidate(g *grid.Grid, cells []grid.Pos, v1, v2 int) bool {
	var holders []grid.Pos
	for _, p := range cells {
		cell := g.Cell(p[0], p[1])
		if cell.HasValue() {
			continue
		}
		if cell.HasCandidate(v1) && cell.HasCandidate(v2) {
			holders = append(holders, p)
		} else if cell.HasCandidate(v1) || cell.HasCandidate(v2) {
			// A cell touching only one of the pair anywhere in the
			// group disqualifies it: the pair isn't confined.
			return false
		}
	}
	if len(holders) != 2 {
		return false
	}
	a, b := g.Cell(holders[0][0], holders[0][1]), g.Cell(holders[1][0], holders[1][1])
	if a.CandidateCount() == 2 && b.CandidateCount() == 2 {
		// Nothing to eliminate: both cells already hold exactly the pair.
		return false
	}

	progress := false
	for _, p := range holders {
		cell := g.Cell(p[0], p[1])
		for _, v := range cell.CandidateValues() {
			if v == v1 || v == v2 {
				continue
			}
			if g.RemoveCandidate(p[0], p[1], v) {
				progress = true
			}
		}
	}
	return progress
}
