package techniques

import "github.com/5cover/Sudoku-Solver/internal/grid"

// XWing is grid-global rather than cell-targeted, so it is not part of
// the Techniques dispatch table; the fixpoint driver's caller applies
// it between passes of PerformSimpleTechniques.
//
// It runs two symmetric passes: vertical (candidate confined to two
// rows across two columns, eliminate along those rows) and horizontal
// (the row/column dual).
func XWing(g *grid.Grid) bool {
	progress := xWingVertical(g)
	if xWingHorizontal(g) {
		progress = true
	}
	return progress
}

func xWingVertical(g *grid.Grid) bool {
	s := g.S()
	progress := false
	for v := 1; v <= s; v++ {
		for c1 := 0; c1 < s; c1++ {
			rows1 := candidateRowsInColumn(g, c1, v)
			if len(rows1) != 2 {
				continue
			}
			for c2 := c1 + 1; c2 < s; c2++ {
				rows2 := candidateRowsInColumn(g, c2, v)
				if len(rows2) != 2 || rows1[0] != rows2[0] || rows1[1] != rows2[1] {
					continue
				}
				r1, r2 := rows1[0], rows1[1]
				for c := 0; c < s; c++ {
					if c == c1 || c == c2 {
						continue
					}
					if g.RemoveCandidate(r1, c, v) {
						progress = true
					}
					if g.RemoveCandidate(r2, c, v) {
						progress = true
					}
				}
			}
		}
	}
	return progress
}

func xWingHorizontal(g *grid.Grid) bool {
	s := g.S()
	progress := false
	for v := 1; v <= s; v++ {
		for r1 := 0; r1 < s; r1++ {
			cols1 := candidateColumnsInRow(g, r1, v)
			if len(cols1) != 2 {
				continue
			}
			for r2 := r1 + 1; r2 < s; r2++ {
				cols2 := candidateColumnsInRow(g, r2, v)
				if len(cols2) != 2 || cols1[0] != cols2[0] || cols1[1] != cols2[1] {
					continue
				}
				c1, c2 := cols1[0], cols1[1]
				for r := 0; r < s; r++ {
					if r == r1 || r == r2 {
						continue
					}
					if g.RemoveCandidate(r, c1, v) {
						progress = true
					}
					if g.RemoveCandidate(r, c2, v) {
						progress = true
					}
				}
			}
		}
	}
	return progress
}

// candidateRowsInColumn returns the rows, in ascending order, of every
// empty cell in column c that still carries v as a candidate.
func candidateRowsInColumn(g *grid.Grid, c, v int) []int {
	var rows []int
	for r := 0; r < g.S(); r++ {
		cell := g.Cell(r, c)
		if !cell.HasValue() && cell.HasCandidate(v) {
			rows = append(rows, r)
			if len(rows) > 2 {
				break
			}
		}
	}
	return rows
}

// candidateColumnsInRow is the row/column dual of candidateRowsInColumn.
func candidateColumnsInRow(g *grid.Grid, r, v int) []int {
	var cols []int
	for c := 0; c < g.S(); c++ {
		cell := g.Cell(r, c)
		if !cell.HasValue() && cell.HasCandidate(v) {
			cols = append(cols, c)
			if len(cols) > 2 {
				break
			}
		}
	}
	return cols
}
