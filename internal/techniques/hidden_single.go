package techniques

import "github.com/5cover/Sudoku-Solver/internal/grid"

type groupKind int

const (
	groupBlock groupKind = iota
	groupRow
	groupColumn
)

// HiddenSingle looks, in each of the three groups containing (r, c),
// for a value that appears in exactly one cell's candidate set within
// that group, and commits it there. Each of the three group scans is
// independent: a commit found via the block does not stop the row and
// column scans from also firing (potentially on different cells).
func HiddenSingle(g *grid.Grid, r, c int) bool {
	if g.Cell(r, c).HasValue() {
		return false
	}
	progress := false
	if applyHiddenSingle(g, g.BlockCells(r, c), groupBlock) {
		progress = true
	}
	if applyHiddenSingle(g, g.RowCells(r), groupRow) {
		progress = true
	}
	if applyHiddenSingle(g, g.ColumnCells(c), groupColumn) {
		progress = true
	}
	return progress
}

func applyHiddenSingle(g *grid.Grid, cells []grid.Pos, kind groupKind) bool {
	v, pos, found := findUniqueCandidate(g, cells)
	if !found {
		return false
	}
	g.ProvideValue(pos[0], pos[1], v)
	// Propagate to the other two groups containing pos; the group just
	// scanned already has v accounted for by the commit itself.
	if kind != groupBlock {
		g.RemoveCandidateFromBlock(pos[0], pos[1], v)
	}
	if kind != groupRow {
		g.RemoveCandidateFromRow(pos[0], v)
	}
	if kind != groupColumn {
		g.RemoveCandidateFromColumn(pos[1], v)
	}
	return true
}

// findUniqueCandidate scans values in ascending order and returns the
// first one that appears as a candidate in exactly one cell of the
// group, along with that cell's position. Later values that also have
// count 1 are left for a subsequent pass — this mirrors the original
// single-unique-candidate-per-call scan rather than collecting every
// hidden single in the group at once.
func findUniqueCandidate(g *grid.Grid, cells []grid.Pos) (v int, pos grid.Pos, found bool) {
	s := g.S()
	counts := make([]int, s+1)
	for _, p := range cells {
		cell := g.Cell(p[0], p[1])
		if cell.HasValue() {
			continue
		}
		for _, cv := range cell.CandidateValues() {
			counts[cv]++
		}
	}
	val := 1
	for val <= s && counts[val] != 1 {
		val++
	}
	if val > s {
		return 0, grid.Pos{}, false
	}
	for _, p := range cells {
		cell := g.Cell(p[0], p[1])
		if !cell.HasValue() && cell.HasCandidate(val) {
			return val, p, true
		}
	}
	// A count of exactly 1 was observed above, so some cell in the
	// group must hold val as a candidate. Reaching here means the two
	// scans disagree, which is a bug, not a recoverable runtime state.
	panic("techniques: hidden single: no cell holds the unique candidate")
}
