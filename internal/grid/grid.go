package grid

import "fmt"

// maxN bounds the block size so that candidate bitsets (uint64, bits
// 1..S) never need more than the low 50 bits.
const maxN = 7

// Grid is an N*N-block Sudoku board of side S = N*N. It owns all cell
// storage and the three per-value row/column/block availability tables.
//
// Pre-backtracking, the Grid maintains the synchronized-state invariant:
// rowFree/colFree/blockFree agree with committed values, and every empty
// cell's candidate set equals the intersection of its row/column/block
// availability. Once a caller asks for a SearchGrid (see package search),
// that invariant is no longer maintained for candidates — only Value and
// the availability tables remain meaningful.
type Grid struct {
	n, s int

	cells []Cell // row-major, length s*s

	// rowFree[r*(s+1)+v], colFree[c*(s+1)+v], blockFree[b*(s+1)+v]:
	// true means v has not yet been placed in that group. Value axis is
	// sized s+1 so v=0 is an unused slot.
	rowFree   []bool
	colFree   []bool
	blockFree []bool
}

// New creates an empty Grid for block size n (side s = n*n). All cells
// start empty with every value 1..s a candidate.
func New(n int) (*Grid, error) {
	if n < 2 {
		return nil, fmt.Errorf("grid: N must be >= 2, got %d", n)
	}
	if n > maxN {
		return nil, fmt.Errorf("grid: N must be <= %d (S=%d exceeds candidate bitset width), got %d", maxN, n*n, n)
	}
	s := n * n
	g := &Grid{
		n:         n,
		s:         s,
		cells:     make([]Cell, s*s),
		rowFree:   make([]bool, s*(s+1)),
		colFree:   make([]bool, s*(s+1)),
		blockFree: make([]bool, s*(s+1)),
	}
	fullMask := uint64(0)
	for v := 1; v <= s; v++ {
		fullMask |= 1 << uint(v)
	}
	for i := range g.cells {
		g.cells[i] = Cell{candidates: fullMask, candidateCount: s}
	}
	for i := range g.rowFree {
		g.rowFree[i] = true
		g.colFree[i] = true
		g.blockFree[i] = true
	}
	return g, nil
}

// N returns the block side length.
func (g *Grid) N() int { return g.n }

// S returns the grid side length (N*N).
func (g *Grid) S() int { return g.s }

func (g *Grid) index(r, c int) int { return r*g.s + c }

func (g *Grid) block(r, c int) int { return (r/g.n)*g.n + c/g.n }

// Cell returns the cell at (r, c) by value.
func (g *Grid) Cell(r, c int) Cell { return g.cells[g.index(r, c)] }

// Possible reports whether v can still be placed at (r, c): it is free
// in v's row, column, and block. Access order is column, row, block —
// fixed as a micro-optimization; callers must not rely on any side
// effect of evaluation order, as there are none.
func (g *Grid) Possible(r, c, v int) bool {
	return g.colFree[c*(g.s+1)+v] && g.rowFree[r*(g.s+1)+v] && g.blockFree[g.block(r, c)*(g.s+1)+v]
}

// MarkValueFree sets all three availability entries for v at (r, c)'s
// row, column, and block to free. Used both to commit a value (free =
// false) and to undo a tentative backtracking placement (free = true).
func (g *Grid) MarkValueFree(r, c, v int, free bool) {
	g.rowFree[r*(g.s+1)+v] = free
	g.colFree[c*(g.s+1)+v] = free
	g.blockFree[g.block(r, c)*(g.s+1)+v] = free
}

// ProvideValue commits v at (r, c), whether or not Possible(r, c, v)
// holds — a loader committing two conflicting clues is legal input
// that makes the puzzle unsolvable, not a programming error; callers
// that must not commit an impossible value check Possible themselves
// first. The cell must currently be empty. Eliminates v from every
// peer's candidate set in (r, c)'s row, column, and block, keeping the
// synchronized-state invariant that an empty cell's candidates equal
// the intersection of its row/column/block availability.
func (g *Grid) ProvideValue(r, c, v int) {
	idx := g.index(r, c)
	g.cells[idx] = Cell{value: v}
	g.MarkValueFree(r, c, v, false)
	g.RemoveCandidateFromRow(r, v)
	g.RemoveCandidateFromColumn(c, v)
	g.RemoveCandidateFromBlock(r, c, v)
}

// RemoveCandidate drops v from (r, c)'s candidate set. If v was not a
// candidate, reports no progress. If v was the cell's only remaining
// candidate, commits it (this is the cascading-commit behavior naked
// single relies on) and reports progress. Otherwise just drops v and
// reports progress.
func (g *Grid) RemoveCandidate(r, c, v int) bool {
	idx := g.index(r, c)
	cell := g.cells[idx]
	if cell.value != 0 {
		return false
	}
	if !cell.HasCandidate(v) {
		return false
	}
	if cell.candidateCount == 1 {
		g.ProvideValue(r, c, v)
		return true
	}
	cell.candidates &^= 1 << uint(v)
	cell.candidateCount--
	g.cells[idx] = cell
	return true
}

// RemoveCandidateFromRow removes v as a candidate from every cell in
// row r, reporting whether any cell changed.
func (g *Grid) RemoveCandidateFromRow(r, v int) bool {
	progress := false
	for c := 0; c < g.s; c++ {
		if g.RemoveCandidate(r, c, v) {
			progress = true
		}
	}
	return progress
}

// RemoveCandidateFromColumn removes v as a candidate from every cell
// in column c, reporting whether any cell changed.
func (g *Grid) RemoveCandidateFromColumn(c, v int) bool {
	progress := false
	for r := 0; r < g.s; r++ {
		if g.RemoveCandidate(r, c, v) {
			progress = true
		}
	}
	return progress
}

// RemoveCandidateFromBlock removes v as a candidate from every cell in
// the block containing (r, c), reporting whether any cell changed.
func (g *Grid) RemoveCandidateFromBlock(r, c, v int) bool {
	progress := false
	for _, pos := range g.BlockCells(r, c) {
		if g.RemoveCandidate(pos[0], pos[1], v) {
			progress = true
		}
	}
	return progress
}

// Pos is a (row, column) coordinate pair.
type Pos = [2]int

// RowCells returns the coordinates of every cell in row r, row-major.
func (g *Grid) RowCells(r int) []Pos {
	cells := make([]Pos, g.s)
	for c := 0; c < g.s; c++ {
		cells[c] = Pos{r, c}
	}
	return cells
}

// ColumnCells returns the coordinates of every cell in column c.
func (g *Grid) ColumnCells(c int) []Pos {
	cells := make([]Pos, g.s)
	for r := 0; r < g.s; r++ {
		cells[r] = Pos{r, c}
	}
	return cells
}

// BlockCells returns the coordinates of every cell in the block
// containing (r, c), in row-major order within the block.
func (g *Grid) BlockCells(r, c int) []Pos {
	startRow := (r / g.n) * g.n
	startCol := (c / g.n) * g.n
	cells := make([]Pos, 0, g.s)
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			cells = append(cells, Pos{startRow + i, startCol + j})
		}
	}
	return cells
}

// Values returns the full S*S grid of committed values (0 for empty),
// row-major. Used by the .sud codec and the renderer — both read-only
// consumers that never need Cell's candidate state.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.s)
	for r := 0; r < g.s; r++ {
		row := make([]int, g.s)
		for c := 0; c < g.s; c++ {
			row[c] = g.cells[g.index(r, c)].value
		}
		out[r] = row
	}
	return out
}

// EmptyPositions returns the coordinates of every still-empty cell, in
// row-major order.
func (g *Grid) EmptyPositions() []Pos {
	var out []Pos
	for r := 0; r < g.s; r++ {
		for c := 0; c < g.s; c++ {
			if g.cells[g.index(r, c)].value == 0 {
				out = append(out, Pos{r, c})
			}
		}
	}
	return out
}

// SetValue forcibly writes a value into a cell during backtracking
// without touching candidate state. See package search: this is the
// one escape hatch that lets the search phase write results back into
// the shared cell storage once candidate consistency is no longer
// maintained.
func (g *Grid) SetValue(r, c, v int) {
	idx := g.index(r, c)
	cell := g.cells[idx]
	cell.value = v
	g.cells[idx] = cell
}
