package solve

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/5cover/Sudoku-Solver/internal/grid"
)

func gridFromRows(t *testing.T, n int, rows [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.New(n)
	require.NoError(t, err)
	for r, row := range rows {
		for c, v := range row {
			if v != 0 {
				require.True(t, g.Possible(r, c, v), "clue at (%d,%d)=%d conflicts", r, c, v)
				g.ProvideValue(r, c, v)
			}
		}
	}
	return g
}

func requireValidSolution(t *testing.T, g *grid.Grid) {
	t.Helper()
	s := g.S()
	values := g.Values()
	for r := 0; r < s; r++ {
		seen := map[int]bool{}
		for c := 0; c < s; c++ {
			v := values[r][c]
			require.NotZero(t, v, "row %d col %d still empty", r, c)
			require.False(t, seen[v], "row %d has duplicate %d", r, v)
			seen[v] = true
		}
	}
	for c := 0; c < s; c++ {
		seen := map[int]bool{}
		for r := 0; r < s; r++ {
			v := values[r][c]
			require.False(t, seen[v], "col %d has duplicate %d", c, v)
			seen[v] = true
		}
	}
}

func TestSolveAlreadyComplete(t *testing.T) {
	rows := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	g := gridFromRows(t, 2, rows)

	result, err := Solve(context.Background(), g)
	require.NoError(t, err)
	require.True(t, result.Solved)
	require.False(t, result.Stats.EnteredBacktracking)
	requireValidSolution(t, g)
}

func TestSolveN2AllZero(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)

	result, err := Solve(context.Background(), g)
	require.NoError(t, err)
	require.True(t, result.Solved)
	requireValidSolution(t, g)
}

func TestSolveClassicEasyPuzzle(t *testing.T) {
	rows := [][]int{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
	g := gridFromRows(t, 3, rows)

	result, err := Solve(context.Background(), g)
	require.NoError(t, err)
	require.True(t, result.Solved)
	requireValidSolution(t, g)
	require.Equal(t, 4, g.Cell(0, 2).Value())
}

func TestSolveArtoInkalaHardestPuzzle(t *testing.T) {
	rows := [][]int{
		{8, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 3, 6, 0, 0, 0, 0, 0},
		{0, 7, 0, 0, 9, 0, 2, 0, 0},
		{0, 5, 0, 0, 0, 7, 0, 0, 0},
		{0, 0, 0, 0, 4, 5, 7, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 3, 0},
		{0, 0, 1, 0, 0, 0, 0, 6, 8},
		{0, 0, 8, 5, 0, 0, 0, 1, 0},
		{0, 9, 0, 0, 0, 0, 4, 0, 0},
	}
	g := gridFromRows(t, 3, rows)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	result, err := Solve(ctx, g)
	require.NoError(t, err)
	require.True(t, result.Solved)
	require.True(t, result.Stats.EnteredBacktracking, "this puzzle is famously resistant to pure propagation")
	requireValidSolution(t, g)
}

// TestSolveNearCompleteGridByPropagation is a near-complete 9x9 grid
// with a handful of cells blanked out of an otherwise valid solution,
// each resolvable by simple single-candidate propagation without ever
// reaching backtracking. It exercises the fixpoint driver (whose loop
// also runs the X-wing pass, though no X-wing pattern is present here)
// over a board shaped like the rest of the package's real-puzzle
// scenarios rather than a synthetic 2x2/3x3 grid.
func TestSolveNearCompleteGridByPropagation(t *testing.T) {
	rows := [][]int{
		{1, 0, 3, 4, 5, 6, 7, 8, 0},
		{4, 5, 6, 7, 8, 9, 1, 2, 3},
		{7, 0, 9, 1, 2, 3, 4, 5, 6},
		{2, 3, 1, 5, 6, 4, 8, 9, 7},
		{5, 6, 4, 8, 9, 7, 2, 3, 1},
		{8, 9, 7, 2, 3, 1, 5, 6, 4},
		{3, 0, 2, 6, 4, 5, 9, 7, 8},
		{6, 0, 5, 9, 7, 8, 3, 1, 2},
		{9, 7, 8, 3, 1, 2, 6, 4, 5},
	}
	g := gridFromRows(t, 3, rows)

	result, err := Solve(context.Background(), g)
	require.NoError(t, err)
	require.True(t, result.Solved)
	require.False(t, result.Stats.EnteredBacktracking)
	requireValidSolution(t, g)
}

func TestSolveUnsolvablePuzzle(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	// Make every value unavailable at (3,3) via the availability tables
	// directly, bypassing the candidate bitset. The deterministic
	// techniques never consult the availability tables, so this
	// contradiction survives the fixpoint phase untouched and is only
	// caught once backtracking calls Possible.
	for v := 1; v <= 4; v++ {
		g.MarkValueFree(3, 3, v, false)
	}

	_, err = Solve(context.Background(), g)
	require.ErrorIs(t, err, ErrUnsolvable)
}

func TestSolveIsIdempotentOnAlreadySolvedGrid(t *testing.T) {
	rows := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	g := gridFromRows(t, 2, rows)

	first, err := Solve(context.Background(), g)
	require.NoError(t, err)
	require.True(t, first.Solved)

	before := g.Values()
	second, err := Solve(context.Background(), g)
	require.NoError(t, err)
	require.True(t, second.Solved)
	require.Equal(t, before, g.Values())
}
