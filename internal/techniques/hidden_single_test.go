package techniques

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/5cover/Sudoku-Solver/internal/grid"
)

func TestHiddenSingleFindsValueUniqueToOneCellInBlock(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)

	// Drain candidate 3 from every cell of block 0 except (1,1), leaving
	// 3 as a hidden single there even though (1,1) still has other
	// candidates open.
	for _, p := range g.BlockCells(0, 0) {
		if p == (grid.Pos{1, 1}) {
			continue
		}
		g.RemoveCandidate(p[0], p[1], 3)
	}
	require.True(t, g.Cell(1, 1).HasCandidate(3))
	require.Greater(t, g.Cell(1, 1).CandidateCount(), 1)

	require.True(t, HiddenSingle(g, 1, 1))
	require.True(t, g.Cell(1, 1).HasValue())
	require.Equal(t, 3, g.Cell(1, 1).Value())
}

func TestHiddenSingleNoOpWhenNoUniqueCandidate(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	require.False(t, HiddenSingle(g, 0, 0))
}

func TestHiddenSingleNoOpWhenAlreadyFilled(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	g.ProvideValue(0, 0, 1)
	require.False(t, HiddenSingle(g, 0, 0))
}
