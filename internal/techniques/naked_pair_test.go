package techniques

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/5cover/Sudoku-Solver/internal/grid"
)

func TestNakedPairElimination(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)

	block := g.BlockCells(0, 0)
	// Restrict (0,0) and (0,1) to {1,2} only; the other two cells of the
	// block keep a wider candidate set that includes 1 and 2.
	for v := 3; v <= 4; v++ {
		g.RemoveCandidate(0, 0, v)
		g.RemoveCandidate(0, 1, v)
	}
	require.Equal(t, 2, g.Cell(0, 0).CandidateCount())
	require.Equal(t, 2, g.Cell(0, 1).CandidateCount())

	progress := NakedPair(g, 0, 0)
	require.True(t, progress)

	for _, p := range block {
		if p == (grid.Pos{0, 0}) || p == (grid.Pos{0, 1}) {
			continue
		}
		require.False(t, g.Cell(p[0], p[1]).HasCandidate(1), "pos %v should lose candidate 1", p)
		require.False(t, g.Cell(p[0], p[1]).HasCandidate(2), "pos %v should lose candidate 2", p)
	}
}

func TestNakedPairNoOpWithoutExactlyOnePartner(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	// No other cell in the block has exactly two candidates yet.
	for v := 3; v <= 4; v++ {
		g.RemoveCandidate(0, 0, v)
	}
	require.False(t, NakedPair(g, 0, 0))
}
