package search

import (
	"context"
	"errors"

	"github.com/5cover/Sudoku-Solver/internal/grid"
)

// ErrTimeout is returned when the context passed to Backtrack is
// canceled before the search completes. It does not mean the puzzle is
// unsolvable — just that the search was abandoned.
var ErrTimeout = errors.New("search: backtracking abandoned: context done")

// Backtrack runs a minimum-remaining-values depth-first search over
// empties, a precomputed list of still-empty positions. It mutates sg
// in place and, on success, every position in empties holds its solved
// value. Values are tried in ascending order, so among multiple
// solutions it returns the lexicographically smallest one relative to
// the MRV-shuffled visit order (not row-major order).
//
// ctx is checked only between MRV selections, never inside the per-
// value inner loop, so a timeout can only abandon the search between
// cells, not mid-cell.
func Backtrack(ctx context.Context, sg *SearchGrid, empties []grid.Pos) (bool, error) {
	return backtrack(ctx, sg, empties, 0)
}

func backtrack(ctx context.Context, sg *SearchGrid, empties []grid.Pos, i int) (bool, error) {
	if i == len(empties) {
		return true, nil
	}
	select {
	case <-ctx.Done():
		return false, ErrTimeout
	default:
	}

	selectMRV(sg, empties, i)
	p := empties[i]
	s := sg.S()

	for v := 1; v <= s; v++ {
		if !sg.Possible(p[0], p[1], v) {
			continue
		}
		sg.MarkValueFree(p[0], p[1], v, false)

		ok, err := backtrack(ctx, sg, empties, i+1)
		if err != nil {
			sg.MarkValueFree(p[0], p[1], v, true)
			return false, err
		}
		if ok {
			sg.SetValue(p[0], p[1], v)
			return true, nil
		}
		sg.MarkValueFree(p[0], p[1], v, true)
	}
	return false, nil
}

// selectMRV finds, among empties[i:], the position with the fewest
// legal values and swaps it to index i. Ties keep the earliest index
// in the current suffix.
func selectMRV(sg *SearchGrid, empties []grid.Pos, i int) {
	best := i
	bestCount := countPossible(sg, empties[i])
	for j := i + 1; j < len(empties); j++ {
		count := countPossible(sg, empties[j])
		if count < bestCount {
			best, bestCount = j, count
		}
	}
	empties[i], empties[best] = empties[best], empties[i]
}

func countPossible(sg *SearchGrid, p grid.Pos) int {
	count := 0
	for v := 1; v <= sg.S(); v++ {
		if sg.Possible(p[0], p[1], v) {
			count++
		}
	}
	return count
}
