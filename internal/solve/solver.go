// Package solve is the top-level facade: it drives the deterministic
// techniques to fixpoint, then falls back to backtracking search for
// whatever remains.
package solve

import (
	"context"
	"errors"

	"github.com/5cover/Sudoku-Solver/internal/grid"
	"github.com/5cover/Sudoku-Solver/internal/search"
	"github.com/5cover/Sudoku-Solver/internal/techniques"
)

// ErrUnsolvable is returned when backtracking exhausts every option.
// The grid's cell values are in an undefined partial state afterward
// and callers must discard it.
var ErrUnsolvable = errors.New("solve: no solution exists")

// Stats carries lightweight solve telemetry: counters only, never a
// difficulty rating or strategy choice.
type Stats struct {
	FixpointPasses        int
	EnteredBacktracking   bool
	EmptyCellsAtBacktrack int
}

// Result is the outcome of Solve.
type Result struct {
	Solved bool
	Stats  Stats
}

// Solve runs the fixpoint driver (simple techniques interleaved with
// X-wing) to quiescence, then backtracks over whatever cells remain
// empty. On success, only g's cell values are guaranteed meaningful —
// the candidate tables are stale once backtracking has run. Backtracking
// is skipped entirely when the fixpoint phase leaves no empty cell.
//
// ctx bounds only the backtracking phase; the deterministic fixpoint
// phase has no suspension points and always runs to completion.
func Solve(ctx context.Context, g *grid.Grid) (Result, error) {
	var stats Stats

	for {
		progress := techniques.PerformSimpleTechniques(g)
		if techniques.XWing(g) {
			progress = true
		}
		stats.FixpointPasses++
		if !progress {
			break
		}
	}

	empties := g.EmptyPositions()
	if len(empties) == 0 {
		return Result{Solved: true, Stats: stats}, nil
	}

	stats.EnteredBacktracking = true
	stats.EmptyCellsAtBacktrack = len(empties)

	sg := search.New(g)
	ok, err := search.Backtrack(ctx, sg, empties)
	if err != nil {
		return Result{Stats: stats}, err
	}
	if !ok {
		return Result{Stats: stats}, ErrUnsolvable
	}
	return Result{Solved: true, Stats: stats}, nil
}
