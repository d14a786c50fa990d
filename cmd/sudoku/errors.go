package main

import (
	"errors"
	"runtime"

	"github.com/5cover/Sudoku-Solver/internal/search"
	"github.com/5cover/Sudoku-Solver/internal/solve"
	"github.com/5cover/Sudoku-Solver/internal/sudfile"
)

// argError marks a CLI argument-validation failure (exit code 1),
// distinct from a solver-reported data or solvability failure.
type argError struct{ error }

func newArgError(msg string) error { return argError{errors.New(msg)} }

// exitCodeFor maps a returned error to the CLI's exit codes. ok is
// false when err doesn't correspond to a known class (cobra's
// own usage errors, for instance), in which case the caller falls
// back to a generic failure.
func exitCodeFor(err error) (code int, ok bool) {
	var ae argError
	switch {
	case errors.As(err, &ae):
		return 1, true
	case errors.Is(err, sudfile.ErrInvalidData), errors.Is(err, solve.ErrUnsolvable), errors.Is(err, search.ErrTimeout):
		return 2, true
	default:
		return 0, false
	}
}

// isOutOfMemory reports whether a recovered panic looks like a Go
// allocation failure (runtime.Error of the out-of-memory kind) rather
// than some other programming-error panic. Go doesn't export a typed
// OOM error, so this is a best-effort classification by the runtime
// panic's own message.
func isOutOfMemory(err error) bool {
	var re runtime.Error
	if !errors.As(err, &re) {
		return false
	}
	return re.Error() == "runtime: out of memory"
}
