// Command sudoku is the CLI host around the solver core: argument
// parsing, .sud / text I/O, exit-code mapping, and structured logging.
// None of this is part of the solver's contract — it is an external
// collaborator consuming and producing the solver's public interfaces.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	os.Exit(run(&log))
}

// run executes the CLI and maps the outcome to an exit code: 0 success,
// 1 invalid arguments, 2 invalid input data, an unsolvable puzzle or a
// timed-out search, -1 on any recovered panic. An allocation failure
// surfaced as a runtime panic (Go has no allocation-failure return path,
// so this is the only way that class of error reaches the host) is
// logged as such; every other panic is printed as a fatal error.
func run(log *zerolog.Logger) (code int) {
	defer func() {
		if r := recover(); r != nil {
			if oom, ok := r.(error); ok && isOutOfMemory(oom) {
				log.Error().Err(oom).Msg("allocation failure")
				code = -1
				return
			}
			fmt.Fprintf(os.Stderr, "sudoku: fatal: %v\n", r)
			code = -1
		}
	}()

	err := newRootCmd(log).Execute()
	if err == nil {
		return 0
	}

	c, ok := exitCodeFor(err)
	if !ok {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	log.Error().Err(err).Msg("solve failed")
	return c
}
