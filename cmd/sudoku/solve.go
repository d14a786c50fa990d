package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/5cover/Sudoku-Solver/internal/render"
	"github.com/5cover/Sudoku-Solver/internal/solve"
	"github.com/5cover/Sudoku-Solver/internal/sudfile"
)

func newSolveCmd(log *zerolog.Logger) *cobra.Command {
	var (
		n       int
		inPath  string
		outPath string
		format  string
		timeout time.Duration
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a Sudoku puzzle read from a .sud binary file or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 2 {
				return newArgError(fmt.Sprintf("--n must be >= 2, got %d", n))
			}
			if format != "text" && format != "binary" {
				return newArgError(fmt.Sprintf("--format must be 'text' or 'binary', got %q", format))
			}
			if verbose {
				*log = log.Level(zerolog.DebugLevel)
			}

			in, closeIn, err := openInput(inPath)
			if err != nil {
				return newArgError(err.Error())
			}
			defer closeIn()

			g, err := sudfile.Read(in, n)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			start := time.Now()
			result, err := solve.Solve(ctx, g)
			elapsed := time.Since(start)

			log.Info().
				Int("n", n).
				Int("s", n*n).
				Bool("backtracked", result.Stats.EnteredBacktracking).
				Int("empty_at_backtrack", result.Stats.EmptyCellsAtBacktrack).
				Int("fixpoint_passes", result.Stats.FixpointPasses).
				Dur("elapsed", elapsed).
				Msg("solve finished")

			if err != nil {
				return err
			}

			out, closeOut, err := openOutput(outPath)
			if err != nil {
				return newArgError(err.Error())
			}
			defer closeOut()

			if format == "text" {
				_, err = io.WriteString(out, render.Render(g))
				return err
			}
			return sudfile.Write(out, g)
		},
	}

	cmd.Flags().IntVar(&n, "n", 3, "block side length N (grid side S = N*N)")
	cmd.Flags().StringVar(&inPath, "in", "", "input .sud file path (default: stdin)")
	cmd.Flags().StringVar(&outPath, "out", "", "output file path (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "binary", "output format: 'text' or 'binary'")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "maximum time allotted to backtracking search")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "set the log level to debug (the solver emits no per-pass log lines)")

	return cmd
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
