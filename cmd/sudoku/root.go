package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd(log *zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "sudoku",
		Short:         "A constraint-propagation and backtracking Sudoku solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd(log))
	return root
}
