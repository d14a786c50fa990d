// Package render implements a textual pretty-printer for a solved or
// partial grid: human-readable output, not required for correctness.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/5cover/Sudoku-Solver/internal/grid"
)

// Render draws g as a grid of values separated by '|' vertically and
// '-' horizontally, with '+' at intersections. Each value is
// right-padded to digitCount(S) columns between single spaces; empty
// cells display '.'.
func Render(g *grid.Grid) string {
	s := g.S()
	width := digitCount(s)
	values := g.Values()

	var b strings.Builder
	rule := horizontalRule(g.N(), width)

	for r := 0; r < s; r++ {
		if r > 0 && r%g.N() == 0 {
			b.WriteString(rule)
		}
		for c := 0; c < s; c++ {
			if c > 0 && c%g.N() == 0 {
				b.WriteString("|")
			}
			v := values[r][c]
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			fmt.Fprintf(&b, " %-*s", width, cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func horizontalRule(n, width int) string {
	var b strings.Builder
	blockWidth := n * (width + 1)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString("+")
		}
		b.WriteString(strings.Repeat("-", blockWidth))
	}
	b.WriteString("\n")
	return b.String()
}

// digitCount returns the number of base-10 digits needed to print s.
func digitCount(s int) int {
	if s < 10 {
		return 1
	}
	return len(strconv.Itoa(s))
}
