// Package sudfile implements the .sud binary codec: S*S little-endian
// uint32s in row-major order.
package sudfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/5cover/Sudoku-Solver/internal/grid"
)

// ErrInvalidData is returned when the input contains a value greater
// than S, or the reader runs out of data before S*S values are read.
var ErrInvalidData = errors.New("sudfile: invalid puzzle data")

// Read parses exactly s*s little-endian uint32s from r and builds a
// Grid of block size n (s = n*n) from them. A value 0 is left empty; a
// value in [1, s] is committed via Grid.ProvideValue, conflicting
// clues included — a row/column/block duplicate is not invalid data,
// it makes the puzzle unsolvable, which is for the solver to report.
// Any value outside [0, s], or a short read, is ErrInvalidData.
func Read(r io.Reader, n int) (*grid.Grid, error) {
	g, err := grid.New(n)
	if err != nil {
		return nil, err
	}
	s := g.S()

	buf := make([]uint32, s*s)
	if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	for r := 0; r < s; r++ {
		for c := 0; c < s; c++ {
			v := int(buf[r*s+c])
			if v > s {
				return nil, fmt.Errorf("%w: value %d at (%d,%d) exceeds grid side %d", ErrInvalidData, v, r, c, s)
			}
			if v == 0 {
				continue
			}
			g.ProvideValue(r, c, v)
		}
	}
	return g, nil
}

// Write emits g's cell values as s*s little-endian uint32s in
// row-major order.
func Write(w io.Writer, g *grid.Grid) error {
	s := g.S()
	buf := make([]uint32, s*s)
	values := g.Values()
	for r := 0; r < s; r++ {
		for c := 0; c < s; c++ {
			buf[r*s+c] = uint32(values[r][c])
		}
	}
	return binary.Write(w, binary.LittleEndian, buf)
}
