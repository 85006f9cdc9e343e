package luoshu

import (
	"fmt"

	"github.com/katalvlaran/qimen/cyclic"
)

// standard is the only layout used by the engine, built from the palace table.
var standard = NewGrid()

// NewGrid builds the 3×3 grid from the static palace table.
// Panics if the table does not form a magic square; the table is a fixture.
// Complexity: O(9).
func NewGrid() *Grid {
	g := &Grid{}
	for _, p := range All() {
		info := infos[p]
		g.cells[info.Row][info.Col] = p
	}
	if !g.IsMagic() {
		panic("luoshu: palace table is not a magic square")
	}

	return g
}

// Standard returns the shared, read-only standard layout.
func Standard() *Grid {
	return standard
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// At returns the palace drawn at (row, col).
// Returns ErrOutOfBounds for cells outside the grid.
func (g *Grid) At(row, col int) (Palace, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("cell (%d,%d): %w", row, col, ErrOutOfBounds)
	}

	return g.cells[row][col], nil
}

// index maps (row, col) to a row-major index: row*Size + col.
func (g *Grid) index(row, col int) int {
	return row*Size + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	col = cyclic.Wrap(idx, Size)

	return (idx - col) / Size, col
}

// Rows returns the palaces in reading order, top row first
// (4 9 2 / 3 5 7 / 8 1 6).
func (g *Grid) Rows() [Size][Size]Palace {
	return g.cells
}

// ReadingOrder returns the palaces flattened row-major.
func (g *Grid) ReadingOrder() []Palace {
	out := make([]Palace, Count)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[g.index(r, c)] = g.cells[r][c]
		}
	}

	return out
}

// IsMagic reports whether every row, column and both diagonals share the
// same palace-number sum.
// Complexity: O(9).
func (g *Grid) IsMagic() bool {
	want := 0
	for c := 0; c < Size; c++ {
		want += int(g.cells[0][c])
	}
	var d1, d2 int
	for i := 0; i < Size; i++ {
		var row, col int
		for j := 0; j < Size; j++ {
			row += int(g.cells[i][j])
			col += int(g.cells[j][i])
		}
		if row != want || col != want {
			return false
		}
		d1 += int(g.cells[i][i])
		d2 += int(g.cells[i][Size-1-i])
	}

	return d1 == want && d2 == want
}
