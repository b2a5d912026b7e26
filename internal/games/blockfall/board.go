package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/core"
)

// Board dimensions. Fixed for the process lifetime.
const (
	Cols = 9
	Rows = 17
)

// Board is the grid of cell colors, indexed [row][column].
// It is a value type: assigning a Board copies every cell.
type Board [Rows][Cols]core.Color

// At returns the color at (x, y), or ColorEmpty when the cell does not exist.
func (b *Board) At(x, y int) core.Color {
	if !inBounds(x, y) {
		return core.ColorEmpty
	}
	return b[y][x]
}

// Set writes a color into (x, y). Cells outside the grid are ignored.
func (b *Board) Set(x, y int, c core.Color) {
	if !inBounds(x, y) {
		return
	}
	b[y][x] = c
}

// RowFull reports whether row y contains no empty cell.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= Rows {
		return false
	}
	for _, c := range b[y] {
		if !c.Occupied() {
			return false
		}
	}
	return true
}

// ShiftDown copies every row above y one row down, overwriting row y.
// Row 0 keeps its content, so it ends up duplicated in row 1.
func (b *Board) ShiftDown(y int) {
	for k := y; k > 0; k-- {
		b[k] = b[k-1]
	}
}

// ClearRow empties row y.
func (b *Board) ClearRow(y int) {
	if y < 0 || y >= Rows {
		return
	}
	b[y] = [Cols]core.Color{}
}

// Occupied returns the number of non-empty cells.
func (b *Board) Occupied() int {
	n := 0
	for y := range b {
		for _, c := range b[y] {
			if c.Occupied() {
				n++
			}
		}
	}
	return n
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}
