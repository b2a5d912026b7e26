package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// IsWithinAndFree reports whether the absolute cell (x, y) exists and is empty.
// Rows past the bottom, negative coordinates and columns outside 0..8 all block.
func (b *Board) IsWithinAndFree(x, y int) bool {
	if !inBounds(x, y) {
		return false
	}
	return !b[y][x].Occupied()
}

// WouldCollide reports whether any cell of p placed at pos is blocking.
// Every move, rotation, gravity and spawn check goes through this predicate.
func (b *Board) WouldCollide(p Piece, pos core.Point) bool {
	for _, c := range p.Cells(pos) {
		if !b.IsWithinAndFree(c.X, c.Y) {
			return true
		}
	}
	return false
}

// Affix writes the piece color into every target cell whose row exists.
// Cells that fall outside the grid are skipped.
func (b *Board) Affix(p Piece, pos core.Point) {
	for _, c := range p.Cells(pos) {
		b.Set(c.X, c.Y, p.Color)
	}
}
