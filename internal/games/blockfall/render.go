package blockfall

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Runes used by the text renderers.
const (
	emptyRune = '.'
	pieceRune = '#'
)

// CellWidth is the number of screen columns a board cell occupies in Render.
const CellWidth = 2

// RenderASCII draws the snapshot as Rows lines of Cols characters.
// Board cells show their color id, active piece cells show '#', empty cells '.'.
func RenderASCII(s Snapshot) string {
	var sb strings.Builder
	sb.Grow((Cols + 1) * Rows)

	active := make(map[core.Point]bool, 4)
	if s.Piece != nil {
		for _, c := range s.Piece.Cells {
			active[c] = true
		}
	}

	for y := 0; y < Rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < Cols; x++ {
			switch c := s.Board[y][x]; {
			case active[core.Point{X: x, Y: y}]:
				sb.WriteRune(pieceRune)
			case c.Occupied():
				sb.WriteByte('0' + byte(c))
			default:
				sb.WriteRune(emptyRune)
			}
		}
	}
	return sb.String()
}

// Render draws the board well with its frame at (originX, originY) into dst.
// Every cell is CellWidth columns wide and carries its palette color.
// The HUD is drawn to the right of the well.
func Render(dst *core.Screen, s Snapshot, originX, originY int) {
	w := Cols*CellWidth + 2
	h := Rows + 2
	dst.DrawBox(originX, originY, w, h)

	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			sx := originX + 1 + x*CellWidth
			sy := originY + 1 + y
			c := s.ColorAt(x, y)
			if c.Occupied() {
				dst.SetCell(sx, sy, '[', c)
				dst.SetCell(sx+1, sy, ']', c)
				continue
			}
			dst.SetCell(sx, sy, ' ', core.ColorEmpty)
			dst.SetCell(sx+1, sy, '.', core.ColorEmpty)
		}
	}

	hudX := originX + w + 2
	for i, line := range HUDLines(s) {
		dst.DrawText(hudX, originY+1+i, line)
	}
}

// HUDLines returns the counter lines shown next to the well.
func HUDLines(s Snapshot) []string {
	return []string{
		fmt.Sprintf("Score:  %d", s.Score),
		fmt.Sprintf("Lines:  %d", s.LinesCleared),
		fmt.Sprintf("Clears: %d", s.TimesLinesCleared),
		fmt.Sprintf("Pieces: %d", s.Fallen),
		fmt.Sprintf("Tick:   %d", s.Tick),
	}
}
