package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

// paletteEntry is the border and fill color of one color id.
type paletteEntry struct {
	Border lipgloss.Color
	Fill   lipgloss.Color
}

// palette is indexed by color id. Entry 0 is the well background.
var palette = [core.PaletteSize]paletteEntry{
	core.ColorEmpty:  {Border: "#000000", Fill: "#282828"},
	core.ColorRed:    {Border: "#820a0a", Fill: "#aa0a0a"},
	core.ColorGreen:  {Border: "#0a820a", Fill: "#0aaa0a"},
	core.ColorBlue:   {Border: "#0a0a82", Fill: "#0a0aaa"},
	core.ColorOlive:  {Border: "#82820a", Fill: "#aaaa0a"},
	core.ColorPurple: {Border: "#820a82", Fill: "#aa0aaa"},
	core.ColorOrange: {Border: "#8c500a", Fill: "#b4780a"},
	core.ColorTeal:   {Border: "#0a8282", Fill: "#0aaaaa"},
}

// cellStyles draws a board cell: border color on fill color.
var cellStyles = func() [core.PaletteSize]lipgloss.Style {
	var styles [core.PaletteSize]lipgloss.Style
	for i, p := range palette {
		styles[i] = lipgloss.NewStyle().Foreground(p.Border).Background(p.Fill)
	}
	return styles
}()

// colorStyles maps color ids on a core.Screen to lipgloss styles.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorEmpty: lipgloss.NewStyle(),
	}
	for c := core.ColorRed; c < core.PaletteSize; c++ {
		styles[c] = lipgloss.NewStyle().Foreground(palette[c].Fill)
	}
	return styles
}()

var wellStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))

const (
	filledCell = "[]"
	emptyCell  = " ."
)

// RenderBoard draws the well of a snapshot with the palette, inside a rounded border.
// Adjacent cells with the same color share one styled run.
func RenderBoard(s blockfall.Snapshot) string {
	var sb strings.Builder
	sb.Grow(blockfall.Rows * (blockfall.Cols*blockfall.CellWidth + 1) * 4)

	for y := range blockfall.Rows {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < blockfall.Cols {
			start := s.ColorAt(x, y)

			var run strings.Builder
			for x < blockfall.Cols && s.ColorAt(x, y) == start {
				if start.Occupied() {
					run.WriteString(filledCell)
				} else {
					run.WriteString(emptyCell)
				}
				x++
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return wellStyle.Render(sb.String())
}

// styleFor returns the cell style of c. Unknown ids fall back to the background.
func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(cellStyles) {
		return cellStyles[core.ColorEmpty]
	}
	return cellStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorEmpty]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
