package core

// Color identifies the palette entry of a board cell.
// 0 is the background, 1..7 are the piece colors (piece type + 1).
type Color uint8

// Palette entries in piece order.
const (
	ColorEmpty Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorOlive
	ColorPurple
	ColorOrange
	ColorTeal
)

// PaletteSize is the number of color ids, background included.
const PaletteSize = 8

// Occupied reports whether the color marks a filled cell.
func (c Color) Occupied() bool {
	return c != ColorEmpty
}
