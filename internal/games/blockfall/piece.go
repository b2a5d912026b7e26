package blockfall

import (
	"math"

	"github.com/vovakirdan/blockfall/internal/core"
)

// PieceType indexes the piece catalog.
type PieceType int

// PieceCount is the number of shapes in the catalog.
const PieceCount = 7

// rotationPivot is the center of the 4x4 local frame every shape lives in.
const rotationPivot = 1.5

// catalog holds the spawn orientation of every piece type.
var catalog = [PieceCount][4]core.Point{
	{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}}, // I
	{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 2}}, // O
	{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, // T
	{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}, // J
	{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}, // L
	{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}, // S
	{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}}, // Z
}

// Valid reports whether t names a catalog entry.
func (t PieceType) Valid() bool {
	return t >= 0 && t < PieceCount
}

// Color returns the palette id of the piece type.
func (t PieceType) Color() core.Color {
	return core.Color(t + 1)
}

// String returns the conventional letter of the shape.
func (t PieceType) String() string {
	if !t.Valid() {
		return "?"
	}
	return string("IOTJLSZ"[t])
}

// Piece is the active falling entity. Its orientation is encoded entirely by Shape.
type Piece struct {
	Type  PieceType
	Color core.Color
	Shape [4]core.Point
}

// NewPiece returns a piece of the given type in its spawn orientation.
// Out of range types panic; the spawner only produces catalog indices.
func NewPiece(t PieceType) Piece {
	if !t.Valid() {
		panic("blockfall: invalid piece type")
	}
	return Piece{
		Type:  t,
		Color: t.Color(),
		Shape: catalog[t],
	}
}

// Rotate turns the shape 90 degrees about the frame center, in place.
// The result is not validated against any board.
func (p *Piece) Rotate() {
	for i, c := range p.Shape {
		p.Shape[i] = rotatePoint(c)
	}
}

// Cells returns the absolute board coordinates of the piece at pos.
func (p Piece) Cells(pos core.Point) [4]core.Point {
	var cells [4]core.Point
	for i, c := range p.Shape {
		cells[i] = c.Add(pos)
	}
	return cells
}

// rotatePoint applies the float rotation through math.Cos/math.Sin and rounds back to
// the grid. cos(pi/2) is not exactly zero, so results carry a tiny error before rounding.
func rotatePoint(c core.Point) core.Point {
	cos, sin := math.Cos(math.Pi/2), math.Sin(math.Pi/2)

	x := float64(c.X) - rotationPivot
	y := float64(c.Y) - rotationPivot

	rx := x*cos - y*sin
	ry := y*cos + x*sin

	return core.Point{
		X: roundHalfUp(rx + rotationPivot),
		Y: roundHalfUp(ry + rotationPivot),
	}
}

// roundHalfUp rounds to the nearest integer with halves going toward +Inf.
// math.Round sends -0.5 to -1, which would disagree on negative halves.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
