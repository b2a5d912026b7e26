package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// PieceView is a read-only copy of the active piece.
type PieceView struct {
	Type  PieceType
	Color core.Color
	Shape [4]core.Point // Local offsets
	Cells [4]core.Point // Absolute board coordinates
}

// Snapshot captures the complete renderer-facing state. It shares no memory with the engine.
type Snapshot struct {
	Board             Board
	Piece             *PieceView // nil while no piece is active
	Position          core.Point
	Phase             Phase
	Tick              uint64
	Fallen            int
	LinesCleared      int
	TimesLinesCleared int
	Score             int
}

// Snapshot returns the current state for rendering and determinism checks.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Board:             e.board,
		Position:          e.pos,
		Phase:             e.phase,
		Tick:              e.tickNumber,
		Fallen:            e.fallen,
		LinesCleared:      e.linesCleared,
		TimesLinesCleared: e.timesLinesCleared,
		Score:             e.score,
	}
	if e.piece != nil {
		s.Piece = &PieceView{
			Type:  e.piece.Type,
			Color: e.piece.Color,
			Shape: e.piece.Shape,
			Cells: e.piece.Cells(e.pos),
		}
	}
	return s
}

// ColorAt returns the color a renderer should draw at (x, y): the active piece
// on top of the board.
func (s Snapshot) ColorAt(x, y int) core.Color {
	if s.Piece != nil {
		for _, c := range s.Piece.Cells {
			if c.X == x && c.Y == y {
				return s.Piece.Color
			}
		}
	}
	return s.Board.At(x, y)
}
