package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// Event is something observable that happened during a tick or command.
type Event interface {
	blockfallEvent()
}

// PieceSpawnedEvent is emitted when a new piece enters the board.
type PieceSpawnedEvent struct {
	Type     PieceType
	Position core.Point
}

func (PieceSpawnedEvent) blockfallEvent() {}

// PieceLockedEvent is emitted when a grounded piece is affixed.
type PieceLockedEvent struct {
	Type     PieceType
	Position core.Point
	Fallen   int // Pieces locked since the last game over, this one included
}

func (PieceLockedEvent) blockfallEvent() {}

// LinesClearedEvent is emitted once per tick in which at least one row was full.
type LinesClearedEvent struct {
	Rows       []int // Indices of the full rows, in scan order
	Multiplier int   // Multiplier after the scan
	Total      int   // Cumulative rows cleared
}

func (LinesClearedEvent) blockfallEvent() {}

// GameOverEvent is emitted when a spawn collides. Counters hold their values
// from before the board reset.
type GameOverEvent struct {
	Tick              uint64
	Fallen            int
	LinesCleared      int
	TimesLinesCleared int
	Score             int
}

func (GameOverEvent) blockfallEvent() {}

// StepResult is returned by Tick and HandleCommand.
type StepResult struct {
	Events  []Event
	Forced  bool // A soft drop ran the tick; the scheduler must not rearm
	Changed bool // State visible to a renderer changed
}

// GameOver returns the game over event of this step, if any.
func (r StepResult) GameOver() (GameOverEvent, bool) {
	for _, evt := range r.Events {
		if over, ok := evt.(GameOverEvent); ok {
			return over, true
		}
	}
	return GameOverEvent{}, false
}
