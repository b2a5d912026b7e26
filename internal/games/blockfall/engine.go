// Package blockfall implements the falling-block game engine: the board, the piece
// catalog, collision rules, line clearing and the tick-driven progression.
//
// The engine is not safe for concurrent use. Ticks and commands must be serialized by
// a single owner, see the session package.
package blockfall

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// Phase is the engine state. Locking and line clearing happen inside a tick; spawning
// and game over are passed through within the tick that triggers them, so a settled
// engine always reports PhaseFalling.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Spawn columns: a piece enters at x = spawnX or spawnX + 1.
const spawnX = 2

// Spawner picks the next piece type and the horizontal spawn offset (0 or 1).
type Spawner interface {
	Next() (PieceType, int)
}

// RandomSpawner draws types and offsets uniformly from a seeded source.
type RandomSpawner struct {
	rng *rand.Rand
}

// NewRandomSpawner creates a spawner with a deterministic sequence for seed.
func NewRandomSpawner(seed int64) *RandomSpawner {
	return &RandomSpawner{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniform type in 0..6 and a uniform offset in {0, 1}.
func (s *RandomSpawner) Next() (PieceType, int) {
	t := PieceType(s.rng.Intn(PieceCount))
	return t, s.rng.Intn(2)
}

// Rules holds the opt-in corrections to the line-clear scan.
type Rules struct {
	ChainScoring bool // Advance chain per full row; otherwise every clear scores zero
	ClearTopRow  bool // Empty row 0 after each shift; otherwise it is left duplicated
}

// RulesFromConfig maps the YAML rule toggles onto engine rules.
func RulesFromConfig(cfg config.RulesConfig) Rules {
	return Rules{
		ChainScoring: cfg.ChainScoring,
		ClearTopRow:  cfg.ClearTopRow,
	}
}

// Options configures a new engine.
type Options struct {
	Rules   Rules
	Spawner Spawner // nil uses a RandomSpawner seeded with Seed
	Seed    int64
}

// Engine owns the board, the active piece, its position and all counters.
type Engine struct {
	rules   Rules
	spawner Spawner

	board Board
	piece *Piece
	pos   core.Point
	phase Phase

	tickNumber        uint64
	fallen            int
	linesCleared      int
	timesLinesCleared int
	score             int

	events []Event // collected during the current step
}

// New creates an engine and spawns the first piece.
func New(opts Options) *Engine {
	spawner := opts.Spawner
	if spawner == nil {
		spawner = NewRandomSpawner(opts.Seed)
	}
	e := &Engine{
		rules:   opts.Rules,
		spawner: spawner,
	}
	e.Reset()
	return e
}

// Reset starts a fresh game: empty board, every counter zeroed, a new piece spawned.
// Unlike a game over, Reset also clears the cumulative counters.
func (e *Engine) Reset() {
	e.board = Board{}
	e.piece = nil
	e.pos = core.Point{}
	e.tickNumber = 0
	e.fallen = 0
	e.linesCleared = 0
	e.timesLinesCleared = 0
	e.score = 0
	e.spawn()
	e.events = nil
}

// Phase returns the current engine phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// TimesLinesCleared returns the number of ticks that cleared at least one row.
func (e *Engine) TimesLinesCleared() int {
	return e.timesLinesCleared
}

// Tick advances the simulation by one step: gravity or lock, then the line-clear scan.
func (e *Engine) Tick() StepResult {
	return e.step(false)
}

// HandleCommand applies a player command. Commands are ignored unless a piece is falling.
func (e *Engine) HandleCommand(cmd core.Command) StepResult {
	if e.phase != PhaseFalling || e.piece == nil {
		return StepResult{}
	}

	switch cmd {
	case core.CommandRotateCW:
		return StepResult{Changed: e.tryRotate()}
	case core.CommandMoveLeft:
		return StepResult{Changed: e.tryMove(-1)}
	case core.CommandMoveRight:
		return StepResult{Changed: e.tryMove(1)}
	case core.CommandSoftDrop:
		return e.step(true)
	}
	return StepResult{}
}

func (e *Engine) step(forced bool) StepResult {
	e.events = nil

	if e.grounded() {
		e.lock()
		e.spawn()
	} else {
		e.pos.Y++
	}
	e.tickNumber++
	e.clearLines()

	events := e.events
	e.events = nil
	return StepResult{Events: events, Forced: forced, Changed: true}
}

// grounded reports whether the piece cannot move one row down.
// No active piece counts as grounded, so the next tick spawns one.
func (e *Engine) grounded() bool {
	if e.piece == nil {
		return true
	}
	return e.board.WouldCollide(*e.piece, e.pos.Below())
}

// lock affixes the active piece and discards it.
func (e *Engine) lock() {
	if e.piece == nil {
		return
	}
	e.board.Affix(*e.piece, e.pos)
	e.fallen++
	e.emit(PieceLockedEvent{Type: e.piece.Type, Position: e.pos, Fallen: e.fallen})
	e.piece = nil
}

// spawn draws a new piece. A colliding spawn ends the game: the board is recreated,
// fallen drops to zero and the same piece becomes active on the fresh board.
func (e *Engine) spawn() {
	e.phase = PhaseSpawning

	t, offset := e.spawner.Next()
	p := NewPiece(t)
	pos := core.Point{X: spawnX + offset, Y: 0}

	if e.board.WouldCollide(p, pos) {
		e.gameOver()
	}

	e.piece = &p
	e.pos = pos
	e.phase = PhaseFalling
	e.emit(PieceSpawnedEvent{Type: t, Position: pos})
}

func (e *Engine) gameOver() {
	e.emit(GameOverEvent{
		Tick:              e.tickNumber,
		Fallen:            e.fallen,
		LinesCleared:      e.linesCleared,
		TimesLinesCleared: e.timesLinesCleared,
		Score:             e.score,
	})
	e.phase = PhaseGameOver
	e.board = Board{}
	e.fallen = 0
}

// clearLines scans rows top to bottom and collapses every full row.
func (e *Engine) clearLines() {
	chain := 0
	multiplier := 1
	var rows []int

	for i := 0; i < Rows; i++ {
		if !e.board.RowFull(i) {
			continue
		}
		e.board.ShiftDown(i)
		if e.rules.ClearTopRow {
			e.board.ClearRow(0)
		}
		if e.rules.ChainScoring {
			chain++
		}
		e.score += 1 * multiplier * chain
		multiplier *= 2
		e.linesCleared++
		rows = append(rows, i)
	}

	if multiplier > 1 {
		e.timesLinesCleared++
		e.emit(LinesClearedEvent{Rows: rows, Multiplier: multiplier, Total: e.linesCleared})
	}
}

// tryRotate rotates once and undoes it with three more turns when blocked.
func (e *Engine) tryRotate() bool {
	e.piece.Rotate()
	if !e.board.WouldCollide(*e.piece, e.pos) {
		return true
	}
	e.piece.Rotate()
	e.piece.Rotate()
	e.piece.Rotate()
	return false
}

func (e *Engine) tryMove(dx int) bool {
	next := core.Point{X: e.pos.X + dx, Y: e.pos.Y}
	if e.board.WouldCollide(*e.piece, next) {
		return false
	}
	e.pos = next
	return true
}

func (e *Engine) emit(evt Event) {
	e.events = append(e.events, evt)
}
