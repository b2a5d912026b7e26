// Package session drives one blockfall engine in real time. A Runner is the single
// owner of its engine: the tick timer and player commands are serialized on the
// goroutine that calls Run, and every change is published as a Frame.
package session

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// ID identifies a runner, e.g. "local" or the SSH session it serves.
type ID string

// Default channel capacities.
const (
	DefaultCommandBuffer = 16
	DefaultFrameBuffer   = 8
)

// Frame is published after every tick and every command that changed the game.
type Frame struct {
	Snapshot blockfall.Snapshot
	Events   []blockfall.Event
	Interval time.Duration // Delay before the next natural tick
}

// RunStore records finished games. *storage.Store satisfies it.
type RunStore interface {
	SaveRun(run storage.RunEntry) (int64, error)
}

// Options configures a Runner.
type Options struct {
	ID            ID
	Engine        blockfall.Options
	Speed         config.SpeedConfig
	Logger        *log.Logger // nil discards
	Store         RunStore    // nil skips run history
	CommandBuffer int
	FrameBuffer   int
}

// Runner serializes ticks and commands for one engine.
type Runner struct {
	id     ID
	engine *blockfall.Engine
	speed  *blockfall.SpeedController
	logger *log.Logger
	store  RunStore

	commands chan core.Command
	frames   chan Frame
	done     chan struct{}
	doneOnce sync.Once
	started  atomic.Bool
}

// NewRunner creates a runner. The engine spawns its first piece immediately; nothing
// ticks until Run is called.
func NewRunner(opts Options) *Runner {
	if opts.CommandBuffer < 1 {
		opts.CommandBuffer = DefaultCommandBuffer
	}
	if opts.FrameBuffer < 1 {
		opts.FrameBuffer = DefaultFrameBuffer
	}
	if opts.ID == "" {
		opts.ID = "local"
	}
	if opts.Speed == (config.SpeedConfig{}) {
		opts.Speed = config.DefaultConfig().Speed
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Runner{
		id:       opts.ID,
		engine:   blockfall.New(opts.Engine),
		speed:    blockfall.NewSpeedController(opts.Speed),
		logger:   logger.With("session", string(opts.ID)),
		store:    opts.Store,
		commands: make(chan core.Command, opts.CommandBuffer),
		frames:   make(chan Frame, opts.FrameBuffer),
		done:     make(chan struct{}),
	}
}

// ID returns the runner identifier.
func (r *Runner) ID() ID {
	return r.id
}

// Submit queues a command without blocking. It returns false when the command is not a
// game command, the queue is full or the runner has stopped.
func (r *Runner) Submit(cmd core.Command) bool {
	if !cmd.Valid() || cmd == core.CommandNone {
		return false
	}

	select {
	case <-r.done:
		return false
	default:
	}

	select {
	case r.commands <- cmd:
		return true
	default:
		return false
	}
}

// Frames returns the channel frames are published on. It is closed when Run returns.
func (r *Runner) Frames() <-chan Frame {
	return r.frames
}

// Done returns a channel that closes when Run returns.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Run drives the engine until ctx is cancelled. It publishes an initial frame, then one
// per natural tick and one per command that changed state. Run may be called once.
func (r *Runner) Run(ctx context.Context) error {
	if !r.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer r.stop()

	interval := r.speed.Interval(r.engine.TimesLinesCleared())
	r.logger.Debug("runner started", "interval", interval)
	r.publish(ctx, nil, interval)

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("runner stopped", "reason", ctx.Err())
			return ctx.Err()

		case <-timer.C:
			res := r.engine.Tick()
			interval = r.speed.Interval(r.engine.TimesLinesCleared())
			timer.Reset(interval)
			r.handle(ctx, res, interval)

		case cmd := <-r.commands:
			// A soft drop ticks inside HandleCommand; the timer keeps its deadline.
			res := r.engine.HandleCommand(cmd)
			if res.Changed {
				r.handle(ctx, res, interval)
			}
		}
	}
}

func (r *Runner) handle(ctx context.Context, res blockfall.StepResult, interval time.Duration) {
	if over, ok := res.GameOver(); ok {
		r.logger.Info("game over",
			"tick", over.Tick,
			"fallen", over.Fallen,
			"lines", over.LinesCleared,
			"clears", over.TimesLinesCleared,
			"score", over.Score,
		)
		r.record(over)
	}
	r.publish(ctx, res.Events, interval)
}

func (r *Runner) record(over blockfall.GameOverEvent) {
	if r.store == nil {
		return
	}
	_, err := r.store.SaveRun(storage.RunEntry{
		Session: string(r.id),
		Tick:    over.Tick,
		Fallen:  over.Fallen,
		Lines:   over.LinesCleared,
		Clears:  over.TimesLinesCleared,
		Score:   over.Score,
	})
	if err != nil {
		r.logger.Warn("could not record run", "error", err)
	}
}

// publish sends a frame. A frame without events is dropped when the reader lags; a
// frame with events waits for room, or for ctx to end.
func (r *Runner) publish(ctx context.Context, events []blockfall.Event, interval time.Duration) {
	f := Frame{
		Snapshot: r.engine.Snapshot(),
		Events:   events,
		Interval: interval,
	}

	if len(events) == 0 {
		select {
		case r.frames <- f:
		default:
			r.logger.Debug("frame dropped", "tick", f.Snapshot.Tick)
		}
		return
	}

	select {
	case r.frames <- f:
	case <-ctx.Done():
	}
}

func (r *Runner) stop() {
	r.doneOnce.Do(func() {
		close(r.done)
		close(r.frames)
	})
}
