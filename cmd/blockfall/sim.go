package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var (
	flagTicks  int
	flagScript string
	flagColor  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game and print the final board",
	Long: `Drive the engine without a clock: every step applies the next script
command, then runs one tick. Prints the final board and counters.

--ticks counts steps. A D command is itself a tick, so the reported tick
count is --ticks plus the number of drops applied.

Script letters (case-insensitive, repeated when exhausted):
  L - move left     R - move right
  U - rotate        D - drop one row
  . - no command    anything else is ignored

Examples:
  blockfall sim --ticks 200 --seed 1
  blockfall sim --ticks 1000 --script "LLU..RRD" --color`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 100, "Number of ticks to run")
	simCmd.Flags().StringVar(&flagScript, "script", "", "Command script applied one per tick")
	simCmd.Flags().BoolVar(&flagColor, "color", false, "Render the board with the color palette")
}

// simOptions configures a headless run.
type simOptions struct {
	Engine blockfall.Options
	Ticks  int
	Script []core.Command
	Color  bool
	Logger *log.Logger
}

// simResult summarizes a headless run.
type simResult struct {
	Snapshot  blockfall.Snapshot
	GameOvers int
	Locked    int
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagTicks < 0 {
		fmt.Fprintln(os.Stderr, "Error: --ticks must not be negative")
		os.Exit(1)
	}

	seed := resolveSeed(cfg)
	opts := simOptions{
		Engine: engineOptions(cfg, seed),
		Ticks:  flagTicks,
		Script: core.ParseCommands(flagScript),
		Color:  flagColor,
		Logger: newLogger(os.Stderr, "blockfall-sim"),
	}
	opts.Logger.Debug("simulating", "seed", seed, "ticks", flagTicks, "script", len(opts.Script))

	res := simulate(opts)
	printSim(os.Stdout, res, opts.Color)
}

// simulate runs opts.Ticks steps. Drops in the script add ticks of their own.
func simulate(opts simOptions) simResult {
	e := blockfall.New(opts.Engine)
	var res simResult

	for i := 0; i < opts.Ticks; i++ {
		if len(opts.Script) > 0 {
			e.HandleCommand(opts.Script[i%len(opts.Script)])
		}
		step := e.Tick()

		for _, evt := range step.Events {
			switch evt := evt.(type) {
			case blockfall.PieceLockedEvent:
				res.Locked++
			case blockfall.GameOverEvent:
				res.GameOvers++
				if opts.Logger != nil {
					opts.Logger.Info("game over", "tick", evt.Tick, "fallen", evt.Fallen, "lines", evt.LinesCleared)
				}
			}
		}
	}

	res.Snapshot = e.Snapshot()
	return res
}

// Screen size for the colored board: the framed well plus the HUD.
const (
	simScreenMin = blockfall.Cols*blockfall.CellWidth + 2
	simScreenMax = 60
)

// printSim writes the final board and counters.
func printSim(w io.Writer, res simResult, color bool) {
	s := res.Snapshot

	if color {
		rc := core.DefaultConfig()
		width := core.Clamp(rc.ScreenW, simScreenMin, simScreenMax)
		scr := core.NewScreen(width, blockfall.Rows+2)
		blockfall.Render(scr, s, 0, 0)
		fmt.Fprintln(w, tui.RenderScreen(scr))
	} else {
		fmt.Fprintln(w, blockfall.RenderASCII(s))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "ticks:      %d\n", s.Tick)
	fmt.Fprintf(w, "locked:     %d\n", res.Locked)
	fmt.Fprintf(w, "fallen:     %d\n", s.Fallen)
	fmt.Fprintf(w, "lines:      %d\n", s.LinesCleared)
	fmt.Fprintf(w, "clears:     %d\n", s.TimesLinesCleared)
	fmt.Fprintf(w, "score:      %d\n", s.Score)
	fmt.Fprintf(w, "game overs: %d\n", res.GameOvers)
	fmt.Fprintf(w, "phase:      %s\n", s.Phase)
}
