package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/session"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game in the local terminal.

Controls:
  Up/K/W      - Rotate clockwise
  Left/H/A    - Move left
  Right/L/D   - Move right
  Down/J/S    - Drop one row
  Tab         - Show recent runs
  Ctrl+S      - Save a text screenshot of the board
  ?           - Toggle help
  Q/Ctrl+C    - Quit

The game never ends on its own: when a piece cannot spawn the well is emptied
and play continues. Runs are kept in memory until you quit.

Examples:
  blockfall play
  blockfall play --seed 7
  blockfall play --config ./fast.yaml --log-file /tmp/blockfall.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded otherwise)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the initial layout
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = resolveSeed(cfg)

	// The alternate screen owns stdout, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", openErr)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "blockfall")
	logger.Debug("starting local game", "seed", rc.Seed, "width", rc.ScreenW, "height", rc.ScreenH)

	opts := tui.RunOptions{
		Session: session.Options{
			ID:     "local",
			Engine: engineOptions(cfg, rc.Seed),
			Speed:  cfg.Speed,
			Logger: logger,
		},
		Width:         rc.ScreenW,
		Height:        rc.ScreenH,
		ScreenshotDir: screenshotDir(),
	}

	// Run history is in memory only - the game still works without it
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open run history", "error", err)
	} else {
		opts.Session.Store = store
		opts.History = store
	}

	runErr := tui.Run(context.Background(), opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "screenshots")
}
