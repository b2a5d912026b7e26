package main

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

// loadConfig reads --config, falling back to the default search order.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// configuredSeed returns the seed from --seed, then rules.piece_seed. Zero means unset.
func configuredSeed(cfg config.Config) int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return cfg.Rules.PieceSeed
}

// resolveSeed picks the piece seed: flag, then config, then the clock.
func resolveSeed(cfg config.Config) int64 {
	if seed := configuredSeed(cfg); seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// engineOptions builds engine options from the loaded config.
func engineOptions(cfg config.Config, seed int64) blockfall.Options {
	return blockfall.Options{
		Rules: blockfall.RulesFromConfig(cfg.Rules),
		Seed:  seed,
	}
}

// newLogger creates a logger with the given prefix writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
