// Package config provides YAML-based configuration loading for blockfall.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by Validate for any out of range value.
var ErrInvalid = errors.New("config: invalid value")

// Config contains all configuration for the game.
type Config struct {
	Speed SpeedConfig `yaml:"speed"`
	Rules RulesConfig `yaml:"rules"`
}

// SpeedConfig defines the tick interval curve.
type SpeedConfig struct {
	BaseIntervalMS int `yaml:"base_interval_ms"`
	MinIntervalMS  int `yaml:"min_interval_ms"`
	StepMS         int `yaml:"step_ms"`
}

// BaseInterval returns the starting tick interval.
func (s SpeedConfig) BaseInterval() time.Duration {
	return time.Duration(s.BaseIntervalMS) * time.Millisecond
}

// MinInterval returns the interval floor.
func (s SpeedConfig) MinInterval() time.Duration {
	return time.Duration(s.MinIntervalMS) * time.Millisecond
}

// Step returns the decrease per tick-with-a-clear.
func (s SpeedConfig) Step() time.Duration {
	return time.Duration(s.StepMS) * time.Millisecond
}

// RulesConfig toggles the line-clear behaviors that are literal by default.
type RulesConfig struct {
	ChainScoring bool  `yaml:"chain_scoring"`
	ClearTopRow  bool  `yaml:"clear_top_row"`
	PieceSeed    int64 `yaml:"piece_seed"`
}

// Validate checks that the speed curve is usable.
func (c Config) Validate() error {
	s := c.Speed
	if s.BaseIntervalMS <= 0 {
		return fmt.Errorf("%w: speed.base_interval_ms must be positive, got %d", ErrInvalid, s.BaseIntervalMS)
	}
	if s.MinIntervalMS <= 0 {
		return fmt.Errorf("%w: speed.min_interval_ms must be positive, got %d", ErrInvalid, s.MinIntervalMS)
	}
	if s.MinIntervalMS > s.BaseIntervalMS {
		return fmt.Errorf("%w: speed.min_interval_ms (%d) exceeds base_interval_ms (%d)",
			ErrInvalid, s.MinIntervalMS, s.BaseIntervalMS)
	}
	if s.StepMS < 0 {
		return fmt.Errorf("%w: speed.step_ms must not be negative, got %d", ErrInvalid, s.StepMS)
	}
	return nil
}
