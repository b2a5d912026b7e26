package blockfall

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
)

// SpeedController derives the tick interval from the number of ticks that cleared rows.
type SpeedController struct {
	base time.Duration
	min  time.Duration
	step time.Duration
}

// NewSpeedController creates a controller for the given curve.
func NewSpeedController(cfg config.SpeedConfig) *SpeedController {
	return &SpeedController{
		base: cfg.BaseInterval(),
		min:  cfg.MinInterval(),
		step: cfg.Step(),
	}
}

// DefaultSpeedController returns the 1000ms-to-30ms curve.
func DefaultSpeedController() *SpeedController {
	return NewSpeedController(config.DefaultConfig().Speed)
}

// Interval returns the delay before the next natural tick.
//
// The floor value doubles as the threshold: past it the interval jumps straight to the
// floor, so interval(30) = 970ms but interval(31) = 30ms with the default curve.
func (s *SpeedController) Interval(timesLinesCleared int) time.Duration {
	threshold := int(s.min / time.Millisecond)
	if timesLinesCleared > threshold {
		return s.min
	}
	d := s.base - time.Duration(timesLinesCleared)*s.step
	if d < s.min {
		return s.min
	}
	return d
}
