package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It matches defaults/blockfall.yaml.
func DefaultConfig() Config {
	return Config{
		Speed: SpeedConfig{
			BaseIntervalMS: 1000,
			MinIntervalMS:  30,
			StepMS:         1,
		},
		Rules: RulesConfig{
			ChainScoring: false,
			ClearTopRow:  false,
			PieceSeed:    0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
