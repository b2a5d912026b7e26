package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

func TestSimulateIsDeterministic(t *testing.T) {
	opts := simOptions{
		Engine: blockfall.Options{Seed: 99},
		Ticks:  300,
		Script: core.ParseCommands("LLU.RRD"),
	}

	a := simulate(opts)
	b := simulate(opts)

	assert.Equal(t, a, b)
	assert.Positive(t, a.Locked)

	// Every D step runs one extra tick on top of the scheduled one.
	drops := 0
	for i := 0; i < opts.Ticks; i++ {
		if opts.Script[i%len(opts.Script)] == core.CommandSoftDrop {
			drops++
		}
	}
	require.Equal(t, 42, drops)
	assert.Equal(t, uint64(opts.Ticks+drops), a.Snapshot.Tick)
}

func TestSimulateZeroTicks(t *testing.T) {
	res := simulate(simOptions{Engine: blockfall.Options{Seed: 1}})

	assert.Zero(t, res.Snapshot.Tick)
	assert.Equal(t, blockfall.PhaseFalling, res.Snapshot.Phase)
	assert.Zero(t, res.Locked)
}

func TestPrintSimASCII(t *testing.T) {
	res := simulate(simOptions{Engine: blockfall.Options{Seed: 3}, Ticks: 50})

	var buf bytes.Buffer
	printSim(&buf, res, false)
	out := buf.String()

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), blockfall.Rows)
	for _, l := range lines[:blockfall.Rows] {
		assert.Len(t, l, blockfall.Cols)
	}
	assert.Contains(t, out, "ticks:      50")
	assert.Contains(t, out, "phase:      "+res.Snapshot.Phase.String())
	// A game over hands the board straight to the next piece.
	assert.Equal(t, blockfall.PhaseFalling, res.Snapshot.Phase)
}

func TestPrintSimColor(t *testing.T) {
	res := simulate(simOptions{Engine: blockfall.Options{Seed: 3}, Ticks: 5})

	var buf bytes.Buffer
	printSim(&buf, res, true)

	assert.Contains(t, buf.String(), "Score:")
	assert.Contains(t, buf.String(), "┌")
}
