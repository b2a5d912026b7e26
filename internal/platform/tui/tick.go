// Package tui provides the Bubble Tea front end for blockfall: the local and SSH game
// models, key mapping and the palette renderer.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/session"
)

// FrameMsg carries a frame published by the session runner.
type FrameMsg session.Frame

// runnerStoppedMsg is sent once the runner has closed its frame channel.
type runnerStoppedMsg struct{}

// waitForFrame returns a command that blocks until the runner publishes a frame.
// The runner owns the clock; the model only redraws.
func waitForFrame(frames <-chan session.Frame) tea.Cmd {
	return func() tea.Msg {
		f, ok := <-frames
		if !ok {
			return runnerStoppedMsg{}
		}
		return FrameMsg(f)
	}
}
