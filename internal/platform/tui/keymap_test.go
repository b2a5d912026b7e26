package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Command
		quit     bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.CommandRotateCW, false},
		{"k", runeKey('k'), core.CommandRotateCW, false},
		{"w", runeKey('w'), core.CommandRotateCW, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.CommandMoveLeft, false},
		{"h", runeKey('h'), core.CommandMoveLeft, false},
		{"a", runeKey('a'), core.CommandMoveLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.CommandMoveRight, false},
		{"l", runeKey('l'), core.CommandMoveRight, false},
		{"d", runeKey('d'), core.CommandMoveRight, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.CommandSoftDrop, false},
		{"j", runeKey('j'), core.CommandSoftDrop, false},
		{"s", runeKey('s'), core.CommandSoftDrop, false},
		{"q quits", runeKey('q'), core.CommandNone, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.CommandNone, true},
		{"space is unmapped", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.CommandNone, false},
		{"x is unmapped", runeKey('x'), core.CommandNone, false},
		{"enter is unmapped", tea.KeyMsg{Type: tea.KeyEnter}, core.CommandNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, quit := km.MapKey(tc.msg)
			if cmd != tc.expected {
				t.Errorf("MapKey() command = %s, want %s", cmd, tc.expected)
			}
			if quit != tc.quit {
				t.Errorf("MapKey() quit = %v, want %v", quit, tc.quit)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if got := len(keys.ShortHelp()); got != 6 {
		t.Errorf("ShortHelp() has %d bindings, want 6", got)
	}
	var total int
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 8 {
		t.Errorf("FullHelp() has %d bindings, want 8", total)
	}
}
