package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

func TestPaletteMatchesColorIDs(t *testing.T) {
	tests := []struct {
		color  core.Color
		border lipgloss.Color
		fill   lipgloss.Color
	}{
		{core.ColorEmpty, "#000000", "#282828"},
		{core.ColorRed, "#820a0a", "#aa0a0a"},
		{core.ColorOrange, "#8c500a", "#b4780a"},
		{core.ColorTeal, "#0a8282", "#0aaaaa"},
	}

	for _, tc := range tests {
		p := palette[tc.color]
		if p.Border != tc.border || p.Fill != tc.fill {
			t.Errorf("palette[%d] = %v, want border %s fill %s", tc.color, p, tc.border, tc.fill)
		}
	}

	unknown := styleFor(core.Color(200))
	if unknown.GetForeground() != styleFor(core.ColorEmpty).GetForeground() ||
		unknown.GetBackground() != styleFor(core.ColorEmpty).GetBackground() {
		t.Error("unknown color should fall back to the background")
	}
}

func TestRenderBoard(t *testing.T) {
	e := blockfall.New(blockfall.Options{Seed: 5})
	s := e.Snapshot()
	s.Board[16][0] = core.ColorGreen

	out := ansi.Strip(RenderBoard(s))
	lines := strings.Split(out, "\n")

	// Border on top and bottom
	if len(lines) != blockfall.Rows+2 {
		t.Fatalf("RenderBoard() produced %d lines, want %d", len(lines), blockfall.Rows+2)
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != blockfall.Cols*blockfall.CellWidth+2 {
			t.Errorf("line %d has width %d", i, w)
		}
	}

	// 4 piece cells plus one board cell
	if got := strings.Count(out, "[]"); got != 5 {
		t.Errorf("RenderBoard() drew %d filled cells, want 5", got)
	}
	if !strings.HasPrefix(strings.TrimPrefix(lines[blockfall.Rows], "│"), "[]") {
		t.Errorf("bottom-left cell not filled: %q", lines[blockfall.Rows])
	}
}

func TestRenderScreen(t *testing.T) {
	scr := core.NewScreen(6, 2)
	scr.DrawText(0, 0, "ab")
	scr.SetCell(2, 0, '#', core.ColorRed)
	scr.SetCell(3, 0, '#', core.ColorRed)
	scr.SetCell(0, 1, 'x', core.Color(42))

	out := ansi.Strip(RenderScreen(scr))
	want := "ab##  \nx     "
	if out != want {
		t.Errorf("RenderScreen() = %q, want %q", out, want)
	}
}
