package blockfall

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestRenderASCII(t *testing.T) {
	e := New(Options{Spawner: spawnerOf(1)})
	e.board[16][0] = core.ColorBlue
	e.board[16][8] = core.ColorTeal

	lines := strings.Split(RenderASCII(e.Snapshot()), "\n")

	require.Len(t, lines, Rows)
	for _, l := range lines {
		assert.Len(t, l, Cols)
	}
	// O piece at (2,0) covers columns 3..4 of rows 1..2.
	assert.Equal(t, ".........", lines[0])
	assert.Equal(t, "...##....", lines[1])
	assert.Equal(t, "...##....", lines[2])
	assert.Equal(t, "3.......7", lines[16])
}

func TestRenderIntoScreen(t *testing.T) {
	e := New(Options{Spawner: spawnerOf(0)})
	e.board[16][0] = core.ColorPurple
	s := e.Snapshot()
	scr := core.NewScreen(60, Rows+2)

	Render(scr, s, 0, 0)

	assert.Equal(t, '┌', scr.Get(0, 0))
	assert.Equal(t, '┘', scr.Get(Cols*CellWidth+1, Rows+1))

	// Board cell (0,16) sits at screen (1,17).
	cell := scr.GetCell(1, 17)
	assert.Equal(t, '[', cell.Rune)
	assert.Equal(t, core.ColorPurple, cell.Color)
	assert.Equal(t, ']', scr.Get(2, 17))

	// Vertical I at (2,0) draws board column 3 at screen x = 1 + 3*2.
	piece := scr.GetCell(7, 1)
	assert.Equal(t, '[', piece.Rune)
	assert.Equal(t, core.ColorRed, piece.Color)

	assert.Equal(t, '.', scr.Get(2, 1))
	assert.Contains(t, scr.Row(1), "Score:  0")
}

func TestHUDLines(t *testing.T) {
	lines := HUDLines(Snapshot{Phase: PhaseFalling, Score: 12, Tick: 7})
	assert.Equal(t, "Score:  12", lines[0])
	assert.Equal(t, "Tick:   7", lines[len(lines)-1])
}
