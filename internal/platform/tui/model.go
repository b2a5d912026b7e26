package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/session"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hudStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2)
	gameOverStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// ModelOptions configures a game model.
type ModelOptions struct {
	Runner        *session.Runner
	History       RunHistory // nil hides the run table
	Width, Height int
	ScreenshotDir string // empty disables screenshots
}

// Model is the Bubble Tea model for one game session. It renders frames published
// by a session.Runner and forwards commands to it; it never ticks the engine itself.
type Model struct {
	runner    *session.Runner
	history   RunHistory
	keys      KeyMap
	keyMapper *KeyMapper
	help      help.Model
	runs      table.Model

	frame     session.Frame
	haveFrame bool
	lastOver  *blockfall.GameOverEvent
	justOver  bool // the current frame ended a game
	best      *storage.RunEntry
	showRuns  bool
	status    string

	width         int
	height        int
	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model on top of a runner.
// The caller starts the runner; the model stops when the runner does.
func NewModel(opts ModelOptions) Model {
	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false
	h.Width = opts.Width

	m := Model{
		runner:        opts.Runner,
		history:       opts.History,
		keys:          keys,
		keyMapper:     NewKeyMapper(keys),
		help:          h,
		runs:          newRunTable(),
		width:         opts.Width,
		height:        opts.Height,
		screenshotDir: opts.ScreenshotDir,
	}
	m.refreshRuns()
	return m
}

// Init starts waiting for frames.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.runner.Frames())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(session.Frame(msg))

	case runnerStoppedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Runs):
		m.showRuns = !m.showRuns && m.history != nil
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	cmd, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if cmd != core.CommandNone {
		m.runner.Submit(cmd)
	}
	return m, nil
}

// handleFrame stores the latest frame and keeps listening.
func (m Model) handleFrame(f session.Frame) (tea.Model, tea.Cmd) {
	m.frame = f
	m.haveFrame = true
	m.justOver = false

	for _, evt := range f.Events {
		if over, ok := evt.(blockfall.GameOverEvent); ok {
			m.lastOver = &over
			m.justOver = true
			m.status = ""
			m.refreshRuns()
		}
	}

	return m, waitForFrame(m.runner.Frames())
}

// refreshRuns reloads the run table from the history.
func (m *Model) refreshRuns() {
	if m.history == nil {
		return
	}

	runs, err := m.history.RecentRuns("", maxRuns)
	if err != nil {
		m.status = "run history unavailable"
		return
	}
	m.runs.SetRows(runRows(runs))
	m.runs.GotoTop()

	if best, ok, err := m.history.BestRun(); err == nil && ok {
		m.best = &best
	}
}

// saveScreenshot writes the current board as text to the screenshot directory.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" || !m.haveFrame {
		return
	}

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.status = "screenshot failed"
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("blockfall_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(blockfall.RenderASCII(m.frame.Snapshot)+"\n"), 0o600); err != nil {
		m.status = "screenshot failed"
		return
	}
	m.status = "saved " + filepath.Base(path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.haveFrame {
		return statusStyle.Render("starting...")
	}

	s := m.frame.Snapshot
	board := RenderBoard(s)
	side := hudStyle.Render(m.sidePanel())

	var b strings.Builder
	b.WriteString(titleStyle.Render("B L O C K F A L L"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, side))
	b.WriteString("\n")

	if m.showRuns {
		b.WriteString(panelStyle.Render(m.runs.View()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) sidePanel() string {
	s := m.frame.Snapshot
	var b strings.Builder

	for _, line := range blockfall.HUDLines(s) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.justOver {
		b.WriteString("\n")
		b.WriteString(gameOverStyle.Render("GAME OVER"))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Speed:  %dms\n", m.frame.Interval.Milliseconds())

	if m.lastOver != nil {
		b.WriteString("\nLast game\n")
		fmt.Fprintf(&b, "  Pieces %d  Lines %d\n", m.lastOver.Fallen, m.lastOver.LinesCleared)
	}
	if m.best != nil {
		fmt.Fprintf(&b, "\nBest: %d lines, %d pts\n", m.best.Lines, m.best.Score)
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	return b.String()
}

// RunOptions configures a local game.
type RunOptions struct {
	Session       session.Options
	History       RunHistory
	Width, Height int
	ScreenshotDir string
}

// Run plays a local game in the alternate screen until the player quits.
func Run(ctx context.Context, opts RunOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runner := session.NewRunner(opts.Session)
	go runner.Run(ctx) //nolint:errcheck // Returns ctx.Err() once the program exits

	model := NewModel(ModelOptions{
		Runner:        runner,
		History:       opts.History,
		Width:         opts.Width,
		Height:        opts.Height,
		ScreenshotDir: opts.ScreenshotDir,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	cancel()
	<-runner.Done()
	return err
}
