package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wave-rider/internal/core"
	"github.com/vovakirdan/wave-rider/internal/game"
)

// windowTitle is the fixed title reported to the terminal.
const windowTitle = "Wave"

// helpRows is vertical space reserved under the playfield for the help bar.
const helpRows = 1

// Model is the Bubble Tea model hosting one game session. It owns the
// clock: simulation time is seconds since the model was created,
// sampled once per tick, which satisfies the game's monotonic-clock
// contract.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	start      time.Time
	quitting   bool
}

// NewModel creates a model for the given game session.
func NewModel(g *game.Game, cfg core.RuntimeConfig) Model {
	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		start:      time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(windowTitle),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps keys to actions for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Jump):
		m.inputFrame.Set(core.ActionJump)
	case key.Matches(msg, m.keys.Retry):
		m.inputFrame.Set(core.ActionRetry)
	}
	return m, nil
}

// handleResize adapts the playfield to the terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-helpRows))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := time.Since(m.start).Seconds()
	m.game.Step(now, m.inputFrame)
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the playfield and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game session and
// blocks until it exits.
func Run(g *game.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(g, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
