package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hopper/internal/core"
	"github.com/vovakirdan/tui-hopper/internal/games/hopper"
)

// Model is the Bubble Tea model for running a hopper game.
type Model struct {
	game       *hopper.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards game events.
func NewModel(game *hopper.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick.
// Several keys between two ticks are all delivered; the simulation takes one hop.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("player quit", "score", m.gameState.Score, "best", m.gameState.Best)
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleTick advances the simulation by one step and logs run transitions.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !prev.GameOver:
		snap := m.game.Snapshot()
		m.logger.Info("run ended",
			"score", m.gameState.Score,
			"best", m.gameState.Best,
			"cause", snap.Cause.String(),
			"row", snap.Player.Row,
			"ticks", snap.Tick,
		)
	case m.inputFrame.Has(core.ActionRestart):
		m.logger.Info("run restarted", "seed", m.game.Sim().Seed(), "best", m.gameState.Best)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the playfield above the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	height := max(1, m.config.ScreenH-lipgloss.Height(footer))
	m.screen.Resize(m.config.ScreenW, height)

	DrawSnapshot(m.screen, m.game.Snapshot())
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), footer)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game *hopper.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
