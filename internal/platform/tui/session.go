package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-beats/internal/core"
	"github.com/vovakirdan/tui-beats/internal/game"
	"github.com/vovakirdan/tui-beats/internal/registry"
)

// SessionModel manages the full flow of one player: menu -> chart -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	env       Env
	config    core.RuntimeConfig
	menu      MenuModel
	gameModel *Model
	inGame    bool
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(env Env, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		env:    env,
		config: cfg,
		menu:   NewMenuModel(cfg, env.laneKeys()),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks left over from a finished chart are dropped here
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	// The menu quits its own program after a selection; inside a session we
	// swallow that and start the chart instead.
	logger := m.env.logger()
	chart, err := registry.Create(selected.ID)
	if err != nil {
		logger.Error("cannot create chart", "chart", selected.ID, "error", err)
		m.menu = NewMenuModel(m.config, m.env.laneKeys())
		return m, nil
	}

	g := game.New(chart, m.env.Config, m.env.Sound, game.WithLogger(logger))
	gameModel, err := NewModel(g, m.env, m.config)
	if err != nil {
		logger.Error("cannot start chart", "chart", selected.ID, "error", err)
		m.menu = NewMenuModel(m.config, m.env.laneKeys())
		return m, nil
	}

	logger.Info("chart started", "chart", selected.ID)
	m.gameModel = &gameModel
	m.inGame = true
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.inGame = false
		m.gameModel = nil
		m.menu = NewMenuModel(m.config, m.env.laneKeys())
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}

	return m.menu.View()
}
