package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-beats/internal/audio"
	"github.com/vovakirdan/tui-beats/internal/config"
	"github.com/vovakirdan/tui-beats/internal/core"
	"github.com/vovakirdan/tui-beats/internal/game"
)

// Env carries the per-player settings shared by every chart in a session.
type Env struct {
	Config config.BeatsConfig

	// LaneKeys overrides Config.Keys.Lanes when set, e.g. from a stored profile.
	LaneKeys []string

	Sound  audio.Player
	Logger *log.Logger
}

func (e Env) laneKeys() []string {
	if len(e.LaneKeys) > 0 {
		return e.LaneKeys
	}
	return e.Config.Keys.Lanes
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// Model is the Bubble Tea model that plays one chart.
type Model struct {
	game        *game.Game
	screen      *core.Screen
	keys        *KeyMapper
	help        help.Model
	results     table.Model
	config      core.RuntimeConfig
	randomSeed  bool // pick a new seed on restart
	inputFrame  core.InputFrame
	gameState   core.GameState
	logger      *log.Logger
	showResults bool
	quitOnBack  bool
	quitting    bool
	backToMenu  bool
}

// NewModel starts a session of g and returns the model driving it.
// The session clock starts now.
func NewModel(g *game.Game, env Env, cfg core.RuntimeConfig) (Model, error) {
	// Use time-based seed if not specified
	randomSeed := cfg.Seed == 0
	if randomSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = env.Config.TickRate
	}

	if err := g.Reset(cfg); err != nil {
		return Model{}, err
	}

	m := Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		keys:       NewKeyMapper(env.laneKeys()),
		help:       help.New(),
		config:     cfg,
		randomSeed: randomSeed,
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
		logger:     env.logger(),
	}
	g.Resize(m.screen.Width(), m.screen.Height())
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
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

// handleKey processes keyboard input. Lane presses are stamped with their
// arrival time and resolved on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	at := m.config.Now()

	if m.showResults {
		switch {
		case key.Matches(msg, m.keys.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.keys.Results), key.Matches(msg, m.keys.keys.Back):
			m.showResults = false
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.keys.Results) && m.gameState.Done {
		m.results = newResultsTable(m.game.Summary(), m.screen.Width())
		m.showResults = true
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame, at) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The session keeps running: timing is wall-clock based.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.game.Resize(m.screen.Width(), m.screen.Height())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one game update.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) {
		m.restart()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	if result.State.Done && !m.gameState.Done {
		sum := m.game.Summary()
		m.logger.Info("chart complete",
			"chart", m.game.ID(),
			"score", sum.Score,
			"accuracy", sum.Accuracy(),
			"expired", sum.Expired,
		)
	}
	m.gameState = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart starts a new session of the same chart.
func (m *Model) restart() {
	if m.randomSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	if err := m.game.Reset(m.config); err != nil {
		// the chart was valid a moment ago with the same generator
		m.logger.Error("restart failed", "error", err)
		return
	}
	m.game.Resize(m.screen.Width(), m.screen.Height())
	m.gameState = m.game.State()
	m.showResults = false
	m.logger.Debug("restart", "chart", m.game.ID(), "seed", m.config.Seed)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showResults {
		return resultsView(m.results, m.game.Summary(), m.help, m.keys.Keys())
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Outcome reports how a standalone run ended.
type Outcome struct {
	BackToMenu bool
	Summary    game.Summary
}

// Run plays g in a standalone Bubble Tea program.
// Esc ends the program with Outcome.BackToMenu set.
func Run(g *game.Game, env Env, cfg core.RuntimeConfig) (Outcome, error) {
	model, err := NewModel(g, env, cfg)
	if err != nil {
		return Outcome{}, err
	}
	model.quitOnBack = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{Summary: g.Summary()}
	if fm, ok := final.(Model); ok {
		out.BackToMenu = fm.BackToMenu()
	}
	return out, nil
}
