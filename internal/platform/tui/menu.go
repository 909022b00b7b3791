package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-beats/internal/core"
	"github.com/vovakirdan/tui-beats/internal/registry"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Bold(true)
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// MenuModel is the Bubble Tea model for the chart picker.
type MenuModel struct {
	items    []registry.ChartInfo
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	laneKeys []string
	quitting bool
	selected *registry.ChartInfo // Set when user selects a chart
}

// NewMenuModel creates a new menu model. laneKeys are shown as a reminder.
func NewMenuModel(cfg core.RuntimeConfig, laneKeys []string) MenuModel {
	items := registry.List()

	// Start on the default chart
	cursor := 0
	for i, it := range items {
		if it.ID == registry.DefaultChart {
			cursor = i
		}
	}

	return MenuModel{
		items:    items,
		cursor:   cursor,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		config:   cfg,
		keys:     DefaultMenuKeyMap(),
		help:     help.New(),
		laneKeys: laneKeys,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the chart
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B E A T S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a chart", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + menuItemStyle.Render(item.Title)
		if i == m.cursor {
			line = "> " + menuSelectedStyle.Render(item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	keys := strings.ToUpper(strings.Join(m.laneKeys, " "))
	b.WriteString(centerText(menuHintStyle.Render(fmt.Sprintf("Lanes: %s", keys)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected chart, or nil if none selected.
func (m MenuModel) Selected() *registry.ChartInfo {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	ChartID string
	Config  core.RuntimeConfig
	Quit    bool
}

// RunMenu runs the chart picker and returns the selection.
func RunMenu(cfg core.RuntimeConfig, laneKeys []string) (MenuResult, error) {
	model := NewMenuModel(cfg, laneKeys)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.ChartID = m.Selected().ID
	return result, nil
}
