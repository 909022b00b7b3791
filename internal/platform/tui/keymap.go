package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-beats/internal/core"
	"github.com/vovakirdan/tui-beats/internal/rhythm"
)

// GameKeyMap defines the key bindings while a chart is playing.
type GameKeyMap struct {
	Lanes   [rhythm.LaneCount]key.Binding
	Restart key.Binding
	Results key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return append(k.Lanes[:], k.Restart, k.Back, k.Quit)
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Lanes[:],
		{k.Restart, k.Results, k.Back, k.Quit},
	}
}

// NewGameKeyMap binds laneKeys (one per lane, left to right) plus the
// fixed control keys.
func NewGameKeyMap(laneKeys []string) GameKeyMap {
	km := GameKeyMap{
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Results: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "results"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	for i := range km.Lanes {
		k := "?"
		if i < len(laneKeys) {
			k = laneKeys[i]
		}
		keys := []string{k}
		// single letters also match with caps lock on
		if up := strings.ToUpper(k); utf8.RuneCountInString(k) == 1 && up != k {
			keys = append(keys, up)
		}
		km.Lanes[i] = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(k, fmt.Sprintf("lane %d", i+1)),
		)
	}
	return km
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a key mapper for the given lane keys.
func NewKeyMapper(laneKeys []string) *KeyMapper {
	return &KeyMapper{keys: NewGameKeyMap(laneKeys)}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for i, b := range km.keys.Lanes {
		if key.Matches(msg, b) {
			return core.LaneAction(i), false
		}
	}

	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame records the action for msg in frame, stamped with the
// arrival time at. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, at time.Time) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.SetAt(action, at)
	}
	return isQuit
}

// MenuKeyMap defines the key bindings for the chart picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
