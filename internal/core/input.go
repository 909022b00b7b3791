package core

import (
	"fmt"
	"time"
)

// Action represents a semantic input, abstracted from physical key presses.
// Lane actions are bound per player; the others have fixed keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLane0          // first lane (D by default)
	ActionLane1          // second lane (F)
	ActionLane2          // third lane (J)
	ActionLane3          // fourth lane (K)
	ActionUp             // Up, K - menu navigation
	ActionDown           // Down, J - menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // Escape - go back to menu
	ActionRestart        // R key - start a fresh run
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// LaneActions lists the lane actions in lane order.
var LaneActions = [...]Action{ActionLane0, ActionLane1, ActionLane2, ActionLane3}

// LaneAction returns the action for lane i.
// It returns ActionNone for out-of-range lanes.
func LaneAction(i int) Action {
	if i < 0 || i >= len(LaneActions) {
		return ActionNone
	}
	return LaneActions[i]
}

// Lane returns the lane index of a lane action.
func (a Action) Lane() (int, bool) {
	if a < ActionLane0 || a > ActionLane3 {
		return 0, false
	}
	return int(a - ActionLane0), true
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if lane, ok := a.Lane(); ok {
		return fmt.Sprintf("Lane%d", lane)
	}
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered between two updates, each with the
// time its key arrived. An action triggered several times within one frame
// keeps its first timestamp.
type InputFrame struct {
	Actions map[Action]time.Time
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]time.Time),
	}
}

// Set marks an action as triggered without a timestamp.
// Consumers treat a zero time as "at the update".
func (f *InputFrame) Set(a Action) {
	f.SetAt(a, time.Time{})
}

// SetAt marks an action as triggered at the given time.
// Repeats within the same frame are ignored.
func (f *InputFrame) SetAt(a Action, at time.Time) {
	if f.Actions == nil {
		f.Actions = make(map[Action]time.Time)
	}
	if _, ok := f.Actions[a]; ok {
		return
	}
	f.Actions[a] = at
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	_, ok := f.Actions[a]
	return ok
}

// At returns when the action was triggered and whether it was.
func (f InputFrame) At(a Action) (time.Time, bool) {
	at, ok := f.Actions[a]
	return at, ok
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	return c
}
