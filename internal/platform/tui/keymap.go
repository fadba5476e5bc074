package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-shooters/internal/core"
)

// DefaultHoldTicks is how long a direction counts as held after its last
// key event. Terminals repeat held keys at roughly 30 Hz, so a few ticks
// at 60 FPS bridge the gap between repeats.
const DefaultHoldTicks = 6

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case " ":
		return core.ActionFire, false
	case "enter":
		return core.ActionStart, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// InputState accumulates key events between ticks. One-shot actions last
// a single tick; directions stay held for holdTicks after their last event.
type InputState struct {
	holdTicks int
	held      map[core.Action]int
	pending   core.InputFrame
}

// NewInputState creates an input state. holdTicks <= 0 uses DefaultHoldTicks.
func NewInputState(holdTicks int) *InputState {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &InputState{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
		pending:   core.NewInputFrame(),
	}
}

// Press records an action. A direction releases its opposite.
func (s *InputState) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !a.IsDirection() {
		s.pending.Set(a)
		return
	}
	delete(s.held, opposite(a))
	s.held[a] = s.holdTicks
}

// Next returns the input for the coming tick and ages held directions.
func (s *InputState) Next() core.InputFrame {
	f := s.pending.Clone()
	s.pending.Clear()
	for a, n := range s.held {
		f.Set(a)
		if n <= 1 {
			delete(s.held, a)
		} else {
			s.held[a] = n - 1
		}
	}
	return f
}

// Reset drops all held and pending input.
func (s *InputState) Reset() {
	clear(s.held)
	s.pending.Clear()
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
}
