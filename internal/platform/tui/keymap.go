package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/starfall-arcade/starfall/internal/core"
)

// Control is a platform-level action that is not part of the game's input
// snapshot: quitting, restarting a finished session, taking a screenshot.
type Control int

const (
	ControlNone Control = iota
	ControlQuit
	ControlRestart
	ControlScreenshot
)

// KeyMapper translates Bubble Tea key messages into the game's input
// snapshot. This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// Apply updates the intent from a key press and returns any control
// action. Terminals report key presses only, so movement flags are set
// for the current tick and cleared by the caller afterwards. A movement
// key takes steering back from the pointer.
func (km *KeyMapper) Apply(msg tea.KeyMsg, in *core.Intent) Control {
	switch msg.String() {
	case "ctrl+c", "q":
		return ControlQuit
	case "ctrl+s":
		return ControlScreenshot
	case "r":
		return ControlRestart

	case "left", "a":
		in.Left = true
		in.PointerActive = false
	case "right", "d":
		in.Right = true
		in.PointerActive = false
	case "up", "w":
		in.Up = true
		in.PointerActive = false
	case "down", "s":
		in.Down = true
		in.PointerActive = false

	case " ":
		in.Fire = true
	case "p", "esc":
		in.Pause = true
	}

	return ControlNone
}
