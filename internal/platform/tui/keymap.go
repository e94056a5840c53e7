package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockhop/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "up", "w":
		return core.ActionJump, false
	case "down", "s":
		return core.ActionCrouch, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// HoldTracker synthesizes key-release events for held keys. Terminals only
// deliver key presses (with auto-repeat), never releases, so a held key is
// modeled as: press on first arrival, release once no repeat has arrived for
// releaseAfter ticks. The simulation consumes clean press/release pairs and
// stays unaware of this.
type HoldTracker struct {
	releaseAfter int
	lastPress    map[core.Action]int // action -> tick of most recent press
}

// DefaultReleaseAfterTicks covers the typical terminal auto-repeat initial
// delay at 60 ticks per second.
const DefaultReleaseAfterTicks = 45

// NewHoldTracker creates a hold tracker with the given release window.
func NewHoldTracker(releaseAfter int) *HoldTracker {
	if releaseAfter <= 0 {
		releaseAfter = DefaultReleaseAfterTicks
	}
	return &HoldTracker{
		releaseAfter: releaseAfter,
		lastPress:    make(map[core.Action]int),
	}
}

// Press records a press of the given action at the given tick.
// Returns true if this begins a new hold (a press event should be emitted);
// repeats of an ongoing hold only refresh the release deadline.
func (h *HoldTracker) Press(a core.Action, tick int) bool {
	_, held := h.lastPress[a]
	h.lastPress[a] = tick
	return !held
}

// Expired returns the actions whose hold window has lapsed by the given tick
// and forgets them. A release event should be emitted for each.
func (h *HoldTracker) Expired(tick int) []core.Action {
	var released []core.Action
	for a, last := range h.lastPress {
		if tick-last >= h.releaseAfter {
			released = append(released, a)
			delete(h.lastPress, a)
		}
	}
	return released
}

// Reset forgets all held keys without emitting releases.
func (h *HoldTracker) Reset() {
	clear(h.lastPress)
}
