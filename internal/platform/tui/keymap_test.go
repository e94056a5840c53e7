package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockhop/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"w jumps", runeKey('w'), core.ActionJump, false},
		{"down crouches", tea.KeyMsg{Type: tea.KeyDown}, core.ActionCrouch, false},
		{"s crouches", runeKey('s'), core.ActionCrouch, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tc.msg)
			if action != tc.want || isQuit != tc.wantQuit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
					tc.msg.String(), action, isQuit, tc.want, tc.wantQuit)
			}
		})
	}
}

func TestHoldTrackerPressAndRepeat(t *testing.T) {
	h := NewHoldTracker(10)

	if !h.Press(core.ActionCrouch, 0) {
		t.Error("first press should start a new hold")
	}
	if h.Press(core.ActionCrouch, 5) {
		t.Error("auto-repeat press should not start a new hold")
	}

	// The repeat at tick 5 pushed the deadline to 15.
	if released := h.Expired(14); len(released) != 0 {
		t.Errorf("released too early: %v", released)
	}
	released := h.Expired(15)
	if len(released) != 1 || released[0] != core.ActionCrouch {
		t.Errorf("Expired(15) = %v, want [Crouch]", released)
	}

	// After expiry the next press is a fresh hold again.
	if !h.Press(core.ActionCrouch, 20) {
		t.Error("press after expiry should start a new hold")
	}
}

func TestHoldTrackerTracksActionsIndependently(t *testing.T) {
	h := NewHoldTracker(10)
	h.Press(core.ActionCrouch, 0)
	h.Press(core.ActionJump, 8)

	released := h.Expired(10)
	if len(released) != 1 || released[0] != core.ActionCrouch {
		t.Errorf("Expired(10) = %v, want only Crouch", released)
	}
	if released := h.Expired(17); len(released) != 0 {
		t.Errorf("jump should still be held at 17: %v", released)
	}
	if released := h.Expired(18); len(released) != 1 {
		t.Errorf("jump should expire at 18: %v", released)
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker(10)
	h.Press(core.ActionCrouch, 0)

	h.Reset()

	if released := h.Expired(100); len(released) != 0 {
		t.Errorf("Reset should drop holds without releases, got %v", released)
	}
	if !h.Press(core.ActionCrouch, 101) {
		t.Error("press after Reset should start a new hold")
	}
}

func TestHoldTrackerDefaultWindow(t *testing.T) {
	h := NewHoldTracker(0)
	h.Press(core.ActionCrouch, 0)

	if released := h.Expired(DefaultReleaseAfterTicks - 1); len(released) != 0 {
		t.Errorf("released before default window: %v", released)
	}
	if released := h.Expired(DefaultReleaseAfterTicks); len(released) != 1 {
		t.Errorf("default window should have lapsed: %v", released)
	}
}
