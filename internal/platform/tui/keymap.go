package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMap defines key bindings for the game screen.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HoldTracker infers key releases for terminals, which only report key
// presses. A key stays held while its events keep arriving; it is released
// once none has been seen for the hold timeout. A key seen only once gets
// the longer repeat delay, since terminals wait before auto-repeating.
type HoldTracker struct {
	keys        *core.KeyState
	timeout     time.Duration
	repeatDelay time.Duration
	holds       map[core.Key]hold
}

type hold struct {
	last    time.Time
	repeats int
}

// NewHoldTracker returns a tracker that presses and releases keys on ks.
func NewHoldTracker(ks *core.KeyState, timeout, repeatDelay time.Duration) *HoldTracker {
	return &HoldTracker{
		keys:        ks,
		timeout:     timeout,
		repeatDelay: max(timeout, repeatDelay),
		holds:       make(map[core.Key]hold),
	}
}

// Press records a key event at now.
//
// Terminals only auto-repeat the last key pressed, so an event for a held key
// that is not the most recent one means it was pressed again; it moves to the
// front.
func (t *HoldTracker) Press(k core.Key, now time.Time) {
	h, held := t.holds[k]
	if held && t.keys.IsHeld(k) && !t.keys.Pressed(k) {
		t.keys.Release(k)
		held = false
	}

	if held && t.keys.IsHeld(k) {
		h.repeats++
		h.last = now
	} else {
		h = hold{last: now}
	}
	t.holds[k] = h
	t.keys.Press(k)
}

// Expire releases every key whose last event is older than its limit.
func (t *HoldTracker) Expire(now time.Time) {
	for k, h := range t.holds {
		limit := t.timeout
		if h.repeats == 0 {
			limit = t.repeatDelay
		}
		if now.Sub(h.last) > limit {
			t.keys.Release(k)
			delete(t.holds, k)
		}
	}
}

// ReleaseAll releases every tracked key.
func (t *HoldTracker) ReleaseAll() {
	for k := range t.holds {
		t.keys.Release(k)
	}
	clear(t.holds)
}
