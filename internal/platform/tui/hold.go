package tui

import (
	"time"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/blockfall/internal/core"
)

// DefaultHoldWindow is used for games that do not report their own window.
const DefaultHoldWindow = 150 * time.Millisecond

// holdable lists the actions whose held state the tracker reports.
var holdable = [...]core.Action{
	core.ActionLeft,
	core.ActionRight,
	core.ActionSoftDrop,
	core.ActionHardDrop,
	core.ActionRotateCW,
	core.ActionRotateCCW,
}

// HoldWindower is implemented by games that choose how long a key counts as
// held after its last key event.
type HoldWindower interface {
	HoldWindow() time.Duration
}

// HoldTracker rebuilds key-held state from terminal key events.
// Terminals send a press and then auto-repeats but never a release, so an
// action stays held until window has passed without another event for it.
type HoldTracker struct {
	window time.Duration
	last   *intmap.Map[core.Action, int64] // action -> last event, unix nanos
}

// NewHoldTracker creates a tracker with the given window.
// A non-positive window falls back to DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	h := &HoldTracker{last: intmap.New[core.Action, int64](len(holdable))}
	h.SetWindow(window)
	return h
}

// Window returns the hold window.
func (h *HoldTracker) Window() time.Duration {
	return h.window
}

// SetWindow changes the hold window.
// A non-positive window falls back to DefaultHoldWindow.
func (h *HoldTracker) SetWindow(window time.Duration) {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	h.window = window
}

// Press records a key event for the action at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if !isHoldable(a) {
		return
	}
	h.last.Put(a, now.UnixNano())
}

// Held reports whether the action is still held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	t, ok := h.last.Get(a)
	if !ok {
		return false
	}
	return now.UnixNano()-t < int64(h.window)
}

// Apply marks every held action on the frame and forgets expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for _, a := range holdable {
		if _, ok := h.last.Get(a); !ok {
			continue
		}
		if h.Held(a, now) {
			frame.Hold(a)
		} else {
			h.last.Del(a)
		}
	}
}

// Len returns the number of actions currently tracked.
func (h *HoldTracker) Len() int {
	return h.last.Len()
}

// Reset forgets all key events.
func (h *HoldTracker) Reset() {
	h.last.Clear()
}

func isHoldable(a core.Action) bool {
	for _, h := range holdable {
		if h == a {
			return true
		}
	}
	return false
}

// holdWindowFor returns the game's hold window, or the default.
func holdWindowFor(game any) time.Duration {
	if hw, ok := game.(HoldWindower); ok {
		return hw.HoldWindow()
	}
	return DefaultHoldWindow
}
