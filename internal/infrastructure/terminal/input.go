package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/spaceshooter/internal/application/input"
)

// DefaultHoldWindow is how long a key counts as held after its last event.
// Terminals report no key releases, only presses and auto-repeat.
const DefaultHoldWindow = 300 * time.Millisecond

// Input turns key events into per-frame input snapshots.
// It implements input.Source for the most recent snapshot.
type Input struct {
	holdWindow time.Duration
	lastSeen   [16]time.Time
	pressed    input.State
	current    input.State
	quit       bool
}

// NewInput creates an input tracker
func NewInput(holdWindow time.Duration) *Input {
	return &Input{holdWindow: holdWindow}
}

// actionsFor maps a key to the actions it triggers
func actionsFor(key tcell.Key, r rune) []input.Action {
	switch key {
	case tcell.KeyUp:
		return []input.Action{input.ActionMoveUp, input.ActionMenuUp}
	case tcell.KeyDown:
		return []input.Action{input.ActionMoveDown, input.ActionMenuDown}
	case tcell.KeyLeft:
		return []input.Action{input.ActionMoveLeft}
	case tcell.KeyRight:
		return []input.Action{input.ActionMoveRight}
	case tcell.KeyEnter:
		return []input.Action{input.ActionConfirm, input.ActionLeaveRun}
	case tcell.KeyEscape:
		return []input.Action{input.ActionCancel}
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return []input.Action{input.ActionMoveUp, input.ActionMenuUp}
		case 's', 'S':
			return []input.Action{input.ActionMoveDown, input.ActionMenuDown}
		case 'a', 'A':
			return []input.Action{input.ActionMoveLeft}
		case 'd', 'D':
			return []input.Action{input.ActionMoveRight}
		case ' ':
			return []input.Action{input.ActionFire, input.ActionConfirm}
		case 'p', 'P':
			return []input.Action{input.ActionPause}
		}
	}
	return nil
}

// HandleKey records a key event
func (in *Input) HandleKey(ev *tcell.EventKey, now time.Time) {
	in.handle(ev.Key(), ev.Rune(), now)
}

func (in *Input) handle(key tcell.Key, r rune, now time.Time) {
	if key == tcell.KeyCtrlC {
		in.quit = true
		return
	}
	for _, a := range actionsFor(key, r) {
		// Auto-repeat of a held key is not a new press
		if !in.heldAt(a, now) {
			in.pressed.Press(a)
		}
		in.lastSeen[a] = now
	}
}

func (in *Input) heldAt(a input.Action, now time.Time) bool {
	seen := in.lastSeen[a]
	return !seen.IsZero() && now.Sub(seen) <= in.holdWindow
}

// Snapshot fixes the input for the next frame and clears pending presses
func (in *Input) Snapshot(now time.Time) input.State {
	s := in.pressed
	for _, a := range input.Actions() {
		if in.heldAt(a, now) {
			s.Hold(a)
		}
	}
	in.pressed = input.State{}
	in.current = s
	return s
}

// QuitRequested reports whether Ctrl-C was pressed
func (in *Input) QuitRequested() bool {
	return in.quit
}

// IsHeld implements input.Source
func (in *Input) IsHeld(a input.Action) bool {
	return in.current.IsHeld(a)
}

// JustPressed implements input.Source
func (in *Input) JustPressed(a input.Action) bool {
	return in.current.JustPressed(a)
}
