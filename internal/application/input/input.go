// Package input defines the logical actions the game reacts to and the
// source the core polls them from. The core never reads device state.
package input

// Action is a logical input action
type Action int

const (
	ActionMoveUp Action = iota
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionFire
	ActionPause
	ActionConfirm
	ActionCancel
	ActionMenuUp
	ActionMenuDown
	// ActionLeaveRun abandons a paused run. Only Enter triggers it, so the
	// fire key cannot end a run by accident.
	ActionLeaveRun

	actionCount
)

// Actions lists every action in declaration order
func Actions() []Action {
	all := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		all = append(all, a)
	}
	return all
}

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionMenuUp:
		return "MenuUp"
	case ActionMenuDown:
		return "MenuDown"
	case ActionLeaveRun:
		return "LeaveRun"
	default:
		return "Unknown"
	}
}

// Source answers per-frame input queries
type Source interface {
	// IsHeld reports whether the action is currently held down
	IsHeld(a Action) bool
	// JustPressed reports whether the action was newly pressed this frame
	JustPressed(a Action) bool
}

// State is a snapshot of all actions for one frame, stored as bitsets.
// It implements Source and is what front-ends, recorders and tests pass
// into the core.
type State struct {
	Held    uint16
	Pressed uint16
}

// IsHeld implements Source
func (s State) IsHeld(a Action) bool {
	return s.Held&bit(a) != 0
}

// JustPressed implements Source
func (s State) JustPressed(a Action) bool {
	return s.Pressed&bit(a) != 0
}

// Hold marks the action as held
func (s *State) Hold(a Action) {
	s.Held |= bit(a)
}

// Press marks the action as newly pressed, which also implies held
func (s *State) Press(a Action) {
	s.Pressed |= bit(a)
	s.Held |= bit(a)
}

// Capture snapshots any Source into a State
func Capture(src Source) State {
	var s State
	for a := Action(0); a < actionCount; a++ {
		if src.IsHeld(a) {
			s.Held |= bit(a)
		}
		if src.JustPressed(a) {
			s.Pressed |= bit(a)
		}
	}
	return s
}

// Held returns a State with the given actions held
func Held(actions ...Action) State {
	var s State
	for _, a := range actions {
		s.Hold(a)
	}
	return s
}

// Pressed returns a State with the given actions newly pressed
func Pressed(actions ...Action) State {
	var s State
	for _, a := range actions {
		s.Press(a)
	}
	return s
}

func bit(a Action) uint16 {
	if a < 0 || a >= actionCount {
		return 0
	}
	return 1 << uint(a)
}
