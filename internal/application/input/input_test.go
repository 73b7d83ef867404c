package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAction_String(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionMoveUp, "MoveUp"},
		{ActionMoveDown, "MoveDown"},
		{ActionMoveLeft, "MoveLeft"},
		{ActionMoveRight, "MoveRight"},
		{ActionFire, "Fire"},
		{ActionPause, "Pause"},
		{ActionConfirm, "Confirm"},
		{ActionCancel, "Cancel"},
		{ActionMenuUp, "MenuUp"},
		{ActionMenuDown, "MenuDown"},
		{ActionLeaveRun, "LeaveRun"},
		{Action(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.action.String())
		})
	}
}

func TestState(t *testing.T) {
	s := Held(ActionFire, ActionMoveLeft)

	assert.True(t, s.IsHeld(ActionFire))
	assert.True(t, s.IsHeld(ActionMoveLeft))
	assert.False(t, s.IsHeld(ActionMoveRight))
	assert.False(t, s.JustPressed(ActionFire))

	s.Press(ActionPause)
	assert.True(t, s.JustPressed(ActionPause))
	assert.True(t, s.IsHeld(ActionPause), "a press implies held")
}

func TestState_OutOfRangeAction(t *testing.T) {
	s := State{Held: 0xFFFF, Pressed: 0xFFFF}

	assert.False(t, s.IsHeld(Action(-1)))
	assert.False(t, s.JustPressed(actionCount))
}

type fakeSource struct {
	held, pressed map[Action]bool
}

func (f fakeSource) IsHeld(a Action) bool      { return f.held[a] }
func (f fakeSource) JustPressed(a Action) bool { return f.pressed[a] }

func TestCapture(t *testing.T) {
	src := fakeSource{
		held:    map[Action]bool{ActionMoveUp: true, ActionFire: true},
		pressed: map[Action]bool{ActionConfirm: true},
	}

	s := Capture(src)

	for _, a := range Actions() {
		assert.Equal(t, src.held[a], s.IsHeld(a), a.String())
		assert.Equal(t, src.pressed[a], s.JustPressed(a), a.String())
	}
}
