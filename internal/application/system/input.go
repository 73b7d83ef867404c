package system

import (
	"github.com/younwookim/spaceshooter/internal/application/input"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
)

// InputSystem turns held movement actions into ship motion
type InputSystem struct {
	width, height, inset float64
}

// NewInputSystem creates an input system for a playfield of the given size.
// The ship is kept inset pixels away from every edge.
func NewInputSystem(width, height, inset float64) *InputSystem {
	return &InputSystem{width: width, height: height, inset: inset}
}

// Direction combines the four movement actions into a unit or zero vector.
// Opposite directions cancel out.
func (s *InputSystem) Direction(in input.Source) entity.Vec2 {
	var dir entity.Vec2
	if in.IsHeld(input.ActionMoveLeft) {
		dir.X -= 1
	}
	if in.IsHeld(input.ActionMoveRight) {
		dir.X += 1
	}
	if in.IsHeld(input.ActionMoveUp) {
		dir.Y -= 1
	}
	if in.IsHeld(input.ActionMoveDown) {
		dir.Y += 1
	}
	return dir.Normalize()
}

// UpdateShip moves the ship for this frame and clamps it to the playfield
func (s *InputSystem) UpdateShip(ship *entity.Ship, in input.Source, dt float64) {
	ship.Move(s.Direction(in), dt)
	ship.Clamp(s.width, s.height, s.inset)
}
