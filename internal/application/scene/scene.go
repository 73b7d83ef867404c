// Package scene defines the Scene interface for game screens.
//
// Each game screen (loading, menu, playing, paused, game over) implements
// the Scene interface to handle its own update logic and rendering.
package scene

import (
	"errors"

	"github.com/younwookim/spaceshooter/internal/application/input"
	"github.com/younwookim/spaceshooter/internal/application/render"
	"github.com/younwookim/spaceshooter/internal/application/state"
)

// ErrQuit is returned from Update when the player asked to leave the game.
// Front-ends map it to their own termination.
var ErrQuit = errors.New("scene: quit requested")

// Scene represents a game screen
//
// The director delegates Update and Draw calls to the scene registered for
// the current state. Transitions are requested by returning another state.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds since the previous frame.
	// Returns the state to run next frame; the scene's own state to stay.
	// Returns an error to terminate the game.
	Update(dt float64, in input.Source) (next state.GameState, err error)

	// Draw renders the scene on top of the background.
	Draw(sink render.Sink)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}
