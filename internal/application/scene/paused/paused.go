// Package paused provides the pause overlay scene.
package paused

import (
	"github.com/younwookim/spaceshooter/internal/application/input"
	"github.com/younwookim/spaceshooter/internal/application/render"
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/application/state"
	"github.com/younwookim/spaceshooter/internal/application/view"
)

// Paused freezes the simulation and draws the world under an overlay
type Paused struct {
	sess *session.Session
}

// New creates the pause scene
func New(sess *session.Session) *Paused {
	return &Paused{sess: sess}
}

// Update implements scene.Scene. Nothing in the session moves here.
func (p *Paused) Update(_ float64, in input.Source) (state.GameState, error) {
	switch {
	case in.JustPressed(input.ActionPause), in.JustPressed(input.ActionCancel):
		return state.StatePlaying, nil
	case in.JustPressed(input.ActionLeaveRun):
		return state.StateMenu, nil
	}
	return state.StatePaused, nil
}

// Draw implements scene.Scene
func (p *Paused) Draw(sink render.Sink) {
	view.World(sink, p.sess)
	view.HUD(sink, p.sess)
	view.PauseOverlay(sink)
}

// OnEnter implements scene.Scene
func (p *Paused) OnEnter() {}

// OnExit implements scene.Scene
func (p *Paused) OnExit() {}
