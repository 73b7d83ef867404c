// Package gameover provides the end-of-run scene.
package gameover

import (
	"github.com/younwookim/spaceshooter/internal/application/input"
	"github.com/younwookim/spaceshooter/internal/application/render"
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/application/state"
	"github.com/younwookim/spaceshooter/internal/application/view"
)

// GameOver shows the final score and offers a restart
type GameOver struct {
	sess *session.Session
}

// New creates the game over scene
func New(sess *session.Session) *GameOver {
	return &GameOver{sess: sess}
}

// Update implements scene.Scene
func (g *GameOver) Update(_ float64, in input.Source) (state.GameState, error) {
	if in.JustPressed(input.ActionConfirm) {
		g.sess.Reset()
		return state.StatePlaying, nil
	}
	if in.JustPressed(input.ActionCancel) {
		return state.StateMenu, nil
	}
	return state.StateGameOver, nil
}

// Draw implements scene.Scene
func (g *GameOver) Draw(sink render.Sink) {
	view.GameOver(sink, g.sess.Score, g.sess.HighScore)
}

// OnEnter implements scene.Scene
func (g *GameOver) OnEnter() {}

// OnExit implements scene.Scene
func (g *GameOver) OnExit() {}
