// Package game provides the scene director that owns the session and
// handles scene transitions.
package game

import (
	"fmt"
	"log"

	"github.com/younwookim/spaceshooter/internal/application/input"
	"github.com/younwookim/spaceshooter/internal/application/render"
	"github.com/younwookim/spaceshooter/internal/application/scene"
	"github.com/younwookim/spaceshooter/internal/application/scene/gameover"
	"github.com/younwookim/spaceshooter/internal/application/scene/loading"
	"github.com/younwookim/spaceshooter/internal/application/scene/menu"
	"github.com/younwookim/spaceshooter/internal/application/scene/paused"
	"github.com/younwookim/spaceshooter/internal/application/scene/playing"
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/application/state"
	"github.com/younwookim/spaceshooter/internal/application/system"
	"github.com/younwookim/spaceshooter/internal/application/view"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
)

// Game dispatches each frame to the scene registered for the session's
// current state. It does not know about windows or devices: front-ends
// feed it dt and input and hand it a render.Sink.
type Game struct {
	sess       *session.Session
	scenes     map[state.GameState]scene.Scene
	background *system.BackgroundSystem
}

// New creates a Game over a dispatch table.
// The current scene's OnEnter is called immediately.
func New(sess *session.Session, scenes map[state.GameState]scene.Scene) *Game {
	g := &Game{
		sess:       sess,
		scenes:     scenes,
		background: system.NewBackgroundSystem(tuning.ScreenWidth, tuning.ScreenHeight),
	}
	if cur, ok := g.scenes[sess.Scene]; ok {
		cur.OnEnter()
	}
	return g
}

// NewDefault creates a Game with every built-in scene registered.
// opener handles the menu's website entry and may be nil.
func NewDefault(sess *session.Session, opener menu.LinkOpener) *Game {
	return New(sess, map[state.GameState]scene.Scene{
		state.StateLoading:  loading.New(sess, tuning.LoadingDuration),
		state.StateMenu:     menu.New(sess, opener),
		state.StatePlaying:  playing.New(sess),
		state.StatePaused:   paused.New(sess),
		state.StateGameOver: gameover.New(sess),
	})
}

// Session returns the session the game runs on
func (g *Game) Session() *session.Session {
	return g.sess
}

// State returns the current scene state
func (g *Game) State() state.GameState {
	return g.sess.Scene
}

// Update advances one frame: the background always moves, then the current
// scene runs and any requested transition is applied.
// scene.ErrQuit and other scene errors are returned unchanged.
func (g *Game) Update(dt float64, in input.Source) error {
	g.background.Update(g.sess, dt)

	cur, ok := g.scenes[g.sess.Scene]
	if !ok {
		return fmt.Errorf("game: no scene registered for %s", g.sess.Scene)
	}

	next, err := cur.Update(dt, in)
	if err != nil {
		return err
	}
	if next == g.sess.Scene {
		return nil
	}
	return g.transition(cur, next)
}

func (g *Game) transition(cur scene.Scene, next state.GameState) error {
	if !g.sess.Scene.CanTransition(next) {
		return fmt.Errorf("game: illegal transition %s -> %s", g.sess.Scene, next)
	}
	target, ok := g.scenes[next]
	if !ok {
		return fmt.Errorf("game: no scene registered for %s", next)
	}

	log.Printf("[game] %s -> %s", g.sess.Scene, next)
	cur.OnExit()
	g.sess.Scene = next
	target.OnEnter()
	return nil
}

// Draw renders one frame: clear, background, then the current scene.
func (g *Game) Draw(sink render.Sink) {
	sink.BeginFrame(view.ClearColor)
	view.Background(sink, g.sess)
	if cur, ok := g.scenes[g.sess.Scene]; ok {
		cur.Draw(sink)
	}
	sink.EndFrame()
}
