// Package loading provides the startup splash scene.
package loading

import (
	"github.com/younwookim/spaceshooter/internal/application/input"
	"github.com/younwookim/spaceshooter/internal/application/render"
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/application/state"
	"github.com/younwookim/spaceshooter/internal/application/view"
)

// Loading shows a progress bar for a fixed duration, then hands over to
// the menu. It ignores input.
type Loading struct {
	sess     *session.Session
	duration float64
}

// New creates a loading scene that lasts duration seconds
func New(sess *session.Session, duration float64) *Loading {
	return &Loading{sess: sess, duration: duration}
}

// Update implements scene.Scene
func (l *Loading) Update(dt float64, _ input.Source) (state.GameState, error) {
	l.sess.LoadTimer += dt
	if l.sess.LoadTimer >= l.duration {
		return state.StateMenu, nil
	}
	return state.StateLoading, nil
}

// Progress returns the elapsed share of the loading time in [0, 1]
func (l *Loading) Progress() float64 {
	if l.duration <= 0 {
		return 1
	}
	return min(1, max(0, l.sess.LoadTimer/l.duration))
}

// Draw implements scene.Scene
func (l *Loading) Draw(sink render.Sink) {
	view.Loading(sink, l.Progress())
}

// OnEnter implements scene.Scene
func (l *Loading) OnEnter() {
	l.sess.LoadTimer = 0
}

// OnExit implements scene.Scene
func (l *Loading) OnExit() {}
