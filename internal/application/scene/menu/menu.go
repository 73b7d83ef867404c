// Package menu provides the main menu scene.
package menu

import (
	"log"

	"github.com/younwookim/spaceshooter/internal/application/input"
	"github.com/younwookim/spaceshooter/internal/application/render"
	"github.com/younwookim/spaceshooter/internal/application/scene"
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/application/state"
	"github.com/younwookim/spaceshooter/internal/application/view"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
)

// Item is a menu entry
type Item int

const (
	ItemStart Item = iota
	ItemWebsite
	ItemQuit

	itemCount
)

// String returns the button label
func (i Item) String() string {
	switch i {
	case ItemStart:
		return "Start Game"
	case ItemWebsite:
		return "Raylib Website"
	case ItemQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// LinkOpener opens an external link. It must not block the frame.
type LinkOpener interface {
	Open(url string)
}

// Menu lets the player start a game, visit the website or quit
type Menu struct {
	sess   *session.Session
	opener LinkOpener
	labels []string
}

// New creates the menu scene. opener may be nil, in which case the website
// entry only logs.
func New(sess *session.Session, opener LinkOpener) *Menu {
	labels := make([]string, 0, itemCount)
	for i := Item(0); i < itemCount; i++ {
		labels = append(labels, i.String())
	}
	return &Menu{sess: sess, opener: opener, labels: labels}
}

// Selected returns the highlighted item
func (m *Menu) Selected() Item {
	return Item(m.sess.MenuIndex)
}

// Update implements scene.Scene
func (m *Menu) Update(_ float64, in input.Source) (state.GameState, error) {
	n := int(itemCount)
	if in.JustPressed(input.ActionMenuUp) {
		m.sess.MenuIndex = (m.sess.MenuIndex + n - 1) % n
	}
	if in.JustPressed(input.ActionMenuDown) {
		m.sess.MenuIndex = (m.sess.MenuIndex + 1) % n
	}
	if !in.JustPressed(input.ActionConfirm) {
		return state.StateMenu, nil
	}

	switch m.Selected() {
	case ItemStart:
		m.sess.Reset()
		return state.StatePlaying, nil
	case ItemWebsite:
		if m.opener != nil {
			m.opener.Open(tuning.WebsiteURL)
		} else {
			log.Printf("[menu] no link opener, skipping %s", tuning.WebsiteURL)
		}
	case ItemQuit:
		return state.StateMenu, scene.ErrQuit
	}
	return state.StateMenu, nil
}

// Draw implements scene.Scene
func (m *Menu) Draw(sink render.Sink) {
	view.Menu(sink, m.labels, m.sess.MenuIndex)
}

// OnEnter implements scene.Scene
func (m *Menu) OnEnter() {}

// OnExit implements scene.Scene
func (m *Menu) OnExit() {}
