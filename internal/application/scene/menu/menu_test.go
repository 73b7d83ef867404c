package menu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spaceshooter/internal/application/input"
	"github.com/younwookim/spaceshooter/internal/application/render"
	"github.com/younwookim/spaceshooter/internal/application/scene"
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/application/state"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
)

// mockOpener records opened links
type mockOpener struct {
	urls []string
}

func (m *mockOpener) Open(url string) {
	m.urls = append(m.urls, url)
}

func createTestMenu() (*Menu, *session.Session, *mockOpener) {
	sess := session.New(3, 48, 48)
	sess.Scene = state.StateMenu
	opener := &mockOpener{}
	return New(sess, opener), sess, opener
}

func TestMenu_NavigationWraps(t *testing.T) {
	tests := []struct {
		name    string
		presses []input.Action
		want    Item
	}{
		{name: "down once", presses: []input.Action{input.ActionMenuDown}, want: ItemWebsite},
		{name: "up from top wraps to bottom", presses: []input.Action{input.ActionMenuUp}, want: ItemQuit},
		{name: "down past bottom wraps to top", presses: []input.Action{input.ActionMenuDown, input.ActionMenuDown, input.ActionMenuDown}, want: ItemStart},
		{name: "down then up", presses: []input.Action{input.ActionMenuDown, input.ActionMenuUp}, want: ItemStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := createTestMenu()
			for _, a := range tt.presses {
				next, err := m.Update(1.0/60, input.Pressed(a))
				require.NoError(t, err)
				require.Equal(t, state.StateMenu, next)
			}
			assert.Equal(t, tt.want, m.Selected())
		})
	}
}

func TestMenu_StartResetsSession(t *testing.T) {
	m, sess, _ := createTestMenu()
	// Leftovers from an abandoned game
	sess.Lives = 1
	sess.Score = 70
	sess.HighScore = 90
	sess.Obstacles.Spawn(entity.NewObstacle(entity.Vec2{X: 10, Y: 10}, entity.Vec2{}, 20))
	sess.Projectiles.Spawn(entity.NewProjectile(entity.Vec2{X: 10, Y: 10}))
	sess.Particles.Spawn(entity.Particle{Life: 1, MaxLife: 1, Active: true})

	next, err := m.Update(1.0/60, input.Pressed(input.ActionConfirm))

	require.NoError(t, err)
	assert.Equal(t, state.StatePlaying, next)
	assert.Equal(t, 3, sess.Lives)
	assert.Zero(t, sess.Score)
	assert.Zero(t, sess.Projectiles.Len())
	assert.Zero(t, sess.Obstacles.Len())
	assert.Zero(t, sess.Particles.Len())
	assert.Equal(t, 90, sess.HighScore, "high score survives a reset")
	assert.Equal(t, tuning.SpawnCooldownStart, sess.SpawnCooldown)
}

func TestMenu_WebsiteOpensLink(t *testing.T) {
	m, _, opener := createTestMenu()
	m.Update(1.0/60, input.Pressed(input.ActionMenuDown))

	next, err := m.Update(1.0/60, input.Pressed(input.ActionConfirm))

	require.NoError(t, err)
	assert.Equal(t, state.StateMenu, next)
	assert.Equal(t, []string{"https://www.raylib.com/"}, opener.urls)
}

func TestMenu_WebsiteWithoutOpener(t *testing.T) {
	sess := session.New(3, 48, 48)
	m := New(sess, nil)
	sess.MenuIndex = int(ItemWebsite)

	next, err := m.Update(1.0/60, input.Pressed(input.ActionConfirm))

	assert.NoError(t, err)
	assert.Equal(t, state.StateMenu, next)
}

func TestMenu_QuitReturnsErrQuit(t *testing.T) {
	m, _, _ := createTestMenu()
	m.Update(1.0/60, input.Pressed(input.ActionMenuUp))

	_, err := m.Update(1.0/60, input.Pressed(input.ActionConfirm))

	assert.True(t, errors.Is(err, scene.ErrQuit))
}

func TestMenu_HeldConfirmIsNotAPress(t *testing.T) {
	m, _, _ := createTestMenu()

	next, err := m.Update(1.0/60, input.Held(input.ActionConfirm))

	assert.NoError(t, err)
	assert.Equal(t, state.StateMenu, next)
}

func TestMenu_Draw(t *testing.T) {
	m, _, _ := createTestMenu()
	r := render.NewRecorder()

	m.Draw(r)

	texts := r.Texts()
	assert.Contains(t, texts, "Start Game")
	assert.Contains(t, texts, "Raylib Website")
	assert.Contains(t, texts, "Quit")
}
