package gameover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spaceshooter/internal/application/input"
	"github.com/younwookim/spaceshooter/internal/application/render"
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/application/state"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
)

func createFinishedSession() *session.Session {
	sess := session.New(9, 48, 48)
	sess.Scene = state.StateGameOver
	sess.Lives = 0
	sess.Score = 60
	sess.FinishRun()
	return sess
}

func TestGameOver_ConfirmRestarts(t *testing.T) {
	sess := createFinishedSession()
	g := New(sess)

	next, err := g.Update(1.0/60, input.Pressed(input.ActionConfirm))

	require.NoError(t, err)
	assert.Equal(t, state.StatePlaying, next)
	assert.Equal(t, tuning.InitialLives, sess.Lives)
	assert.Zero(t, sess.Score)
	assert.Equal(t, 60, sess.HighScore)
}

func TestGameOver_CancelReturnsToMenu(t *testing.T) {
	sess := createFinishedSession()
	g := New(sess)

	next, err := g.Update(1.0/60, input.Pressed(input.ActionCancel))

	require.NoError(t, err)
	assert.Equal(t, state.StateMenu, next)
	assert.Equal(t, 60, sess.Score, "score stays visible until a new game")
}

func TestGameOver_Waits(t *testing.T) {
	g := New(createFinishedSession())

	next, err := g.Update(1.0/60, input.Held(input.ActionFire))

	require.NoError(t, err)
	assert.Equal(t, state.StateGameOver, next)
}

func TestGameOver_Draw(t *testing.T) {
	g := New(createFinishedSession())
	r := render.NewRecorder()

	g.Draw(r)

	assert.Contains(t, r.Texts(), "Score: 60")
	assert.Contains(t, r.Texts(), "High Score: 60")
}
