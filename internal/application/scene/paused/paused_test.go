package paused

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spaceshooter/internal/application/input"
	"github.com/younwookim/spaceshooter/internal/application/render"
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/application/state"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
)

func TestPaused_Update(t *testing.T) {
	tests := []struct {
		name string
		in   input.State
		want state.GameState
	}{
		{name: "no input", in: input.State{}, want: state.StatePaused},
		{name: "pause resumes", in: input.Pressed(input.ActionPause), want: state.StatePlaying},
		{name: "cancel resumes", in: input.Pressed(input.ActionCancel), want: state.StatePlaying},
		{name: "leave run goes to menu", in: input.Pressed(input.ActionConfirm, input.ActionLeaveRun), want: state.StateMenu},
		{name: "confirm alone stays paused", in: input.Pressed(input.ActionConfirm), want: state.StatePaused},
		{name: "fire key stays paused", in: input.Pressed(input.ActionFire, input.ActionConfirm), want: state.StatePaused},
		{name: "held fire does nothing", in: input.Held(input.ActionFire), want: state.StatePaused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(session.New(1, 48, 48))
			next, err := p.Update(1.0/60, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestPaused_WorldIsFrozen(t *testing.T) {
	sess := session.New(1, 48, 48)
	sess.Obstacles.Spawn(entity.NewObstacle(entity.Vec2{X: 100, Y: 100}, entity.Vec2{Y: 200}, 20))
	ship := sess.Ship
	p := New(sess)

	for i := 0; i < 60; i++ {
		p.Update(1.0/60, input.Held(input.ActionMoveLeft, input.ActionFire))
	}

	assert.Equal(t, entity.Vec2{X: 100, Y: 100}, sess.Obstacles.At(0).Pos)
	assert.Equal(t, ship, sess.Ship)
	assert.Zero(t, sess.Projectiles.Len())
}

func TestPaused_Draw(t *testing.T) {
	p := New(session.New(1, 48, 48))
	r := render.NewRecorder()

	p.Draw(r)

	assert.Contains(t, r.Texts(), "PAUSED")
	assert.Contains(t, r.Texts(), "Score: 0")
	assert.Equal(t, 1, r.Count(render.OpTriangle))
}
