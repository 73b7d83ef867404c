package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spaceshooter/internal/application/input"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
)

func createTestInputSystem() *InputSystem {
	return NewInputSystem(tuning.ScreenWidth, tuning.ScreenHeight, tuning.PlayfieldInset)
}

func TestNewInputSystem(t *testing.T) {
	sys := createTestInputSystem()

	require.NotNil(t, sys)
	assert.Equal(t, 960.0, sys.width)
	assert.Equal(t, 540.0, sys.height)
	assert.Equal(t, 16.0, sys.inset)
}

func TestInputSystem_Direction(t *testing.T) {
	sys := createTestInputSystem()
	d := 1 / math.Sqrt2

	tests := []struct {
		name string
		held []input.Action
		want entity.Vec2
	}{
		{"none", nil, entity.Vec2{}},
		{"left", []input.Action{input.ActionMoveLeft}, entity.Vec2{X: -1}},
		{"right", []input.Action{input.ActionMoveRight}, entity.Vec2{X: 1}},
		{"up", []input.Action{input.ActionMoveUp}, entity.Vec2{Y: -1}},
		{"down", []input.Action{input.ActionMoveDown}, entity.Vec2{Y: 1}},
		{"up right", []input.Action{input.ActionMoveUp, input.ActionMoveRight}, entity.Vec2{X: d, Y: -d}},
		{"opposites cancel", []input.Action{input.ActionMoveLeft, input.ActionMoveRight}, entity.Vec2{}},
		{"all four", []input.Action{input.ActionMoveLeft, input.ActionMoveRight, input.ActionMoveUp, input.ActionMoveDown}, entity.Vec2{}},
		{"fire is not movement", []input.Action{input.ActionFire}, entity.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sys.Direction(input.Held(tt.held...))
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestInputSystem_UpdateShip_LinearInDT(t *testing.T) {
	sys := createTestInputSystem()
	in := input.Held(input.ActionMoveLeft, input.ActionMoveUp)

	for _, dt := range []float64{0.004, 1.0 / 60, 0.03, 0.1} {
		a := entity.NewShip(48, 48)
		b := entity.NewShip(48, 48)
		start := a.Pos

		sys.UpdateShip(&a, in, dt)
		sys.UpdateShip(&b, in, 3*dt)

		assert.InDelta(t, 3*(a.Pos.X-start.X), b.Pos.X-start.X, 1e-9, "dt=%v", dt)
		assert.InDelta(t, 3*(a.Pos.Y-start.Y), b.Pos.Y-start.Y, 1e-9, "dt=%v", dt)
	}
}

func TestInputSystem_UpdateShip_SameDistanceRegardlessOfFrameSplit(t *testing.T) {
	sys := createTestInputSystem()
	in := input.Held(input.ActionMoveRight)

	coarse := entity.NewShip(48, 48)
	fine := entity.NewShip(48, 48)

	sys.UpdateShip(&coarse, in, 0.2)
	for i := 0; i < 20; i++ {
		sys.UpdateShip(&fine, in, 0.01)
	}

	assert.InDelta(t, coarse.Pos.X, fine.Pos.X, 1e-9)
}

func TestInputSystem_UpdateShip_Clamps(t *testing.T) {
	sys := createTestInputSystem()
	ship := entity.NewShip(48, 48)

	// Long enough to cross the whole playfield
	sys.UpdateShip(&ship, input.Held(input.ActionMoveLeft, input.ActionMoveUp), 10)

	assert.Equal(t, 16.0+24, ship.Pos.X)
	assert.Equal(t, 16.0+24, ship.Pos.Y)

	sys.UpdateShip(&ship, input.Held(input.ActionMoveRight, input.ActionMoveDown), 10)

	assert.Equal(t, 960.0-16-24, ship.Pos.X)
	assert.Equal(t, 540.0-16-24, ship.Pos.Y)
}
