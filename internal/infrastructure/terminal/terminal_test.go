package terminal

import (
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spaceshooter/internal/application/game"
	"github.com/younwookim/spaceshooter/internal/application/input"
	"github.com/younwookim/spaceshooter/internal/application/render"
	"github.com/younwookim/spaceshooter/internal/application/replay"
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/application/state"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/infrastructure/clock"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

// createTestScreen returns a 96x54 screen: one cell per 10x10 pixels
func createTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(96, 54)
	t.Cleanup(screen.Fini)
	return screen
}

func cellBackground(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestSink_FillRect(t *testing.T) {
	screen := createTestScreen(t)
	sink := NewSink(screen)
	sink.BeginFrame(black)

	sink.FillRect(entity.Rect{X: 0, Y: 0, W: 20, H: 10}, red)
	sink.FillRect(entity.Rect{X: 15, Y: 25, W: 1, H: 1}, red)

	assert.Equal(t, toColor(red), cellBackground(screen, 0, 0))
	assert.Equal(t, toColor(red), cellBackground(screen, 1, 0))
	assert.Equal(t, toColor(black), cellBackground(screen, 2, 0))
	assert.Equal(t, toColor(black), cellBackground(screen, 0, 1))
	assert.Equal(t, toColor(red), cellBackground(screen, 1, 2), "a rect smaller than a cell still covers it")
}

func TestSink_FillRect_ClipsOffscreen(t *testing.T) {
	screen := createTestScreen(t)
	sink := NewSink(screen)
	sink.BeginFrame(black)

	assert.NotPanics(t, func() {
		sink.FillRect(entity.Rect{X: -100, Y: -100, W: 2000, H: 2000}, red)
	})
	assert.Equal(t, toColor(red), cellBackground(screen, 95, 53))
}

func TestSink_FillCircle(t *testing.T) {
	screen := createTestScreen(t)
	sink := NewSink(screen)
	sink.BeginFrame(black)

	sink.FillCircle(entity.Vec2{X: 50, Y: 50}, 12, red)

	assert.Equal(t, toColor(red), cellBackground(screen, 4, 4))
	assert.Equal(t, toColor(red), cellBackground(screen, 5, 5))
	assert.Equal(t, toColor(black), cellBackground(screen, 2, 2))
}

func TestSink_FillCircle_SubCell(t *testing.T) {
	screen := createTestScreen(t)
	sink := NewSink(screen)
	sink.BeginFrame(black)

	sink.FillCircle(entity.Vec2{X: 33, Y: 33}, 2, red)

	assert.Equal(t, toColor(red), cellBackground(screen, 3, 3))
}

func TestSink_FillTriangle(t *testing.T) {
	screen := createTestScreen(t)
	sink := NewSink(screen)
	sink.BeginFrame(black)

	sink.FillTriangle(entity.Vec2{X: 50, Y: 0}, entity.Vec2{X: 0, Y: 100}, entity.Vec2{X: 100, Y: 100}, red)

	assert.Equal(t, toColor(red), cellBackground(screen, 4, 5))
	assert.Equal(t, toColor(red), cellBackground(screen, 1, 9))
	assert.Equal(t, toColor(black), cellBackground(screen, 0, 0))
	assert.Equal(t, toColor(black), cellBackground(screen, 9, 0))
}

func TestSink_DrawText(t *testing.T) {
	screen := createTestScreen(t)
	sink := NewSink(screen)
	sink.BeginFrame(black)
	sink.FillRect(entity.Rect{X: 0, Y: 0, W: 100, H: 30}, red)

	sink.DrawText("Hi", 20, 0, 20, white)

	r, _, style, _ := screen.GetContent(2, 1)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, 'H', r)
	assert.Equal(t, toColor(white), fg)
	assert.Equal(t, toColor(red), bg, "text keeps the background below it")

	r, _, _, _ = screen.GetContent(3, 1)
	assert.Equal(t, 'i', r)
}

func TestSink_MeasureText(t *testing.T) {
	screen := createTestScreen(t)
	sink := NewSink(screen)

	assert.InDelta(t, 30.0, sink.MeasureText("abc", 24), 1e-9)
	assert.InDelta(t, 20.0, sink.MeasureText("é!", 40), 1e-9)
}

func TestSink_NoTextures(t *testing.T) {
	sink := NewSink(createTestScreen(t))

	for _, id := range render.Textures() {
		assert.False(t, sink.HasTexture(id))
	}
	w, h := render.ShipSize(sink)
	assert.Equal(t, 48.0, w)
	assert.Equal(t, 48.0, h)
}

func TestToColor_Alpha(t *testing.T) {
	assert.Equal(t, tcell.NewRGBColor(128, 0, 0), toColor(color.RGBA{255, 0, 0, 128}))
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), toColor(color.RGBA{255, 255, 255, 0}))
}

func TestInput_HoldAndPress(t *testing.T) {
	t0 := time.Unix(1000, 0)
	in := NewInput(DefaultHoldWindow)

	in.handle(tcell.KeyUp, 0, t0)
	s := in.Snapshot(t0)
	assert.True(t, s.IsHeld(input.ActionMoveUp))
	assert.True(t, s.JustPressed(input.ActionMoveUp))
	assert.True(t, s.JustPressed(input.ActionMenuUp))
	assert.True(t, in.IsHeld(input.ActionMoveUp))

	s = in.Snapshot(t0.Add(100 * time.Millisecond))
	assert.True(t, s.IsHeld(input.ActionMoveUp))
	assert.False(t, s.JustPressed(input.ActionMoveUp))

	// auto-repeat keeps the key held without a new press
	in.handle(tcell.KeyUp, 0, t0.Add(200*time.Millisecond))
	s = in.Snapshot(t0.Add(250 * time.Millisecond))
	assert.True(t, s.IsHeld(input.ActionMoveUp))
	assert.False(t, s.JustPressed(input.ActionMoveUp))

	s = in.Snapshot(t0.Add(time.Second))
	assert.False(t, s.IsHeld(input.ActionMoveUp))
}

func TestActionsFor(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		r        rune
		expected []input.Action
	}{
		{"arrow left", tcell.KeyLeft, 0, []input.Action{input.ActionMoveLeft}},
		{"d", tcell.KeyRune, 'd', []input.Action{input.ActionMoveRight}},
		{"S", tcell.KeyRune, 'S', []input.Action{input.ActionMoveDown, input.ActionMenuDown}},
		{"space", tcell.KeyRune, ' ', []input.Action{input.ActionFire, input.ActionConfirm}},
		{"p", tcell.KeyRune, 'p', []input.Action{input.ActionPause}},
		{"enter", tcell.KeyEnter, 0, []input.Action{input.ActionConfirm, input.ActionLeaveRun}},
		{"escape", tcell.KeyEscape, 0, []input.Action{input.ActionCancel}},
		{"unbound", tcell.KeyRune, 'x', nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, actionsFor(tt.key, tt.r))
		})
	}
}

func TestInput_CtrlCQuits(t *testing.T) {
	in := NewInput(DefaultHoldWindow)
	assert.False(t, in.QuitRequested())

	in.handle(tcell.KeyCtrlC, 0, time.Now())

	assert.True(t, in.QuitRequested())
}

func TestLoop_StepReplay(t *testing.T) {
	sess := session.New(3, 48, 48)
	l := NewLoop(createTestScreen(t), game.NewDefault(sess, nil), clock.New(clock.DefaultMaxStep))
	l.SetReplayer(replay.NewReplayer(replay.CreateTestReplayData(20, 0.1)))

	for i := 0; i < 20; i++ {
		finished, err := l.step()
		require.NoError(t, err)
		require.False(t, finished)
	}
	assert.Equal(t, state.StateMenu, sess.Scene)

	finished, err := l.step()
	require.NoError(t, err)
	assert.True(t, finished)
}

func TestLoop_StepLiveInput(t *testing.T) {
	t0 := time.Unix(1000, 0)
	now := t0
	source := func() time.Time { return now }

	sess := session.New(3, 48, 48)
	sess.Scene = state.StateMenu
	l := NewLoop(createTestScreen(t), game.NewDefault(sess, nil), clock.NewWithSource(source, clock.DefaultMaxStep))
	l.now = source
	rec := replay.NewRecorder(3, 48, 48)
	l.SetRecorder(rec)

	l.input.handle(tcell.KeyEnter, 0, now)
	finished, err := l.step()
	require.NoError(t, err)
	assert.False(t, finished)

	assert.Equal(t, state.StatePlaying, sess.Scene)
	require.Equal(t, 1, rec.FrameCount())
	frame := rec.Data().Frames[0]
	assert.True(t, input.State{Held: frame.H, Pressed: frame.P}.JustPressed(input.ActionConfirm))

	now = now.Add(16 * time.Millisecond)
	_, err = l.step()
	require.NoError(t, err)
	assert.InDelta(t, 0.016, rec.Data().Frames[1].DT, 1e-9)
}

func TestLoop_DrawsFrame(t *testing.T) {
	screen := createTestScreen(t)
	sess := session.New(3, 48, 48)
	l := NewLoop(screen, game.NewDefault(sess, nil), clock.New(clock.DefaultMaxStep))

	l.game.Draw(l.sink)

	// Loading screen label sits in the middle of the grid
	found := false
	for x := 0; x < 96; x++ {
		if r, _, _, _ := screen.GetContent(x, 30); r == '%' {
			found = true
		}
	}
	assert.True(t, found, "progress percentage is drawn")
}
