package ebitenio

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/spaceshooter/internal/application/game"
	"github.com/younwookim/spaceshooter/internal/application/input"
	"github.com/younwookim/spaceshooter/internal/application/replay"
	"github.com/younwookim/spaceshooter/internal/application/scene"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
	"github.com/younwookim/spaceshooter/internal/infrastructure/clock"
)

// Runner implements ebiten.Game on top of the scene director
type Runner struct {
	game     *game.Game
	sink     *Sink
	keyboard input.Source
	clock    *clock.Clock

	// Playback replaces both the clock and the keyboard
	replayer *replay.Replayer
	recorder *replay.Recorder

	closing bool
}

var _ ebiten.Game = (*Runner)(nil)

// NewRunner creates a runner driven by the wall clock and the keyboard
func NewRunner(g *game.Game, sink *Sink, clk *clock.Clock) *Runner {
	return &Runner{
		game:     g,
		sink:     sink,
		keyboard: NewKeyboard(DefaultBindings()),
		clock:    clk,
	}
}

// SetReplayer plays recorded frames instead of live input
func (r *Runner) SetReplayer(rep *replay.Replayer) {
	r.replayer = rep
}

// SetRecorder records every frame's dt and input
func (r *Runner) SetRecorder(rec *replay.Recorder) {
	r.recorder = rec
}

// Update implements ebiten.Game.
// A close request lets the current frame finish and render; the loop ends
// on the next update.
func (r *Runner) Update() error {
	if r.closing {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		log.Printf("[game] window close requested")
		r.closing = true
	}
	return r.frame()
}

// frame advances the director by one frame from the active dt and input
func (r *Runner) frame() error {
	var dt float64
	in := r.keyboard

	if r.replayer != nil {
		d, ok := r.replayer.Next()
		if !ok {
			log.Printf("[replay] playback finished after %d frames", r.replayer.TotalFrames())
			return ebiten.Termination
		}
		dt, in = d, r.replayer
	} else {
		dt = r.clock.Tick()
	}

	if r.recorder != nil && r.recorder.IsRecording() {
		r.recorder.RecordFrame(dt, in)
	}

	if err := r.game.Update(dt, in); err != nil {
		if errors.Is(err, scene.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game
func (r *Runner) Draw(screen *ebiten.Image) {
	r.sink.SetTarget(screen)
	r.game.Draw(r.sink)
}

// Layout implements ebiten.Game. The playfield is fixed; ebiten scales it
// to the window.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return tuning.ScreenWidth, tuning.ScreenHeight
}
