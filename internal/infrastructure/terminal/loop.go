package terminal

import (
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/spaceshooter/internal/application/game"
	"github.com/younwookim/spaceshooter/internal/application/input"
	"github.com/younwookim/spaceshooter/internal/application/replay"
	"github.com/younwookim/spaceshooter/internal/application/scene"
	"github.com/younwookim/spaceshooter/internal/infrastructure/clock"
)

// FrameDuration is the tick period of the terminal loop (~60 FPS)
const FrameDuration = 16 * time.Millisecond

// Loop drives the director from terminal events and a frame ticker
type Loop struct {
	screen tcell.Screen
	game   *game.Game
	sink   *Sink
	input  *Input
	clock  *clock.Clock
	now    func() time.Time

	replayer *replay.Replayer
	recorder *replay.Recorder
}

// NewLoop creates a loop over an initialised screen
func NewLoop(screen tcell.Screen, g *game.Game, clk *clock.Clock) *Loop {
	return &Loop{
		screen: screen,
		game:   g,
		sink:   NewSink(screen),
		input:  NewInput(DefaultHoldWindow),
		clock:  clk,
		now:    time.Now,
	}
}

// SetReplayer plays recorded frames instead of live input
func (l *Loop) SetReplayer(rep *replay.Replayer) {
	l.replayer = rep
}

// SetRecorder records every frame's dt and input
func (l *Loop) SetRecorder(rec *replay.Recorder) {
	l.recorder = rec
}

// Run processes events and frames until the game quits, the replay ends
// or Ctrl-C is pressed. The caller owns the screen and finalises it.
func (l *Loop) Run() error {
	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				l.input.HandleKey(ev, l.now())
				if l.input.QuitRequested() {
					log.Printf("[game] interrupted")
					return nil
				}
			case *tcell.EventResize:
				l.screen.Sync()
			}

		case <-ticker.C:
			finished, err := l.step()
			if err != nil {
				return err
			}
			// The last frame still renders before the loop ends
			l.game.Draw(l.sink)
			if finished {
				return nil
			}
		}
	}
}

// step advances the director by one frame. It reports true once the game
// asked to quit or the replay ran out.
func (l *Loop) step() (bool, error) {
	var dt float64
	var in input.Source

	if l.replayer != nil {
		d, ok := l.replayer.Next()
		if !ok {
			log.Printf("[replay] playback finished after %d frames", l.replayer.TotalFrames())
			return true, nil
		}
		dt, in = d, l.replayer
	} else {
		dt = l.clock.Tick()
		in = l.input.Snapshot(l.now())
	}

	if l.recorder != nil && l.recorder.IsRecording() {
		l.recorder.RecordFrame(dt, in)
	}

	if err := l.game.Update(dt, in); err != nil {
		if errors.Is(err, scene.ErrQuit) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}
