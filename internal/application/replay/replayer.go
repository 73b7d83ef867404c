package replay

import (
	"github.com/younwookim/spaceshooter/internal/application/input"
)

// Replayer handles input playback from recorded data.
// After Next it answers input queries for the frame it advanced to.
type Replayer struct {
	data    ReplayData
	frame   int
	current input.State
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Next advances to the next recorded frame and returns its dt.
// Returns false once every frame has been played.
func (r *Replayer) Next() (float64, bool) {
	if r.frame >= len(r.data.Frames) {
		r.current = input.State{}
		return 0, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	r.current = input.State{Held: fi.H, Pressed: fi.P}
	return fi.DT, true
}

// IsHeld implements input.Source
func (r *Replayer) IsHeld(a input.Action) bool {
	return r.current.IsHeld(a)
}

// JustPressed implements input.Source
func (r *Replayer) JustPressed(a input.Action) bool {
	return r.current.JustPressed(a)
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// ShipSize returns the ship size the run was recorded with
func (r *Replayer) ShipSize() (float64, float64) {
	return r.data.ShipW, r.data.ShipH
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.current = input.State{}
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int, dt float64) ReplayData {
	data := ReplayData{
		ID:        "test",
		Version:   FormatVersion,
		Seed:      12345,
		ShipW:     48,
		ShipH:     48,
		StartTime: "2024-01-01T00:00:00Z",
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i, DT: dt}
	}

	return data
}
