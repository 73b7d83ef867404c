package replay

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/spaceshooter/internal/application/input"
)

// Recorder handles input recording
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a new recorder for a run with the given seed and
// ship size.
func NewRecorder(seed int64, shipW, shipH float64) *Recorder {
	return &Recorder{
		data: ReplayData{
			ID:        uuid.NewString(),
			Version:   FormatVersion,
			Seed:      seed,
			ShipW:     shipW,
			ShipH:     shipH,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's dt and input
func (r *Recorder) RecordFrame(dt float64, in input.Source) {
	if !r.recording {
		return
	}

	s := input.Capture(in)
	r.data.Frames = append(r.data.Frames, FrameInput{
		F:  len(r.data.Frames),
		DT: dt,
		H:  s.Held,
		P:  s.Pressed,
	})
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string, compress bool) error {
	return SaveReplay(filename, &r.data, compress)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// ID returns the replay's unique id
func (r *Recorder) ID() string {
	return r.data.ID
}

// Data returns the recorded data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename in dir based on the current time
func GenerateFilename(dir string, compress bool) string {
	name := fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
	if compress {
		name += CompressedExt
	}
	return filepath.Join(dir, name)
}
