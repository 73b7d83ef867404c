package render

import (
	"image/color"

	"github.com/younwookim/spaceshooter/internal/domain/entity"
)

// Op is the kind of a recorded draw command
type Op int

const (
	OpBegin Op = iota
	OpEnd
	OpRect
	OpCircle
	OpTriangle
	OpTexture
	OpText
)

// Command is one recorded draw call
type Command struct {
	Op      Op
	Rect    entity.Rect // OpRect, and the destination for OpTexture
	Points  [3]entity.Vec2
	Radius  float64
	Texture TextureID
	Text    string
	Size    float64
	Color   color.RGBA
}

// Recorder is a Sink that keeps the commands of the last frame in memory.
// It renders nothing. Headless runs and tests use it.
type Recorder struct {
	Available map[TextureID][2]float64 // texture -> size
	Commands  []Command
	Frames    int
}

// NewRecorder creates a recorder with no textures available
func NewRecorder() *Recorder {
	return &Recorder{Available: make(map[TextureID][2]float64)}
}

// HasTexture implements TextureSet
func (r *Recorder) HasTexture(id TextureID) bool {
	_, ok := r.Available[id]
	return ok
}

// TextureSize implements TextureSet
func (r *Recorder) TextureSize(id TextureID) (float64, float64) {
	sz := r.Available[id]
	return sz[0], sz[1]
}

// BeginFrame implements Sink. It drops the previous frame's commands.
func (r *Recorder) BeginFrame(clear color.RGBA) {
	r.Commands = r.Commands[:0]
	r.Commands = append(r.Commands, Command{Op: OpBegin, Color: clear})
}

// EndFrame implements Sink
func (r *Recorder) EndFrame() {
	r.Commands = append(r.Commands, Command{Op: OpEnd})
	r.Frames++
}

// FillRect implements Sink
func (r *Recorder) FillRect(rect entity.Rect, c color.RGBA) {
	r.Commands = append(r.Commands, Command{Op: OpRect, Rect: rect, Color: c})
}

// FillCircle implements Sink
func (r *Recorder) FillCircle(center entity.Vec2, radius float64, c color.RGBA) {
	r.Commands = append(r.Commands, Command{Op: OpCircle, Points: [3]entity.Vec2{center}, Radius: radius, Color: c})
}

// FillTriangle implements Sink
func (r *Recorder) FillTriangle(a, b, c entity.Vec2, col color.RGBA) {
	r.Commands = append(r.Commands, Command{Op: OpTriangle, Points: [3]entity.Vec2{a, b, c}, Color: col})
}

// DrawTexture implements Sink
func (r *Recorder) DrawTexture(id TextureID, _, dst entity.Rect, tint color.RGBA) {
	r.Commands = append(r.Commands, Command{Op: OpTexture, Texture: id, Rect: dst, Color: tint})
}

// DrawText implements Sink
func (r *Recorder) DrawText(s string, x, y, size float64, c color.RGBA) {
	r.Commands = append(r.Commands, Command{
		Op:     OpText,
		Text:   s,
		Points: [3]entity.Vec2{{X: x, Y: y}},
		Size:   size,
		Color:  c,
	})
}

// MeasureText implements Sink with a fixed-width approximation
func (r *Recorder) MeasureText(s string, size float64) float64 {
	return float64(len(s)) * size * 0.5
}

// Count returns how many commands of the given kind were recorded
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Texts returns every string drawn this frame in order
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Commands {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}
