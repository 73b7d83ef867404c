// Package terminal runs the game inside a terminal with tcell.
//
// Draw primitives are rasterised onto the cell grid: every cell stands for
// a block of playfield pixels and takes the colour of whatever covers its
// center. Textures are never available, so the shape fallbacks are used.
package terminal

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/spaceshooter/internal/application/render"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
)

// Sink renders onto a tcell screen
type Sink struct {
	screen     tcell.Screen
	cols, rows int
	sx, sy     float64 // cells per pixel
}

var _ render.Sink = (*Sink)(nil)

// NewSink creates a sink over an initialised screen
func NewSink(screen tcell.Screen) *Sink {
	s := &Sink{screen: screen}
	s.resize()
	return s
}

func (s *Sink) resize() {
	s.cols, s.rows = s.screen.Size()
	s.sx = float64(s.cols) / tuning.ScreenWidth
	s.sy = float64(s.rows) / tuning.ScreenHeight
}

// HasTexture implements render.TextureSet
func (s *Sink) HasTexture(render.TextureID) bool { return false }

// TextureSize implements render.TextureSet
func (s *Sink) TextureSize(render.TextureID) (float64, float64) { return 0, 0 }

// BeginFrame implements render.Sink. The grid follows the current
// terminal size.
func (s *Sink) BeginFrame(clear color.RGBA) {
	s.resize()
	s.screen.Fill(' ', tcell.StyleDefault.Background(toColor(clear)))
}

// EndFrame implements render.Sink
func (s *Sink) EndFrame() {
	s.screen.Show()
}

// FillRect implements render.Sink. Every cell the rect touches is filled.
func (s *Sink) FillRect(r entity.Rect, c color.RGBA) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0 := int(math.Floor(r.X * s.sx))
	y0 := int(math.Floor(r.Y * s.sy))
	x1 := int(math.Ceil((r.X+r.W)*s.sx)) - 1
	y1 := int(math.Ceil((r.Y+r.H)*s.sy)) - 1
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			s.paint(cx, cy, c)
		}
	}
}

// FillCircle implements render.Sink. A circle smaller than a cell still
// marks the cell holding its center.
func (s *Sink) FillCircle(center entity.Vec2, radius float64, c color.RGBA) {
	x0 := int(math.Floor((center.X - radius) * s.sx))
	y0 := int(math.Floor((center.Y - radius) * s.sy))
	x1 := int(math.Ceil((center.X + radius) * s.sx))
	y1 := int(math.Ceil((center.Y + radius) * s.sy))

	painted := false
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			p := s.cellCenter(cx, cy)
			dx, dy := p.X-center.X, p.Y-center.Y
			if dx*dx+dy*dy <= radius*radius {
				painted = s.paint(cx, cy, c) || painted
			}
		}
	}
	if !painted {
		s.paintPoint(center, c)
	}
}

// FillTriangle implements render.Sink
func (s *Sink) FillTriangle(a, b, c entity.Vec2, col color.RGBA) {
	x0 := int(math.Floor(math.Min(a.X, math.Min(b.X, c.X)) * s.sx))
	y0 := int(math.Floor(math.Min(a.Y, math.Min(b.Y, c.Y)) * s.sy))
	x1 := int(math.Ceil(math.Max(a.X, math.Max(b.X, c.X)) * s.sx))
	y1 := int(math.Ceil(math.Max(a.Y, math.Max(b.Y, c.Y)) * s.sy))

	painted := false
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if inTriangle(s.cellCenter(cx, cy), a, b, c) {
				painted = s.paint(cx, cy, col) || painted
			}
		}
	}
	if !painted {
		s.paintPoint(entity.Vec2{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}, col)
	}
}

// DrawTexture implements render.Sink. Terminals have no textures.
func (s *Sink) DrawTexture(render.TextureID, entity.Rect, entity.Rect, color.RGBA) {}

// DrawText implements render.Sink. The line is placed on the row holding
// its vertical middle and keeps the background already drawn there.
func (s *Sink) DrawText(str string, x, y, size float64, c color.RGBA) {
	cy := int((y + size/2) * s.sy)
	if cy < 0 || cy >= s.rows {
		return
	}
	cx := int(math.Floor(x * s.sx))
	fg := toColor(c)
	for _, r := range str {
		if cx >= 0 && cx < s.cols {
			_, _, style, _ := s.screen.GetContent(cx, cy)
			_, bg, _ := style.Decompose()
			s.screen.SetContent(cx, cy, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
		cx++
	}
}

// MeasureText implements render.Sink. Every rune takes one cell.
func (s *Sink) MeasureText(str string, size float64) float64 {
	n := float64(utf8.RuneCountInString(str))
	if s.cols == 0 {
		return n * size * 0.5
	}
	return n * tuning.ScreenWidth / float64(s.cols)
}

func (s *Sink) cellCenter(cx, cy int) entity.Vec2 {
	return entity.Vec2{X: (float64(cx) + 0.5) / s.sx, Y: (float64(cy) + 0.5) / s.sy}
}

func (s *Sink) paintPoint(p entity.Vec2, c color.RGBA) {
	s.paint(int(math.Floor(p.X*s.sx)), int(math.Floor(p.Y*s.sy)), c)
}

// paint fills one cell, reporting false when it lies off screen
func (s *Sink) paint(cx, cy int, c color.RGBA) bool {
	if cx < 0 || cy < 0 || cx >= s.cols || cy >= s.rows {
		return false
	}
	s.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(toColor(c)))
	return true
}

// inTriangle reports whether p lies inside or on abc, either winding
func inTriangle(p, a, b, c entity.Vec2) bool {
	d1 := edge(p, a, b)
	d2 := edge(p, b, c)
	d3 := edge(p, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edge(p, a, b entity.Vec2) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

// toColor maps a colour to a terminal RGB colour, fading it towards black
// by its alpha
func toColor(c color.RGBA) tcell.Color {
	a := int32(c.A)
	return tcell.NewRGBColor(int32(c.R)*a/255, int32(c.G)*a/255, int32(c.B)*a/255)
}
