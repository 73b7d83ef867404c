// Package ebitenio runs the game in a desktop window with ebiten.
//
// It provides the render.Sink over an *ebiten.Image, keyboard input as an
// input.Source, optional textures, and the ebiten.Game that drives the
// director.
package ebitenio

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/spaceshooter/internal/application/render"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
)

// Sink draws render primitives onto the current ebiten screen
type Sink struct {
	*Textures

	screen     *ebiten.Image
	fontSource *text.GoTextFaceSource
	faces      map[float64]*text.GoTextFace

	// 1x1 white source for filled triangles
	whiteSubImage *ebiten.Image
}

var _ render.Sink = (*Sink)(nil)

// NewSink creates a sink with the bundled Go Regular font
func NewSink(textures *Textures) (*Sink, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}
	if textures == nil {
		textures = NewTextures()
	}

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &Sink{
		Textures:      textures,
		fontSource:    source,
		faces:         make(map[float64]*text.GoTextFace),
		whiteSubImage: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}, nil
}

// SetTarget sets the image the next frame is drawn onto
func (s *Sink) SetTarget(screen *ebiten.Image) {
	s.screen = screen
}

// BeginFrame implements render.Sink
func (s *Sink) BeginFrame(clear color.RGBA) {
	s.screen.Fill(clear)
}

// EndFrame implements render.Sink. ebiten presents the screen itself.
func (s *Sink) EndFrame() {}

// FillRect implements render.Sink
func (s *Sink) FillRect(r entity.Rect, c color.RGBA) {
	vector.DrawFilledRect(s.screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// FillCircle implements render.Sink
func (s *Sink) FillCircle(center entity.Vec2, radius float64, c color.RGBA) {
	vector.DrawFilledCircle(s.screen, float32(center.X), float32(center.Y), float32(radius), c, true)
}

// FillTriangle implements render.Sink
func (s *Sink) FillTriangle(a, b, c entity.Vec2, col color.RGBA) {
	var path vector.Path
	path.MoveTo(float32(a.X), float32(a.Y))
	path.LineTo(float32(b.X), float32(b.Y))
	path.LineTo(float32(c.X), float32(c.Y))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, bl, al := premultiplied(col)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = bl
		vs[i].ColorA = al
	}
	s.screen.DrawTriangles(vs, is, s.whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// DrawTexture implements render.Sink. Unknown textures are ignored.
func (s *Sink) DrawTexture(id render.TextureID, src, dst entity.Rect, tint color.RGBA) {
	img, ok := s.images[id]
	if !ok || src.W <= 0 || src.H <= 0 {
		return
	}
	sub := img.SubImage(image.Rect(int(src.X), int(src.Y), int(src.X+src.W), int(src.Y+src.H))).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/src.W, dst.H/src.H)
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale.ScaleWithColor(tint)
	op.Filter = ebiten.FilterLinear
	s.screen.DrawImage(sub, op)
}

// DrawText implements render.Sink. (x, y) is the top-left of the line.
func (s *Sink) DrawText(str string, x, y, size float64, c color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.screen, str, s.face(size), op)
}

// MeasureText implements render.Sink
func (s *Sink) MeasureText(str string, size float64) float64 {
	w, _ := text.Measure(str, s.face(size), 0)
	return w
}

func (s *Sink) face(size float64) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: s.fontSource, Size: size}
	s.faces[size] = f
	return f
}

// premultiplied converts a straight-alpha color to vertex color scales
func premultiplied(c color.RGBA) (r, g, b, a float32) {
	a = float32(c.A) / 255
	return float32(c.R) / 255 * a, float32(c.G) / 255 * a, float32(c.B) / 255 * a, a
}
