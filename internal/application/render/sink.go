// Package render defines the draw surface the game renders into.
//
// The core only emits primitives through Sink. Front-ends (ebiten window,
// terminal) implement it and own textures, fonts and the window.
package render

import (
	"image/color"

	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
)

// TextureID names an optional texture
type TextureID int

const (
	TextureShip TextureID = iota
	TextureObstacle
	TextureLogo
	TextureBackground
	TextureButton

	textureCount
)

// Textures lists every texture id
func Textures() []TextureID {
	ids := make([]TextureID, 0, textureCount)
	for id := TextureID(0); id < textureCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// String returns the string representation of the texture id
func (id TextureID) String() string {
	switch id {
	case TextureShip:
		return "ship"
	case TextureObstacle:
		return "obstacle"
	case TextureLogo:
		return "logo"
	case TextureBackground:
		return "background"
	case TextureButton:
		return "button"
	default:
		return "unknown"
	}
}

// TextureSet reports which optional textures are available.
// A missing texture is never an error: every visual has a shape fallback.
type TextureSet interface {
	HasTexture(id TextureID) bool
	// TextureSize returns the texture's pixel size, or zero if unavailable
	TextureSize(id TextureID) (w, h float64)
}

// Sink accepts draw primitives for one frame at a time.
// Coordinates are playfield pixels.
type Sink interface {
	TextureSet

	BeginFrame(clear color.RGBA)
	EndFrame()

	FillRect(r entity.Rect, c color.RGBA)
	FillCircle(center entity.Vec2, radius float64, c color.RGBA)
	FillTriangle(a, b, c entity.Vec2, col color.RGBA)
	DrawTexture(id TextureID, src, dst entity.Rect, tint color.RGBA)
	DrawText(s string, x, y, size float64, c color.RGBA)

	// MeasureText returns the width of s at the given size
	MeasureText(s string, size float64) float64
}

// ShipSize returns the ship's size: the ship texture scaled down when it is
// available, a fixed square otherwise.
func ShipSize(ts TextureSet) (w, h float64) {
	if ts != nil && ts.HasTexture(TextureShip) {
		tw, th := ts.TextureSize(TextureShip)
		if tw > 0 && th > 0 {
			return tw * tuning.ShipTextureScale, th * tuning.ShipTextureScale
		}
	}
	return tuning.ShipDefaultSize, tuning.ShipDefaultSize
}

// FullSource returns the source rect covering the whole texture
func FullSource(ts TextureSet, id TextureID) entity.Rect {
	w, h := ts.TextureSize(id)
	return entity.Rect{W: w, H: h}
}
