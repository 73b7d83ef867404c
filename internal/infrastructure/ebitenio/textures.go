package ebitenio

import (
	"log"
	"path/filepath"

	// PNG decoder for ebitenutil.NewImageFromFile
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/spaceshooter/internal/application/render"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
)

// Textures holds whichever optional textures could be loaded.
// It implements render.TextureSet.
type Textures struct {
	images map[render.TextureID]*ebiten.Image
}

// NewTextures creates an empty texture set
func NewTextures() *Textures {
	return &Textures{images: make(map[render.TextureID]*ebiten.Image)}
}

// TextureFiles maps every texture id to its file under the assets dir
func TextureFiles(cfg config.AssetsConfig) map[render.TextureID]string {
	return map[render.TextureID]string{
		render.TextureShip:       cfg.Ship,
		render.TextureObstacle:   cfg.Obstacle,
		render.TextureLogo:       cfg.Logo,
		render.TextureBackground: cfg.Background,
		render.TextureButton:     cfg.Button,
	}
}

// LoadTextures loads the configured textures. Missing or broken files are
// logged and skipped; the game falls back to shapes for them.
func LoadTextures(cfg config.AssetsConfig) *Textures {
	t := NewTextures()
	files := TextureFiles(cfg)
	for _, id := range render.Textures() {
		name := files[id]
		if name == "" {
			continue
		}
		path := filepath.Join(cfg.Dir, name)
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			log.Printf("[assets] %s texture unavailable (%s): %v", id, path, err)
			continue
		}
		t.images[id] = img
		log.Printf("[assets] loaded %s texture %s (%dx%d)", id, path, img.Bounds().Dx(), img.Bounds().Dy())
	}
	return t
}

// HasTexture implements render.TextureSet
func (t *Textures) HasTexture(id render.TextureID) bool {
	_, ok := t.images[id]
	return ok
}

// TextureSize implements render.TextureSet
func (t *Textures) TextureSize(id render.TextureID) (float64, float64) {
	img, ok := t.images[id]
	if !ok {
		return 0, 0
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}
