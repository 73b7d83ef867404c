package system

import (
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/domain/random"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
)

// BackgroundSystem scrolls the starfield. It runs in every scene.
type BackgroundSystem struct {
	width  int
	height float64
}

// NewBackgroundSystem creates a background system for the playfield size
func NewBackgroundSystem(width int, height float64) *BackgroundSystem {
	return &BackgroundSystem{width: width, height: height}
}

// Update moves every star down; a star past the bottom reappears just above
// the top at a random x. Its speed and size never change.
func (s *BackgroundSystem) Update(sess *session.Session, dt float64) {
	for i := range sess.Stars {
		star := &sess.Stars[i]
		if star.Fall(dt, s.height) {
			star.Pos.X = random.Float(sess.Rng, 0, s.width)
			star.Pos.Y = tuning.StarRespawnY
		}
	}
}
