package entity

// Star is a decorative background element. It never collides.
type Star struct {
	Pos   Vec2
	Speed float64
	Size  float64
}

// Fall advances the star and reports whether it has passed the bottom bound
func (s *Star) Fall(dt, height float64) bool {
	s.Pos.Y += s.Speed * dt
	return s.Pos.Y > height
}
