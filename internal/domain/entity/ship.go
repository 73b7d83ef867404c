package entity

import (
	"math"

	"github.com/younwookim/spaceshooter/internal/domain/tuning"
)

// Ship is the player-controlled ship. Pos is the center of its bounding box.
type Ship struct {
	Pos   Vec2
	W, H  float64
	Speed float64

	FireTimer float64 // Seconds since the last shot

	Invulnerable bool
	InvulnTimer  float64
	BlinkTimer   float64
}

// NewShip creates a ship of the given size at its spawn point
func NewShip(w, h float64) Ship {
	s := Ship{W: w, H: h, Speed: tuning.ShipSpeed}
	s.Reset()
	return s
}

// Reset puts the ship back at its spawn point, vulnerable, with a full fire
// cooldown ahead of the first shot.
func (s *Ship) Reset() {
	s.Pos = Vec2{X: tuning.ScreenWidth / 2, Y: tuning.ScreenHeight - tuning.ShipSpawnOffsetY}
	s.FireTimer = 0
	s.Invulnerable = false
	s.InvulnTimer = 0
	s.BlinkTimer = 0
}

// Move integrates a direction vector over dt. dir is normalized first, so
// diagonal movement is not faster than straight movement.
func (s *Ship) Move(dir Vec2, dt float64) {
	s.Pos = s.Pos.Add(dir.Normalize().Scale(s.Speed * dt))
}

// Clamp keeps the ship's bounding box inside the playfield minus inset.
func (s *Ship) Clamp(width, height, inset float64) {
	halfW := s.W / 2
	halfH := s.H / 2
	if s.Pos.X-halfW < inset {
		s.Pos.X = inset + halfW
	}
	if s.Pos.X+halfW > width-inset {
		s.Pos.X = width - inset - halfW
	}
	if s.Pos.Y-halfH < inset {
		s.Pos.Y = inset + halfH
	}
	if s.Pos.Y+halfH > height-inset {
		s.Pos.Y = height - inset - halfH
	}
}

// Bounds returns the full bounding box
func (s *Ship) Bounds() Rect {
	return Rect{X: s.Pos.X - s.W/2, Y: s.Pos.Y - s.H/2, W: s.W, H: s.H}
}

// Hitbox returns the shrunk rectangle used against obstacles
func (s *Ship) Hitbox() Rect {
	k := tuning.ShipHitboxScale
	return Rect{
		X: s.Pos.X - s.W*k/2,
		Y: s.Pos.Y - s.H*k/2,
		W: s.W * k,
		H: s.H * k,
	}
}

// Nose returns the point projectiles are fired from
func (s *Ship) Nose() Vec2 {
	return Vec2{X: s.Pos.X, Y: s.Pos.Y - s.H/2 - tuning.ProjectileOffsetY}
}

// CanFire reports whether the fire cooldown has elapsed
func (s *Ship) CanFire() bool {
	return s.FireTimer >= tuning.FireCooldown
}

// Hit starts a new invulnerability window
func (s *Ship) Hit() {
	s.Invulnerable = true
	s.InvulnTimer = 0
	s.BlinkTimer = 0
}

// UpdateInvulnerability advances the invulnerability window and ends it
// once the fixed duration has elapsed.
func (s *Ship) UpdateInvulnerability(dt float64) {
	if !s.Invulnerable {
		return
	}
	s.InvulnTimer += dt
	s.BlinkTimer += dt
	if s.InvulnTimer >= tuning.InvulnDuration {
		s.Invulnerable = false
		s.InvulnTimer = 0
		s.BlinkTimer = 0
	}
}

// Visible returns false during the hidden half of each blink period
func (s *Ship) Visible() bool {
	if !s.Invulnerable {
		return true
	}
	return math.Mod(s.BlinkTimer, tuning.BlinkPeriod) >= tuning.BlinkHidden
}
