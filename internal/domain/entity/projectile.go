package entity

import "github.com/younwookim/spaceshooter/internal/domain/tuning"

// Projectile is a shot fired by the ship. It only moves vertically.
type Projectile struct {
	Pos    Vec2
	Radius float64
	VY     float64
	Active bool
}

// NewProjectile creates an active projectile at pos
func NewProjectile(pos Vec2) Projectile {
	return Projectile{
		Pos:    pos,
		Radius: tuning.ProjectileRadius,
		VY:     tuning.ProjectileSpeed,
		Active: true,
	}
}

// IsActive implements Poolable
func (p Projectile) IsActive() bool { return p.Active }

// Update moves the projectile and deactivates it once it leaves the top
func (p *Projectile) Update(dt float64) {
	if !p.Active {
		return
	}
	p.Pos.Y += p.VY * dt
	if p.Pos.Y < tuning.ProjectileKillLine {
		p.Active = false
	}
}

// Deactivate marks the projectile as inactive
func (p *Projectile) Deactivate() {
	p.Active = false
}
