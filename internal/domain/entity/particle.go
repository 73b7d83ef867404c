package entity

import "image/color"

// Particle is a short-lived spark emitted by explosions
type Particle struct {
	Pos     Vec2
	Vel     Vec2
	Life    float64
	MaxLife float64
	Color   color.RGBA
	Active  bool
}

// IsActive implements Poolable
func (p Particle) IsActive() bool { return p.Active }

// Update burns down the particle's life and moves it
func (p *Particle) Update(dt float64) {
	if !p.Active {
		return
	}
	p.Life -= dt
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	if p.Life <= 0 {
		p.Active = false
	}
}

// Alpha returns the remaining life as a 0-1 fade factor
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	a := p.Life / p.MaxLife
	if a > 1 {
		return 1
	}
	return a
}
