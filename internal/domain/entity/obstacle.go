package entity

// Obstacle is a falling rock
type Obstacle struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
	Active bool
}

// NewObstacle creates an active obstacle
func NewObstacle(pos, vel Vec2, radius float64) Obstacle {
	return Obstacle{Pos: pos, Vel: vel, Radius: radius, Active: true}
}

// IsActive implements Poolable
func (o Obstacle) IsActive() bool { return o.Active }

// Update moves the obstacle and deactivates it once it has fully left
// the bottom of a playfield of the given height.
func (o *Obstacle) Update(dt, height float64) {
	if !o.Active {
		return
	}
	o.Pos = o.Pos.Add(o.Vel.Scale(dt))
	if o.Pos.Y > height+o.Radius {
		o.Active = false
	}
}

// Deactivate marks the obstacle as inactive
func (o *Obstacle) Deactivate() {
	o.Active = false
}
