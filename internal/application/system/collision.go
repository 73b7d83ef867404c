package system

import (
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
)

// CollisionSystem resolves projectile-obstacle and ship-obstacle contacts
type CollisionSystem struct{}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// ResolveProjectiles tests every active obstacle against every active
// projectile. Each hit kills both, scores the reward and bursts particles at
// the obstacle. Every projectile overlapping an obstacle in the same frame
// is consumed and scored.
// Returns the number of obstacles destroyed.
func (s *CollisionSystem) ResolveProjectiles(sess *session.Session) int {
	destroyed := 0
	for i := 0; i < sess.Obstacles.Len(); i++ {
		o := sess.Obstacles.At(i)
		if !o.Active {
			continue
		}
		hit := false
		for j := 0; j < sess.Projectiles.Len(); j++ {
			p := sess.Projectiles.At(j)
			if !p.Active {
				continue
			}
			if !entity.CirclesOverlap(o.Pos, o.Radius, p.Pos, p.Radius) {
				continue
			}
			p.Deactivate()
			o.Deactivate()
			sess.AddScore(tuning.ObstacleDestroyReward)
			Explode(sess.Particles, sess.Rng, o.Pos, tuning.ExplosionParticles)
			hit = true
		}
		if hit {
			destroyed++
		}
	}
	return destroyed
}

// ResolveShip checks obstacles against the ship hitbox in pool order and
// stops at the first hit, so at most one life is lost per frame. Does
// nothing while the ship is invulnerable.
// Returns true if the ship was hit.
func (s *CollisionSystem) ResolveShip(sess *session.Session) bool {
	ship := &sess.Ship
	if ship.Invulnerable {
		return false
	}

	hitbox := ship.Hitbox()
	for i := 0; i < sess.Obstacles.Len(); i++ {
		o := sess.Obstacles.At(i)
		if !o.Active {
			continue
		}
		if !entity.CircleRectOverlap(o.Pos, o.Radius*tuning.ObstacleHitboxScale, hitbox) {
			continue
		}
		o.Deactivate()
		sess.LoseLife()
		ship.Hit()
		Explode(sess.Particles, sess.Rng, ship.Pos, tuning.ShipHitParticles)
		return true
	}
	return false
}
