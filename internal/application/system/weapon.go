package system

import (
	"github.com/younwookim/spaceshooter/internal/application/input"
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
)

// WeaponSystem fires projectile pairs from the ship nose
type WeaponSystem struct{}

// NewWeaponSystem creates a new weapon system
func NewWeaponSystem() *WeaponSystem {
	return &WeaponSystem{}
}

// Update advances the fire cooldown and fires while the fire action is held.
// Returns the number of projectiles spawned this frame.
func (s *WeaponSystem) Update(sess *session.Session, in input.Source, dt float64) int {
	ship := &sess.Ship
	ship.FireTimer += dt

	if !in.IsHeld(input.ActionFire) || !ship.CanFire() {
		return 0
	}

	ship.FireTimer = 0
	nose := ship.Nose()
	sess.Projectiles.Spawn(entity.NewProjectile(entity.Vec2{X: nose.X - tuning.ProjectileOffsetX, Y: nose.Y}))
	sess.Projectiles.Spawn(entity.NewProjectile(entity.Vec2{X: nose.X + tuning.ProjectileOffsetX, Y: nose.Y}))
	return 2
}
