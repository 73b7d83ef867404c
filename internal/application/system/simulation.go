package system

import (
	"github.com/younwookim/spaceshooter/internal/application/input"
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
)

// StepResult summarizes what happened during one simulation step
type StepResult struct {
	Fired     int  // Projectiles spawned
	Spawned   int  // Obstacles spawned
	Destroyed int  // Obstacles destroyed by projectiles
	ShipHit   bool // A life was lost this frame
	GameOver  bool // Lives ran out; the high score has been updated
}

// SimulationSystem advances every pool of a playing session by one frame
type SimulationSystem struct {
	input     *InputSystem
	weapon    *WeaponSystem
	spawn     *SpawnSystem
	collision *CollisionSystem
	height    float64
}

// NewSimulationSystem creates a simulation over the fixed playfield
func NewSimulationSystem() *SimulationSystem {
	return &SimulationSystem{
		input:     NewInputSystem(tuning.ScreenWidth, tuning.ScreenHeight, tuning.PlayfieldInset),
		weapon:    NewWeaponSystem(),
		spawn:     NewSpawnSystem(tuning.ScreenWidth),
		collision: NewCollisionSystem(),
		height:    tuning.ScreenHeight,
	}
}

// Step runs the ordered phases of one frame: ship movement, firing,
// spawning, motion, projectile hits, ship hit or invulnerability decay,
// particle decay, compaction and the terminal check.
func (s *SimulationSystem) Step(sess *session.Session, in input.Source, dt float64) StepResult {
	var res StepResult

	s.input.UpdateShip(&sess.Ship, in, dt)
	res.Fired = s.weapon.Update(sess, in, dt)
	res.Spawned = s.spawn.Update(sess, dt)

	s.integrate(sess, dt)

	res.Destroyed = s.collision.ResolveProjectiles(sess)

	// A hit starts the window; it only begins to decay on the next frame
	if sess.Ship.Invulnerable {
		sess.Ship.UpdateInvulnerability(dt)
	} else {
		res.ShipHit = s.collision.ResolveShip(sess)
	}

	for i := 0; i < sess.Particles.Len(); i++ {
		sess.Particles.At(i).Update(dt)
	}

	sess.Projectiles.Compact()
	sess.Obstacles.Compact()
	sess.Particles.Compact()

	if sess.Finished() {
		sess.FinishRun()
		res.GameOver = true
	}
	return res
}

// integrate moves projectiles and obstacles and retires those that left
// the playfield.
func (s *SimulationSystem) integrate(sess *session.Session, dt float64) {
	for i := 0; i < sess.Projectiles.Len(); i++ {
		sess.Projectiles.At(i).Update(dt)
	}
	for i := 0; i < sess.Obstacles.Len(); i++ {
		sess.Obstacles.At(i).Update(dt, s.height)
	}
}
