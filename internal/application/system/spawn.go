package system

import (
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/domain/random"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
)

// SpawnSystem drops new obstacles from above the playfield
type SpawnSystem struct {
	width int
}

// NewSpawnSystem creates a spawn system for a playfield of the given width
func NewSpawnSystem(width int) *SpawnSystem {
	return &SpawnSystem{width: width}
}

// Update accumulates the spawn timer and spawns once it reaches the current
// cooldown, sometimes two at once. Returns the number of obstacles spawned.
func (s *SpawnSystem) Update(sess *session.Session, dt float64) int {
	sess.SpawnTimer += dt
	if sess.SpawnTimer < sess.SpawnCooldown {
		return 0
	}

	sess.SpawnTimer = 0
	s.Spawn(sess)
	if random.Chance(sess.Rng, tuning.ObstacleDoubleChance) {
		s.Spawn(sess)
		return 2
	}
	return 1
}

// Spawn adds one obstacle at a random x just above the top edge.
// Its fall speed grows with the current score.
func (s *SpawnSystem) Spawn(sess *session.Session) {
	rng := sess.Rng
	r := random.Int(rng, tuning.ObstacleMinRadius, tuning.ObstacleMaxRadius)
	x := random.Float(rng, r, s.width-r)
	y := -float64(r) - tuning.ObstacleSpawnMargin
	vy := random.Float(rng, tuning.ObstacleMinSpeed, tuning.ObstacleMaxSpeed) + float64(sess.Score)*tuning.ObstacleScoreSpeedup
	vx := random.Float(rng, -tuning.ObstacleMaxLateral, tuning.ObstacleMaxLateral)

	sess.Obstacles.Spawn(entity.NewObstacle(entity.Vec2{X: x, Y: y}, entity.Vec2{X: vx, Y: vy}, float64(r)))
}
