package system

import (
	"github.com/younwookim/spaceshooter/internal/application/session"
)

// DifficultySystem shortens the spawn cooldown as play time accumulates
type DifficultySystem struct {
	interval float64
	step     float64
	floor    float64
}

// NewDifficultySystem creates a difficulty system that lowers the cooldown
// by step every interval seconds, never below floor.
func NewDifficultySystem(interval, step, floor float64) *DifficultySystem {
	return &DifficultySystem{interval: interval, step: step, floor: floor}
}

// Update advances the difficulty timer. Returns true if the cooldown was
// stepped down this frame.
func (s *DifficultySystem) Update(sess *session.Session, dt float64) bool {
	sess.DifficultyTimer += dt
	if sess.DifficultyTimer < s.interval {
		return false
	}
	sess.DifficultyTimer = 0
	// Step down to the floor; a cooldown already below it is left as is
	sess.SpawnCooldown = min(sess.SpawnCooldown, max(s.floor, sess.SpawnCooldown-s.step))
	return true
}
