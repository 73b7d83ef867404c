// Package session holds all mutable state of one game run.
//
// A Session is created once at startup and passed explicitly to every
// scene and system. Nothing in the game keeps state in package globals.
package session

import (
	"math/rand"

	"github.com/younwookim/spaceshooter/internal/application/state"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/domain/random"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
)

// Session is the state shared by scenes and systems
type Session struct {
	Ship        entity.Ship
	Projectiles *entity.Pool[entity.Projectile]
	Obstacles   *entity.Pool[entity.Obstacle]
	Particles   *entity.Pool[entity.Particle]
	Stars       []entity.Star

	Lives     int
	Score     int
	HighScore int // Kept across resets within one run

	Scene state.GameState

	// Spawning and difficulty
	SpawnTimer      float64
	SpawnCooldown   float64
	DifficultyTimer float64

	// Scene-local state
	MenuIndex int
	LoadTimer float64

	// Deterministic RNG
	Rng  *rand.Rand
	Seed int64
}

// New creates a session in the Loading scene with a populated starfield.
func New(seed int64, shipW, shipH float64) *Session {
	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		Ship:        entity.NewShip(shipW, shipH),
		Projectiles: entity.NewPool[entity.Projectile](32),
		Obstacles:   entity.NewPool[entity.Obstacle](32),
		Particles:   entity.NewPool[entity.Particle](256),
		Stars:       make([]entity.Star, 0, tuning.StarCount),
		Scene:       state.StateLoading,
		Rng:         rng,
		Seed:        seed,
	}
	for i := 0; i < tuning.StarCount; i++ {
		s.Stars = append(s.Stars, entity.Star{
			Pos: entity.Vec2{
				X: random.Float(rng, 0, tuning.ScreenWidth),
				Y: random.Float(rng, 0, tuning.ScreenHeight),
			},
			Speed: random.Float(rng, tuning.StarMinSpeed, tuning.StarMaxSpeed),
			Size:  random.Float(rng, tuning.StarMinSize, tuning.StarMaxSize),
		})
	}
	s.Reset()
	return s
}

// Reset starts a new game: empty pools, full lives, zero score, fresh
// timers. The high score and the starfield are kept.
func (s *Session) Reset() {
	s.Projectiles.Clear()
	s.Obstacles.Clear()
	s.Particles.Clear()
	s.Ship.Reset()

	s.Lives = tuning.InitialLives
	s.Score = 0

	s.SpawnTimer = 0
	s.SpawnCooldown = tuning.SpawnCooldownStart
	s.DifficultyTimer = 0
}

// AddScore adds a reward. Negative rewards are ignored so score never
// decreases.
func (s *Session) AddScore(points int) {
	if points > 0 {
		s.Score += points
	}
}

// LoseLife takes one life and reports whether the run is over
func (s *Session) LoseLife() bool {
	if s.Lives > 0 {
		s.Lives--
	}
	return s.Lives <= 0
}

// Finished reports whether the run has run out of lives
func (s *Session) Finished() bool {
	return s.Lives <= 0
}

// FinishRun folds the current score into the high score
func (s *Session) FinishRun() {
	s.HighScore = max(s.HighScore, s.Score)
}
