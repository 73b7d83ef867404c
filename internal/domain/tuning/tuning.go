// Package tuning centralizes the fixed gameplay constants.
//
// These values are deliberately not loaded from config: difficulty and
// input bindings are fixed for every run.
package tuning

// Playfield
const (
	ScreenWidth    = 960
	ScreenHeight   = 540
	TargetFPS      = 60
	PlayfieldInset = 16.0 // Ship bounding box keeps this margin from every edge
)

// Scenes
const (
	LoadingDuration = 1.6 // Seconds before Loading hands over to Menu
	WebsiteURL      = "https://www.raylib.com/"
)

// Ship
const (
	ShipSpeed        = 380.0 // px/s
	ShipDefaultSize  = 48.0  // Fallback size when no ship texture is available
	ShipTextureScale = 0.75
	ShipSpawnOffsetY = 80.0 // Distance from the bottom edge at session start
	ShipHitboxScale  = 0.7  // Ship rect shrunk to 70% for obstacle collision
	FireCooldown     = 0.18
	InitialLives     = 3
)

// Invulnerability after a hit
const (
	InvulnDuration = 1.2
	BlinkPeriod    = 0.12
	BlinkHidden    = 0.06 // Ship is hidden during the first part of each period
)

// Projectiles
const (
	ProjectileRadius   = 4.0
	ProjectileSpeed    = -640.0 // Negative because up is negative Y
	ProjectileOffsetX  = 10.0
	ProjectileOffsetY  = 6.0
	ProjectileKillLine = -20.0
)

// Obstacles
const (
	ObstacleMinRadius     = 18
	ObstacleMaxRadius     = 34
	ObstacleSpawnMargin   = 10.0
	ObstacleMinSpeed      = 120
	ObstacleMaxSpeed      = 220
	ObstacleMaxLateral    = 50
	ObstacleScoreSpeedup  = 0.05 // Extra px/s of fall speed per point of score
	ObstacleHitboxScale   = 0.85 // Radius used against the ship
	ObstacleDoubleChance  = 35   // Out of 101 (roll in [0, 100])
	ObstacleDestroyReward = 10
)

// Spawn cadence and difficulty
const (
	SpawnCooldownStart = 0.9
	SpawnCooldownFloor = 0.45
	SpawnCooldownStep  = 0.05
	DifficultyInterval = 6.0
)

// Particles
const (
	ExplosionParticles = 22
	ShipHitParticles   = 28
	ParticleMinSpeed   = 60
	ParticleMaxSpeed   = 180
	ParticleMinLife    = 20 // In 1/60 s units
	ParticleMaxLife    = 45
	ParticleRadius     = 2.0
)

// Background
const (
	StarCount    = 120
	StarMinSpeed = 30
	StarMaxSpeed = 120
	StarMinSize  = 1
	StarMaxSize  = 2
	StarRespawnY = -5.0
)
