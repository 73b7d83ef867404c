package system

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/domain/random"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
)

// Explode emits count particles at a point in random directions with
// warm, randomized colors.
func Explode(pool *entity.Pool[entity.Particle], rng *rand.Rand, at entity.Vec2, count int) {
	for i := 0; i < count; i++ {
		angle := random.Float(rng, 0, 628) / 100
		speed := random.Float(rng, tuning.ParticleMinSpeed, tuning.ParticleMaxSpeed)
		life := random.Float(rng, tuning.ParticleMinLife, tuning.ParticleMaxLife) / 60

		pool.Spawn(entity.Particle{
			Pos:     at,
			Vel:     entity.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life:    life,
			MaxLife: life,
			Color: color.RGBA{
				R: uint8(random.Int(rng, 200, 255)),
				G: uint8(random.Int(rng, 120, 200)),
				B: uint8(random.Int(rng, 0, 60)),
				A: 255,
			},
			Active: true,
		})
	}
}
