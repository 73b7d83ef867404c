package entity

import "testing"

// Bursts of particles with staggered lifetimes, the shape of the
// explosion workload: every frame some die and a burst is spawned.
const (
	benchParticles = 4_000
	benchBurst     = 22
	benchDT        = 1.0 / 60
)

func benchParticle(i int) Particle {
	life := 0.35 + float64(i%50)*0.01
	return Particle{
		Pos:     Vec2{X: float64(i % 960), Y: float64(i % 540)},
		Vel:     Vec2{X: 40, Y: -60},
		Life:    life,
		MaxLife: life,
		Active:  true,
	}
}

// Case 1: dense pool, dead entities removed every frame
func BenchmarkParticles_Compact(b *testing.B) {
	pool := NewPool[Particle](benchParticles)
	for i := 0; i < benchParticles; i++ {
		pool.Spawn(benchParticle(i))
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < pool.Len(); i++ {
			pool.At(i).Update(benchDT)
		}
		pool.Compact()
		for i := 0; i < benchBurst; i++ {
			pool.Spawn(benchParticle(n + i))
		}
	}
}

// Case 2: dead entities stay in the slice and are skipped. The slice
// only grows, so every frame pays for all particles ever spawned.
func BenchmarkParticles_SkipInactive(b *testing.B) {
	items := make([]Particle, 0, benchParticles)
	for i := 0; i < benchParticles; i++ {
		items = append(items, benchParticle(i))
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := range items {
			if items[i].Active {
				items[i].Update(benchDT)
			}
		}
		for i := 0; i < benchBurst; i++ {
			items = append(items, benchParticle(n+i))
		}
	}
}

// Case 3: compaction alone on a pool where every other entity is dead
func BenchmarkPool_CompactHalf(b *testing.B) {
	pool := NewPool[Particle](benchParticles)
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		pool.Clear()
		for i := 0; i < benchParticles; i++ {
			p := benchParticle(i)
			p.Active = i%2 == 0
			pool.Spawn(p)
		}
		b.StartTimer()

		pool.Compact()
	}
}
