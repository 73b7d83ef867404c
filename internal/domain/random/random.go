// Package random wraps a seeded *rand.Rand with the inclusive integer
// ranges the gameplay rules are written in.
package random

import "math/rand"

// Int returns a uniform integer in [lo, hi]. Swapped bounds are accepted.
func Int(r *rand.Rand, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Float returns Int as float64
func Float(r *rand.Rand, lo, hi int) float64 {
	return float64(Int(r, lo, hi))
}

// Chance returns true with probability percent/101, rolling an integer in
// [0, 100] and comparing it against percent.
func Chance(r *rand.Rand, percent int) bool {
	return Int(r, 0, 100) < percent
}
