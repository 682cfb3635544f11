// Package rng holds the probability primitives every randomized decision in
// the simulation goes through: boolean trials, inclusive integer rolls and
// weighted tables.
package rng

import (
	"math/rand/v2"
	"time"
)

// Source is the randomness provider. *rand.Rand satisfies it.
type Source interface {
	// IntN returns a uniform int in [0, n). n > 0.
	IntN(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// New returns a seeded PCG source. Seed 0 derives one from the wall clock.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	// #nosec G404
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// OneIn returns true with probability 1/n. n <= 1 is always true.
func OneIn(r Source, n int) bool {
	if n <= 1 {
		return true
	}
	return r.IntN(n)+1 == 1
}

// XInY returns true with probability x/y. Works on non-integer odds.
func XInY(r Source, x, y float64) bool {
	if y <= 0 {
		return true
	}
	return r.Float64()*y < x
}

// Chance returns true with probability p, p in [0, 1].
func Chance(r Source, p float64) bool {
	return XInY(r, p, 1)
}

// Between returns a uniform int in [lo, hi]. hi < lo returns lo.
func Between(r Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}
