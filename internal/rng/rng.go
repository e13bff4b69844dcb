package rng

import "math"

// modulus and multiplier of the Park-Miller minimal standard generator.
const (
	modulus    = 2147483647
	multiplier = 16807
)

// Generator is a deterministic multiplicative congruential generator. It has no external entropy:
// two generators built from the same seed and drawn the same number of times return the same values.
// Not safe for concurrent use; each consumer owns its own Generator.
type Generator struct {
	state int64
}

// New returns a generator for seed. Any integer is accepted. The seed is reduced into
// [1, modulus-1]; 0 and multiples of the modulus map to modulus-1 so the sequence still advances.
func New(seed int64) *Generator {
	s := seed % modulus
	if s < 0 {
		s += modulus
	}
	if s == 0 {
		s = modulus - 1
	}
	return &Generator{state: s}
}

// FromPosition seeds a generator from a world position (floor(x*100 + z*7)) so per-object
// variation is reproducible without sharing one generator across objects.
func FromPosition(x, z float64) *Generator {
	return New(int64(math.Floor(x*100 + z*7)))
}

// Next advances the state and returns a value in [0,1).
func (g *Generator) Next() float64 {
	g.state = (g.state * multiplier) % modulus
	return float64(g.state) / modulus
}

// Range returns a value in [lo, hi).
func (g *Generator) Range(lo, hi float64) float64 {
	return lo + g.Next()*(hi-lo)
}

// Intn returns an int in [0, n). n <= 0 returns 0 without advancing.
func (g *Generator) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(g.Next() * float64(n))
}

// State returns the current internal state (useful for snapshots in tests and tooling).
func (g *Generator) State() int64 {
	return g.state
}
