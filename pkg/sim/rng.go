package sim

import (
	"math/rand/v2"
	"time"
)

// RNG is the randomness source for the simulation. Everything probabilistic
// goes through it so tests can inject a seeded or scripted source.
type RNG interface {
	// Intn returns a uniform draw from [0, n). n must be > 0.
	Intn(n int) int
	// Range returns a uniform draw from [min, max], inclusive on both ends.
	Range(min, max int) int
	// Chance reports a pct-in-100 success.
	Chance(pct int) bool
}

type pcgRNG struct {
	r *rand.Rand
}

// NewRNG returns a time-seeded production source.
func NewRNG() RNG {
	now := uint64(time.Now().UnixNano())
	return NewSeededRNG(now, now>>32)
}

// NewSeededRNG returns a deterministic source for tests and replays.
func NewSeededRNG(seed1, seed2 uint64) RNG {
	return &pcgRNG{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (p *pcgRNG) Intn(n int) int {
	return p.r.IntN(n)
}

func (p *pcgRNG) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + p.r.IntN(max-min+1)
}

func (p *pcgRNG) Chance(pct int) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	return p.r.IntN(100) < pct
}
