// internal/utils/prng.go
package utils

import (
	"go-zombie-arena/internal/defs"
	"math/rand"
	"time"
)

// Rand is the subset of randomness the simulation draws on. Tests supply
// scripted implementations.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// PRNGService wraps a seeded *rand.Rand so a whole session can be replayed
// from one seed.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService creates a service with the given seed. A zero seed uses
// the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the service was built with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a random float in [min, min+span).
func Range(r Rand, min, span float64) float64 {
	return min + r.Float64()*span
}

// ChooseWeighted picks a power-up from a weighted drop table. An empty
// table yields the empty type.
func ChooseWeighted(r Rand, entries []defs.LootEntry) defs.PowerUpType {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].PowerUp
	}

	roll := r.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > roll {
			return entry.PowerUp
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].PowerUp
}
