package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-zombie-arena/internal/defs"
)

type fixedRand struct {
	f float64
	i int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return r.i % n }

func TestClamp(t *testing.T) {
	assert.Equal(t, 12.0, Clamp(-5, 12, 788))
	assert.Equal(t, 788.0, Clamp(900, 12, 788))
	assert.Equal(t, 400.0, Clamp(400, 12, 788))
}

func TestNormalize(t *testing.T) {
	nx, ny, ok := Normalize(3, 4)
	assert.True(t, ok)
	assert.InDelta(t, 0.6, nx, 1e-12)
	assert.InDelta(t, 0.8, ny, 1e-12)

	_, _, ok = Normalize(0, 0)
	assert.False(t, ok)
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi/2, NormalizeAngle(-3*math.Pi/2), 1e-12)
	assert.InDelta(t, 0.5, NormalizeAngle(0.5+4*math.Pi), 1e-9)
}

func TestRange(t *testing.T) {
	assert.InDelta(t, 1.0, Range(fixedRand{f: 0.5}, 0.8, 0.4), 1e-12)
	assert.Equal(t, 0.8, Range(fixedRand{}, 0.8, 0.4))
}

func TestChooseWeighted(t *testing.T) {
	table := []defs.LootEntry{
		{PowerUp: defs.PowerUpNuke, Weight: 1},
		{PowerUp: defs.PowerUpTreasure, Weight: 3},
	}
	assert.Equal(t, defs.PowerUpNuke, ChooseWeighted(fixedRand{i: 0}, table))
	assert.Equal(t, defs.PowerUpTreasure, ChooseWeighted(fixedRand{i: 1}, table))
	assert.Equal(t, defs.PowerUpTreasure, ChooseWeighted(fixedRand{i: 3}, table))
	assert.Equal(t, defs.PowerUpType(""), ChooseWeighted(fixedRand{}, nil))
	assert.Equal(t, defs.PowerUpLife, ChooseWeighted(fixedRand{}, []defs.LootEntry{{PowerUp: defs.PowerUpLife}}))
}

func TestPRNGServiceIsReplayable(t *testing.T) {
	a, b := NewPRNGService(11), NewPRNGService(11)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(5), b.Intn(5))
	}
	assert.Equal(t, int64(11), a.Seed())
	assert.NotZero(t, NewPRNGService(0).Seed())
}
