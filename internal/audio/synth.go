// internal/audio/synth.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"go-zombie-arena/internal/defs"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveNoise
)

const (
	// CueDuration is how long every cue rings before it is cut.
	CueDuration = 300 * time.Millisecond
	// releaseFloor is the gain the exponential fade ends on.
	releaseFloor = 0.01
)

// Sweep describes one cue: a frequency glide from From to To over Over,
// then held at To until the cue ends.
type Sweep struct {
	From   float64
	To     float64
	Over   time.Duration
	Linear bool
	Wave   Wave
	// Gain, when non-zero, overrides the requested volume.
	Gain float64
}

var sweeps = map[defs.SoundID]Sweep{
	defs.SoundPistol:    {From: 800, To: 200, Over: 100 * time.Millisecond},
	defs.SoundRifle:     {From: 1200, To: 300, Over: 50 * time.Millisecond},
	defs.SoundShotgun:   {From: 600, To: 150, Over: 200 * time.Millisecond},
	defs.SoundExplosion: {From: 1000, To: 1, Over: 400 * time.Millisecond, Wave: WaveNoise, Gain: 0.4},
	defs.SoundPowerUp:   {From: 440, To: 880, Over: 200 * time.Millisecond, Linear: true},
	defs.SoundHurt:      {From: 200, To: 100, Over: 300 * time.Millisecond, Gain: 0.3},
}

// defaultSweep is a flat tone for cues without their own shape.
var defaultSweep = Sweep{From: 440, To: 440}

// SweepFor returns the shape of id.
func SweepFor(id defs.SoundID) Sweep {
	if s, ok := sweeps[id]; ok {
		return s
	}
	return defaultSweep
}

// FrequencyAt returns the oscillator frequency t into the cue.
func (s Sweep) FrequencyAt(t time.Duration) float64 {
	if s.Over <= 0 || t >= s.Over {
		return s.To
	}
	if t <= 0 {
		return s.From
	}
	frac := float64(t) / float64(s.Over)
	if s.Linear {
		return s.From + (s.To-s.From)*frac
	}
	return s.From * math.Pow(s.To/s.From, frac)
}

// cue is a swept oscillator with an exponential fade-out.
type cue struct {
	sweep    Sweep
	rate     beep.SampleRate
	rng      *rand.Rand
	gain     float64
	phase    float64
	position int
	total    int
}

// NewCue builds the streamer for one sound at the given volume. The stream
// ends after CueDuration.
func NewCue(id defs.SoundID, volume float64, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	sweep := SweepFor(id)
	gain := volume
	if sweep.Gain > 0 {
		gain = sweep.Gain
	}
	return &cue{
		sweep: sweep,
		rate:  rate,
		rng:   rng,
		gain:  gain,
		total: rate.N(CueDuration),
	}
}

func (c *cue) Stream(samples [][2]float64) (n int, ok bool) {
	if c.position >= c.total {
		return 0, false
	}
	for i := range samples {
		if c.position >= c.total {
			return i, true
		}
		t := c.rate.D(c.position)

		var val float64
		switch c.sweep.Wave {
		case WaveNoise:
			val = c.rng.Float64()*2 - 1
		default:
			val = math.Sin(2 * math.Pi * c.phase)
		}
		val *= c.envelope()

		samples[i][0] = val
		samples[i][1] = val

		c.phase += c.sweep.FrequencyAt(t) / float64(c.rate)
		c.phase -= math.Floor(c.phase)
		c.position++
	}
	return len(samples), true
}

func (c *cue) Err() error { return nil }

// envelope fades from gain down to releaseFloor across the cue.
func (c *cue) envelope() float64 {
	if c.gain <= releaseFloor {
		return c.gain
	}
	frac := float64(c.position) / float64(c.total)
	return c.gain * math.Pow(releaseFloor/c.gain, frac)
}

// withMaster scales s by the master volume. Zero or less is silent.
func withMaster(s beep.Streamer, master float64) beep.Streamer {
	if master <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(master)}
}
