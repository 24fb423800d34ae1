// internal/audio/player.go
package audio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"go-zombie-arena/internal/config"
	"go-zombie-arena/internal/defs"
	"go-zombie-arena/internal/event"
)

// Player synthesizes cues on the speaker. It listens for SoundRequested
// events; when the speaker cannot be opened it stays silent and the game
// runs on without sound.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	rate    beep.SampleRate
	master  float64
	rng     *rand.Rand
	enabled bool
	logger  zerolog.Logger
}

// NewPlayer opens the speaker according to settings.
func NewPlayer(settings config.AudioSettings, logger zerolog.Logger) *Player {
	rate := beep.SampleRate(settings.SampleRate)
	if rate <= 0 {
		rate = beep.SampleRate(44100)
	}
	p := &Player{
		mixer:  &beep.Mixer{},
		rate:   rate,
		master: settings.Volume,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger.With().Str("component", "audio").Logger(),
	}
	if !settings.Enabled {
		p.logger.Info().Msg("audio disabled by settings")
		return p
	}

	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		p.logger.Warn().Err(err).Msg("audio initialization failed, continuing without sound")
		return p
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return p
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play queues one cue. volume is the level the simulation asked for.
func (p *Player) Play(id defs.SoundID, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	s := withMaster(NewCue(id, volume, p.rate, p.rng), p.master)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// OnEvent implements event.Listener.
func (p *Player) OnEvent(e event.Event) {
	if e.Type != event.SoundRequested {
		return
	}
	if sound, ok := e.Data.(event.Sound); ok {
		p.Play(sound.ID, sound.Volume)
	}
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.enabled = false
}
