// Package audio plays the game's sound cues through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// Player is a game.Audio backed by the speaker. Cues are mixed so a new cue
// never cuts off one that is still playing. Until Init succeeds every Play
// is a no-op, which is also how a muted player behaves.
type Player struct {
	mu          sync.Mutex
	volume      float64
	logger      *log.Logger
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. volume ranges from 0 (silent) to 1.
func NewPlayer(volume float64, logger *log.Logger) *Player {
	return &Player{
		volume: volume,
		logger: logger,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the audio device. On failure the player stays silent and the
// game keeps running.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio ready", "sample_rate", int(sampleRate))
	return nil
}

// Play queues a cue and returns immediately.
func (p *Player) Play(cue game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := cueStreamer(sampleRate, cue, p.volume)
	if err != nil {
		p.logger.Warn("audio cue skipped", "cue", cue, "err", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
