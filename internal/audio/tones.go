package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-snake/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Fade applied to both ends of every note to avoid clicks.
const noteFade = 8 * time.Millisecond

type note struct {
	freq float64 // Hz, 0 is a rest
	dur  time.Duration
}

// Short chiptune phrases, one per cue.
var phrases = map[game.Cue][]note{
	game.CueStart: {
		{523.25, 70 * time.Millisecond},  // C5
		{659.25, 70 * time.Millisecond},  // E5
		{783.99, 110 * time.Millisecond}, // G5
	},
	game.CueEat: {
		{880.00, 45 * time.Millisecond},  // A5
		{1318.51, 60 * time.Millisecond}, // E6
	},
	game.CuePause: {
		{392.00, 90 * time.Millisecond}, // G4
		{0, 30 * time.Millisecond},
		{261.63, 90 * time.Millisecond}, // C4
	},
	game.CueLose: {
		{392.00, 140 * time.Millisecond}, // G4
		{329.63, 140 * time.Millisecond}, // E4
		{261.63, 140 * time.Millisecond}, // C4
		{196.00, 280 * time.Millisecond}, // G3
	},
}

// phraseLength returns the number of samples the cue's phrase lasts.
func phraseLength(sr beep.SampleRate, cue game.Cue) int {
	n := 0
	for _, nt := range phrases[cue] {
		n += sr.N(nt.dur)
	}
	return n
}

// cueStreamer builds a finite streamer for cue at the given volume (0..1).
func cueStreamer(sr beep.SampleRate, cue game.Cue, volume float64) (beep.Streamer, error) {
	notes := phrases[cue]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, nt := range notes {
		n := sr.N(nt.dur)
		if nt.freq == 0 {
			parts = append(parts, beep.Silence(n))
			continue
		}
		tone, err := generators.SineTone(sr, nt.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, newFade(beep.Take(n, tone), n, sr.N(noteFade)))
	}
	return newVolume(beep.Seq(parts...), volume), nil
}

// fade ramps a streamer in and out linearly over fadeSamples at each end.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	edge     int
}

func newFade(s beep.Streamer, total, fadeSamples int) beep.Streamer {
	if fadeSamples*2 > total {
		fadeSamples = total / 2
	}
	return &fade{streamer: s, total: total, edge: fadeSamples}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.edge > 0 {
			if f.position < f.edge {
				gain = float64(f.position) / float64(f.edge)
			} else if remaining := f.total - f.position; remaining < f.edge {
				gain = float64(remaining) / float64(f.edge)
			}
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// newVolume scales a streamer linearly. Log2(0) is -Inf, so zero volume
// becomes silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
