package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// envelope fades a stream in over attack samples and out over the final release samples,
// and ends the stream after total samples
type envelope struct {
	src     beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

// NewEnvelope wraps s with a linear attack/release ramp over a fixed duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &envelope{
		src:     s,
		attack:  min(rate.N(attack), total),
		release: min(rate.N(release), total),
		total:   total,
	}
}

// gain returns the envelope level at sample position pos
func (e *envelope) gain(pos int) float64 {
	g := 1.0
	if e.attack > 0 && pos < e.attack {
		g = float64(pos) / float64(e.attack)
	}
	if left := e.total - pos; e.release > 0 && left <= e.release {
		g = math.Min(g, float64(left)/float64(e.release))
	}
	return g
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rest := e.total - e.pos; len(samples) > rest {
		samples = samples[:rest]
	}

	n, ok = e.src.Stream(samples)
	for i := range samples[:n] {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok && n > 0
}

func (e *envelope) Err() error { return e.src.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so zero is mapped to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// shape turns cached PCM into a playable effect with envelope and volume applied
func shape(pcm PCM, spec ToneSpec, rate beep.SampleRate, vol float64) beep.Streamer {
	shaped := NewEnvelope(pcm.Streamer(), spec.Duration, spec.Attack, spec.Release, rate)
	return newVolume(shaped, vol)
}
