package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/snake/constants"
)

// PCM is interleaved-by-frame stereo signed 16-bit audio
type PCM [][2]int16

// Synthesize renders a full-scale sine tone as PCM.
// The result depends only on its arguments; the first sample is at phase zero.
func Synthesize(freq float64, d time.Duration, rate beep.SampleRate) (PCM, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidTone, rate)
	}
	if d <= 0 {
		return nil, fmt.Errorf("%w: duration %v", ErrInvalidTone, d)
	}
	if freq <= 0 {
		return nil, fmt.Errorf("%w: frequency %.1f", ErrInvalidTone, freq)
	}

	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTone, err)
	}

	frames := make([][2]float64, rate.N(d))
	filled := 0
	for filled < len(frames) {
		n, ok := sine.Stream(frames[filled:])
		filled += n
		if !ok {
			break
		}
	}

	pcm := make(PCM, filled)
	for i, f := range frames[:filled] {
		pcm[i] = [2]int16{toInt16(f[0]), toInt16(f[1])}
	}
	return pcm, nil
}

// Duration returns the playback length of p at rate
func (p PCM) Duration(rate beep.SampleRate) time.Duration {
	return rate.D(len(p))
}

// Streamer plays p back as a beep stream
func (p PCM) Streamer() beep.StreamSeeker {
	return &pcmStreamer{pcm: p}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * constants.PCMAmplitude))
}

// pcmStreamer converts PCM frames back to beep's float samples
type pcmStreamer struct {
	pcm PCM
	pos int
}

func (s *pcmStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.pcm) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.pcm) {
			return i, true
		}
		frame := s.pcm[s.pos]
		samples[i][0] = float64(frame[0]) / constants.PCMAmplitude
		samples[i][1] = float64(frame[1]) / constants.PCMAmplitude
		s.pos++
	}
	return len(samples), true
}

func (s *pcmStreamer) Err() error { return nil }

func (s *pcmStreamer) Len() int { return len(s.pcm) }

func (s *pcmStreamer) Position() int { return s.pos }

func (s *pcmStreamer) Seek(p int) error {
	if p < 0 || p > len(s.pcm) {
		return fmt.Errorf("seek position %d out of range [0, %d]", p, len(s.pcm))
	}
	s.pos = p
	return nil
}
