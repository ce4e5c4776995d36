package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Effect names one of the demo's sound effects.
type Effect int

const (
	EffectClick  Effect = iota // button press
	EffectBoom                 // explosion burst
	EffectChime                // confetti burst
	EffectThud                 // dust impact
)

func (e Effect) String() string {
	switch e {
	case EffectClick:
		return "click"
	case EffectBoom:
		return "boom"
	case EffectChime:
		return "chime"
	case EffectThud:
		return "thud"
	default:
		return "unknown"
	}
}

const (
	clickDuration = 30 * time.Millisecond
	boomDuration  = 350 * time.Millisecond
	chimeNote     = 90 * time.Millisecond
	thudDuration  = 180 * time.Millisecond
)

// sweep is a sine oscillator whose frequency glides from one value to another
// while its amplitude decays linearly to silence.
type sweep struct {
	from, to float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

// NewSweep creates a decaying sine that glides from one frequency to another
// over duration.
func NewSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, total: rate.N(duration), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		t := float64(s.position) / float64(s.total)
		freq := s.from + (s.to-s.from)*t
		val := math.Sin(2*math.Pi*s.phase) * (1 - t)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise is decaying white noise from a small xorshift generator, so the same
// effect always renders the same samples.
type noise struct {
	state    uint32
	position int
	total    int
}

// NewNoise creates a burst of white noise that decays to silence over
// duration.
func NewNoise(duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &noise{state: 0x9E3779B9, total: rate.N(duration)}
}

func (nz *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if nz.position >= nz.total {
			return i, i > 0
		}
		nz.state ^= nz.state << 13
		nz.state ^= nz.state >> 17
		nz.state ^= nz.state << 5
		env := 1 - float64(nz.position)/float64(nz.total)
		val := (float64(nz.state)/math.MaxUint32*2 - 1) * env * env

		samples[i][0] = val
		samples[i][1] = val
		nz.position++
	}
	return len(samples), true
}

func (nz *noise) Err() error { return nil }

// Helper to create a volume effect safely.
// math.Log2(0) is -Inf, so zero volume is made silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewEffect builds the streamer for e at the given sample rate and volume.
// It returns nil for an unknown effect.
func NewEffect(e Effect, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch e {
	case EffectClick:
		tone, err := generators.SineTone(rate, 1200)
		if err != nil {
			return nil
		}
		s = newVolume(beep.Take(rate.N(clickDuration), tone), 0.4)
	case EffectBoom:
		s = beep.Take(rate.N(boomDuration), beep.Mix(
			newVolume(NewNoise(boomDuration, rate), 0.6),
			NewSweep(140, 40, boomDuration, rate),
		))
	case EffectChime:
		s = beep.Seq(
			NewSweep(1046.5, 1046.5, chimeNote, rate),
			NewSweep(1318.5, 1318.5, chimeNote, rate),
			NewSweep(1568, 1568, chimeNote*2, rate),
		)
	case EffectThud:
		s = beep.Take(rate.N(thudDuration), beep.Mix(
			NewSweep(90, 45, thudDuration, rate),
			newVolume(NewNoise(thudDuration/3, rate), 0.25),
		))
	default:
		return nil
	}
	return newVolume(s, volume)
}
