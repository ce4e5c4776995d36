package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

// TestSweepLength verifies the sweep produces exactly its duration in samples
func TestSweepLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewSweep(440, 220, 100*time.Millisecond, rate)

	samples := drain(t, s)
	if want := rate.N(100 * time.Millisecond); len(samples) != want {
		t.Errorf("Expected %d samples, got %d", want, len(samples))
	}
	if s.Err() != nil {
		t.Errorf("Expected no error, got: %v", s.Err())
	}
}

// TestSweepRangeAndDecay verifies samples stay in [-1, 1] and fade out
func TestSweepRangeAndDecay(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(t, NewSweep(300, 300, 200*time.Millisecond, rate))

	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range samples[from:to] {
			if s[0] < -1 || s[0] > 1 {
				t.Fatalf("Sample out of range: %f", s[0])
			}
			if s[0] != s[1] {
				t.Fatalf("Channels differ: %f vs %f", s[0], s[1])
			}
			m = max(m, s[0], -s[0])
		}
		return m
	}
	n := len(samples)
	head, tail := peak(0, n/10), peak(n-n/10, n)
	if tail >= head {
		t.Errorf("Expected decay: head peak %f, tail peak %f", head, tail)
	}
}

// TestNoiseDeterministic verifies two noise streams render the same samples
func TestNoiseDeterministic(t *testing.T) {
	rate := beep.SampleRate(44100)
	a := drain(t, NewNoise(20*time.Millisecond, rate))
	b := drain(t, NewNoise(20*time.Millisecond, rate))
	if len(a) != len(b) {
		t.Fatalf("Lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Sample %d differs", i)
		}
		if a[i][0] < -1 || a[i][0] > 1 {
			t.Fatalf("Sample %d out of range: %f", i, a[i][0])
		}
	}
}

// TestNewEffectAll verifies every effect builds and terminates
func TestNewEffectAll(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, e := range []Effect{EffectClick, EffectBoom, EffectChime, EffectThud} {
		t.Run(e.String(), func(t *testing.T) {
			s := NewEffect(e, rate, 0.5)
			if s == nil {
				t.Fatal("Expected non-nil streamer")
			}
			if samples := drain(t, s); len(samples) == 0 {
				t.Error("Expected samples")
			}
		})
	}
}

// TestNewEffectChimeLength verifies the three chime notes play in sequence
func TestNewEffectChimeLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(t, NewEffect(EffectChime, rate, 1))
	want := 2*rate.N(chimeNote) + rate.N(2*chimeNote)
	if len(samples) != want {
		t.Errorf("Expected %d samples, got %d", want, len(samples))
	}
}

// TestNewEffectUnknown verifies unknown effects yield nil
func TestNewEffectUnknown(t *testing.T) {
	if s := NewEffect(Effect(99), beep.SampleRate(44100), 1); s != nil {
		t.Error("Expected nil streamer for unknown effect")
	}
}

// TestNewEffectSilent verifies zero volume produces silence
func TestNewEffectSilent(t *testing.T) {
	samples := drain(t, NewEffect(EffectThud, beep.SampleRate(44100), 0))
	for i, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Sample %d not silent: %v", i, s)
		}
	}
}

// TestPlayerUninitialized verifies Play and Close are safe without a speaker
func TestPlayerUninitialized(t *testing.T) {
	p := NewPlayer(1)
	p.Play(EffectBoom)
	p.SetMuted(true)
	p.Close()
	if p.mixer.Len() != 0 {
		t.Errorf("Expected empty mixer, got %d streamers", p.mixer.Len())
	}
}
