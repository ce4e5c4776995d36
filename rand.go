package burst

import (
	"math"
	"math/rand/v2"
)

// RandomSource produces uniformly distributed 32-bit values. It is the only
// entropy input of the engine; inject a seeded source for reproducible runs.
type RandomSource interface {
	Uint32() uint32
}

// NewPCGSource returns a RandomSource backed by a PCG generator. The same
// seed always yields the same sequence.
func NewPCGSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, 0))
}

// floatResolution is the number of distinct steps per unit of span that
// Sampler.Float can produce.
const floatResolution = 1000

// Sampler derives bounded values from a RandomSource. Each sample that needs
// randomness consumes exactly one draw; degenerate ranges consume none.
type Sampler struct {
	src RandomSource
}

// NewSampler wraps src.
func NewSampler(src RandomSource) *Sampler {
	return &Sampler{src: src}
}

// Float returns a value from [min, max] quantized to 1/1000 of a unit.
// Spans narrower than 0.001 return min. The span is taken as |max-min| and the
// result is always min plus a non-negative offset, so an inverted range is
// anchored at min rather than swapped.
func (s *Sampler) Float(min, max float32) float32 {
	span := float32(math.Abs(float64(max - min)))
	if span < 1.0/floatResolution {
		return min
	}
	steps := uint32(span * floatResolution)
	if steps == 0 {
		return min
	}
	return min + float32(s.src.Uint32()%steps)/floatResolution
}

// FloatIn samples r with Float.
func (s *Sampler) FloatIn(r FloatRange) float32 {
	return s.Float(r.Min, r.Max)
}

// Int returns a value from [min, max). When max <= min it returns min. Unlike
// Float there is no absolute-value span, so inverted ranges collapse to min.
func (s *Sampler) Int(min, max uint32) uint32 {
	if max <= min {
		return min
	}
	return min + s.src.Uint32()%(max-min)
}

// IntIn samples r with Int.
func (s *Sampler) IntIn(r IntRange) uint32 {
	return s.Int(r.Min, r.Max)
}
