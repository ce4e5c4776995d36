package burst

// StepsPerSecond is the nominal simulation rate. Velocities are expressed in
// units per step and every Update ages particles by 1/StepsPerSecond seconds,
// regardless of how long the frame actually took.
const StepsPerSecond = 60

// stepDuration is the fixed amount of life removed from a particle per Update.
const stepDuration float32 = 1.0 / StepsPerSecond

// Vec2 is a 2D vector used for positions and velocities.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Color is a packed 32-bit RGBA color laid out as 0xRRGGBBAA, so the alpha
// channel occupies the low byte. Not premultiplied.
type Color uint32

// Common colors.
const (
	ColorWhite       Color = 0xFFFFFFFF
	ColorBlack       Color = 0x000000FF
	ColorTransparent Color = 0x00000000
)

// RGBA8 returns the four 8-bit channels.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 {
	return uint8(c)
}

// WithAlpha returns c with its alpha byte replaced. Red, green and blue are
// left untouched.
func (c Color) WithAlpha(a uint8) Color {
	return c&0xFFFFFF00 | Color(a)
}

// RGBA implements image/color.Color. Values are premultiplied by alpha as the
// interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := c.RGBA8()
	a = uint32(a8) * 0x101
	r = uint32(r8) * 0x101 * a / 0xFFFF
	g = uint32(g8) * 0x101 * a / 0xFFFF
	b = uint32(b8) * 0x101 * a / 0xFFFF
	return r, g, b, a
}

// FloatRange is a (min, max) pair sampled by Sampler.Float.
type FloatRange struct {
	Min, Max float32
}

// IntRange is a (min, max) pair sampled by Sampler.Int. Max is exclusive.
type IntRange struct {
	Min, Max uint32
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}
