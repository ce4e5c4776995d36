package trigger

import (
	"github.com/phanxgames/burst"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float32 fields simultaneously. Create one via
// TweenValue or TweenColor and call Update(dt) each frame. The group writes
// the current values to its targets on every Update.
//
// There is no global animation manager. Owners call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float32

	// color, when set, is repacked from channels after each Update.
	color    *burst.Color
	channels [4]float32

	Done bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields. It is a no-op once Done.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = val
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.color != nil {
		*g.color = packColor(g.channels)
	}
}

// TweenValue creates a TweenGroup that animates *field to the target value
// over the specified duration using the easing function.
func TweenValue(field *float32, to, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(*field, to, duration, fn)
	g.fields[0] = field
	return g
}

// TweenColor creates a TweenGroup that animates all four channels of *c to
// the target color over the specified duration.
func TweenColor(c *burst.Color, to burst.Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, color: c}
	from := unpackColor(*c)
	dst := unpackColor(to)
	g.channels = from
	for i := range 4 {
		g.tweens[i] = gween.New(from[i], dst[i], duration, fn)
		g.fields[i] = &g.channels[i]
	}
	return g
}

func unpackColor(c burst.Color) [4]float32 {
	r, g, b, a := c.RGBA8()
	return [4]float32{float32(r), float32(g), float32(b), float32(a)}
}

func packColor(ch [4]float32) burst.Color {
	var c burst.Color
	for _, v := range ch {
		v = min(max(v, 0), 255)
		c = c<<8 | burst.Color(uint8(v+0.5))
	}
	return c
}
