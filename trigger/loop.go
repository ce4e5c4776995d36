package trigger

import "github.com/phanxgames/burst"

const (
	loopRise     = 2   // units per step
	loopInterval = 5   // steps between bursts
	loopTopY     = -20 // reset once above this line
)

// LoopEmitter rises from its origin and asks for a burst every few steps
// until it leaves the top of the screen.
type LoopEmitter struct {
	Pos    burst.Vec2 // center
	Origin burst.Vec2
	Size   float32
	Color  burst.Color
	Active bool
	Frame  uint32
}

// NewLoopEmitter returns an inactive emitter resting at (x, y).
func NewLoopEmitter(x, y, size float32, c burst.Color) *LoopEmitter {
	return &LoopEmitter{
		Pos:    burst.Vec2{X: x, Y: y},
		Origin: burst.Vec2{X: x, Y: y},
		Size:   size,
		Color:  c,
	}
}

// Activate starts the emitter at (x, y), which also becomes its new origin.
func (e *LoopEmitter) Activate(x, y float32) {
	e.Pos = burst.Vec2{X: x, Y: y}
	e.Origin = e.Pos
	e.Active = true
	e.Frame = 0
}

// Update moves the emitter one step and reports whether a burst is due.
// It returns false while inactive and on the step that resets it.
func (e *LoopEmitter) Update() bool {
	if !e.Active {
		return false
	}
	e.Pos.Y -= loopRise
	e.Frame++
	if e.Pos.Y < loopTopY {
		e.Reset()
		return false
	}
	return e.Frame%loopInterval == 0
}

// Reset deactivates the emitter and moves it back to its origin.
func (e *LoopEmitter) Reset() {
	e.Active = false
	e.Frame = 0
	e.Pos = e.Origin
}

// Draw renders the emitter as a circle. It is drawn while idle as well.
func (e *LoopEmitter) Draw(r burst.Renderer) {
	r.DrawCircle(e.Pos.X, e.Pos.Y, e.Size, e.Color)
}
