package trigger

import (
	"github.com/phanxgames/burst"
	"github.com/tanema/gween/ease"
)

// CooldownSteps is how long a fired CooldownEmitter stays hidden.
const CooldownSteps = 60

// PopDuration is the length in seconds of the scale-in played when a
// CooldownEmitter reappears.
const PopDuration = 0.25

// stepSeconds is the tween time advanced per Update.
const stepSeconds float32 = 1.0 / burst.StepsPerSecond

// CooldownEmitter fires once, hides, and becomes ready again after
// CooldownSteps updates.
type CooldownEmitter struct {
	Pos      burst.Vec2 // center
	Size     float32
	Color    burst.Color
	Visible  bool
	Cooldown uint32

	scale float32
	pop   *TweenGroup
}

// NewCooldownEmitter returns a visible, ready emitter centered on (x, y).
func NewCooldownEmitter(x, y, size float32, c burst.Color) *CooldownEmitter {
	return &CooldownEmitter{
		Pos:     burst.Vec2{X: x, Y: y},
		Size:    size,
		Color:   c,
		Visible: true,
		scale:   1,
	}
}

// Trigger fires the emitter if it is visible and reports whether it fired.
// The caller creates the burst.
func (e *CooldownEmitter) Trigger() bool {
	if !e.Visible {
		return false
	}
	e.Visible = false
	e.Cooldown = CooldownSteps
	e.pop = nil
	return true
}

// Update counts the cooldown down while hidden and advances the pop-in
// animation once visible again.
func (e *CooldownEmitter) Update() {
	if !e.Visible && e.Cooldown > 0 {
		e.Cooldown--
		if e.Cooldown == 0 {
			e.Visible = true
			e.scale = 0
			e.pop = TweenValue(&e.scale, 1, PopDuration, ease.OutBack)
		}
	}
	if e.pop != nil {
		e.pop.Update(stepSeconds)
		if e.pop.Done {
			e.pop = nil
		}
	}
}

// Ready reports whether Trigger would fire.
func (e *CooldownEmitter) Ready() bool {
	return e.Visible
}

// Scale returns the current drawn scale. It is 1 except during the pop-in.
func (e *CooldownEmitter) Scale() float32 {
	return e.scale
}

// Draw renders the emitter as a centered square while it is visible.
func (e *CooldownEmitter) Draw(r burst.Renderer) {
	if !e.Visible {
		return
	}
	side := e.Size * e.scale
	if side <= 0 {
		return
	}
	r.DrawRect(e.Pos.X-side/2, e.Pos.Y-side/2, side, side, e.Color)
}
