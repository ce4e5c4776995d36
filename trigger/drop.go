package trigger

import "github.com/phanxgames/burst"

const (
	dropStartVelocity float32 = 0.5
	dropGravity       float32 = 0.1

	// DropResetSteps is how long a landed DropEmitter rests before returning
	// to its start position.
	DropResetSteps = 120
)

// DropEmitter falls under gravity when triggered and asks for a burst on the
// step its bottom edge reaches TargetY.
type DropEmitter struct {
	Pos     burst.Vec2 // center
	Size    float32
	Color   burst.Color
	TargetY float32

	Active     bool
	Falling    bool
	Velocity   float32
	ResetTimer uint32

	startY float32
}

// NewDropEmitter returns an idle emitter centered on (x, y) that lands when
// its bottom edge reaches targetY.
func NewDropEmitter(x, y, size float32, c burst.Color, targetY float32) *DropEmitter {
	return &DropEmitter{
		Pos:     burst.Vec2{X: x, Y: y},
		Size:    size,
		Color:   c,
		TargetY: targetY,
		Active:  true,
		startY:  y,
	}
}

// Trigger starts a fall and reports whether it did. It does nothing while
// falling or while resting after a landing.
func (e *DropEmitter) Trigger() bool {
	if !e.Active || e.Falling || e.ResetTimer > 0 {
		return false
	}
	e.Falling = true
	e.Velocity = dropStartVelocity
	return true
}

// Update advances the fall by one step and reports an impact. On the impact
// step the emitter is placed so that its bottom edge equals TargetY.
func (e *DropEmitter) Update() bool {
	if e.ResetTimer > 0 {
		e.ResetTimer--
		if e.ResetTimer == 0 {
			e.Reset()
		}
		return false
	}
	if !e.Active || !e.Falling {
		return false
	}

	e.Velocity += dropGravity
	e.Pos.Y += e.Velocity
	if e.Bottom() >= e.TargetY {
		e.Pos.Y = e.TargetY - e.Size/2
		e.Falling = false
		e.ResetTimer = DropResetSteps
		return true
	}
	return false
}

// Reset returns the emitter to its start position.
func (e *DropEmitter) Reset() {
	e.Pos.Y = e.startY
	e.Active = true
	e.Falling = false
	e.Velocity = 0
	e.ResetTimer = 0
}

// Bottom returns the y coordinate of the bottom edge.
func (e *DropEmitter) Bottom() float32 {
	return e.Pos.Y + e.Size/2
}

// ImpactPoint returns the bottom center, where landing dust originates.
func (e *DropEmitter) ImpactPoint() burst.Vec2 {
	return burst.Vec2{X: e.Pos.X, Y: e.Bottom()}
}

// Draw renders the emitter as a centered square.
func (e *DropEmitter) Draw(r burst.Renderer) {
	if !e.Active {
		return
	}
	r.DrawRect(e.Pos.X-e.Size/2, e.Pos.Y-e.Size/2, e.Size, e.Size, e.Color)
}
