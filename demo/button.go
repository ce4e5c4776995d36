package demo

import (
	"github.com/phanxgames/burst"
	"github.com/phanxgames/burst/trigger"
	"github.com/tanema/gween/ease"
)

// Logical screen size of the demo.
const (
	ScreenWidth  = 384
	ScreenHeight = 216
)

// Bottom button strip.
const (
	stripHeight  = 32
	stripInsetX  = 8
	stripInsetY  = 12 // from the bottom edge
	stripColumns = 4
	stripGap     = 12

	labelInset    = 4
	hoverDuration = 0.08 // seconds
)

// ButtonID identifies one of the demo buttons.
type ButtonID int

const (
	ButtonTrail ButtonID = iota
	ButtonExplosion
	ButtonConfetti
	ButtonDust
)

func (b ButtonID) String() string {
	switch b {
	case ButtonTrail:
		return "Trail"
	case ButtonExplosion:
		return "Explosion"
	case ButtonConfetti:
		return "Confetti"
	case ButtonDust:
		return "Dust"
	default:
		return "Unknown"
	}
}

// Button is a labeled rectangle that eases toward its hover color while the
// pointer is over it.
type Button struct {
	ID         ButtonID
	Label      string
	Bounds     burst.Rect
	Color      burst.Color
	HoverColor burst.Color
	TextColor  burst.Color

	current burst.Color
	hovered bool
	fade    *trigger.TweenGroup
}

// NewButton creates a button in its regular color.
func NewButton(id ButtonID, bounds burst.Rect, c, hover burst.Color) *Button {
	return &Button{
		ID:         id,
		Label:      id.String(),
		Bounds:     bounds,
		Color:      c,
		HoverColor: hover,
		TextColor:  burst.ColorWhite,
		current:    c,
	}
}

// Layout returns the demo's four buttons laid out as equal columns in a strip
// along the bottom of a width x height screen.
func Layout(width, height float32) []*Button {
	colW := (width - 2*stripInsetX - (stripColumns-1)*stripGap) / stripColumns
	y := height - stripInsetY - stripHeight
	colors := [stripColumns][2]burst.Color{
		{0x8833AAFF, 0xAA55CCFF},
		{0xCC3333FF, 0xFF5555FF},
		{0x33CCFFFF, 0x66DDFFFF},
		{0x3333CCFF, 0x5555FFFF},
	}
	buttons := make([]*Button, stripColumns)
	for i := range buttons {
		x := stripInsetX + float32(i)*(colW+stripGap)
		bounds := burst.Rect{X: x, Y: y, Width: colW, Height: stripHeight}
		buttons[i] = NewButton(ButtonID(i), bounds, colors[i][0], colors[i][1])
	}
	return buttons
}

// Contains reports whether the point lies on the button.
func (b *Button) Contains(x, y float32) bool {
	return b.Bounds.Contains(x, y)
}

// Hovered reports whether the pointer was over the button on the last update.
func (b *Button) Hovered() bool {
	return b.hovered
}

// CurrentColor returns the fill color as of the last update.
func (b *Button) CurrentColor() burst.Color {
	return b.current
}

func (b *Button) update(hovered bool, dt float32) {
	if hovered != b.hovered {
		b.hovered = hovered
		target := b.Color
		if hovered {
			target = b.HoverColor
		}
		b.fade = trigger.TweenColor(&b.current, target, hoverDuration, ease.OutQuad)
	}
	if b.fade != nil {
		b.fade.Update(dt)
		if b.fade.Done {
			b.fade = nil
		}
	}
}

// Draw fills the button and writes its label when r can draw text.
func (b *Button) Draw(r burst.Renderer) {
	r.DrawRect(b.Bounds.X, b.Bounds.Y, b.Bounds.Width, b.Bounds.Height, b.current)
	burst.DrawText(r, b.Label, b.Bounds.X+labelInset, b.Bounds.Y+labelInset, b.TextColor)
}
