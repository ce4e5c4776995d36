package burst

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenRenderer draws onto an ebiten image. Shapes are filled with the
// vector package; sprites are looked up in Atlas.
type EbitenRenderer struct {
	Target *ebiten.Image
	// Atlas resolves sprite names. A nil atlas draws the magenta placeholder.
	Atlas *Atlas
	// Face is used by DrawText. A nil face skips text.
	Face text.Face
	// AntiAlias smooths shape edges.
	AntiAlias bool
}

// NewEbitenRenderer returns a renderer targeting dst.
func NewEbitenRenderer(dst *ebiten.Image, atlas *Atlas) *EbitenRenderer {
	return &EbitenRenderer{Target: dst, Atlas: atlas}
}

// DrawRect implements Renderer.
func (r *EbitenRenderer) DrawRect(x, y, w, h float32, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(r.Target, x, y, w, h, c, r.AntiAlias)
}

// DrawCircle implements Renderer.
func (r *EbitenRenderer) DrawCircle(x, y, diameter float32, c Color) {
	if diameter <= 0 {
		return
	}
	vector.DrawFilledCircle(r.Target, x, y, diameter/2, c, r.AntiAlias)
}

// DrawSprite implements Renderer.
func (r *EbitenRenderer) DrawSprite(name string, x, y float32) {
	var img *ebiten.Image
	var ox, oy float32
	if r.Atlas != nil {
		img, ox, oy = r.Atlas.Image(name)
	} else {
		img = ensureMagentaImage()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x+ox), float64(y+oy))
	r.Target.DrawImage(img, op)
}

// DrawText implements TextRenderer.
func (r *EbitenRenderer) DrawText(s string, x, y float32, c Color) {
	if r.Face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(r.Target, s, r.Face, op)
}
