package burst

// Renderer receives draw calls from ParticleManager.Draw. Implementations are
// assumed to always succeed.
type Renderer interface {
	// DrawRect fills the axis-aligned rectangle with top-left corner (x, y).
	DrawRect(x, y, w, h float32, c Color)
	// DrawCircle fills a circle centered at (x, y).
	DrawCircle(x, y, diameter float32, c Color)
	// DrawSprite draws the named sprite with its top-left corner at (x, y).
	DrawSprite(name string, x, y float32)
}

// TextRenderer is implemented by renderers that can also draw text. Callers
// check for it with a type assertion.
type TextRenderer interface {
	DrawText(s string, x, y float32, c Color)
}

// DrawText draws s with r if r implements TextRenderer and does nothing
// otherwise.
func DrawText(r Renderer, s string, x, y float32, c Color) {
	if tr, ok := r.(TextRenderer); ok {
		tr.DrawText(s, x, y, c)
	}
}
