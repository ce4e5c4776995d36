// Package term draws bursts into terminal cells with tcell.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/burst"
)

const (
	blockRune  = '█'
	circleRune = '●'
	spriteRune = '*'
)

// Renderer implements burst.Renderer and burst.TextRenderer on a tcell
// screen. World coordinates are scaled so that a world of WorldW x WorldH
// units fills the screen. Colors are blended over Background by their alpha,
// since cells have no transparency.
type Renderer struct {
	Screen     tcell.Screen
	WorldW     float32
	WorldH     float32
	Background burst.Color

	scaleX, scaleY float32 // world units per cell
	cols, rows     int
}

// NewRenderer creates a renderer that maps a worldW x worldH world onto
// screen.
func NewRenderer(screen tcell.Screen, worldW, worldH float32) *Renderer {
	r := &Renderer{
		Screen:     screen,
		WorldW:     worldW,
		WorldH:     worldH,
		Background: burst.ColorBlack,
	}
	r.Resize()
	return r
}

// Resize recomputes the world-to-cell scale from the current screen size.
// Call it after a tcell resize event.
func (r *Renderer) Resize() {
	r.cols, r.rows = r.Screen.Size()
	r.scaleX = r.WorldW / float32(max(r.cols, 1))
	r.scaleY = r.WorldH / float32(max(r.rows, 1))
}

// Clear fills the screen with the background color.
func (r *Renderer) Clear() {
	r.Screen.Fill(' ', tcell.StyleDefault.Background(r.blend(r.Background)))
}

// CellAt converts a world position to a cell.
func (r *Renderer) CellAt(x, y float32) (col, row int) {
	return int(math.Floor(float64(x / r.scaleX))), int(math.Floor(float64(y / r.scaleY)))
}

// WorldAt converts a cell to the world position of its center.
func (r *Renderer) WorldAt(col, row int) (x, y float32) {
	return (float32(col) + 0.5) * r.scaleX, (float32(row) + 0.5) * r.scaleY
}

// DrawRect fills every cell the rectangle overlaps. A rectangle smaller than
// a cell still marks the cell under its center.
func (r *Renderer) DrawRect(x, y, w, h float32, c burst.Color) {
	if c.Alpha() == 0 {
		return
	}
	style := r.style(c)
	c0, r0 := r.CellAt(x, y)
	c1, r1 := r.CellAt(x+w, y+h)
	if c1 <= c0 || r1 <= r0 {
		cc, rr := r.CellAt(x+w/2, y+h/2)
		r.set(cc, rr, blockRune, style)
		return
	}
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			r.set(col, row, blockRune, style)
		}
	}
}

// DrawCircle marks the cells whose centers lie inside the circle, or the
// cell under the center when the circle is smaller than a cell.
func (r *Renderer) DrawCircle(x, y, diameter float32, c burst.Color) {
	if c.Alpha() == 0 {
		return
	}
	style := r.style(c)
	radius := diameter / 2
	c0, r0 := r.CellAt(x-radius, y-radius)
	c1, r1 := r.CellAt(x+radius, y+radius)
	drawn := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			wx, wy := r.WorldAt(col, row)
			dx, dy := wx-x, wy-y
			if dx*dx+dy*dy <= radius*radius {
				r.set(col, row, circleRune, style)
				drawn = true
			}
		}
	}
	if !drawn {
		cc, rr := r.CellAt(x, y)
		r.set(cc, rr, circleRune, style)
	}
}

// DrawSprite marks the cell under the sprite's anchor.
func (r *Renderer) DrawSprite(_ string, x, y float32) {
	col, row := r.CellAt(x, y)
	r.set(col, row, spriteRune, tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Background(r.blend(r.Background)))
}

// DrawText writes s starting at the cell under (x, y).
func (r *Renderer) DrawText(s string, x, y float32, c burst.Color) {
	col, row := r.CellAt(x, y)
	for _, ch := range s {
		fg := r.blend(c)
		_, _, st, _ := r.Screen.GetContent(col, row)
		_, bg, _ := st.Decompose()
		r.set(col, row, ch, tcell.StyleDefault.Foreground(fg).Background(bg))
		col++
	}
}

func (r *Renderer) set(col, row int, ch rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return
	}
	r.Screen.SetContent(col, row, ch, nil, style)
}

func (r *Renderer) style(c burst.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(r.blend(c)).Background(r.blend(r.Background))
}

// blend mixes c over the background by c's alpha.
func (r *Renderer) blend(c burst.Color) tcell.Color {
	cr, cg, cb, ca := c.RGBA8()
	br, bg, bb, _ := r.Background.RGBA8()
	a := int32(ca)
	mix := func(fg, bg uint8) int32 {
		return (int32(fg)*a + int32(bg)*(255-a)) / 255
	}
	return tcell.NewRGBColor(mix(cr, br), mix(cg, bg), mix(cb, bb))
}
