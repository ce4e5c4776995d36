package demo

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefresh = 0.5 // seconds

// fpsOverlay shows the current FPS and TPS in the top-right corner. The text
// is re-rendered at most every fpsRefresh seconds.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 fits "FPS: 60.0\nTPS: 60.0".
	return &fpsOverlay{img: ebiten.NewImage(100, 32), elapsed: fpsRefresh}
}

func (o *fpsOverlay) update(dt float64) {
	o.elapsed += dt
	if o.elapsed < fpsRefresh {
		return
	}
	o.elapsed = 0
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) draw(dst *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(dst.Bounds().Dx()-o.img.Bounds().Dx()), 0)
	dst.DrawImage(o.img, op)
}
