package demo

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/phanxgames/burst"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	backgroundColor burst.Color = 0x101018FF
	labelFontSize               = 10
	sparkSize                   = 3
)

var buttonKeys = [...]ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// EbitenGame runs a Game as an ebiten.Game. Each ebiten tick is one Step.
type EbitenGame struct {
	Game *Game
	// Muter is toggled by the M key when set.
	Muter interface{ SetMuted(bool) }

	renderer *burst.EbitenRenderer
	fps      *fpsOverlay
	muted    bool
}

// NewEbitenGame wraps g with an ebiten renderer, a text face and an atlas
// holding the "spark" sprite used by embers.
func NewEbitenGame(g *Game) (*EbitenGame, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("demo: load font: %w", err)
	}
	atlas := burst.NewAtlas()
	spark := ebiten.NewImage(sparkSize, sparkSize)
	spark.Fill(burst.Color(0xFFCC66FF))
	atlas.Add("spark", spark)

	r := burst.NewEbitenRenderer(nil, atlas)
	r.Face = &text.GoTextFace{Source: src, Size: labelFontSize}
	r.AntiAlias = true

	e := &EbitenGame{Game: g, renderer: r, muted: g.cfg.Muted}
	if g.cfg.ShowFPS {
		e.fps = newFPSOverlay()
	}
	return e, nil
}

// Update implements ebiten.Game.
func (e *EbitenGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for i, key := range buttonKeys {
		if inpututil.IsKeyJustPressed(key) {
			e.Game.PressButton(ButtonID(i))
		}
	}
	if e.Muter != nil && inpututil.IsKeyJustPressed(ebiten.KeyM) {
		e.muted = !e.muted
		e.Muter.SetMuted(e.muted)
	}

	x, y := ebiten.CursorPosition()
	e.Game.Step(Pointer{
		X:    float32(x),
		Y:    float32(y),
		Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	})

	if e.fps != nil {
		e.fps.update(1.0 / float64(ebiten.TPS()))
	}
	if e.Game.cfg.ExitAfterScript && e.Game.ScriptDone() && len(e.Game.screenshots) == 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (e *EbitenGame) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	e.renderer.Target = screen
	e.Game.Render(e.renderer)
	if e.fps != nil {
		e.fps.draw(screen)
	}
	flushScreenshots(screen, e.Game.cfg.ScreenshotDir, e.Game.TakeScreenshots())
}

// Layout implements ebiten.Game. The demo always uses its fixed logical size.
func (e *EbitenGame) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Run opens a window sized by the game's config and blocks until it closes.
func Run(g *Game) error {
	e, err := NewEbitenGame(g)
	if err != nil {
		return err
	}
	return RunEbiten(e)
}

// RunEbiten opens a window for e and blocks until it closes.
func RunEbiten(e *EbitenGame) error {
	cfg := e.Game.cfg
	scale := max(cfg.Scale, 1)
	ebiten.SetWindowSize(ScreenWidth*scale, ScreenHeight*scale)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(burst.StepsPerSecond)
	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	return nil
}
